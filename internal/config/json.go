package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file. Durations are accepted as strings ("30s") or numbers
// of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		ResetTokenTTL       Duration `json:"reset_token_ttl"`
		ResetURLBase        string   `json:"reset_url_base"`
		PasswordMinLength   int      `json:"password_min_length"`
		ConcealUnknownEmail bool     `json:"conceal_unknown_email"`
		SupportEmail        string   `json:"support_email"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Env            string   `json:"env"`
		CORSOrigins    []string `json:"cors_origins"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		SMTP struct {
			Host     string `json:"host"`
			Port     string `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
		} `json:"smtp,omitempty"`

		Upload struct {
			Provider        string   `json:"provider"`
			RequestTimeout  Duration `json:"request_timeout"`
			FilestackAPIKey string   `json:"filestack_api_key"`
			FilestackURL    string   `json:"filestack_url"`
			S3Region        string   `json:"s3_region"`
			S3Endpoint      string   `json:"s3_endpoint"`
			S3Bucket        string   `json:"s3_bucket"`
			S3AccessKey     string   `json:"s3_access_key"`
			S3SecretKey     string   `json:"s3_secret_key"`
			S3PublicURL     string   `json:"s3_public_url"`
		} `json:"upload,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResetTokenCleanupInterval Duration `json:"reset_token_cleanup_interval"`
	} `json:"workers,omitempty"`

	RateLimit struct {
		LoginAttempts  int      `json:"login_attempts"`
		LoginWindow    Duration `json:"login_window"`
		ForgotAttempts int      `json:"forgot_attempts"`
		ForgotWindow   Duration `json:"forgot_window"`
	} `json:"rate_limit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenTTL:       time.Duration(jsonCfg.App.ResetTokenTTL),
			ResetURLBase:        jsonCfg.App.ResetURLBase,
			PasswordMinLength:   jsonCfg.App.PasswordMinLength,
			ConcealUnknownEmail: jsonCfg.App.ConcealUnknownEmail,
			SupportEmail:        jsonCfg.App.SupportEmail,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL: jsonCfg.Storage.Redis.URL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			Env:            jsonCfg.Server.Env,
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			SMTP: SMTP{
				Host:     jsonCfg.Adapter.SMTP.Host,
				Port:     jsonCfg.Adapter.SMTP.Port,
				Username: jsonCfg.Adapter.SMTP.Username,
				Password: jsonCfg.Adapter.SMTP.Password,
				From:     jsonCfg.Adapter.SMTP.From,
			},
			Upload: Upload{
				Provider:        jsonCfg.Adapter.Upload.Provider,
				RequestTimeout:  time.Duration(jsonCfg.Adapter.Upload.RequestTimeout),
				FilestackAPIKey: jsonCfg.Adapter.Upload.FilestackAPIKey,
				FilestackURL:    jsonCfg.Adapter.Upload.FilestackURL,
				S3Region:        jsonCfg.Adapter.Upload.S3Region,
				S3Endpoint:      jsonCfg.Adapter.Upload.S3Endpoint,
				S3Bucket:        jsonCfg.Adapter.Upload.S3Bucket,
				S3AccessKey:     jsonCfg.Adapter.Upload.S3AccessKey,
				S3SecretKey:     jsonCfg.Adapter.Upload.S3SecretKey,
				S3PublicURL:     jsonCfg.Adapter.Upload.S3PublicURL,
			},
		},
		Workers: Workers{
			ResetTokenCleanupInterval: time.Duration(jsonCfg.Workers.ResetTokenCleanupInterval),
		},
		RateLimit: RateLimit{
			LoginAttempts:  jsonCfg.RateLimit.LoginAttempts,
			LoginWindow:    time.Duration(jsonCfg.RateLimit.LoginWindow),
			ForgotAttempts: jsonCfg.RateLimit.ForgotAttempts,
			ForgotWindow:   time.Duration(jsonCfg.RateLimit.ForgotWindow),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
