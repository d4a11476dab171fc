// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, cfg.Storage.DB.Driver) {
		return ErrUnsupportedDBDriver
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.Env != EnvDevelopment && cfg.Server.Env != EnvProduction {
		return ErrInvalidServerConfigs
	}

	upload := cfg.Adapter.Upload
	switch upload.Provider {
	case UploadProviderNone:
	case UploadProviderFilestack:
		if upload.FilestackAPIKey == "" {
			return ErrInvalidAdapterConfigs
		}
	case UploadProviderS3:
		if upload.S3Bucket == "" || upload.S3Region == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrUnsupportedUploadProvider
	}

	if cfg.Adapter.SMTP.Host != "" && (cfg.Adapter.SMTP.From == "" || cfg.App.ResetURLBase == "") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
