package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates a database driver other than pgx or sqlite3.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates an unknown deployment environment.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates an incomplete SMTP or upload setup
	// (for example, an S3 provider without a bucket).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnsupportedUploadProvider indicates an upload provider other than
	// filestack or s3.
	ErrUnsupportedUploadProvider = errors.New("unsupported upload provider")
)
