package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingEncryptionKey indicates that neither ENCRYPTION_KEY nor the
	// MASTER_PASSPHRASE/KEY_SALT pair was provided.
	ErrMissingEncryptionKey = errors.New("encryption key is not configured")
	// ErrInvalidEncryptionKey indicates malformed key material
	// (ENCRYPTION_KEY is not exactly 64 hex characters, or KEY_SALT is not
	// valid hex).
	ErrInvalidEncryptionKey = errors.New("invalid encryption key configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or missing S3 endpoint).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
