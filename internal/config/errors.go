package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidEncryptionSecret indicates a missing or too-short credential
	// encryption secret (must be at least 32 bytes).
	ErrInvalidEncryptionSecret = errors.New("invalid encryption secret: must be at least 32 bytes long")
	// ErrInvalidOutlookConfigs indicates incomplete OAuth application
	// settings (client ID, client secret, or redirect URI missing).
	ErrInvalidOutlookConfigs = errors.New("invalid outlook oauth configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings
	// (for example, a non-positive page size or retry budget).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
