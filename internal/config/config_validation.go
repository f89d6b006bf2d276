// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// minEncryptionSecretLen is the minimum byte length of the credential
// encryption secret. A shorter secret cannot safely feed the key derivation.
const minEncryptionSecretLen = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A configuration error here is fatal to the process: nothing has touched
// stored state yet, so failing fast is always safe.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if len(cfg.App.EncryptionSecret) < minEncryptionSecretLen {
		return ErrInvalidEncryptionSecret
	}

	if cfg.Outlook.ClientID == "" || cfg.Outlook.ClientSecret == "" || cfg.Outlook.RedirectURI == "" {
		return ErrInvalidOutlookConfigs
	}

	if cfg.Sync.PageSize < 1 || cfg.Sync.MaxRetries < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
