// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "encoding/hex"

// encryptionKeyHexLength is the required length of the ENCRYPTION_KEY value:
// 64 hex characters encoding exactly 32 raw bytes (AES-256).
const encryptionKeyHexLength = 64

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Key material rules:
//   - ENCRYPTION_KEY, when set, must be exactly 64 hex characters.
//   - When ENCRYPTION_KEY is empty, both MASTER_PASSPHRASE and KEY_SALT must
//     be present so the key can be derived instead.
//
// A violation is a fatal startup error; the process must not come up with a
// missing or malformed key.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validateKeyMaterial(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.S3.Endpoint == "" || cfg.Storage.S3.Region == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (a *App) validateKeyMaterial() error {
	if a.EncryptionKey == "" {
		if a.MasterPassphrase == "" || a.KeySalt == "" {
			return ErrMissingEncryptionKey
		}

		if _, err := hex.DecodeString(a.KeySalt); err != nil {
			return ErrInvalidEncryptionKey
		}

		return nil
	}

	if len(a.EncryptionKey) != encryptionKeyHexLength {
		return ErrInvalidEncryptionKey
	}

	if _, err := hex.DecodeString(a.EncryptionKey); err != nil {
		return ErrInvalidEncryptionKey
	}

	return nil
}
