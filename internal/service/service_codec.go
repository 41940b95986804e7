// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/models"
)

type fieldCodec struct {
	cipher crypto.CipherService
	logger *logger.Logger
}

// NewFieldCodec constructs a [FieldCodec] backed by the process cipher.
func NewFieldCodec(cipher crypto.CipherService, logger *logger.Logger) FieldCodec {
	return &fieldCodec{
		cipher: cipher,
		logger: logger,
	}
}

func (c *fieldCodec) EncryptFields(ctx context.Context, record models.SecretRecord) (models.EncryptedRecord, error) {
	encrypted := models.EncryptedRecord{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}

	if record.Email != "" {
		envelope, err := c.cipher.Encrypt(record.Email)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("error during email field encryption: %w", err)
		}
		encrypted.Email = envelope
	}

	if record.Phone != "" {
		envelope, err := c.cipher.Encrypt(record.Phone)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("error during phone field encryption: %w", err)
		}
		encrypted.Phone = envelope
	}

	if record.PersonalInfo != nil {
		// encoding/json emits object keys in sorted order, so the
		// serialization is canonical for the JSON-decoded values this field
		// carries.
		serialized, err := json.Marshal(record.PersonalInfo)
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("error during personal info serialization: %w", err)
		}

		envelope, err := c.cipher.Encrypt(string(serialized))
		if err != nil {
			return models.EncryptedRecord{}, fmt.Errorf("error during personal info encryption: %w", err)
		}
		encrypted.PersonalInfo = envelope
	}

	return encrypted, nil
}

// DecryptFields never fails as a whole: each field that cannot be decrypted
// keeps its stored value, so records written before encryption was introduced
// (or stored in mixed states) still come back readable.
func (c *fieldCodec) DecryptFields(ctx context.Context, record models.EncryptedRecord) models.SecretRecord {
	decrypted := models.SecretRecord{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}

	if record.Email != "" {
		decrypted.Email = c.decryptField("email", record.Email)
	}

	if record.Phone != "" {
		decrypted.Phone = c.decryptField("phone", record.Phone)
	}

	if record.PersonalInfo != "" {
		plaintext := c.decryptField("personalInfo", record.PersonalInfo)

		var structured any
		if err := json.Unmarshal([]byte(plaintext), &structured); err != nil {
			c.logger.Warn().Str("field", "personalInfo").Msg("stored personal info is not valid JSON, returning raw value")
			decrypted.PersonalInfo = plaintext
		} else {
			decrypted.PersonalInfo = structured
		}
	}

	return decrypted
}

// decryptField returns the decrypted value, or the stored value unchanged
// when decryption fails.
func (c *fieldCodec) decryptField(field, stored string) string {
	plaintext, err := c.cipher.Decrypt(stored)
	if err != nil {
		c.logger.Warn().Err(err).Str("field", field).Msg("field decryption failed, returning stored value")
		return stored
	}
	return plaintext
}
