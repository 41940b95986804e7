// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-secure-store/models"
)

// SecretsService encrypts, persists, and recovers structured secret records.
type SecretsService interface {
	// CreateSecret encrypts the record's sensitive fields and persists the
	// result under a freshly assigned ID, which is returned on the record.
	CreateSecret(ctx context.Context, record models.SecretRecord) (models.SecretRecord, error)

	// GetSecret loads a persisted record and decrypts its fields. Fields
	// that fail to decrypt are returned as stored (see FieldCodec).
	GetSecret(ctx context.Context, id string) (models.SecretRecord, error)
}

// FileService is the secure upload pipeline: validate, scan, optionally
// encrypt, store. Download and Delete mirror the stored representation.
type FileService interface {
	// Upload runs one file through the pipeline. Business rejections
	// (validation, scan) are reported inside the outcome with a nil error;
	// a non-nil error means an internal or storage failure and the outcome
	// still carries the user-facing message.
	Upload(ctx context.Context, file models.UploadedFile, opts models.UploadOptions, isAdmin bool) (models.UploadOutcome, error)

	// Download fetches an object's bytes. When encrypted is true the stored
	// envelope is decrypted and decoded back to the original bytes.
	Download(ctx context.Context, bucket, name string, encrypted bool) ([]byte, error)

	// Delete removes an object. No cryptographic step is involved.
	Delete(ctx context.Context, bucket, name string) error
}

// FieldCodec converts between plaintext and encrypted representations of a
// secret record, field by field.
type FieldCodec interface {
	// EncryptFields replaces each present sensitive field with its cipher
	// envelope. PersonalInfo is serialized to canonical JSON first.
	EncryptFields(ctx context.Context, record models.SecretRecord) (models.EncryptedRecord, error)

	// DecryptFields is the inverse. Per field, a decryption failure is
	// logged and the stored value is returned unchanged instead of aborting
	// the record: a backward-compatibility fallback for rows written before
	// encryption was introduced.
	DecryptFields(ctx context.Context, record models.EncryptedRecord) models.SecretRecord
}

// FileGuard validates candidate uploads and produces safe storage names.
type FileGuard interface {
	// ValidateFile checks size and MIME type against opts and sanitizes the
	// file name. Rejection reasons are human-readable and safe to expose.
	ValidateFile(file models.UploadedFile, opts models.UploadOptions) models.FileValidationResult

	// SanitizeFileName strips path separators, traversal sequences, and
	// leading dots, and bounds the result to 100 characters. Never returns
	// an empty string.
	SanitizeFileName(name string) string

	// GenerateSecureFileName builds a collision-resistant storage name of
	// the form "{prefix}-{stem}-{unixMillis}-{randomHex16}.{ext}".
	GenerateSecureFileName(originalName, prefix string) (string, error)
}

// Scanner inspects a file's content for threats. The shipped implementation
// matches fixed signatures; a real scanning engine can replace it without
// touching the upload pipeline.
type Scanner interface {
	Scan(ctx context.Context, buffer []byte) models.ScanResult
}
