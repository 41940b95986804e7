// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-secure-store/models"
)

// SecretsRepository persists encrypted secret records. Values cross this
// boundary already encrypted; the repository never sees plaintext.
type SecretsRepository interface {
	Save(ctx context.Context, record models.EncryptedRecord) error
	Get(ctx context.Context, id string) (models.EncryptedRecord, error)
}

// ObjectStorage is the external object-store collaborator for uploaded
// files. Upload returns the public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, name string, body []byte, contentType string) (string, error)
	Download(ctx context.Context, bucket, name string) ([]byte, error)
	Delete(ctx context.Context, bucket, name string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
