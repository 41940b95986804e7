// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-secure-store/internal/logger"

type Storages struct {
	SecretsRepository SecretsRepository
	ObjectStorage     ObjectStorage
}

func NewStorages(db *DB, objectStorage ObjectStorage, logger *logger.Logger) Storages {
	return Storages{
		SecretsRepository: NewSecretsRepository(db, logger),
		ObjectStorage:     objectStorage,
	}
}
