// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
)

type Services struct {
	SecretsService SecretsService
	FileService    FileService
}

func NewServices(storages store.Storages, cipher crypto.CipherService, logger *logger.Logger) *Services {
	codec := NewFieldCodec(cipher, logger)
	guard := NewFileGuard(cipher)
	scanner := NewSignatureScanner()

	return &Services{
		SecretsService: NewSecretsService(codec, storages.SecretsRepository, logger),
		FileService:    NewUploadService(guard, scanner, cipher, storages.ObjectStorage, logger),
	}
}
