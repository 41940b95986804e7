// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
)

type secretsService struct {
	codec             FieldCodec
	secretsRepository store.SecretsRepository
	idGenerator       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewSecretsService constructs a [SecretsService] persisting encrypted
// records through secretsRepository.
func NewSecretsService(codec FieldCodec, secretsRepository store.SecretsRepository, logger *logger.Logger) SecretsService {
	return &secretsService{
		codec:             codec,
		secretsRepository: secretsRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (s *secretsService) CreateSecret(ctx context.Context, record models.SecretRecord) (models.SecretRecord, error) {
	if record.Email == "" && record.Phone == "" && record.PersonalInfo == nil {
		return models.SecretRecord{}, ErrValidationNoFieldsProvided
	}

	now := time.Now().UTC()
	record.ID = s.idGenerator.Generate()
	record.CreatedAt = now
	record.UpdatedAt = now

	encrypted, err := s.codec.EncryptFields(ctx, record)
	if err != nil {
		return models.SecretRecord{}, err
	}

	if err := s.secretsRepository.Save(ctx, encrypted); err != nil {
		return models.SecretRecord{}, err
	}

	s.logger.Debug().Str("recordID", record.ID).Msg("secret record created")

	return record, nil
}

func (s *secretsService) GetSecret(ctx context.Context, id string) (models.SecretRecord, error) {
	if id == "" {
		return models.SecretRecord{}, ErrValidationNoRecordID
	}

	encrypted, err := s.secretsRepository.Get(ctx, id)
	if err != nil {
		return models.SecretRecord{}, err
	}

	return s.codec.DecryptFields(ctx, encrypted), nil
}
