// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

const secretRecordsTable = "secret_records"

// queryBuilder produces PostgreSQL-style $N placeholders.
var queryBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// secretsRepository is the PostgreSQL-backed implementation of
// [SecretsRepository]. Field values arrive as cipher envelopes and are stored
// verbatim in text columns.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type secretsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecretsRepository constructs a [SecretsRepository] backed by the
// provided database connection and logger.
func NewSecretsRepository(db *DB, logger *logger.Logger) SecretsRepository {
	logger.Debug().Msg("creating secrets repository")
	return &secretsRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists one encrypted record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRecordAlreadyExists].
//   - Transient driver errors (connection loss, deadlock) → one retry.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Zero affected rows → [ErrRecordNotSaved].
func (r *secretsRepository) Save(ctx context.Context, record models.EncryptedRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := queryBuilder.
		Insert(secretRecordsTable).
		Columns("id", "email", "phone", "personal_info", "created_at", "updated_at").
		Values(record.ID, record.Email, record.Phone, record.PersonalInfo, record.CreatedAt, record.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretsRepository.Save").Msg("error: building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*secretsRepository.Save").Msg("transient DB error, retrying insert")
		result, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*secretsRepository.Save").Msg("error: executing insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrRecordAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*secretsRepository.Save").Msg("error: reading affected rows")
		return err
	}
	if affected == 0 {
		return ErrRecordNotSaved
	}

	return nil
}

// Get retrieves one encrypted record by its ID.
//
// Error handling:
//   - No matching row → [ErrRecordNotFound].
//   - Transient driver errors (connection loss, deadlock) → one retry.
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *secretsRepository) Get(ctx context.Context, id string) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := queryBuilder.
		Select("id", "email", "phone", "personal_info", "created_at", "updated_at").
		From(secretRecordsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretsRepository.Get").Msg("error: building select query")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.EncryptedRecord
	row := r.db.QueryRowContext(ctx, query, args...)

	err = row.Scan(&record.ID, &record.Email, &record.Phone, &record.PersonalInfo, &record.CreatedAt, &record.UpdatedAt)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*secretsRepository.Get").Msg("transient DB error, retrying select")
		row = r.db.QueryRowContext(ctx, query, args...)
		err = row.Scan(&record.ID, &record.Email, &record.Phone, &record.PersonalInfo, &record.CreatedAt, &record.UpdatedAt)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedRecord{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*secretsRepository.Get").Msg("error: scanning record row")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}
