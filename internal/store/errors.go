// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordAlreadyExists is returned when an INSERT of a secret record
	// collides with an existing primary key.
	ErrRecordAlreadyExists = errors.New("secret record already exists")

	// ErrRecordNotFound is returned when a query targets a secret record
	// that does not exist in the database.
	ErrRecordNotFound = errors.New("secret record was not found")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrRecordNotSaved = errors.New("secret record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan secret record row")
)
