// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAdminRequired = errors.New("admin privileges required")

	ErrValidationNoFieldsProvided = errors.New("no secret fields provided")
	ErrValidationNoRecordID       = errors.New("no record ID provided")
)
