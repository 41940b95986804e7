// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

// Argon2id parameters for passphrase-derived keys, following the OWASP
// (2024) recommendation: 1 iteration, 64 MiB memory, 4 threads.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// ParseKey decodes a 64-hex-character string into the 32-byte process key.
// Returns ErrInvalidKey on any length or encoding problem; the raw value is
// never included in the error.
func ParseKey(hexKey string) ([]byte, error) {
	if len(hexKey) != 2*KeySize {
		return nil, ErrInvalidKey
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	return key, nil
}

// DeriveKey derives the 32-byte process key from a passphrase and a
// hex-encoded salt using Argon2id. Intended for deployments that manage a
// memorable passphrase instead of raw key material; the result is
// deterministic for the same passphrase and salt.
func DeriveKey(passphrase, saltHex string) ([]byte, error) {
	if passphrase == "" || saltHex == "" {
		return nil, ErrInvalidKey
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return nil, ErrInvalidKey
	}

	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, KeySize), nil
}
