// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKey indicates malformed key material (wrong length or not
	// valid hex). Returned at construction time only.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrInvalidInput indicates an unusable plaintext (empty string).
	ErrInvalidInput = errors.New("invalid input for encryption")

	// ErrInvalidFormat indicates a structurally malformed envelope.
	// Its message matches ErrDecryptionFailed so that neither the logs'
	// error chain nor the user-facing message reveals which check failed.
	ErrInvalidFormat = errors.New("decryption operation failed")

	// ErrDecryptionFailed indicates a GCM authentication failure
	// (tampered or corrupted ciphertext). Same message as ErrInvalidFormat.
	ErrDecryptionFailed = errors.New("decryption operation failed")
)
