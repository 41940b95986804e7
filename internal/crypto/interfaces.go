// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the authenticated-encryption core of
// go-secure-store: AES-256-GCM envelope encryption of text values, a keyed
// one-way fingerprint, and secure random token generation.
//
// Every encrypted value is a self-describing envelope string
//
//	<iv hex> : <auth tag hex> : <ciphertext hex>
//
// where the IV and the authentication tag are each exactly 16 bytes. A fresh
// random IV is drawn per call; IV reuse under GCM with the same key breaks
// authentication, so envelopes are never deterministic.
//
// The process key is fixed for the process lifetime. Key rotation is
// unsupported: the envelope format carries no key-version byte, so values
// encrypted under an old key cannot be told apart from values encrypted
// under the current one.
package crypto

// CipherService is the process-wide authenticated cipher. Implementations
// are safe for concurrent use; the key is read-only after construction.
type CipherService interface {
	// Encrypt encrypts plaintext under the process key with a fresh random
	// IV and returns the envelope string. Empty plaintext is rejected with
	// ErrInvalidInput.
	Encrypt(plaintext string) (string, error)

	// Decrypt parses an envelope string, verifies the authentication tag,
	// and returns the original plaintext. Structural problems (wrong
	// segment count, mis-sized IV or tag, bad hex) yield ErrInvalidFormat;
	// an authentication failure yields ErrDecryptionFailed. Both carry the
	// same generic message so callers cannot build a tampering oracle.
	Decrypt(envelope string) (string, error)

	// Hash returns the hex SHA-256 digest of text concatenated with the
	// process key: a deterministic keyed fingerprint, not reversible.
	Hash(text string) string

	// GenerateToken returns byteLength cryptographically secure random
	// bytes hex-encoded (output length 2*byteLength). Non-positive
	// byteLength falls back to 32.
	GenerateToken(byteLength int) (string, error)
}
