// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
)

const (
	// ivSize is the GCM nonce length used by the envelope format.
	ivSize = 16

	// tagSize is the GCM authentication tag length.
	tagSize = 16

	// envelopeSegments is the number of colon-separated parts of an envelope.
	envelopeSegments = 3

	// defaultTokenLength is the number of random bytes used by
	// GenerateToken when the caller passes a non-positive length.
	defaultTokenLength = 32
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	key []byte
	gcm cipher.AEAD
}

// NewCipherService constructs a [CipherService] around the given 32-byte
// AES-256 key. The AEAD is built once; subsequent calls only consume random
// IVs. Returns ErrInvalidKey if the key is not exactly 32 bytes.
func NewCipherService(key []byte) (CipherService, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	// 16-byte nonces instead of the GCM default of 12: the envelope wire
	// format fixes the IV segment at exactly 16 bytes.
	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, err
	}

	return &cipherService{key: key, gcm: gcm}, nil
}

// Encrypt implements [CipherService]. The returned envelope is
// "ivHex:tagHex:ciphertextHex"; two calls with the same plaintext produce
// different envelopes because the IV is drawn fresh from the OS CSPRNG.
func (c *cipherService) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrInvalidInput
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	// Seal appends the auth tag to the ciphertext; split it back out so the
	// envelope carries the tag as its own segment.
	sealed := c.gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [CipherService]. It requires exactly three colon
// segments with a 16-byte IV and a 16-byte tag, then opens the ciphertext
// with tag verification as part of the GCM step.
func (c *cipherService) Decrypt(envelope string) (string, error) {
	parts := strings.Split(envelope, ":")
	if len(parts) != envelopeSegments {
		return "", ErrInvalidFormat
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return "", ErrInvalidFormat
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return "", ErrInvalidFormat
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidFormat
	}

	// gcm.Open expects ciphertext || tag. Its error is deliberately not
	// wrapped: tampering and corruption must read identically to callers.
	plaintext, err := c.gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// Hash implements [CipherService]. SHA-256 over text followed by the key,
// hex-encoded. The key suffix keeps the fingerprint unforgeable without it.
func (c *cipherService) Hash(text string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write(c.key)
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateToken implements [CipherService].
func (c *cipherService) GenerateToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = defaultTokenLength
	}

	token := make([]byte, byteLength)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return "", err
	}

	return hex.EncodeToString(token), nil
}
