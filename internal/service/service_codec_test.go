package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) FieldCodec {
	t.Helper()
	return NewFieldCodec(newTestCipher(t), logger.Nop())
}

func TestFieldCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	record := models.SecretRecord{
		ID:    "record-1",
		Email: "player@example.com",
		Phone: "+7 900 123-45-67",
		PersonalInfo: map[string]any{
			"firstName": "Ivan",
			"country":   "RU",
			"verified":  true,
		},
	}

	encrypted, err := codec.EncryptFields(ctx, record)
	require.NoError(t, err)

	// stored values are envelopes, not plaintext
	assert.NotEqual(t, record.Email, encrypted.Email)
	assert.NotEqual(t, record.Phone, encrypted.Phone)
	assert.Len(t, strings.Split(encrypted.Email, ":"), 3, "email must be a three-segment envelope")
	assert.NotContains(t, encrypted.PersonalInfo, "Ivan")

	decrypted := codec.DecryptFields(ctx, encrypted)

	assert.Equal(t, record.Email, decrypted.Email)
	assert.Equal(t, record.Phone, decrypted.Phone)
	assert.Equal(t, map[string]any{
		"firstName": "Ivan",
		"country":   "RU",
		"verified":  true,
	}, decrypted.PersonalInfo)
}

func TestFieldCodec_AbsentFieldsStayAbsent(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	encrypted, err := codec.EncryptFields(ctx, models.SecretRecord{ID: "r", Email: "only@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, encrypted.Email)
	assert.Empty(t, encrypted.Phone)
	assert.Empty(t, encrypted.PersonalInfo)

	decrypted := codec.DecryptFields(ctx, encrypted)

	assert.Equal(t, "only@example.com", decrypted.Email)
	assert.Empty(t, decrypted.Phone)
	assert.Nil(t, decrypted.PersonalInfo)
}

func TestFieldCodec_DecryptFields_KeepsUndecryptableValue(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	// a record written before encryption was introduced: plain values in
	// encrypted columns
	legacy := models.EncryptedRecord{
		ID:    "legacy-1",
		Email: "legacy@example.com",
		Phone: "+1 555 0100",
	}

	decrypted := codec.DecryptFields(ctx, legacy)

	assert.Equal(t, "legacy@example.com", decrypted.Email)
	assert.Equal(t, "+1 555 0100", decrypted.Phone)
}

func TestFieldCodec_DecryptFields_MixedState(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	encrypted, err := codec.EncryptFields(ctx, models.SecretRecord{ID: "m", Email: "new@example.com"})
	require.NoError(t, err)

	// phone was stored by an older deployment without encryption
	encrypted.Phone = "raw-phone-value"

	decrypted := codec.DecryptFields(ctx, encrypted)

	assert.Equal(t, "new@example.com", decrypted.Email, "decryptable field must decrypt")
	assert.Equal(t, "raw-phone-value", decrypted.Phone, "undecryptable field must pass through unchanged")
}

func TestFieldCodec_DecryptFields_TamperedEnvelopeFallsBack(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	encrypted, err := codec.EncryptFields(ctx, models.SecretRecord{ID: "t", Email: "target@example.com"})
	require.NoError(t, err)

	tampered := encrypted
	if tampered.Email[len(tampered.Email)-1] == '0' {
		tampered.Email = tampered.Email[:len(tampered.Email)-1] + "1"
	} else {
		tampered.Email = tampered.Email[:len(tampered.Email)-1] + "0"
	}

	decrypted := codec.DecryptFields(ctx, tampered)

	assert.Equal(t, tampered.Email, decrypted.Email, "tampered envelope must come back as stored, not as plaintext")
	assert.NotEqual(t, "target@example.com", decrypted.Email)
}

func TestFieldCodec_PersonalInfoNonJSONFallback(t *testing.T) {
	codec := newTestCodec(t)
	cipher := newTestCipher(t)
	ctx := context.Background()

	// an envelope whose plaintext is not JSON
	envelope, err := cipher.Encrypt("free form note, not json")
	require.NoError(t, err)

	decrypted := codec.DecryptFields(ctx, models.EncryptedRecord{ID: "n", PersonalInfo: envelope})

	assert.Equal(t, "free form note, not json", decrypted.PersonalInfo)
}

func TestFieldCodec_PersonalInfoCanonicalSerialization(t *testing.T) {
	cipher := newTestCipher(t)
	codec := NewFieldCodec(cipher, logger.Nop())
	ctx := context.Background()

	record := models.SecretRecord{
		ID:           "c",
		PersonalInfo: map[string]any{"b": 2.0, "a": 1.0},
	}

	encrypted, err := codec.EncryptFields(ctx, record)
	require.NoError(t, err)

	plaintext, err := cipher.Decrypt(encrypted.PersonalInfo)
	require.NoError(t, err)

	assert.Equal(t, `{"a":1,"b":2}`, plaintext, "object keys must serialize in sorted order")
}
