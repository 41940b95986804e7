package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/ratelimit"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-secure-store-test"
)

// secretsServiceMock implements service.SecretsService with overridable
// behavior per test.
type secretsServiceMock struct {
	createSecretFunc func(ctx context.Context, record models.SecretRecord) (models.SecretRecord, error)
	getSecretFunc    func(ctx context.Context, id string) (models.SecretRecord, error)
}

func (m *secretsServiceMock) CreateSecret(ctx context.Context, record models.SecretRecord) (models.SecretRecord, error) {
	return m.createSecretFunc(ctx, record)
}

func (m *secretsServiceMock) GetSecret(ctx context.Context, id string) (models.SecretRecord, error) {
	return m.getSecretFunc(ctx, id)
}

// fileServiceMock implements service.FileService with overridable behavior
// per test.
type fileServiceMock struct {
	uploadFunc   func(ctx context.Context, file models.UploadedFile, opts models.UploadOptions, isAdmin bool) (models.UploadOutcome, error)
	downloadFunc func(ctx context.Context, bucket, name string, encrypted bool) ([]byte, error)
	deleteFunc   func(ctx context.Context, bucket, name string) error
}

func (m *fileServiceMock) Upload(ctx context.Context, file models.UploadedFile, opts models.UploadOptions, isAdmin bool) (models.UploadOutcome, error) {
	return m.uploadFunc(ctx, file, opts, isAdmin)
}

func (m *fileServiceMock) Download(ctx context.Context, bucket, name string, encrypted bool) ([]byte, error) {
	return m.downloadFunc(ctx, bucket, name, encrypted)
}

func (m *fileServiceMock) Delete(ctx context.Context, bucket, name string) error {
	return m.deleteFunc(ctx, bucket, name)
}

func newTestHandler(services *service.Services) *Handler {
	log := logger.Nop()
	return &Handler{
		services:          services,
		cfg:               config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Hour},
		encryptionLimiter: ratelimit.NewLimiter(ratelimit.ProfileEncryption, ratelimit.NewMemoryStore(), log),
		debugLimiter:      ratelimit.NewLimiter(ratelimit.ProfileDebug, ratelimit.NewMemoryStore(), log),
		generalLimiter:    ratelimit.NewLimiter(ratelimit.ProfileGeneral, ratelimit.NewMemoryStore(), log),
		logger:            log,
	}
}

// bearerToken issues a signed test JWT, optionally with the admin claim.
func bearerToken(t *testing.T, admin bool) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, 42, admin, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}
