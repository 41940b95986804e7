package service

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) crypto.CipherService {
	t.Helper()
	cipher, err := crypto.NewCipherService(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return cipher
}

func newTestGuard(t *testing.T) FileGuard {
	t.Helper()
	return NewFileGuard(newTestCipher(t))
}

func pngUpload(name string, size int64) models.UploadedFile {
	return models.UploadedFile{
		Name: name,
		Size: size,
		Type: "image/png",
		Data: bytes.Repeat([]byte{0xAB}, int(size)),
	}
}

func TestFileGuard_ValidateFile_Success(t *testing.T) {
	guard := newTestGuard(t)
	opts := models.OptionsForBucket(models.BucketAvatars)

	result := guard.ValidateFile(pngUpload("cat photo.png", 1024), opts)

	require.True(t, result.IsValid)
	assert.Empty(t, result.Error)
	assert.Equal(t, "cat photo.png", result.SanitizedName)
}

func TestFileGuard_ValidateFile_EmptyFile(t *testing.T) {
	guard := newTestGuard(t)
	opts := models.OptionsForBucket(models.BucketAvatars)

	result := guard.ValidateFile(models.UploadedFile{Name: "cat.png", Type: "image/png"}, opts)

	assert.False(t, result.IsValid)
	assert.Equal(t, "File is empty", result.Error)
}

func TestFileGuard_ValidateFile_TooLarge(t *testing.T) {
	guard := newTestGuard(t)
	opts := models.UploadOptions{
		Bucket:       "avatars",
		MaxSize:      5 << 20,
		AllowedTypes: []string{"image/png"},
	}

	file := models.UploadedFile{Name: "big.png", Size: 6 << 20, Type: "image/png", Data: []byte{1}}
	result := guard.ValidateFile(file, opts)

	assert.False(t, result.IsValid)
	assert.Equal(t, "File size exceeds limit of 5MB", result.Error)
}

func TestFileGuard_ValidateFile_DisallowedType(t *testing.T) {
	guard := newTestGuard(t)
	opts := models.OptionsForBucket(models.BucketAvatars)

	file := models.UploadedFile{Name: "payload.exe", Size: 10, Type: "application/x-msdownload", Data: []byte("MZ")}
	result := guard.ValidateFile(file, opts)

	assert.False(t, result.IsValid)
	assert.Equal(t, "File type application/x-msdownload is not allowed", result.Error)
}

func TestFileGuard_SanitizeFileName(t *testing.T) {
	guard := newTestGuard(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name untouched", "report.pdf", "report.pdf"},
		{"path traversal stripped", "../../../etc/passwd", "etcpasswd"},
		{"leading dots stripped", "....hidden.jpg", "hidden.jpg"},
		{"empty becomes fallback", "", "file"},
		{"dots only becomes fallback", "....", "file"},
		{"dangerous characters removed", `a/b\c:d*e?f"g<h>i|j.png`, "abcdefghij.png"},
		{"interleaved traversal collapsed", ".^..^.", "^^."},
		{"whitespace trimmed", "  photo.png  ", "photo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.SanitizeFileName(tt.input))
		})
	}
}

func TestFileGuard_SanitizeFileName_LongNames(t *testing.T) {
	guard := newTestGuard(t)

	t.Run("truncated preserving extension", func(t *testing.T) {
		got := guard.SanitizeFileName(strings.Repeat("a", 150) + ".jpeg")

		assert.LessOrEqual(t, len(got), 100)
		assert.True(t, strings.HasSuffix(got, ".jpeg"), "extension must survive truncation, got %q", got)
		assert.Equal(t, strings.Repeat("a", 90)+".jpeg", got)
	})

	t.Run("no traversal resurrected at the cut boundary", func(t *testing.T) {
		// the stem is built so its 90-char cut ends in a dot, which would
		// pair with the reattached extension into ".."
		stem := strings.Repeat("a", 89) + "." + strings.Repeat("b", 30)
		got := guard.SanitizeFileName(stem + ".png")

		assert.NotContains(t, got, "..")
		assert.LessOrEqual(t, len(got), 100)
		assert.NotEmpty(t, got)
	})

	t.Run("long name without extension", func(t *testing.T) {
		got := guard.SanitizeFileName(strings.Repeat("x", 150))

		assert.Equal(t, strings.Repeat("x", 90), got)
	})
}

func TestFileGuard_SanitizeFileName_NeverUnsafe(t *testing.T) {
	guard := newTestGuard(t)

	inputs := []string{
		"../../../etc/passwd",
		"....hidden.jpg",
		"",
		strings.Repeat("a", 150),
		strings.Repeat("..", 80) + ".png",
		`..\..\windows\system32`,
	}

	for _, input := range inputs {
		got := guard.SanitizeFileName(input)

		assert.NotContains(t, got, "..", "input %q", input)
		assert.NotContains(t, got, "/", "input %q", input)
		assert.NotContains(t, got, `\`, "input %q", input)
		assert.NotEmpty(t, got, "input %q", input)
		assert.LessOrEqual(t, len([]rune(got)), 100, "input %q", input)
	}
}

func TestFileGuard_GenerateSecureFileName(t *testing.T) {
	guard := newTestGuard(t)

	name, err := guard.GenerateSecureFileName("My Photo.PNG", "avatars")
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^avatars-My Photo-\d{13}-[0-9a-f]{16}\.PNG$`)
	assert.Regexp(t, pattern, name)
}

func TestFileGuard_GenerateSecureFileName_NoExtension(t *testing.T) {
	guard := newTestGuard(t)

	name, err := guard.GenerateSecureFileName("README", "secure-files")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "secure-files-README-"))
	assert.True(t, strings.HasSuffix(name, ".bin"))
}

func TestFileGuard_GenerateSecureFileName_Unique(t *testing.T) {
	guard := newTestGuard(t)

	first, err := guard.GenerateSecureFileName("cat.png", "avatars")
	require.NoError(t, err)
	second, err := guard.GenerateSecureFileName("cat.png", "avatars")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileGuard_GenerateSecureFileName_UsesMillisecondTimestamp(t *testing.T) {
	cipher := newTestCipher(t)
	guard := NewFileGuard(cipher).(*fileGuard)

	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	guard.now = func() time.Time { return fixed }

	name, err := guard.GenerateSecureFileName("cat.png", "avatars")
	require.NoError(t, err)

	assert.Contains(t, name, "-1773489600000-")
}
