// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/models"
)

const (
	maxFileNameLength = 100
	maxStemLength     = 90

	fallbackFileName  = "file"
	fallbackExtension = "bin"
)

type fileGuard struct {
	cipher crypto.CipherService

	// now is injectable for tests.
	now func() time.Time
}

// NewFileGuard constructs a [FileGuard]. The cipher supplies the random
// component of generated storage names.
func NewFileGuard(cipher crypto.CipherService) FileGuard {
	return &fileGuard{
		cipher: cipher,
		now:    time.Now,
	}
}

func (g *fileGuard) ValidateFile(file models.UploadedFile, opts models.UploadOptions) models.FileValidationResult {
	if file.Size <= 0 || len(file.Data) == 0 {
		return models.FileValidationResult{Error: "File is empty"}
	}

	if file.Size > opts.MaxSize {
		return models.FileValidationResult{
			Error: fmt.Sprintf("File size exceeds limit of %dMB", opts.MaxSize/(1<<20)),
		}
	}

	if !slices.Contains(opts.AllowedTypes, file.Type) {
		return models.FileValidationResult{
			Error: fmt.Sprintf("File type %s is not allowed", file.Type),
		}
	}

	return models.FileValidationResult{
		IsValid:       true,
		SanitizedName: g.SanitizeFileName(file.Name),
	}
}

func (g *fileGuard) SanitizeFileName(name string) string {
	var builder strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
		default:
			builder.WriteRune(r)
		}
	}

	cleaned := stripTraversal(builder.String())
	cleaned = strings.TrimLeft(cleaned, ".")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return fallbackFileName
	}

	if runes := []rune(cleaned); len(runes) > maxFileNameLength {
		extension := filepath.Ext(cleaned)
		stem := []rune(strings.TrimSuffix(cleaned, extension))
		if len(stem) > maxStemLength {
			stem = stem[:maxStemLength]
		}
		cleaned = string(stem) + extension

		if runes = []rune(cleaned); len(runes) > maxFileNameLength {
			cleaned = string(runes[:maxFileNameLength])
		}

		// the cut boundary can rejoin dots into a traversal pair
		cleaned = stripTraversal(cleaned)
		cleaned = strings.TrimLeft(cleaned, ".")
		if cleaned == "" {
			return fallbackFileName
		}
	}

	return cleaned
}

func (g *fileGuard) GenerateSecureFileName(originalName, prefix string) (string, error) {
	sanitized := g.SanitizeFileName(originalName)

	extension := strings.TrimPrefix(filepath.Ext(sanitized), ".")
	if extension == "" {
		extension = fallbackExtension
	}

	stem := strings.TrimSuffix(sanitized, filepath.Ext(sanitized))
	if stem == "" {
		stem = fallbackFileName
	}

	random, err := g.cipher.GenerateToken(8)
	if err != nil {
		return "", fmt.Errorf("error during secure file name generation: %w", err)
	}

	return fmt.Sprintf("%s-%s-%d-%s.%s", prefix, stem, g.now().UnixMilli(), random, extension), nil
}

// stripTraversal removes every ".." substring, repeating until none remain so
// that removals cannot splice a new pair together ("...." would otherwise
// survive one pass as "..").
func stripTraversal(name string) string {
	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", "")
	}
	return name
}
