// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/models"
)

// encryptedObjectPrefix marks object names whose stored body is a cipher
// envelope rather than the raw file bytes.
const encryptedObjectPrefix = "encrypted-"

// encryptedContentType is forced on encrypted objects: the stored body is
// the envelope string, not the original media.
const encryptedContentType = "application/octet-stream"

type uploadService struct {
	guard         FileGuard
	scanner       Scanner
	cipher        crypto.CipherService
	objectStorage store.ObjectStorage

	logger *logger.Logger
}

// NewUploadService constructs the [FileService] pipeline. The scanner is
// injected so the fixed-signature placeholder can be swapped for a real
// engine.
func NewUploadService(guard FileGuard, scanner Scanner, cipher crypto.CipherService, objectStorage store.ObjectStorage, logger *logger.Logger) FileService {
	return &uploadService{
		guard:         guard,
		scanner:       scanner,
		cipher:        cipher,
		objectStorage: objectStorage,
		logger:        logger,
	}
}

// Upload is strictly sequential: validate, scan, encrypt, store. No step
// starts before the previous one succeeds, and the first failure is
// terminal.
func (u *uploadService) Upload(ctx context.Context, file models.UploadedFile, opts models.UploadOptions, isAdmin bool) (models.UploadOutcome, error) {
	if opts.AdminOnly && !isAdmin {
		return models.UploadOutcome{
			Error: "Admin privileges are required for this bucket",
		}, ErrAdminRequired
	}

	validation := u.guard.ValidateFile(file, opts)
	if !validation.IsValid {
		return models.UploadOutcome{Error: validation.Error}, nil
	}

	var scanResult *models.ScanResult
	if opts.VirusScan {
		result := u.scanner.Scan(ctx, file.Data)
		scanResult = &result

		if !result.IsClean {
			u.logger.Warn().
				Str("bucket", opts.Bucket).
				Strs("threats", result.Threats).
				Msg("upload rejected by content scan")

			return models.UploadOutcome{
				Error:      fmt.Sprintf("File %s failed virus scan: %s", validation.SanitizedName, strings.Join(result.Threats, ", ")),
				ScanResult: scanResult,
			}, nil
		}
	}

	secureName, err := u.guard.GenerateSecureFileName(file.Name, opts.Bucket)
	if err != nil {
		return models.UploadOutcome{
			Error:      "Upload failed: " + err.Error(),
			ScanResult: scanResult,
		}, err
	}

	storedName := secureName
	body := file.Data
	contentType := file.Type
	encryptedName := ""

	if opts.EncryptFile {
		envelope, encryptErr := u.cipher.Encrypt(base64.StdEncoding.EncodeToString(file.Data))
		if encryptErr != nil {
			return models.UploadOutcome{
				Error:      "Upload failed: " + encryptErr.Error(),
				ScanResult: scanResult,
			}, encryptErr
		}

		encryptedName = encryptedObjectPrefix + secureName
		storedName = encryptedName
		body = []byte(envelope)
		contentType = encryptedContentType
	}

	url, err := u.objectStorage.Upload(ctx, opts.Bucket, storedName, body, contentType)
	if err != nil {
		return models.UploadOutcome{
			Error:      "Upload failed: " + err.Error(),
			ScanResult: scanResult,
		}, err
	}

	u.logger.Debug().
		Str("bucket", opts.Bucket).
		Str("object", storedName).
		Bool("encrypted", opts.EncryptFile).
		Msg("file stored")

	return models.UploadOutcome{
		Success:           true,
		URL:               url,
		FileName:          secureName,
		EncryptedFileName: encryptedName,
		Size:              file.Size,
		Type:              file.Type,
		ScanResult:        scanResult,
	}, nil
}

func (u *uploadService) Download(ctx context.Context, bucket, name string, encrypted bool) ([]byte, error) {
	body, err := u.objectStorage.Download(ctx, bucket, name)
	if err != nil {
		return nil, err
	}

	if !encrypted {
		return body, nil
	}

	plaintext, err := u.cipher.Decrypt(string(body))
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(plaintext)
	if err != nil {
		return nil, fmt.Errorf("error during stored object decoding: %w", err)
	}

	return raw, nil
}

func (u *uploadService) Delete(ctx context.Context, bucket, name string) error {
	return u.objectStorage.Delete(ctx, bucket, name)
}
