// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the AWS S3 client used by [s3Storage]. Narrowing to
// an interface keeps the storage testable without a live object store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Storage is the S3-compatible implementation of [ObjectStorage]. It works
// against AWS S3 or MinIO via a configurable base endpoint with path-style
// addressing.
type s3Storage struct {
	client        s3API
	publicBaseURL string
	logger        *logger.Logger
}

// NewS3Storage builds an [ObjectStorage] from static credentials and a base
// endpoint.
func NewS3Storage(ctx context.Context, cfg appconfig.S3, log *logger.Logger) (ObjectStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3Storage").Msg("error loading object storage configuration")
		return nil, fmt.Errorf("error loading object storage configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.Endpoint
	}

	log.Info().Str("func", "NewS3Storage").Msg("object storage client initialized")

	return &s3Storage{
		client:        client,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, bucket, name string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading object %s/%s: %w", bucket, name, err)
	}

	return s.objectURL(bucket, name), nil
}

func (s *s3Storage) Download(ctx context.Context, bucket, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading object %s/%s: %w", bucket, name, err)
	}
	defer func() { _ = out.Body.Close() }()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading object %s/%s body: %w", bucket, name, err)
	}

	return body, nil
}

func (s *s3Storage) Delete(ctx context.Context, bucket, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("error deleting object %s/%s: %w", bucket, name, err)
	}

	return nil
}

func (s *s3Storage) objectURL(bucket, name string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, name)
}
