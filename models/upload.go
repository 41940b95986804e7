package models

import "time"

// UploadedFile is the in-memory representation of a candidate file received
// from a multipart form. Data holds the full file contents; the pipeline
// never touches the filesystem.
type UploadedFile struct {
	Name string
	Size int64
	Type string
	Data []byte
}

// UploadOptions configures validation and post-processing for a single
// upload. Options are resolved per bucket via [OptionsForBucket] and may be
// tightened by the caller (e.g. forcing VirusScan on).
type UploadOptions struct {
	// Bucket is the logical object-storage bucket name.
	Bucket string `json:"bucket"`

	// MaxSize is the upper size limit in bytes. Files strictly larger are
	// rejected.
	MaxSize int64 `json:"maxSize"`

	// AllowedTypes is the set of acceptable MIME types.
	AllowedTypes []string `json:"allowedTypes"`

	// EncryptFile requests encryption-at-rest of the object body.
	EncryptFile bool `json:"encryptFile"`

	// VirusScan requests a content scan before the file is stored.
	VirusScan bool `json:"virusScan"`

	// AdminOnly restricts the operation to authenticated administrators.
	AdminOnly bool `json:"adminOnly"`
}

// FileValidationResult is the outcome of checking a candidate file against
// its upload options. When IsValid is true, SanitizedName is non-empty,
// contains no path separators or ".." sequences, and is at most 100
// characters long.
type FileValidationResult struct {
	IsValid       bool   `json:"isValid"`
	Error         string `json:"error,omitempty"`
	SanitizedName string `json:"sanitizedName,omitempty"`
}

// ScanResult is the outcome of a content scan. It is a pure function of the
// input buffer except for ScanTime, which reflects elapsed wall time.
type ScanResult struct {
	IsClean  bool          `json:"isClean"`
	Threats  []string      `json:"threats,omitempty"`
	ScanTime time.Duration `json:"scanTime"`
}

// UploadOutcome is the terminal result of one pass through the upload
// pipeline. EncryptedFileName is set only when encryption was requested and
// both validation and scanning succeeded.
type UploadOutcome struct {
	Success           bool        `json:"success"`
	URL               string      `json:"url,omitempty"`
	FileName          string      `json:"fileName,omitempty"`
	EncryptedFileName string      `json:"encryptedFileName,omitempty"`
	Size              int64       `json:"size,omitempty"`
	Type              string      `json:"type,omitempty"`
	Error             string      `json:"error,omitempty"`
	ScanResult        *ScanResult `json:"scanResult,omitempty"`
}

// Well-known bucket names with dedicated upload policies.
const (
	BucketAvatars     = "avatars"
	BucketCasinoLogos = "casino-logos"
	BucketPostImages  = "post-images"
	BucketNewsImages  = "news-images"
	BucketSecureFiles = "secure-files"
)

const megabyte = 1 << 20

var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// bucketDefaults maps each known bucket to its upload policy. Unknown
// buckets fall back to a conservative image-only default.
var bucketDefaults = map[string]UploadOptions{
	BucketAvatars: {
		Bucket:       BucketAvatars,
		MaxSize:      2 * megabyte,
		AllowedTypes: imageTypes,
		VirusScan:    true,
	},
	BucketCasinoLogos: {
		Bucket:       BucketCasinoLogos,
		MaxSize:      5 * megabyte,
		AllowedTypes: append([]string{"image/svg+xml"}, imageTypes...),
		VirusScan:    true,
		AdminOnly:    true,
	},
	BucketPostImages: {
		Bucket:       BucketPostImages,
		MaxSize:      10 * megabyte,
		AllowedTypes: imageTypes,
		VirusScan:    true,
	},
	BucketNewsImages: {
		Bucket:       BucketNewsImages,
		MaxSize:      10 * megabyte,
		AllowedTypes: imageTypes,
		VirusScan:    true,
		AdminOnly:    true,
	},
	BucketSecureFiles: {
		Bucket:       BucketSecureFiles,
		MaxSize:      50 * megabyte,
		AllowedTypes: append([]string{"application/pdf", "application/zip", "application/octet-stream"}, imageTypes...),
		EncryptFile:  true,
		VirusScan:    true,
		AdminOnly:    true,
	},
}

// OptionsForBucket returns the upload policy for the given bucket name.
// Unknown buckets get a generic 5MB image-only policy so that a typo in the
// bucket field can never widen the allowed surface.
func OptionsForBucket(bucket string) UploadOptions {
	if opts, ok := bucketDefaults[bucket]; ok {
		return opts
	}

	return UploadOptions{
		Bucket:       bucket,
		MaxSize:      5 * megabyte,
		AllowedTypes: imageTypes,
		VirusScan:    true,
	}
}
