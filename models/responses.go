package models

// UploadSecurity summarises which protections were applied to a stored
// object. It is embedded in successful upload responses so clients can show
// an accurate security badge without a second request.
type UploadSecurity struct {
	Encrypted    bool `json:"encrypted"`
	VirusScanned bool `json:"virusScanned"`
	IsClean      bool `json:"isClean"`
}

// UploadResponse is the JSON body returned for a successful file upload.
type UploadResponse struct {
	Success           bool           `json:"success"`
	URL               string         `json:"url"`
	FileName          string         `json:"fileName"`
	EncryptedFileName string         `json:"encryptedFileName,omitempty"`
	Size              int64          `json:"size"`
	Type              string         `json:"type"`
	ScanResult        *ScanResult    `json:"scanResult,omitempty"`
	Security          UploadSecurity `json:"security"`
}

// ErrorResponse is the JSON body returned for rejected requests
// (validation failures, scan rejections, unexpected errors).
type ErrorResponse struct {
	Error      string      `json:"error"`
	ScanResult *ScanResult `json:"scanResult,omitempty"`
}

// RateLimitExceededResponse is the JSON body of an HTTP 429 reply.
type RateLimitExceededResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
	Limit      int    `json:"limit"`
	WindowMs   int64  `json:"windowMs"`
	Timestamp  string `json:"timestamp"`
}

// SecretCreatedResponse is returned after a secret record has been encrypted
// and persisted.
type SecretCreatedResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}
