// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-store/models"
)

// scanPrefixBytes bounds how much of the buffer is inspected. Threat markers
// in these fixtures sit at the start of the file, and the bound keeps the
// scan O(1) in file size.
const scanPrefixBytes = 1000

// scanDelay imitates the latency of a real scanning engine so that callers
// are exercised against a non-instant scan step.
const scanDelay = 10 * time.Millisecond

var threatSignatures = []string{"virus", "malware", "trojan", "worm", "backdoor"}

// signatureScanner is a placeholder [Scanner] that matches a fixed signature
// list against the start of the buffer. It is a stand-in for a real engine,
// not a security boundary.
type signatureScanner struct {
	delay time.Duration
}

// NewSignatureScanner constructs the fixed-signature [Scanner].
func NewSignatureScanner() Scanner {
	return &signatureScanner{delay: scanDelay}
}

func (s *signatureScanner) Scan(ctx context.Context, buffer []byte) models.ScanResult {
	started := time.Now()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	prefix := buffer
	if len(prefix) > scanPrefixBytes {
		prefix = prefix[:scanPrefixBytes]
	}

	// string conversion keeps invalid UTF-8 bytes as-is, which is fine:
	// signatures are plain ASCII and matching stays best-effort.
	content := strings.ToLower(string(prefix))

	var threats []string
	for _, signature := range threatSignatures {
		if strings.Contains(content, signature) {
			threats = append(threats, signature)
		}
	}

	return models.ScanResult{
		IsClean:  len(threats) == 0,
		Threats:  threats,
		ScanTime: time.Since(started),
	}
}
