package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureScanner_FlagsKnownSignature(t *testing.T) {
	scanner := NewSignatureScanner()

	result := scanner.Scan(context.Background(), []byte("this buffer has malware detected inside"))

	assert.False(t, result.IsClean)
	assert.Contains(t, result.Threats, "malware")
	assert.Positive(t, result.ScanTime)
}

func TestSignatureScanner_CleanProse(t *testing.T) {
	scanner := NewSignatureScanner()

	result := scanner.Scan(context.Background(), []byte("an ordinary casino review mentioning bonuses and payouts"))

	assert.True(t, result.IsClean)
	assert.Empty(t, result.Threats)
}

func TestSignatureScanner_CaseInsensitive(t *testing.T) {
	scanner := NewSignatureScanner()

	result := scanner.Scan(context.Background(), []byte("WARNING: VIRUS payload"))

	assert.False(t, result.IsClean)
	assert.Contains(t, result.Threats, "virus")
}

func TestSignatureScanner_ReportsEveryMatch(t *testing.T) {
	scanner := NewSignatureScanner()

	result := scanner.Scan(context.Background(), []byte("trojan worm backdoor"))

	assert.False(t, result.IsClean)
	assert.ElementsMatch(t, []string{"trojan", "worm", "backdoor"}, result.Threats)
}

func TestSignatureScanner_OnlyInspectsPrefix(t *testing.T) {
	scanner := NewSignatureScanner()

	buffer := append(bytes.Repeat([]byte{'x'}, scanPrefixBytes), []byte("virus")...)
	result := scanner.Scan(context.Background(), buffer)

	assert.True(t, result.IsClean, "signature beyond the first %d bytes must be ignored", scanPrefixBytes)
}

func TestSignatureScanner_SignatureSplitAtPrefixBoundary(t *testing.T) {
	scanner := NewSignatureScanner()

	// "vi" inside the window, "rus" outside: must not match
	padding := strings.Repeat("x", scanPrefixBytes-2)
	result := scanner.Scan(context.Background(), []byte(padding+"virus"))

	assert.True(t, result.IsClean)
}

func TestSignatureScanner_ToleratesInvalidUTF8(t *testing.T) {
	scanner := NewSignatureScanner()

	buffer := append([]byte{0xFF, 0xFE, 0xFD}, []byte("worm")...)
	result := scanner.Scan(context.Background(), buffer)

	require.False(t, result.IsClean)
	assert.Contains(t, result.Threats, "worm")
}

func TestSignatureScanner_EmptyBuffer(t *testing.T) {
	scanner := NewSignatureScanner()

	result := scanner.Scan(context.Background(), nil)

	assert.True(t, result.IsClean)
}
