package utils

import "testing"

func TestSHA256Hex_DeterministicAndSized(t *testing.T) {
	h1 := SHA256Hex("Mozilla/5.0")
	h2 := SHA256Hex("Mozilla/5.0")

	if h1 != h2 {
		t.Fatalf("expected deterministic digest, got %q vs %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("digest length = %d, want 64", len(h1))
	}
}

func TestSHA256Hex_DistinctInputs(t *testing.T) {
	if SHA256Hex("agent-a") == SHA256Hex("agent-b") {
		t.Fatal("expected different digests for different inputs")
	}
}
