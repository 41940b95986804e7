package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func newTestCipher(t *testing.T) CipherService {
	t.Helper()

	key := bytes.Repeat([]byte{0x42}, KeySize)
	svc, err := NewCipherService(key)
	if err != nil {
		t.Fatalf("NewCipherService error: %v", err)
	}
	return svc
}

func TestNewCipherService_RejectsWrongKeyLength(t *testing.T) {
	if _, err := NewCipherService(bytes.Repeat([]byte{0x01}, 16)); err != ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey for 16-byte key, got %v", err)
	}
	if _, err := NewCipherService(nil); err != ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey for nil key, got %v", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newTestCipher(t)

	plaintexts := []string{
		"hello world",
		"пароль от сейфа",
		"日本語のテキストと漢字",
		"emoji 🎰🃏💰 and punctuation !@#$%^&*():;\"'<>",
		strings.Repeat("casino-review-payload-", 500), // >10KB
	}

	for _, plaintext := range plaintexts {
		envelope, err := svc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q...) error: %v", plaintext[:min(16, len(plaintext))], err)
		}

		decrypted, err := svc.Decrypt(envelope)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if decrypted != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
		}
	}
}

func TestEncrypt_EmptyPlaintextRejected(t *testing.T) {
	svc := newTestCipher(t)

	if _, err := svc.Encrypt(""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	svc := newTestCipher(t)

	e1, err := svc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	e2, err := svc.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if e1 == e2 {
		t.Fatalf("expected distinct envelopes for repeated plaintext")
	}

	for _, e := range []string{e1, e2} {
		got, err := svc.Decrypt(e)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != "same plaintext" {
			t.Fatalf("decrypt = %q, want %q", got, "same plaintext")
		}
	}
}

func TestEnvelope_Shape(t *testing.T) {
	svc := newTestCipher(t)

	envelope, err := svc.Encrypt("shape check")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 3 {
		t.Fatalf("segments = %d, want 3", len(parts))
	}
	if len(parts[0]) != 32 {
		t.Fatalf("iv hex length = %d, want 32", len(parts[0]))
	}
	if len(parts[1]) != 32 {
		t.Fatalf("tag hex length = %d, want 32", len(parts[1]))
	}
}

func TestDecrypt_TamperedTagDetected(t *testing.T) {
	svc := newTestCipher(t)

	envelope, err := svc.Encrypt("protect me")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	parts := strings.Split(envelope, ":")
	tag := []byte(parts[1])
	// Flip one hex character of the auth tag.
	if tag[0] == 'a' {
		tag[0] = 'b'
	} else {
		tag[0] = 'a'
	}
	tampered := parts[0] + ":" + string(tag) + ":" + parts[2]

	if _, err := svc.Decrypt(tampered); err != ErrDecryptionFailed {
		t.Fatalf("expected ErrDecryptionFailed for tampered tag, got %v", err)
	}
}

func TestDecrypt_RejectsMalformedEnvelopes(t *testing.T) {
	svc := newTestCipher(t)

	valid, err := svc.Encrypt("valid")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	parts := strings.Split(valid, ":")

	malformed := []string{
		"",                                       // 1 segment (empty)
		"deadbeef",                               // 1 segment
		parts[0] + ":" + parts[1],                // 2 segments
		valid + ":extra",                         // 4 segments
		"shortiv:" + parts[1] + ":" + parts[2],   // iv not 16 bytes
		parts[0] + ":shorttag:" + parts[2],       // tag not 16 bytes
		"zz" + parts[0][2:] + ":" + parts[1] + ":" + parts[2], // iv not hex
	}

	for _, envelope := range malformed {
		if _, err := svc.Decrypt(envelope); err != ErrInvalidFormat {
			t.Fatalf("Decrypt(%q): expected ErrInvalidFormat, got %v", envelope, err)
		}
	}
}

func TestDecrypt_ErrorMessagesDoNotDistinguishCauses(t *testing.T) {
	if ErrInvalidFormat.Error() != ErrDecryptionFailed.Error() {
		t.Fatalf("format and authentication failures must share one message, got %q vs %q",
			ErrInvalidFormat.Error(), ErrDecryptionFailed.Error())
	}
}

func TestHash_DeterministicAndDistinct(t *testing.T) {
	svc := newTestCipher(t)

	h1 := svc.Hash("password123")
	h2 := svc.Hash("password123")
	h3 := svc.Hash("password124")

	if h1 != h2 {
		t.Fatalf("expected deterministic hash, got %q vs %q", h1, h2)
	}
	if h1 == h3 {
		t.Fatalf("expected different hashes for different inputs")
	}
	if len(h1) != 64 {
		t.Fatalf("hash length = %d, want 64", len(h1))
	}
}

func TestHash_DependsOnKey(t *testing.T) {
	svc1 := newTestCipher(t)

	other, err := NewCipherService(bytes.Repeat([]byte{0x43}, KeySize))
	if err != nil {
		t.Fatalf("NewCipherService error: %v", err)
	}

	if svc1.Hash("same input") == other.Hash("same input") {
		t.Fatalf("expected key-dependent hashes to differ")
	}
}

func TestGenerateToken_LengthAndUniqueness(t *testing.T) {
	svc := newTestCipher(t)

	for _, n := range []int{8, 16, 32} {
		token, err := svc.GenerateToken(n)
		if err != nil {
			t.Fatalf("GenerateToken(%d) error: %v", n, err)
		}
		if len(token) != 2*n {
			t.Fatalf("token length = %d, want %d", len(token), 2*n)
		}
	}

	t1, err := svc.GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	t2, err := svc.GenerateToken(32)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected consecutive tokens to differ")
	}
}

func TestGenerateToken_DefaultLength(t *testing.T) {
	svc := newTestCipher(t)

	token, err := svc.GenerateToken(0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("default token length = %d, want 64", len(token))
	}
}
