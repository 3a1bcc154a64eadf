package djkit

import (
	"errors"
	"testing"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef") // 32 bytes
}

func TestAES_KeySizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		if _, err := AES(make([]byte, size)); err != nil {
			t.Errorf("AES with %d-byte key failed: %v", size, err)
		}
	}
	for _, size := range []int{0, 15, 33} {
		if _, err := AES(make([]byte, size)); !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("AES with %d-byte key should yield ErrInvalidKeySize", size)
		}
	}
}

func TestAES_RoundTrip(t *testing.T) {
	enc, err := AES(testKey())
	if err != nil {
		t.Fatalf("AES failed: %v", err)
	}

	ciphertext, err := enc.Encrypt([]byte("sensitive data"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plaintext, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if string(plaintext) != "sensitive data" {
		t.Errorf("round trip = %q", plaintext)
	}
}

func TestAES_RejectsTampering(t *testing.T) {
	enc, err := AES(testKey())
	if err != nil {
		t.Fatalf("AES failed: %v", err)
	}

	ciphertext, err := enc.Encrypt([]byte("sensitive data"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	ciphertext[len(ciphertext)-1] ^= 0xff

	if _, err := enc.Decrypt(ciphertext); err == nil {
		t.Error("tampered ciphertext should not decrypt")
	}
}

func TestAES_ShortCiphertext(t *testing.T) {
	enc, err := AES(testKey())
	if err != nil {
		t.Fatalf("AES failed: %v", err)
	}
	if _, err := enc.Decrypt([]byte("tiny")); !errors.Is(err, ErrCiphertextShort) {
		t.Errorf("Decrypt(short) = %v, want ErrCiphertextShort", err)
	}
}

func TestEncryptedField(t *testing.T) {
	enc, err := AES(testKey())
	if err != nil {
		t.Fatalf("AES failed: %v", err)
	}
	f, err := NewEncryptedField(enc)
	if err != nil {
		t.Fatalf("NewEncryptedField failed: %v", err)
	}

	stored, err := f.Store("api-token-123")
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if stored == "api-token-123" {
		t.Error("stored form should not be the plaintext")
	}

	loaded, err := f.Load(stored)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != "api-token-123" {
		t.Errorf("Load = %q", loaded)
	}

	if _, err := f.Load("not base64!!!"); err == nil {
		t.Error("Load should reject invalid base64")
	}
}

func TestNewEncryptedField_NilEncryptor(t *testing.T) {
	if _, err := NewEncryptedField(nil); err == nil {
		t.Error("nil encryptor should be rejected")
	}
}
