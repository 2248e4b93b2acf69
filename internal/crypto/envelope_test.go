package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	kp := testKeyPair(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty", ""},
		{"hello world", "hello world"},
		{"unicode", "salut, 世界, ça va?"},
		{"work order json", `{"topic":"Phase 0 Spike","prompt":"hello world"}`},
		{"long", string(make([]byte, 64*1024))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := Seal([]byte(tt.plaintext), kp.Public)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			wantLen := EnvelopeOverhead + len(tt.plaintext)
			if len(envelope) != wantLen {
				t.Errorf("envelope length = %d, want %d", len(envelope), wantLen)
			}

			plaintext, err := Open(envelope, kp.Private)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if string(plaintext) != tt.plaintext {
				t.Errorf("Open() = %q, want %q", plaintext, tt.plaintext)
			}
		})
	}
}

func TestSeal_HelloWorldLayout(t *testing.T) {
	kp := testKeyPair(t)

	envelope, err := Seal([]byte("hello world"), kp.Public)
	if err != nil {
		t.Fatal(err)
	}

	// 256-byte wrapped key + 12-byte nonce + 11-byte ciphertext + 16-byte tag.
	if len(envelope) != 295 {
		t.Errorf("envelope length = %d, want 295", len(envelope))
	}
}

func TestSeal_KeyIndependence(t *testing.T) {
	kp := testKeyPair(t)
	plaintext := []byte("same plaintext, two envelopes")

	env1, err := Seal(plaintext, kp.Public)
	if err != nil {
		t.Fatal(err)
	}
	env2, err := Seal(plaintext, kp.Public)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(env1, env2) {
		t.Error("two seals produced identical envelopes")
	}

	for i, env := range [][]byte{env1, env2} {
		got, err := Open(env, kp.Private)
		if err != nil {
			t.Fatalf("Open(envelope %d) error = %v", i+1, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("Open(envelope %d) = %q, want %q", i+1, got, plaintext)
		}
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	kp := testKeyPair(t)

	envelope, err := Seal([]byte("tamper with me"), kp.Public)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		offset int
	}{
		{"wrapped key", 0},
		{"wrapped key last byte", WrapSize - 1},
		{"nonce", WrapSize},
		{"ciphertext", WrapSize + AESNonceSize},
		{"tag", len(envelope) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := append([]byte{}, envelope...)
			tampered[tt.offset] ^= 0x01

			plaintext, err := Open(tampered, kp.Private)
			if err == nil {
				t.Fatal("Open() accepted a tampered envelope")
			}
			if !errors.Is(err, ErrUnwrap) && !errors.Is(err, ErrAuthentication) {
				t.Errorf("Open() error = %v, want ErrUnwrap or ErrAuthentication", err)
			}
			if plaintext != nil {
				t.Error("plaintext released from tampered envelope")
			}
		})
	}
}

func TestOpen_WrongKey(t *testing.T) {
	kp := testKeyPair(t)

	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	envelope, err := Seal([]byte("for someone else"), kp.Public)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Open(envelope, other.Private); !errors.Is(err, ErrUnwrap) {
		t.Errorf("Open() with wrong key error = %v, want %v", err, ErrUnwrap)
	}
}

func TestOpen_EnvelopeTooShort(t *testing.T) {
	kp := testKeyPair(t)

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"one byte", 1},
		{"wrap only", WrapSize},
		{"one short of floor", EnvelopeOverhead - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(make([]byte, tt.size), kp.Private)
			if !errors.Is(err, ErrEnvelopeTooShort) {
				t.Errorf("Open() error = %v, want %v", err, ErrEnvelopeTooShort)
			}
		})
	}

	// Exactly the floor is a valid layout (empty ciphertext); it must get
	// past the length check and fail later, on the unwrap.
	_, err := Open(make([]byte, EnvelopeOverhead), kp.Private)
	if !errors.Is(err, ErrUnwrap) {
		t.Errorf("Open(floor-sized envelope) error = %v, want %v", err, ErrUnwrap)
	}
}
