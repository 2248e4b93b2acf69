package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// GenerateSymmetricKey returns a fresh random AES-256 key. Every envelope
// gets its own key; keys are never reused across envelopes.
func GenerateSymmetricKey() ([]byte, error) {
	key := make([]byte, AESKeySize)
	if _, err := io.ReadFull(rng(), key); err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}
	return key, nil
}

// EncryptAESGCM encrypts plaintext with AES-256-GCM under a fresh random
// 12-byte nonce and empty associated data. The ciphertext has the same length
// as the plaintext; the 16-byte tag is returned separately.
func EncryptAESGCM(key, plaintext []byte) (nonce, ciphertext, tag []byte, err error) {
	if len(key) != AESKeySize {
		return nil, nil, nil, fmt.Errorf("%w: key length %d, want %d", ErrMalformedInput, len(key), AESKeySize)
	}

	nonce = make([]byte, AESNonceSize)
	if _, err := io.ReadFull(rng(), nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	ciphertext = sealed[:len(sealed)-AESTagSize]
	tag = sealed[len(sealed)-AESTagSize:]
	return nonce, ciphertext, tag, nil
}

// DecryptAESGCM decrypts an AES-256-GCM ciphertext. Length checks run before
// any cryptographic work; tag verification happens before a single plaintext
// byte is released. All GCM failures collapse into ErrAuthentication.
func DecryptAESGCM(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrMalformedInput, len(key), AESKeySize)
	}
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: nonce length %d, want %d", ErrMalformedInput, len(nonce), AESNonceSize)
	}
	if len(tag) != AESTagSize {
		return nil, fmt.Errorf("%w: tag length %d, want %d", ErrMalformedInput, len(tag), AESTagSize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return aead, nil
}
