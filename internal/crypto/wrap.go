package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
)

// WrapKey encrypts a one-time symmetric key with RSA-OAEP using SHA-256 for
// both the hash and the mask generation function, no label. The output length
// equals the recipient's modulus size (256 bytes for 2048-bit keys).
func WrapKey(symmetricKey []byte, recipient *rsa.PublicKey) ([]byte, error) {
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rng(), recipient, symmetricKey, nil)
	if err != nil {
		if errors.Is(err, rsa.ErrMessageTooLong) {
			return nil, fmt.Errorf("%w: %d bytes exceed OAEP capacity for a %d-bit modulus",
				ErrPayloadTooLarge, len(symmetricKey), recipient.Size()*8)
		}
		return nil, fmt.Errorf("wrap key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey decrypts an RSA-OAEP wrapped symmetric key. Any failure is
// reported as the opaque ErrUnwrap: the cause of an OAEP padding failure must
// never reach a caller, and the underlying rsa implementation is constant-time.
func UnwrapKey(wrapped []byte, key *rsa.PrivateKey) ([]byte, error) {
	symmetricKey, err := rsa.DecryptOAEP(sha256.New(), nil, key, wrapped, nil)
	if err != nil {
		return nil, ErrUnwrap
	}
	return symmetricKey, nil
}
