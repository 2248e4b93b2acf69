package voicerelay

import (
	"github.com/voicerelay/client-go/internal/crypto"
)

// EnvelopeOverhead is the fixed size added to the plaintext by SealBytes:
// the wrapped key, the nonce, and the authentication tag.
const EnvelopeOverhead = crypto.EnvelopeOverhead

// Seal encrypts plaintext for recipient and returns the envelope as
// standard base64 text, ready for transport in JSON or HTTP bodies.
//
// Each call generates a fresh one-time AES-256 key and a fresh GCM nonce,
// so sealing the same plaintext twice produces unrelated envelopes.
func Seal(plaintext string, recipient *PublicKey) (string, error) {
	envelope, err := SealBytes([]byte(plaintext), recipient)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64(envelope), nil
}

// Open decodes base64 envelope text and decrypts it with the keypair's
// private half, returning the plaintext as a string.
//
// Failures on the decryption path are deliberately coarse; see
// IsCannotDecrypt for how callers should surface them.
func Open(envelopeText string, key *KeyPair) (string, error) {
	envelope, err := crypto.FromBase64(envelopeText)
	if err != nil {
		return "", err
	}
	plaintext, err := OpenBytes(envelope, key)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// SealBytes encrypts plaintext for recipient and returns the raw binary
// envelope: wrapped key, nonce, ciphertext, and tag concatenated.
func SealBytes(plaintext []byte, recipient *PublicKey) ([]byte, error) {
	return crypto.Seal(plaintext, recipient.key)
}

// OpenBytes decrypts a raw binary envelope with the keypair's private half.
func OpenBytes(envelope []byte, key *KeyPair) ([]byte, error) {
	return crypto.Open(envelope, key.kp.Private)
}
