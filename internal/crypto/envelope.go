package crypto

import (
	"crypto/rsa"
	"fmt"
)

// Seal encrypts plaintext for the recipient and returns the envelope bytes:
//
//	wrapped_key (256) || nonce (12) || ciphertext || tag (16)
//
// A fresh symmetric key and nonce are generated per call, so sealing the same
// plaintext twice never produces the same envelope. Either the complete
// envelope is returned or an error; there are no partial envelopes.
func Seal(plaintext []byte, recipient *rsa.PublicKey) ([]byte, error) {
	key, err := GenerateSymmetricKey()
	if err != nil {
		return nil, err
	}

	nonce, ciphertext, tag, err := EncryptAESGCM(key, plaintext)
	if err != nil {
		return nil, err
	}

	wrapped, err := WrapKey(key, recipient)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, 0, len(wrapped)+len(nonce)+len(ciphertext)+len(tag))
	envelope = append(envelope, wrapped...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)
	envelope = append(envelope, tag...)
	return envelope, nil
}

// Open parses an envelope by its fixed offsets and reverses Seal: the wrapped
// key is the modulus-sized prefix, the nonce the next 12 bytes, the tag the
// trailing 16 bytes, and everything in between the ciphertext. The length
// floor is enforced before any cryptographic operation.
func Open(envelope []byte, key *rsa.PrivateKey) ([]byte, error) {
	wrapLen := key.Size()
	minLen := wrapLen + AESNonceSize + AESTagSize
	if len(envelope) < minLen {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeTooShort, len(envelope), minLen)
	}

	wrapped := envelope[:wrapLen]
	nonce := envelope[wrapLen : wrapLen+AESNonceSize]
	ciphertext := envelope[wrapLen+AESNonceSize : len(envelope)-AESTagSize]
	tag := envelope[len(envelope)-AESTagSize:]

	symmetricKey, err := UnwrapKey(wrapped, key)
	if err != nil {
		return nil, err
	}

	return DecryptAESGCM(symmetricKey, nonce, ciphertext, tag)
}
