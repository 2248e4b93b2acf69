package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
)

// randReader is the random source used for key, nonce, and padding generation.
// It defaults to nil (which selects crypto/rand) but can be overridden for testing.
var randReader io.Reader

func rng() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// KeyPair holds an RSA private key and its derived public key. The private
// half is used only to unwrap symmetric keys; the public half only to wrap
// them. Keys are immutable after creation.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// GenerateKeyPair creates a new 2048-bit RSA key pair with public exponent
// 65537. Failure means the entropy source is unusable and is not retried.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rng(), RSAKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return &KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}

// EncodePublicKeyPEM renders a public key as a SubjectPublicKeyInfo PEM block.
func EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}

// EncodePrivateKeyPEM renders a private key as an unencrypted PKCS#8 PEM block.
// There is no passphrase protection at this layer; callers that persist the
// result should use the keystore's protected format instead.
func EncodePrivateKeyPEM(priv *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", fmt.Errorf("marshal private key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), nil
}

// ParsePublicKeyPEM parses PEM text into an RSA public key. It accepts both
// SubjectPublicKeyInfo and PKCS#1 blocks.
func ParsePublicKeyPEM(pemText string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	switch block.Type {
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrKeyAlgorithmMismatch, key)
		}
		return pub, nil
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrKeyFormat, block.Type)
	}
}

// ParsePrivateKeyPEM parses PEM text into an RSA private key. It accepts both
// unencrypted PKCS#8 and PKCS#1 blocks.
func ParsePrivateKeyPEM(pemText string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}

	switch block.Type {
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrKeyAlgorithmMismatch, key)
		}
		return priv, nil
	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		return priv, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrKeyFormat, block.Type)
	}
}

// KeyPairFromPrivatePEM reconstructs a full key pair from private-key PEM text.
func KeyPairFromPrivatePEM(pemText string) (*KeyPair, error) {
	priv, err := ParsePrivateKeyPEM(pemText)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}
