package voicerelay

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"

	"github.com/voicerelay/client-go/internal/crypto"
)

// PublicKey is a recipient identity: the RSA public half used to wrap
// one-time symmetric keys.
type PublicKey struct {
	key *rsa.PublicKey
}

// ImportPublicKey parses PEM text into a PublicKey.
func ImportPublicKey(pemText string) (*PublicKey, error) {
	key, err := crypto.ParsePublicKeyPEM(pemText)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// PEM returns the key encoded as a PEM "PUBLIC KEY" block.
func (p *PublicKey) PEM() (string, error) {
	return crypto.EncodePublicKeyPEM(p.key)
}

// Fingerprint returns a short hex digest of the key's DER encoding,
// suitable for logs and out-of-band comparison.
func (p *PublicKey) Fingerprint() string {
	der, err := x509.MarshalPKIXPublicKey(p.key)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:8])
}

// KeyPair is an RSA keypair used to receive sealed envelopes.
type KeyPair struct {
	kp *crypto.KeyPair
}

// GenerateKeyPair creates a fresh 2048-bit RSA keypair.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &KeyPair{kp: kp}, nil
}

// ImportKeyPair parses private-key PEM text (PKCS#8 or PKCS#1) into a
// KeyPair. The public half is derived from the private key.
func ImportKeyPair(pemText string) (*KeyPair, error) {
	kp, err := crypto.KeyPairFromPrivatePEM(pemText)
	if err != nil {
		return nil, err
	}
	return &KeyPair{kp: kp}, nil
}

// Public returns the keypair's public half.
func (k *KeyPair) Public() *PublicKey {
	return &PublicKey{key: k.kp.Public}
}

// PublicPEM returns the public half as a PEM "PUBLIC KEY" block.
func (k *KeyPair) PublicPEM() (string, error) {
	return k.Public().PEM()
}

// PrivatePEM returns the private key as an unencrypted PEM "PRIVATE KEY"
// (PKCS#8) block. Callers who need at-rest protection should use the
// keystore package instead of writing this to disk directly.
func (k *KeyPair) PrivatePEM() (string, error) {
	return crypto.EncodePrivateKeyPEM(k.kp.Private)
}
