// Package keystore persists voicerelay keypairs on disk.
//
// Keys are stored as PKCS#8 PEM with 0600 permissions. SaveProtected
// additionally encrypts the PEM under a passphrase: an Argon2id-derived key
// seals the file with XChaCha20-Poly1305, so a leaked file is useless
// without the passphrase.
package keystore

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	voicerelay "github.com/voicerelay/client-go"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrPassphraseRequired is returned when Load encounters a protected
	// file.
	ErrPassphraseRequired = errors.New("keystore: file is passphrase protected")

	// ErrWrongPassphrase is returned when a protected file cannot be
	// opened with the given passphrase.
	ErrWrongPassphrase = errors.New("keystore: wrong passphrase")

	// ErrCorrupt is returned when a protected file does not have the
	// expected layout.
	ErrCorrupt = errors.New("keystore: file is corrupt")
)

// magic identifies a passphrase-protected keystore file. Plain files start
// with a PEM header instead.
var magic = []byte("VRKEYSTORE\x01")

const saltSize = 16

// Argon2id parameters, per the x/crypto recommendations.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// Save writes the keypair's private key to path as unencrypted PEM with
// 0600 permissions.
func Save(path string, key *voicerelay.KeyPair) error {
	pemText, err := key.PrivatePEM()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(pemText), 0o600)
}

// SaveProtected writes the keypair to path sealed under passphrase.
func SaveProtected(path string, key *voicerelay.KeyPair, passphrase []byte) error {
	if len(passphrase) == 0 {
		return fmt.Errorf("keystore: empty passphrase")
	}

	pemText, err := key.PrivatePEM()
	if err != nil {
		return err
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("keystore: generating salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return fmt.Errorf("keystore: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("keystore: generating nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(pemText), nil)

	var buf bytes.Buffer
	buf.Write(magic)
	buf.Write(salt)
	buf.Write(nonce)
	buf.Write(sealed)
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

// Load reads an unencrypted keypair from path. It returns
// ErrPassphraseRequired for protected files.
func Load(path string) (*voicerelay.KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, magic) {
		return nil, ErrPassphraseRequired
	}
	return voicerelay.ImportKeyPair(string(data))
}

// LoadProtected reads a passphrase-protected keypair from path.
func LoadProtected(path string, passphrase []byte) (*voicerelay.KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, magic) {
		// Fall back for callers that pass a passphrase unconditionally.
		return voicerelay.ImportKeyPair(string(data))
	}

	body := data[len(magic):]
	if len(body) < saltSize+chacha20poly1305.NonceSizeX {
		return nil, ErrCorrupt
	}
	salt := body[:saltSize]
	nonce := body[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	sealed := body[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("keystore: %w", err)
	}

	pemText, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return voicerelay.ImportKeyPair(string(pemText))
}

func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}
