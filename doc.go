// Package voicerelay seals and opens hybrid-encrypted envelopes and moves
// them through a relay.
//
// # Scheme
//
// Each envelope protects one payload with a fresh one-time AES-256 key.
// The payload is encrypted with AES-256-GCM, the one-time key is wrapped
// with the recipient's 2048-bit RSA key using OAEP and SHA-256, and the
// parts are concatenated into one self-describing blob:
//
//	wrapped key (256 bytes) || nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// Envelopes travel as standard padded base64 text, so they fit anywhere a
// string does. Seal and Open work on that text; SealBytes and OpenBytes
// work on the raw binary layout.
//
// # Usage
//
//	key, err := voicerelay.GenerateKeyPair()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sealed, err := voicerelay.Seal("hello world", key.Public())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plaintext, err := voicerelay.Open(sealed, key)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Relay
//
// Client submits sealed envelopes to a relay and fetches pending ones.
// The relay stores blobs verbatim and never sees a key or a plaintext.
//
// # Security Notes
//
// Decryption failures are deliberately coarse. A wrong key, a truncated
// envelope, and a tampered ciphertext all surface as errors that
// IsCannotDecrypt reports true for; callers talking to untrusted parties
// should report only that single outcome.
package voicerelay
