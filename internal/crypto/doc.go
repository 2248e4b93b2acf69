// Package crypto implements the VOICE Relay hybrid encryption envelope.
//
// # Scheme
//
// A sealed envelope combines two layers of protection:
//
//   - AES-256-GCM: authenticated encryption of the payload under a one-time
//     32-byte symmetric key with a fresh 12-byte nonce and empty associated
//     data. Provides confidentiality and integrity.
//
//   - RSA-2048-OAEP (SHA-256 hash and MGF1): encryption of the one-time
//     symmetric key under the recipient's public key, so only the holder of
//     the private key can recover it.
//
// The two outputs are packed into a single self-describing blob:
//
//	wrapped_key (256 bytes) || nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// The field order and fixed lengths are the wire contract: there is no length
// header, and both ends slice by the same constant offsets. [ToBase64] and
// [FromBase64] render the blob as the single text value that relays store
// and forward without inspection.
//
// # Security Notes
//
// Tag verification happens before any plaintext is released; tampering with
// any byte of an envelope makes [Open] fail. [UnwrapKey] reports every
// failure as the same opaque error so that OAEP padding oracles get no
// signal. Symmetric keys and nonces are single-use: both are generated fresh
// inside [Seal], which makes (key, nonce) reuse structurally impossible.
//
// Keys are portable across implementations: public keys travel as
// SubjectPublicKeyInfo PEM, private keys as unencrypted PKCS#8 PEM.
package crypto
