package crypto

import "errors"

var (
	// ErrKeyFormat is returned when PEM text cannot be parsed into a key.
	ErrKeyFormat = errors.New("malformed key")

	// ErrKeyAlgorithmMismatch is returned when PEM text parses into a key
	// that is not an RSA key.
	ErrKeyAlgorithmMismatch = errors.New("key is not an RSA key")

	// ErrPayloadTooLarge is returned when a payload exceeds the maximum
	// OAEP-encodable size for the recipient's modulus.
	ErrPayloadTooLarge = errors.New("payload too large for key wrap")

	// ErrUnwrap is returned on any key unwrap failure. It deliberately
	// carries no detail: OAEP error oracles are an attack surface.
	ErrUnwrap = errors.New("key unwrap failed")

	// ErrAuthentication is returned when GCM tag verification fails.
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedInput is returned when a key, nonce, or tag has a length
	// inconsistent with the algorithm's fixed sizes.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEnvelopeTooShort is returned when an envelope is shorter than the
	// fixed overhead of wrapped key, nonce, and tag.
	ErrEnvelopeTooShort = errors.New("envelope too short")

	// ErrEncoding is returned when transport text is not valid base64.
	ErrEncoding = errors.New("invalid base64 encoding")
)
