package voicerelay

import (
	"errors"
	"fmt"

	"github.com/voicerelay/client-go/internal/api"
	"github.com/voicerelay/client-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks. The crypto sentinels are shared
// with the envelope core, so checks work on errors from any layer.
var (
	// ErrKeyFormat is returned when PEM text cannot be parsed into a key.
	ErrKeyFormat = crypto.ErrKeyFormat

	// ErrKeyAlgorithmMismatch is returned when PEM text parses into a key
	// of the wrong algorithm family.
	ErrKeyAlgorithmMismatch = crypto.ErrKeyAlgorithmMismatch

	// ErrPayloadTooLarge is returned when a key-wrap payload exceeds the
	// OAEP capacity of the recipient's modulus.
	ErrPayloadTooLarge = crypto.ErrPayloadTooLarge

	// ErrUnwrap is returned when the wrapped symmetric key cannot be
	// recovered. It is deliberately opaque.
	ErrUnwrap = crypto.ErrUnwrap

	// ErrAuthentication is returned when envelope integrity verification fails.
	ErrAuthentication = crypto.ErrAuthentication

	// ErrMalformedInput is returned when a cryptographic input has an
	// impossible length.
	ErrMalformedInput = crypto.ErrMalformedInput

	// ErrEnvelopeTooShort is returned when an envelope cannot contain even
	// the fixed-length fields.
	ErrEnvelopeTooShort = crypto.ErrEnvelopeTooShort

	// ErrEncoding is returned when transport text is not valid base64.
	ErrEncoding = crypto.ErrEncoding

	// ErrMissingToken is returned when no auth token is provided.
	ErrMissingToken = api.ErrMissingToken

	// ErrUnauthorized is returned when the relay rejects the auth token.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrUserNotFound is returned when the relay has no key for the user.
	ErrUserNotFound = api.ErrUserNotFound

	// ErrBlobRejected is returned when the relay refuses an envelope.
	ErrBlobRejected = api.ErrBlobRejected

	// ErrRateLimited is returned when the relay rate limit is exceeded.
	ErrRateLimited = api.ErrRateLimited
)

// VoiceRelayError is implemented by all typed SDK errors.
type VoiceRelayError interface {
	error
	VoiceRelayError() // marker method
}

// APIError represents an HTTP error from the relay.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("relay error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("relay error %d", e.StatusCode)
}

// VoiceRelayError implements the VoiceRelayError interface.
func (e *APIError) VoiceRelayError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return (&api.APIError{StatusCode: e.StatusCode, Message: e.Message}).Is(target)
}

// NetworkError represents a network-level failure talking to the relay.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// VoiceRelayError implements the VoiceRelayError interface.
func (e *NetworkError) VoiceRelayError() {}

// IsCannotDecrypt reports whether err is any decryption-path failure:
// unwrap, authentication, malformed input, or a too-short envelope. When
// reporting to untrusted parties, callers should collapse all of these into
// one opaque "cannot decrypt" outcome rather than echoing the distinction,
// which would hand an attacker a padding/integrity oracle. The underlying
// errors stay distinguishable for internal diagnostics.
func IsCannotDecrypt(err error) bool {
	return errors.Is(err, ErrUnwrap) ||
		errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrEnvelopeTooShort)
}

// wrapError converts internal API errors to public error types so that
// errors.Is and errors.As work against this package's exports.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL, Attempt: netErr.Attempt}
	}

	return err
}
