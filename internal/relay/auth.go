package relay

import (
	"errors"
	"strings"
)

// Bearer tokens use the format "github|<user_id>|<token>". Verifying the
// token against GitHub is the identity provider's job and out of scope here;
// the relay only extracts the user ID it routes by.
var (
	// ErrNoAuthHeader indicates a missing or non-Bearer Authorization header.
	ErrNoAuthHeader = errors.New("missing or invalid Authorization header")
	// ErrBadTokenFormat indicates a token that does not match the expected format.
	ErrBadTokenFormat = errors.New("invalid token format")
)

// UserFromAuthHeader extracts the user ID from an Authorization header value.
func UserFromAuthHeader(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrNoAuthHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if !strings.HasPrefix(token, "github|") {
		return "", ErrBadTokenFormat
	}

	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[1] == "" {
		return "", ErrBadTokenFormat
	}
	return parts[1], nil
}
