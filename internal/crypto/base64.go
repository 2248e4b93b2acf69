package crypto

import (
	"encoding/base64"
	"fmt"
)

// ToBase64 encodes envelope bytes as standard base64 with padding (RFC 4648
// §4). This is the transport encoding the relay stores and forwards verbatim.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64 back into envelope bytes.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return data, nil
}
