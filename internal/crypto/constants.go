package crypto

const (
	// RSAKeyBits is the modulus size of generated RSA keys.
	RSAKeyBits = 2048
	// WrapSize is the size of an RSA-OAEP wrapped key for a 2048-bit
	// modulus in bytes. Both ends of the wire format slice by this length,
	// so it changes only together with RSAKeyBits.
	WrapSize = RSAKeyBits / 8

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// EnvelopeOverhead is the fixed per-envelope overhead: wrapped key plus
	// nonce plus tag. An envelope shorter than this cannot be valid.
	EnvelopeOverhead = WrapSize + AESNonceSize + AESTagSize
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "RSA-2048-OAEP-SHA-256:AES-256-GCM"
