package api

// PublicKeyResponse is the POST /auth/get-public-key response.
type PublicKeyResponse struct {
	AppPublicKey string `json:"app_public_key"`
}

// RegisterKeyRequest is the POST /auth/register-public-key request.
type RegisterKeyRequest struct {
	AppPublicKey string `json:"app_public_key"`
}

// AskRequest is the POST /agent/ask request. EncryptedBlob carries the
// base64 envelope text, which the relay stores without inspection.
type AskRequest struct {
	EncryptedBlob     string `json:"encrypted_blob"`
	EncryptedBlobSize int    `json:"encrypted_blob_size_bytes,omitempty"`
}

// AskResponse is the POST /agent/ask response.
type AskResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}

// Message is one stored relay message as returned by GET /messages.
type Message struct {
	MessageID     string `json:"message_id"`
	UserID        string `json:"user_id"`
	EncryptedBlob string `json:"encrypted_blob"`
	CreatedAt     string `json:"created_at"`
	Status        string `json:"status"`
}

// MessagesResponse is the GET /messages response.
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// HealthResponse is the GET /health response.
type HealthResponse struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	MessagesQueued int    `json:"messages_queued"`
}
