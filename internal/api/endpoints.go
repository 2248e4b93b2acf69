package api

import "context"

// Health checks relay liveness.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.do(ctx, "GET", "/health", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPublicKey fetches the recipient's public key PEM for the authenticated
// user.
func (c *Client) GetPublicKey(ctx context.Context) (*PublicKeyResponse, error) {
	var result PublicKeyResponse
	if err := c.do(ctx, "POST", "/auth/get-public-key", struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterPublicKey publishes the authenticated user's public key PEM so
// agents can seal envelopes for it.
func (c *Client) RegisterPublicKey(ctx context.Context, publicKeyPEM string) error {
	req := RegisterKeyRequest{AppPublicKey: publicKeyPEM}
	return c.do(ctx, "POST", "/auth/register-public-key", req, nil)
}

// Ask submits a sealed envelope for delivery to the authenticated user's app.
func (c *Client) Ask(ctx context.Context, encryptedBlob string) (*AskResponse, error) {
	req := AskRequest{
		EncryptedBlob:     encryptedBlob,
		EncryptedBlobSize: len(encryptedBlob),
	}
	var result AskResponse
	if err := c.do(ctx, "POST", "/agent/ask", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Messages fetches the pending envelopes for the authenticated user. The
// relay marks returned messages as delivered.
func (c *Client) Messages(ctx context.Context) ([]Message, error) {
	var result MessagesResponse
	if err := c.do(ctx, "GET", "/messages", nil, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}
