package voicerelay

import (
	"context"
	"fmt"
	"time"

	"github.com/voicerelay/client-go/internal/api"
)

// Client talks to a relay: it publishes keys, submits sealed envelopes, and
// fetches pending messages. All operations authenticate with the bearer
// token given to New.
type Client struct {
	api *api.Client
}

// New creates a relay client. The token identifies and authenticates the
// caller; the relay expects the form "github|<user_id>|<access_token>".
func New(token string, opts ...Option) (*Client, error) {
	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	apiClient, err := api.New(token, options.apiOpts...)
	if err != nil {
		return nil, wrapError(err)
	}
	if options.httpClient != nil {
		apiClient.SetHTTPClient(options.httpClient)
	}

	return &Client{api: apiClient}, nil
}

// Health checks that the relay is up. It returns nil when the relay
// answers healthy.
func (c *Client) Health(ctx context.Context) error {
	if _, err := c.api.Health(ctx); err != nil {
		return wrapError(err)
	}
	return nil
}

// RecipientKey fetches the registered public key for the authenticated
// user. It returns ErrUserNotFound when no key has been registered.
func (c *Client) RecipientKey(ctx context.Context) (*PublicKey, error) {
	resp, err := c.api.GetPublicKey(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	key, err := ImportPublicKey(resp.AppPublicKey)
	if err != nil {
		return nil, fmt.Errorf("relay returned unusable key: %w", err)
	}
	return key, nil
}

// RegisterKeyPair publishes the keypair's public half so senders can seal
// envelopes for the authenticated user.
func (c *Client) RegisterKeyPair(ctx context.Context, key *KeyPair) error {
	pemText, err := key.PublicPEM()
	if err != nil {
		return err
	}
	if err := c.api.RegisterPublicKey(ctx, pemText); err != nil {
		return wrapError(err)
	}
	return nil
}

// Send seals plaintext for recipient and submits the envelope to the
// relay, returning the relay-assigned message ID.
func (c *Client) Send(ctx context.Context, plaintext string, recipient *PublicKey) (string, error) {
	envelopeText, err := Seal(plaintext, recipient)
	if err != nil {
		return "", err
	}
	resp, err := c.api.Ask(ctx, envelopeText)
	if err != nil {
		return "", wrapError(err)
	}
	return resp.MessageID, nil
}

// SendWorkOrder fetches the recipient's registered key, seals the work
// order for it, and submits the envelope. It returns the relay-assigned
// message ID.
func (c *Client) SendWorkOrder(ctx context.Context, order *WorkOrder) (string, error) {
	recipient, err := c.RecipientKey(ctx)
	if err != nil {
		return "", err
	}
	envelopeText, err := SealWorkOrder(order, recipient)
	if err != nil {
		return "", err
	}
	resp, err := c.api.Ask(ctx, envelopeText)
	if err != nil {
		return "", wrapError(err)
	}
	return resp.MessageID, nil
}

// Message is one sealed envelope fetched from the relay.
type Message struct {
	ID            string
	EncryptedBlob string
	CreatedAt     time.Time
	Status        string
}

// Open decrypts the message's envelope with the keypair's private half.
func (m *Message) Open(key *KeyPair) (string, error) {
	return Open(m.EncryptedBlob, key)
}

// OpenWorkOrder decrypts the message and decodes the plaintext as a work
// order.
func (m *Message) OpenWorkOrder(key *KeyPair) (*WorkOrder, error) {
	return OpenWorkOrder(m.EncryptedBlob, key)
}

// FetchMessages retrieves the pending envelopes for the authenticated
// user. The relay marks returned messages as delivered, so each message is
// fetched at most once.
func (c *Client) FetchMessages(ctx context.Context) ([]Message, error) {
	raw, err := c.api.Messages(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	messages := make([]Message, 0, len(raw))
	for _, m := range raw {
		created, _ := time.Parse(time.RFC3339, m.CreatedAt)
		messages = append(messages, Message{
			ID:            m.MessageID,
			EncryptedBlob: m.EncryptedBlob,
			CreatedAt:     created,
			Status:        m.Status,
		})
	}
	return messages, nil
}
