package voicerelay

import (
	"encoding/json"
	"fmt"
)

// ReplyInstructions tells the recipient where and how to deliver its
// answer, and which key to seal the answer with.
type ReplyInstructions struct {
	DestinationURL     string `json:"destination_url"`
	HTTPMethod         string `json:"http_method"`
	ReplyEncryptionKey string `json:"reply_encryption_key"`
}

// WorkOrder is a structured request carried inside an envelope: a topic, a
// prompt for the recipient, and optional instructions for sending back an
// encrypted reply.
type WorkOrder struct {
	Topic             string             `json:"topic"`
	Prompt            string             `json:"prompt"`
	ReplyInstructions *ReplyInstructions `json:"reply_instructions,omitempty"`
}

// NewWorkOrder builds a work order with a fresh ephemeral reply keypair.
// The public half travels inside the order so the recipient can seal its
// answer; the returned KeyPair opens that answer and should be discarded
// afterwards. replyURL receives the sealed reply via POST.
func NewWorkOrder(topic, prompt, replyURL string) (*WorkOrder, *KeyPair, error) {
	replyKey, err := GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("generating reply keypair: %w", err)
	}
	replyPEM, err := replyKey.PublicPEM()
	if err != nil {
		return nil, nil, fmt.Errorf("encoding reply key: %w", err)
	}

	order := &WorkOrder{
		Topic:  topic,
		Prompt: prompt,
		ReplyInstructions: &ReplyInstructions{
			DestinationURL:     replyURL,
			HTTPMethod:         "POST",
			ReplyEncryptionKey: replyPEM,
		},
	}
	return order, replyKey, nil
}

// ReplyKey parses the reply encryption key embedded in the order. It
// returns ErrKeyFormat when the order carries no reply instructions.
func (w *WorkOrder) ReplyKey() (*PublicKey, error) {
	if w.ReplyInstructions == nil || w.ReplyInstructions.ReplyEncryptionKey == "" {
		return nil, fmt.Errorf("%w: work order has no reply key", ErrKeyFormat)
	}
	return ImportPublicKey(w.ReplyInstructions.ReplyEncryptionKey)
}

// SealWorkOrder serializes the order to JSON and seals it for recipient,
// returning base64 envelope text.
func SealWorkOrder(order *WorkOrder, recipient *PublicKey) (string, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("encoding work order: %w", err)
	}
	return Seal(string(payload), recipient)
}

// OpenWorkOrder opens base64 envelope text and decodes the plaintext as a
// work order.
func OpenWorkOrder(envelopeText string, key *KeyPair) (*WorkOrder, error) {
	plaintext, err := Open(envelopeText, key)
	if err != nil {
		return nil, err
	}
	var order WorkOrder
	if err := json.Unmarshal([]byte(plaintext), &order); err != nil {
		return nil, fmt.Errorf("decoding work order: %w", err)
	}
	return &order, nil
}
