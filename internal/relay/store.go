package relay

import (
	"sync"
	"time"
)

// MessageStatus tracks a stored message through its lifecycle.
type MessageStatus string

const (
	// StatusPending marks a message waiting for the app to fetch it.
	StatusPending MessageStatus = "pending"
	// StatusDelivered marks a message already handed to the app.
	StatusDelivered MessageStatus = "delivered"
)

// StoredMessage is one queued envelope. EncryptedBlob is opaque transport
// text; the relay stores and forwards it verbatim.
type StoredMessage struct {
	MessageID     string
	UserID        string
	EncryptedBlob string
	CreatedAt     time.Time
	Status        MessageStatus
}

type user struct {
	publicKeyPEM string
	createdAt    time.Time
	messageIDs   []string
}

// Store is the relay's in-memory user and message registry. All access goes
// through its methods under a single lock; values returned to callers are
// copies.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*user
	messages map[string]*StoredMessage
	queue    []string // message IDs in arrival order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]*user),
		messages: make(map[string]*StoredMessage),
	}
}

// RegisterKey stores or replaces the public key PEM for a user, creating the
// user on first sight.
func (s *Store) RegisterKey(userID, publicKeyPEM string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.ensureUser(userID)
	u.publicKeyPEM = publicKeyPEM
}

// PublicKey returns the registered public key PEM for a user. The second
// return is false when the user is unknown or has not registered a key.
func (s *Store) PublicKey(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok || u.publicKeyPEM == "" {
		return "", false
	}
	return u.publicKeyPEM, true
}

// Append queues a message for its user, creating the user on first sight.
func (s *Store) Append(msg StoredMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.ensureUser(msg.UserID)
	u.messageIDs = append(u.messageIDs, msg.MessageID)

	stored := msg
	s.messages[msg.MessageID] = &stored
	s.queue = append(s.queue, msg.MessageID)
}

// TakePending returns the user's pending messages in arrival order and marks
// them delivered.
func (s *Store) TakePending(userID string) []StoredMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}

	var out []StoredMessage
	for _, id := range u.messageIDs {
		msg := s.messages[id]
		if msg == nil || msg.Status != StatusPending {
			continue
		}
		msg.Status = StatusDelivered
		out = append(out, *msg)
	}
	return out
}

// Messages returns copies of a user's messages regardless of status.
func (s *Store) Messages(userID string) []StoredMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}

	out := make([]StoredMessage, 0, len(u.messageIDs))
	for _, id := range u.messageIDs {
		if msg := s.messages[id]; msg != nil {
			out = append(out, *msg)
		}
	}
	return out
}

// AllMessages returns copies of every stored message in arrival order.
func (s *Store) AllMessages() []StoredMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]StoredMessage, 0, len(s.queue))
	for _, id := range s.queue {
		if msg := s.messages[id]; msg != nil {
			out = append(out, *msg)
		}
	}
	return out
}

// QueueDepth returns the total number of stored messages.
func (s *Store) QueueDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queue)
}

// Users returns the known user IDs.
func (s *Store) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.users))
	for id := range s.users {
		out = append(out, id)
	}
	return out
}

// Clear drops all users and messages.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]*user)
	s.messages = make(map[string]*StoredMessage)
	s.queue = nil
}

// ensureUser must be called with the write lock held.
func (s *Store) ensureUser(userID string) *user {
	u, ok := s.users[userID]
	if !ok {
		u = &user{createdAt: time.Now().UTC()}
		s.users[userID] = u
	}
	return u
}
