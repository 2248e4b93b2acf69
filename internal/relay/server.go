package relay

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// MinBlobLength is the sanity floor for submitted envelope text. A valid
// envelope is at least 284 bytes before base64, so anything shorter than
// this cannot be one.
const MinBlobLength = 100

// Server is the relay HTTP server.
type Server struct {
	store *Store
	log   *logrus.Logger
}

// NewServer creates a relay server around the given store.
func NewServer(store *Store, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{store: store, log: log}
}

// Router builds the relay's HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/auth/get-public-key", s.handleGetPublicKey).Methods("POST")
	r.HandleFunc("/auth/register-public-key", s.handleRegisterPublicKey).Methods("POST")
	r.HandleFunc("/agent/ask", s.handleAsk).Methods("POST")
	r.HandleFunc("/messages", s.handleMessages).Methods("GET")
	r.HandleFunc("/debug/users", s.handleDebugUsers).Methods("GET")
	r.HandleFunc("/debug/messages", s.handleDebugMessages).Methods("GET")
	r.HandleFunc("/debug/clear", s.handleDebugClear).Methods("POST")
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request handled")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"service":         "voice-relay",
		"messages_queued": s.store.QueueDepth(),
	})
}

func (s *Server) handleGetPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}

	pem, ok := s.store.PublicKey(userID)
	if !ok {
		writeDetail(w, http.StatusNotFound, "User has no registered public key")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"app_public_key": pem})
}

func (s *Server) handleRegisterPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		AppPublicKey string `json:"app_public_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppPublicKey == "" {
		writeDetail(w, http.StatusBadRequest, "app_public_key is required")
		return
	}

	s.store.RegisterKey(userID, req.AppPublicKey)
	s.log.WithField("user", userID).Info("public key registered")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req struct {
		EncryptedBlob string `json:"encrypted_blob"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.EncryptedBlob) < MinBlobLength {
		writeDetail(w, http.StatusBadRequest,
			"encrypted_blob must be valid base64 and at least 100 characters")
		return
	}

	msg := StoredMessage{
		MessageID:     "msg_" + uuid.NewString(),
		UserID:        userID,
		EncryptedBlob: req.EncryptedBlob,
		CreatedAt:     time.Now().UTC(),
		Status:        StatusPending,
	}
	s.store.Append(msg)

	s.log.WithFields(logrus.Fields{
		"user":       userID,
		"message_id": msg.MessageID,
		"blob_bytes": len(req.EncryptedBlob),
		"queued":     s.store.QueueDepth(),
	}).Info("envelope accepted")

	// Push notification would go out here; the app polls /messages instead.
	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "accepted",
		"message_id": msg.MessageID,
	})
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}

	pending := s.store.TakePending(userID)
	out := make([]map[string]string, 0, len(pending))
	for _, msg := range pending {
		out = append(out, map[string]string{
			"message_id":     msg.MessageID,
			"user_id":        msg.UserID,
			"encrypted_blob": msg.EncryptedBlob,
			"created_at":     msg.CreatedAt.Format(time.RFC3339),
			"status":         string(msg.Status),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": out})
}

func (s *Server) handleDebugUsers(w http.ResponseWriter, r *http.Request) {
	users := s.store.Users()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users": len(users),
		"users":       users,
	})
}

func (s *Server) handleDebugMessages(w http.ResponseWriter, r *http.Request) {
	all := s.store.AllMessages()
	out := make([]map[string]string, 0, len(all))
	for _, msg := range all {
		out = append(out, map[string]string{
			"message_id": msg.MessageID,
			"user_id":    msg.UserID,
			"blob_bytes": strconv.Itoa(len(msg.EncryptedBlob)),
			"created_at": msg.CreatedAt.Format(time.RFC3339),
			"status":     string(msg.Status),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_messages": len(all),
		"messages":       out,
	})
}

func (s *Server) handleDebugClear(w http.ResponseWriter, r *http.Request) {
	s.store.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeDetail mirrors the relay's error envelope: {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
