package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := NewServer(NewStore(), log)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func doJSON(t *testing.T, method, url, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

const aliceToken = "github|alice|tok"

// longBlob passes the relay's minimum-length sanity check.
var longBlob = strings.Repeat("QUJD", 50)

func TestServer_HealthEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := doJSON(t, "GET", ts.URL+"/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["service"] != "voice-relay" {
		t.Errorf("service field = %v", body["service"])
	}
}

func TestServer_KeyRegistrationFlow(t *testing.T) {
	_, ts := newTestServer(t)

	// Key lookup before registration: 404.
	resp, _ := doJSON(t, "POST", ts.URL+"/auth/get-public-key", aliceToken, "{}")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("lookup before registration: status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, "POST", ts.URL+"/auth/register-public-key", aliceToken,
		`{"app_public_key":"-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----\n"}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("register: status = %d, want 204", resp.StatusCode)
	}

	resp, body := doJSON(t, "POST", ts.URL+"/auth/get-public-key", aliceToken, "{}")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lookup: status = %d", resp.StatusCode)
	}
	pem, _ := body["app_public_key"].(string)
	if !strings.HasPrefix(pem, "-----BEGIN PUBLIC KEY-----") {
		t.Errorf("app_public_key = %q", pem)
	}
}

func TestServer_AskAndFetchFlow(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := doJSON(t, "POST", ts.URL+"/agent/ask", aliceToken,
		`{"encrypted_blob":"`+longBlob+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ask: status = %d", resp.StatusCode)
	}
	if body["status"] != "accepted" {
		t.Errorf("ask status = %v", body["status"])
	}
	msgID, _ := body["message_id"].(string)
	if !strings.HasPrefix(msgID, "msg_") {
		t.Errorf("message_id = %q", msgID)
	}

	// The addressed user sees the envelope exactly once.
	resp, body = doJSON(t, "GET", ts.URL+"/messages", aliceToken, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("messages: status = %d", resp.StatusCode)
	}
	msgs, _ := body["messages"].([]interface{})
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	first, _ := msgs[0].(map[string]interface{})
	if first["encrypted_blob"] != longBlob {
		t.Error("relay altered the envelope text")
	}

	_, body = doJSON(t, "GET", ts.URL+"/messages", aliceToken, "")
	if msgs, _ := body["messages"].([]interface{}); len(msgs) != 0 {
		t.Errorf("second fetch returned %d messages, want 0", len(msgs))
	}

	// Another user never sees it.
	_, body = doJSON(t, "GET", ts.URL+"/messages", "github|bob|tok", "")
	if msgs, _ := body["messages"].([]interface{}); len(msgs) != 0 {
		t.Errorf("bob got %d messages, want 0", len(msgs))
	}
}

func TestServer_AskValidation(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
	}{
		{"no auth", "", `{"encrypted_blob":"` + longBlob + `"}`, http.StatusUnauthorized},
		{"bad token", "nope", `{"encrypted_blob":"` + longBlob + `"}`, http.StatusUnauthorized},
		{"blob too short", aliceToken, `{"encrypted_blob":"QUJD"}`, http.StatusBadRequest},
		{"empty blob", aliceToken, `{}`, http.StatusBadRequest},
		{"invalid json", aliceToken, `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, "POST", ts.URL+"/agent/ask", tt.token, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if detail, _ := body["detail"].(string); detail == "" {
				t.Error("error response has no detail field")
			}
		})
	}
}

func TestServer_DebugEndpoints(t *testing.T) {
	_, ts := newTestServer(t)

	doJSON(t, "POST", ts.URL+"/agent/ask", aliceToken, `{"encrypted_blob":"`+longBlob+`"}`)

	_, body := doJSON(t, "GET", ts.URL+"/debug/users", "", "")
	if n, _ := body["total_users"].(float64); n != 1 {
		t.Errorf("total_users = %v, want 1", body["total_users"])
	}

	_, body = doJSON(t, "GET", ts.URL+"/debug/messages", "", "")
	if n, _ := body["total_messages"].(float64); n != 1 {
		t.Errorf("total_messages = %v, want 1", body["total_messages"])
	}
	// The debug listing reports sizes, never blob contents.
	if msgs, ok := body["messages"].([]interface{}); ok && len(msgs) == 1 {
		entry, _ := msgs[0].(map[string]interface{})
		if _, leaked := entry["encrypted_blob"]; leaked {
			t.Error("/debug/messages exposes blob contents")
		}
	}

	resp, _ := doJSON(t, "POST", ts.URL+"/debug/clear", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear: status = %d", resp.StatusCode)
	}

	_, body = doJSON(t, "GET", ts.URL+"/health", "", "")
	if n, _ := body["messages_queued"].(float64); n != 0 {
		t.Errorf("messages_queued after clear = %v, want 0", body["messages_queued"])
	}
}
