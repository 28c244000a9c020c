package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	auth := NewSessionAuth("test-secret")
	userID := uuid.New()

	token, err := auth.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsed != userID {
		t.Errorf("expected %s, got %s", userID, parsed)
	}
}

func TestSessionToken_Invalid(t *testing.T) {
	auth := NewSessionAuth("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.ParseToken(tc.token); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSessionToken_WrongSecretRejected(t *testing.T) {
	token, err := NewSessionAuth("secret-a").GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewSessionAuth("secret-b").ParseToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}

func TestSessionMiddleware_AssignsCookie(t *testing.T) {
	auth := NewSessionAuth("test-secret")

	var gotUserID uuid.UUID
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gotUserID == uuid.Nil {
		t.Error("expected a user id in the request context")
	}

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected a session cookie on first contact")
	}

	parsed, err := auth.ParseToken(cookie.Value)
	if err != nil {
		t.Fatalf("cookie token must verify: %v", err)
	}
	if parsed != gotUserID {
		t.Errorf("cookie carries %s but context carries %s", parsed, gotUserID)
	}
}

func TestSessionMiddleware_ReusesExistingSession(t *testing.T) {
	auth := NewSessionAuth("test-secret")
	userID := uuid.New()
	token, err := auth.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotUserID uuid.UUID
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if gotUserID != userID {
		t.Errorf("expected existing session id %s, got %s", userID, gotUserID)
	}
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookie {
			t.Error("an existing valid session must not be re-minted")
		}
	}
}
