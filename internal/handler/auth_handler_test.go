package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/daybook/daybook/internal/handler/dto"
)

func TestAuthHandler_Register(t *testing.T) {
	router := newTestRouter(t)

	resp := registerUser(t, router, "alice", "alice@example.com")

	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.User.Username != "alice" || resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
	if resp.User.ID == "" {
		t.Error("expected a user id")
	}
}

func TestAuthHandler_Register_NeverLeaksHash(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var user map[string]any
	if err := json.Unmarshal(raw["user"], &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	for _, key := range []string{"password", "password_hash", "PasswordHash"} {
		if _, ok := user[key]; ok {
			t.Errorf("user object must not contain %q", key)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "DUPLICATE_USER" {
		t.Errorf("expected DUPLICATE_USER, got %s", resp.Code)
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "12345",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "WEAK_PASSWORD" {
		t.Errorf("expected WEAK_PASSWORD, got %s", resp.Code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	router := newTestRouter(t)
	registered := registerUser(t, router, "alice", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != registered.User.ID {
		t.Errorf("expected same user id %s, got %s", registered.User.ID, resp.User.ID)
	}
}

func TestAuthHandler_Login_FailureShapeIsUniform(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "alice", "alice@example.com")

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/login", "", dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	if wrongPassword.Code != http.StatusBadRequest || unknownEmail.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for both failures, got %d and %d", wrongPassword.Code, unknownEmail.Code)
	}

	// Identical body for both failure modes: no leakage of which field
	// was wrong.
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies differ:\n%s\n%s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestAuthHandler_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", "not-an-object")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for invalid body, got %d", rec.Code)
	}
}
