// Package freight is the data layer: an authenticated client for the
// remote origin/railfreight backend. Every data call carries the bearer
// token held by the caller's session; a call that fails with an auth
// signal tears the session down so the presentation layer can send the
// user back to the login page. Calls are single-shot, no retries.
package freight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ravi-codingcity/Origin-Frontend/internal/logger"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/session"
)

// Client talks to the freight backend. It is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
}

func New(baseURL string, sessions session.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// token resolves the caller's bearer token, failing with an AuthError
// (and clearing the session) when it is missing or locally expired.
func (c *Client) token(ctx context.Context, sessionID string) (string, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", &AuthError{Reason: "no authentication token found"}
		}
		return "", &NetworkError{Op: "read session", Err: err}
	}

	if sess.Token == "" {
		c.teardown(ctx, sessionID, "empty token")
		return "", &AuthError{Reason: "no authentication token found"}
	}

	if session.IsExpired(sess.Token) {
		c.teardown(ctx, sessionID, "token expired")
		return "", &AuthError{Reason: "token expired"}
	}

	return sess.Token, nil
}

// teardown clears the session once. Clearing is idempotent, so a lost
// race with another request is harmless.
func (c *Client) teardown(ctx context.Context, sessionID, reason string) {
	logger.Warn("Clearing session after auth failure", "session", sessionID, "reason", reason)
	if err := c.sessions.Clear(ctx, sessionID); err != nil {
		logger.Error("Failed to clear session", "session", sessionID, "error", err)
	}
}

// do executes one authenticated request and decodes the JSON response
// into out (when out is non-nil). Classification:
//   - 401/403, or a transport error matching the auth keyword list,
//     clears the session and returns *AuthError
//   - other non-2xx responses return *ServerError with the upstream text
//   - transport and decode failures return *NetworkError
func (c *Client) do(ctx context.Context, sessionID, method, path string, payload, out interface{}) error {
	token, err := c.token(ctx, sessionID)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &NetworkError{Op: "encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return &NetworkError{Op: "create request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if messageLooksAuth(err.Error()) {
			c.teardown(ctx, sessionID, "transport error with auth signal")
			return &AuthError{Reason: err.Error(), Err: err}
		}
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.teardown(ctx, sessionID, http.StatusText(resp.StatusCode))
		return &AuthError{Reason: http.StatusText(resp.StatusCode), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &ServerError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: "decode response", Err: err}
	}

	return nil
}

// Login exchanges credentials for a bearer token. It is the one
// unauthenticated call; the backend answers {token} on success and
// {message} on rejection, not always with a 2xx/4xx split, so the body is
// read regardless of status.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	data, err := json.Marshal(models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, &NetworkError{Op: "encode request", Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, loginPath, "", bytes.NewReader(data))
	if err != nil {
		return nil, &NetworkError{Op: "create request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	var decoded models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &NetworkError{Op: "decode response", Err: err}
	}

	return &decoded, nil
}

// Logout tells the backend to invalidate the token. The local session is
// the caller's to clear; upstream failures only get logged because the
// user is leaving either way.
func (c *Client) Logout(ctx context.Context, sessionID string) error {
	return c.do(ctx, sessionID, http.MethodGet, logoutPath, nil, nil)
}
