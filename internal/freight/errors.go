package freight

import (
	"errors"
	"fmt"
	"strings"
)

// authKeywords is the fixed heuristic used to classify transport-level
// failures whose message smells like an authentication problem. Matching
// is a case-insensitive substring check, same list the deployed frontend
// always used.
var authKeywords = []string{
	"unauthorized",
	"unauthenticated",
	"forbidden",
	"token expired",
	"token invalid",
	"not logged in",
	"jwt",
	"auth",
	"permission",
	"login required",
}

// AuthError means the caller's credentials are absent, expired, or were
// rejected upstream. The client has already cleared the session by the
// time one of these is returned; the presentation layer translates it
// into a redirect to the login route.
type AuthError struct {
	Reason string
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("authentication error: %d %s", e.Status, e.Reason)
	}
	return "authentication error: " + e.Reason
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx upstream response without an auth signal. The
// status and upstream text are surfaced to the user.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// NetworkError is a transport or decode failure: offline, DNS, malformed
// JSON. It never touches the session.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// messageLooksAuth applies the keyword heuristic to an error message.
func messageLooksAuth(msg string) bool {
	lower := strings.ToLower(msg)
	for _, keyword := range authKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
