package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/ravi-codingcity/Origin-Frontend/internal/logger"
)

// IsExpired checks a bearer token's exp claim without verifying it. Only
// tokens shaped like a JWT (three dot-separated segments) are inspected;
// anything that cannot be decoded is assumed valid so that an opaque or
// oddly encoded token never locks a user out locally. The backend remains
// the authority and still rejects a genuinely bad token with 401.
func IsExpired(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		logger.Warn("Could not verify token expiration", "error", err)
		return false
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		logger.Warn("Could not verify token expiration", "error", err)
		return false
	}

	if claims.Exp == 0 {
		return false
	}

	return time.Now().Unix() >= claims.Exp
}

// decodeSegment accepts both base64url (standard for JWTs) and plain
// base64, padded or not.
func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	if b, err := base64.URLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	if b, err := base64.RawStdEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(seg)
}
