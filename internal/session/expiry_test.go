package session

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func jwtWithExp(exp int64) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"sub":"user","exp":%d}`, exp)))
	return header + "." + payload + ".signature"
}

func TestIsExpired(t *testing.T) {
	assert.False(t, IsExpired(jwtWithExp(time.Now().Add(time.Hour).Unix())))
	assert.True(t, IsExpired(jwtWithExp(time.Now().Add(-time.Hour).Unix())))
}

func TestIsExpiredNoExpClaim(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"user"}`))
	assert.False(t, IsExpired(header+"."+payload+".sig"))
}

func TestIsExpiredStandardBase64Payload(t *testing.T) {
	// some issuers emit padded standard base64 instead of base64url
	payload := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, time.Now().Add(-time.Hour).Unix())))
	assert.True(t, IsExpired("h."+payload+".s"))
}

func TestIsExpiredFailsOpen(t *testing.T) {
	// opaque and malformed tokens are never treated as expired locally
	assert.False(t, IsExpired("opaque-token"))
	assert.False(t, IsExpired(""))
	assert.False(t, IsExpired("a.b"))
	assert.False(t, IsExpired("a.b.c.d"))
	assert.False(t, IsExpired("x.!!!not-base64!!!.y"))

	garbage := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	assert.False(t, IsExpired("h."+garbage+".s"))
}
