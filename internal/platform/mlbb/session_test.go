package mlbb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Valid(t *testing.T) {
	s := newSession(testJWT(t, time.Now().Add(time.Hour)), "1", "2")
	assert.True(t, s.Valid())
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestSession_ExpiredToken(t *testing.T) {
	s := newSession(testJWT(t, time.Now().Add(-time.Minute)), "1", "2")
	assert.False(t, s.Valid())
}

func TestSession_NoExpClaim(t *testing.T) {
	// Tokens without exp fall back to the 24h window from issue time.
	s := newSession(testJWT(t, time.Time{}), "1", "2")
	assert.True(t, s.Valid())

	s.IssuedAt = time.Now().Add(-25 * time.Hour)
	assert.False(t, s.Valid())
}

func TestSession_OpaqueToken(t *testing.T) {
	// A token that is not a JWT is still accepted; validity falls back to
	// the issue-time window.
	s := newSession("not-a-jwt", "1", "2")
	assert.True(t, s.Valid())
}

func TestSession_Invalid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{}).Valid())
}
