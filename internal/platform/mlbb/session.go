package mlbb

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionFallbackTTL bounds the lifetime of tokens that carry no exp claim.
const sessionFallbackTTL = 24 * time.Hour

// Session is the credential obtained from a successful login. It authorizes
// getBaseInfo calls for the role/zone it was issued for and lives for at
// most one run of the tool.
type Session struct {
	JWT       string
	RoleID    string
	ZoneID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// newSession builds a Session around the JWT returned by base/login.
// The token's registered claims are inspected for its lifetime; the
// signature is not verified since the server alone holds the key.
func newSession(token, roleID, zoneID string) *Session {
	s := &Session{
		JWT:      token,
		RoleID:   roleID,
		ZoneID:   zoneID,
		IssuedAt: time.Now(),
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		if claims.IssuedAt != nil {
			s.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			s.ExpiresAt = claims.ExpiresAt.Time
		}
	}

	return s
}

// Valid reports whether the session can still authorize requests.
// Tokens without an exp claim are trusted for sessionFallbackTTL after issue.
func (s *Session) Valid() bool {
	if s == nil || s.JWT == "" {
		return false
	}
	if !s.ExpiresAt.IsZero() {
		return time.Now().Before(s.ExpiresAt)
	}
	return time.Since(s.IssuedAt) < sessionFallbackTTL
}
