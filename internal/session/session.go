package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Role is the authenticated user's role as issued by the backend.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

// Session is the read-only identity context derived from the backend's
// access token. It is passed explicitly to the components that need it
// rather than living in a package-level global.
type Session struct {
	Token     string
	UserID    string
	Role      Role
	ExpiresAt time.Time
}

// Parse extracts the session from a backend-issued JWT. The backend signed
// the token and remains the authority on it; the client only reads the
// claims it needs for role gating, so the signature is not re-verified
// here.
func Parse(tokenString string) (*Session, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	role := RoleClient
	if r, ok := claims["role"].(string); ok {
		switch Role(r) {
		case RoleOwner, RoleCoach, RoleClient:
			role = Role(r)
		default:
			return nil, ErrInvalidToken
		}
	}

	sess := &Session{
		Token:  tokenString,
		UserID: sub,
		Role:   role,
	}
	if exp, ok := claims["exp"].(float64); ok {
		sess.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return sess, nil
}

// Valid reports whether the session has not expired. Tokens without an
// exp claim never expire client-side.
func (s *Session) Valid(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}

// CanEditPlans reports whether the role may create or modify diet plans
// and workout programs. Clients get a read-only view.
func (s *Session) CanEditPlans() bool {
	return s.Role == RoleOwner || s.Role == RoleCoach
}
