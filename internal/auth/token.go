// Package auth issues and verifies the signed session tokens that replace
// the ambient logged-in-user state of earlier revisions. Every request
// carries its own Session, so independent sessions can coexist.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/model"
)

type Claims struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Session is the authenticated principal attached to a request context.
type Session struct {
	UserID string
	Email  string
	Role   model.Role
}

func (s *Session) IsAdmin() bool { return s.Role == model.RoleAdmin }

// Owns reports whether the session may act on resources of the given
// seller or buyer id. The admin may act on anything.
func (s *Session) Owns(id string) bool {
	return s.UserID == id || s.IsAdmin()
}

func Issue(secret string, ttl time.Duration, user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func Parse(secret, tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Auth("invalid or expired token")
	}

	return &Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
