// Package security issues and verifies the short-lived signed tokens used by
// the password-reset and email-change flows.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess        = "access"
	TokenTypePasswordReset = "password_reset"
	TokenTypeChangeEmail   = "change_email"
)

var (
	ErrTokenInvalid      = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenMissingClaim = errors.New("token is missing a required claim")
	ErrTokenWrongType    = errors.New("token is of the wrong type")
)

type TokenClaims struct {
	Type     string `json:"type"`
	UserID   uint   `json:"user_id"`
	Email    string `json:"email,omitempty"`
	NewEmail string `json:"new_email,omitempty"`

	jwt.RegisteredClaims
}

// Tokens signs and verifies the claim set with a process-wide shared secret.
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokens(secret string, algorithm string, ttl time.Duration) *Tokens {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &Tokens{secret: []byte(secret), method: method, ttl: ttl}
}

func (t *Tokens) SignAccess(userID uint) (string, error) {
	return t.sign(TokenClaims{
		Type:   TokenTypeAccess,
		UserID: userID,
	})
}

func (t *Tokens) SignPasswordReset(userID uint) (string, error) {
	return t.sign(TokenClaims{
		Type:   TokenTypePasswordReset,
		UserID: userID,
	})
}

func (t *Tokens) SignChangeEmail(userID uint, email, newEmail string) (string, error) {
	return t.sign(TokenClaims{
		Type:     TokenTypeChangeEmail,
		UserID:   userID,
		Email:    email,
		NewEmail: newEmail,
	})
}

func (t *Tokens) sign(claims TokenClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
}

// Verify decodes and validates a token, requiring the given type claim.
func (t *Tokens) Verify(raw string, wantType string) (TokenClaims, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != t.method.Alg() {
			return nil, ErrTokenInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return claims, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return claims, ErrTokenExpired
		default:
			return claims, ErrTokenInvalid
		}
	}

	if claims.Type == "" || claims.UserID == 0 {
		return claims, ErrTokenMissingClaim
	}
	if claims.Type != wantType {
		return claims, ErrTokenWrongType
	}

	return claims, nil
}
