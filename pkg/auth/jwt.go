// Package auth implements session tokens and password hashing.
//
// Tokens are HS256 JWTs carrying the user's document ID, verifiable without
// a database round-trip. Passwords are stored as bcrypt hashes.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims holds the typed JWT payload.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Tokens issues and validates session tokens with a fixed signing secret.
type Tokens struct {
	secret []byte
}

// NewTokens builds a token issuer around the given signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Generate creates a signed JWT bound to the given user ID.
func (t *Tokens) Generate(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate parses and validates a JWT string, returning its claims.
func (t *Tokens) Validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
