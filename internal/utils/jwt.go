package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token verification failure: malformed input,
// wrong signature, expired claim, or an unusable userId claim.  Callers get
// one error kind on purpose so the distinction never leaks to clients.
var ErrInvalidToken = errors.New("invalid token")

// NewSessionToken signs an HS256 token carrying the user id in the userId
// claim.  A ttl of 0 issues a token without an exp claim, which never
// expires; that is the default contract.
func NewSessionToken(secret string, userID uint64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies a session token and returns the userId claim.
// Expiry is enforced automatically when the token carries an exp claim.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	// JSON numbers decode as float64; tolerate string-encoded ids as well.
	switch v := claims["userId"].(type) {
	case float64:
		if v < 1 {
			return 0, ErrInvalidToken
		}
		return uint64(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id < 1 {
			return 0, ErrInvalidToken
		}
		return id, nil
	}
	return 0, ErrInvalidToken
}
