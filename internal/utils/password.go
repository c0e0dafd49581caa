// Package utils provides the credential primitives: bcrypt password hashing
// and signed session tokens.
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of plain using the given cost.  Costs
// below 10 are raised to 10 so stored hashes stay expensive to brute-force.
func HashPassword(plain string, cost int) (string, error) {
	if cost < 10 {
		cost = 10
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
