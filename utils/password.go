package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor for stored credentials.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password with a fresh salt. Two calls with
// the same input produce different outputs, so hashes are never compared
// with ==.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash verifies password against a stored hash in constant time.
// A malformed or empty hash is reported as a plain mismatch so callers cannot
// tell a wrong password apart from corrupted stored data.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
