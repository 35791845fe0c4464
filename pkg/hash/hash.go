// Package hash wraps the password hashing primitive so the rest of
// the codebase only sees hash/verify.
package hash

import "golang.org/x/crypto/bcrypt"

const cost = 10

// Password hashes a plaintext password for storage.
func Password(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
