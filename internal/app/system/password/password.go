// internal/app/system/password/password.go

// Package password wraps bcrypt hashing and verification for account
// passwords. Hashing is intentionally slow; the cost is fixed so digests
// stay comparable across releases.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for new digests. Existing digests carry
// their own cost and verify regardless.
const Cost = 10

// Hash produces a salted bcrypt digest of the plaintext. It only fails for
// inputs beyond bcrypt's 72-byte limit.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. Malformed digests
// verify as false; this never panics or returns an error so callers cannot
// distinguish "bad password" from "bad digest".
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
