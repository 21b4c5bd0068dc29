// Package hasher implements password hashing with bcrypt.
package hasher

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// cost is the bcrypt work factor applied to every new digest.
const cost = 10

// ErrEmptyPassword is returned when hashing an empty plaintext.
var ErrEmptyPassword = errors.New("hasher: empty password")

// BcryptHasher produces self-salted bcrypt digests at a fixed cost.
type BcryptHasher struct{}

func NewBcrypt() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash generates a salted digest from the plaintext.
func (BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether the plaintext matches the digest. The comparison
// is delegated to bcrypt and is safe against timing attacks.
func (BcryptHasher) Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
