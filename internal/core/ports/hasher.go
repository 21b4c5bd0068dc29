package ports

// PasswordHasher hides the hashing algorithm from the services.
type PasswordHasher interface {
	// Hash produces a self-salted digest of the plaintext.
	Hash(password string) (string, error)
	// Compare reports whether the plaintext matches the digest.
	Compare(password, digest string) bool
}
