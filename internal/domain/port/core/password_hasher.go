package core

// PasswordHasher turns plaintext passwords into one-way digests and checks them.
// Implementations must salt each digest; Verify is the only way to compare.
type PasswordHasher interface {
	// Hash returns a digest for the password. The digest never contains the plaintext.
	//
	// Possible errors:
	// - ErrInvalidPassword: If the password cannot be hashed (e.g. too long)
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	// A mismatch is (false, nil); a malformed digest is an error.
	Verify(hash, password string) (bool, error)
}
