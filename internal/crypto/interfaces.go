package crypto

// PasswordHasher derives and verifies storable hashes for publisher account
// passwords. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a self-describing hash string from the plaintext
	// password. The result embeds the algorithm parameters and a random
	// salt, so it can be verified later without extra stored state.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously derived
	// encoded hash. A malformed encoded hash yields an error, a simple
	// mismatch yields (false, nil).
	Verify(password string, encoded string) (bool, error)
}
