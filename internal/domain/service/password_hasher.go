package service

// PasswordHasher hides the hashing algorithm from the account use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns a validation error describing the
	// first rule password breaks.
	ValidatePasswordStrength(password string) error
}
