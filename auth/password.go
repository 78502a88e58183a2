package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword applies a salted one-way transform to the password. The salt
// and cost parameters are embedded in the returned credential.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// checkPassword reports whether the password matches the stored credential.
func checkPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
