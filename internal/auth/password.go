package auth

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor applied to stored passwords.
// Fixed at 10 to stay compatible with hashes already in the database.
const passwordHashCost = 10

// HashPassword returns the salted bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// bcrypt's comparison is constant-time over the derived key.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
