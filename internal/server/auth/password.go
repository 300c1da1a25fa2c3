package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt hash of an unrelated string. Login compares
// against it when the username does not exist so that both failure paths
// cost roughly the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns the bcrypt hash of the password at the default cost.
func HashPassword(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}

// BurnPasswordCheck performs a bcrypt comparison with a throwaway hash.
// It always fails; callers use it to equalize timing between the
// unknown-user and wrong-password branches.
func BurnPasswordCheck(password []byte) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), password)
}
