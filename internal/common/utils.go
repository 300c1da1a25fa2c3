package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates a hex string from size random bytes, so the
// resulting string is twice as long as size. It returns an error only if the
// system random source fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the slice with zeros. Used to remove passwords
// from memory after use. Nil slices are ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
