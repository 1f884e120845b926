package hashid

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash returns the lowercase hex SHA-256 digest of identifier concatenated
// with salt. The result is stable for a given (identifier, salt) pair and
// cannot be reversed to recover the identifier.
func Hash(identifier, salt string) string {
	sum := sha256.Sum256([]byte(identifier + salt))
	return hex.EncodeToString(sum[:])
}

// Match reports whether identifier hashes to hashed under the given salt.
// The comparison is constant-time.
func Match(identifier, salt, hashed string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(identifier, salt)), []byte(hashed)) == 1
}
