// Package hashid provides one-way hashing of caller-supplied identifiers so
// that raw user identifiers never reach persistence. A salt is mixed into the
// hash input to prevent reversal via precomputed tables.
//
// Usage:
//
//	import "github.com/dilekatharuki/privacycore/pkg/hashid"
//
//	hashed := hashid.Hash("user-42", salt)
//	// Store hashed, never "user-42".
//
//	if hashid.Match("user-42", salt, hashed) {
//		// Same identifier, without ever storing the original.
//	}
package hashid
