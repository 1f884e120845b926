package hashid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dilekatharuki/privacycore/pkg/hashid"
)

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()

	first := hashid.Hash("user-42", "pepper")
	second := hashid.Hash("user-42", "pepper")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "hex-encoded SHA-256 digest")
}

func TestHash_SaltChangesOutput(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, hashid.Hash("user-42", "a"), hashid.Hash("user-42", "b"))
}

func TestHash_NeverContainsIdentifier(t *testing.T) {
	t.Parallel()

	hashed := hashid.Hash("alice@example.com", "salt")

	assert.NotContains(t, hashed, "alice")
	assert.NotContains(t, hashed, "@")
}

func TestHash_EmptyIdentifier(t *testing.T) {
	t.Parallel()

	assert.Len(t, hashid.Hash("", "salt"), 64)
	assert.NotEqual(t, hashid.Hash("", "salt"), hashid.Hash("", "other"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	hashed := hashid.Hash("user-42", "pepper")

	assert.True(t, hashid.Match("user-42", "pepper", hashed))
	assert.False(t, hashid.Match("user-43", "pepper", hashed))
	assert.False(t, hashid.Match("user-42", "other", hashed))
	assert.False(t, hashid.Match("user-42", "pepper", "not-a-digest"))
}
