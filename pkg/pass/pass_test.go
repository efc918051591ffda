package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("qwerty123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword(hash, "qwerty123"))
	assert.False(t, VerifyPassword(hash, "qwerty124"))
	assert.False(t, VerifyPassword("not-a-hash", "qwerty123"))
}
