package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Compare(hash, "secret123"))
	assert.False(t, Compare(hash, "secret124"))
	assert.False(t, Compare("not-a-hash", "secret123"))
}
