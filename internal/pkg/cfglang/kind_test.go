package cfglang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Range ")
	require.NoError(t, err)
	assert.Equal(t, KindRange, k)

	_, err = ParseKind("bool")
	assert.Error(t, err)
}
