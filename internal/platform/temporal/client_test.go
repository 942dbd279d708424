package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialDisabled(t *testing.T) {
	c, err := Dial(Settings{Disabled: true}, nil, "test")
	require.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, c)
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, "fallback", valueOr("  ", "fallback"))
	assert.Equal(t, "temporal:7233", valueOr("temporal:7233", "fallback"))
}
