package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)
	assert.Equal(42, optionalInt.ValueOr(7))

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("bar", optionalString.ValueOr("bar"))
	assert.Equal("[-]", optionalString.String())
}

func TestNewScheduleName(t *testing.T) {
	require.Equal(t, ScheduleName("morning standup"), NewScheduleName("  Morning Standup "))
}
