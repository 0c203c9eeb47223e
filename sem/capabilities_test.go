package sem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapabilityRoundTrip(t *testing.T) {
	var set CapabilitySet

	key := NewCapability[string]("artifact-path")

	_, ok := GetCapability(&set, key)
	require.False(t, ok)

	SetCapability(&set, key, "/lib/core.kslib")

	value, ok := GetCapability(&set, key)
	require.True(t, ok)
	require.Equal(t, "/lib/core.kslib", value)
}

func TestCapabilityOverwrite(t *testing.T) {
	var set CapabilitySet

	SetCapability(&set, CapInterop, false)
	SetCapability(&set, CapInterop, true)

	value, ok := GetCapability(&set, CapInterop)
	require.True(t, ok)
	require.True(t, value)
}

func TestCapabilityTypeMismatch(t *testing.T) {
	var set CapabilitySet

	SetCapability(&set, NewCapability[int]("size"), 42)

	require.Panics(t, func() {
		GetCapability(&set, NewCapability[string]("size"))
	})
}
