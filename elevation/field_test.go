package elevation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orogenlab/orogen/elevation"
)

func TestField_PreserveHighest(t *testing.T) {
	f := elevation.NewField(3)
	require.Equal(t, 3, f.Len())

	require.True(t, f.Raise(1, 0.5))
	require.Equal(t, 0.5, f.Elevation(1))

	// lower and equal values never win
	require.False(t, f.Raise(1, 0.3))
	require.False(t, f.Raise(1, 0.5))
	require.Equal(t, 0.5, f.Elevation(1))

	require.True(t, f.Raise(1, 0.9))
	require.Equal(t, 0.9, f.Elevation(1))

	// out of range reads as unassigned
	require.Equal(t, 0.0, f.Elevation(-1))
	require.Equal(t, 0.0, f.Elevation(99))
	require.False(t, f.Raise(99, 1.0))
}

func TestField_DirtyFlags(t *testing.T) {
	f := elevation.NewField(2)
	require.False(t, f.Dirty(0))

	f.Raise(0, 0.2)
	require.True(t, f.Dirty(0))
	require.False(t, f.Dirty(1))

	f.ClearDirty(0)
	require.False(t, f.Dirty(0))

	// a refused raise does not re-dirty
	f.Raise(0, 0.1)
	require.False(t, f.Dirty(0))

	f.ClearDirty(99) // no-op
}

func TestField_Range(t *testing.T) {
	f := elevation.NewField(4)
	f.Raise(2, 0.7)
	f.Raise(3, 0.2)

	min, max := f.Range()
	require.Equal(t, 0.0, min)
	require.Equal(t, 0.7, max)

	min, max = elevation.NewField(0).Range()
	require.Equal(t, 0.0, min)
	require.Equal(t, 0.0, max)
}
