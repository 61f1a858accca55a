package comparisonControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStopsAtCapacity(t *testing.T) {
	ids := []uint{}
	var added bool
	for i := uint(1); i <= 4; i++ {
		ids, added = addID(ids, i)
		require.True(t, added)
	}
	require.Len(t, ids, MaxItems)

	// a fifth product is a no-op
	ids, added = addID(ids, 5)
	require.False(t, added)
	require.Equal(t, []uint{1, 2, 3, 4}, ids)
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	ids, added := addID([]uint{7}, 7)
	require.False(t, added)
	require.Equal(t, []uint{7}, ids)
}

func TestRemovePreservesOrder(t *testing.T) {
	require.Equal(t, []uint{1, 3}, removeID([]uint{1, 2, 3}, 2))
	require.Equal(t, []uint{1, 2, 3}, removeID([]uint{1, 2, 3}, 9))
	require.Empty(t, removeID([]uint{4}, 4))
}
