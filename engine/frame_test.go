package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameStack(t *testing.T) {
	s := newFrameStack(3)
	require.True(t, s.empty())
	require.Equal(t, -1, s.top)
	require.Equal(t, 3, s.capacity())

	for i := 0; i < 3; i++ {
		index, ok := s.push()
		require.True(t, ok)
		require.Equal(t, i, index)
	}
	_, ok := s.push()
	require.False(t, ok)
	require.Equal(t, 2, s.top)

	s.markHandling(2)
	s.markHandling(1)
	require.Equal(t, 2, s.discardHandling())
	require.Equal(t, 1, s.depth())

	index, ok := s.push()
	require.True(t, ok)
	require.Equal(t, 1, index)
	require.False(t, s.frames[1].handling, "reused slot must start clean")

	s.truncate(5)
	require.Equal(t, 2, s.depth())
	s.truncate(0)
	require.True(t, s.empty())
	require.Equal(t, 0, s.discardHandling())
}
