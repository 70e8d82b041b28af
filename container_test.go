package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsContainer(t *testing.T) {
	testList := New[int]()
	container := testList.AsContainer()
	require.True(t, container.Empty())
	require.Zero(t, container.Size())
	require.Empty(t, container.Values())

	testList.Push(1)
	testList.PushFront(0)

	require.False(t, container.Empty())
	require.Equal(t, 2, container.Size())
	require.Equal(t, []interface{}{0, 1}, container.Values())
	require.Equal(t, testList.String(), container.String())

	container.Clear()
	require.True(t, testList.IsEmpty())
	require.NoError(t, testList.CheckInvariants())
}
