package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	testList := New[int]()
	for i := 0; i < 10; i++ {
		testList.Push(i)
	}

	it := testList.Iter()
	for expected := 0; expected < 10; expected++ {
		require.False(t, it.Exhausted())

		value, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, expected, value)
	}

	require.True(t, it.Exhausted())
	require.Equal(t, 10, testList.Len())
}

func TestIterator_Fused(t *testing.T) {
	testList := New[int]()
	testList.Push(1)

	it := testList.Iter()
	value, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, value)

	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		require.False(t, ok)
	}

	testList.Push(2)
	_, ok = it.Next()
	require.False(t, ok)
	require.True(t, it.Exhausted())
}

func TestIterator_Empty(t *testing.T) {
	it := New[string]().Iter()
	require.True(t, it.Exhausted())

	value, ok := it.Next()
	require.False(t, ok)
	require.Empty(t, value)
}

func TestIterator_Independent(t *testing.T) {
	testList := New[int]()
	for i := 1; i <= 3; i++ {
		testList.Push(i)
	}

	first, second := testList.Iter(), testList.Iter()

	value, _ := first.Next()
	require.Equal(t, 1, value)
	value, _ = first.Next()
	require.Equal(t, 2, value)

	value, _ = second.Next()
	require.Equal(t, 1, value)

	value, _ = first.Next()
	require.Equal(t, 3, value)
	_, ok := first.Next()
	require.False(t, ok)

	value, _ = second.Next()
	require.Equal(t, 2, value)
}

func TestIterator_PushDuringIteration(t *testing.T) {
	testList := New[int]()
	testList.Push(1)
	testList.Push(2)

	it := testList.Iter()
	value, _ := it.Next()
	require.Equal(t, 1, value)

	testList.Push(3)
	testList.PushFront(0)

	var rest []int
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		rest = append(rest, value)
	}
	require.Equal(t, []int{2, 3}, rest)
}

func TestIterator_StaleCursor(t *testing.T) {
	testList := New[int]()
	testList.Push(1)
	testList.Push(2)

	it := testList.Iter()

	// the slot of the popped head is reused by the next push with a new generation
	_, exists := testList.PopFront()
	require.True(t, exists)
	testList.Push(3)
	require.NoError(t, testList.CheckInvariants())

	_, ok := it.Next()
	require.False(t, ok)
	require.True(t, it.Exhausted())
}

func TestIterator_Clear(t *testing.T) {
	testList := New[int]()
	testList.Push(1)
	testList.Push(2)

	it := testList.Iter()
	testList.Clear()
	testList.Push(1)

	_, ok := it.Next()
	require.False(t, ok)
}

func TestAll(t *testing.T) {
	testList := New[int]()
	for i := 0; i < 10; i++ {
		testList.Push(i)
	}

	var collected []int
	for value := range testList.All() {
		collected = append(collected, value)
	}
	require.Equal(t, testList.Values(), collected)

	collected = collected[:0]
	for value := range testList.All() {
		if value == 4 {
			break
		}
		collected = append(collected, value)
	}
	require.Equal(t, []int{0, 1, 2, 3}, collected)
	require.Equal(t, 10, testList.Len())
}
