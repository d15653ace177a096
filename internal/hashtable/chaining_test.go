package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainingCollisions(t *testing.T) {
	// Size 1 forces every key into the same bucket.
	table, err := NewChainingTable[string, int](1)
	require.NoError(t, err)

	require.NoError(t, table.Set("one", 1))
	require.NoError(t, table.Set("two", 2))
	require.NoError(t, table.Set("three", 3))

	require.Equal(t, 3, table.Len())
	require.Equal(t, 3, table.chainLen(0))

	for key, want := range map[string]int{"one": 1, "two": 2, "three": 3} {
		value, ok := table.Get(key)
		require.True(t, ok, "expected %s in chain", key)
		require.Equal(t, want, value)
	}
}

func TestChainingUpdateKeepsChainLength(t *testing.T) {
	table, err := NewChainingTable[string, int](1)
	require.NoError(t, err)

	require.NoError(t, table.Set("one", 1))
	require.NoError(t, table.Set("two", 2))
	require.NoError(t, table.Set("one", 10))

	require.Equal(t, 2, table.chainLen(0))
	require.Equal(t, 2, table.Len())

	value, ok := table.Get("one")
	require.True(t, ok)
	require.Equal(t, 10, value)
}

func TestChainingChainOrderIsInsertionOrder(t *testing.T) {
	table, err := NewChainingTable[string, int](1)
	require.NoError(t, err)

	require.NoError(t, table.Set("a", 1))
	require.NoError(t, table.Set("b", 2))
	require.NoError(t, table.Set("c", 3))
	// Updating in place must not reorder the chain.
	require.NoError(t, table.Set("b", 20))

	require.Equal(t, []string{"a", "b", "c"}, table.Keys())
	require.Equal(t, []int{1, 20, 3}, table.Values())
}

func TestChainingDeleteHead(t *testing.T) {
	table, err := NewChainingTable[string, int](1)
	require.NoError(t, err)

	require.NoError(t, table.Set("a", 1))
	require.NoError(t, table.Set("b", 2))
	require.NoError(t, table.Set("c", 3))

	require.True(t, table.Delete("a"))
	require.Equal(t, []string{"b", "c"}, table.Keys())

	_, ok := table.Get("a")
	require.False(t, ok)
}

func TestChainingDeleteMiddleAndTail(t *testing.T) {
	table, err := NewChainingTable[string, int](1)
	require.NoError(t, err)

	require.NoError(t, table.Set("a", 1))
	require.NoError(t, table.Set("b", 2))
	require.NoError(t, table.Set("c", 3))

	require.True(t, table.Delete("b"))
	require.Equal(t, []string{"a", "c"}, table.Keys())

	require.True(t, table.Delete("c"))
	require.Equal(t, []string{"a"}, table.Keys())
	require.Equal(t, 1, table.Len())
}

func TestChainingGrowsPastTableSize(t *testing.T) {
	// No capacity limit: a size-2 table happily holds many more keys.
	table, err := NewChainingTable[int, int](2)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, table.Set(i, i))
	}
	require.Equal(t, 100, table.Len())

	for i := 0; i < 100; i++ {
		value, ok := table.Get(i)
		require.True(t, ok)
		require.Equal(t, i, value)
	}
}

func TestChainingKeysValuesEmpty(t *testing.T) {
	table, err := NewChainingTable[string, int](8)
	require.NoError(t, err)

	require.Empty(t, table.Keys())
	require.Empty(t, table.Values())
}
