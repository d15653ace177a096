package bench

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDatasetShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ds := NewDataset(200, 5, rng)

	require.Equal(t, 200, ds.Size)
	require.Len(t, ds.Pairs, 200)

	for _, p := range ds.Pairs {
		require.Len(t, p.Key, 5)
		for _, c := range p.Key {
			require.True(t, strings.ContainsRune(letters, c), "unexpected key character %q", c)
		}
		require.GreaterOrEqual(t, p.Value, 1)
		require.LessOrEqual(t, p.Value, MaxValue)
	}
}

func TestNewDatasetKeyLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ds := NewDataset(10, 12, rng)
	for _, p := range ds.Pairs {
		require.Len(t, p.Key, 12)
	}
}

func TestGenerateDatasetsDeterministic(t *testing.T) {
	sizes := []int{10, 50, 100}

	first, err := GenerateDatasets(sizes, 5, 42)
	require.NoError(t, err)
	second, err := GenerateDatasets(sizes, 5, 42)
	require.NoError(t, err)

	require.Equal(t, first, second)

	other, err := GenerateDatasets(sizes, 5, 43)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestGenerateDatasetsSizes(t *testing.T) {
	sizes := []int{3, 7}
	datasets, err := GenerateDatasets(sizes, 5, 1)
	require.NoError(t, err)

	require.Len(t, datasets, 2)
	require.Equal(t, 3, datasets[0].Size)
	require.Len(t, datasets[0].Pairs, 3)
	require.Equal(t, 7, datasets[1].Size)
	require.Len(t, datasets[1].Pairs, 7)
}
