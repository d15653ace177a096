package bench

import (
	"math/rand"

	"golang.org/x/sync/errgroup"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxValue is the upper bound (inclusive) for generated values.
const MaxValue = 1_000_000

// Pair is one key/value insertion in a benchmark batch.
type Pair struct {
	Key   string
	Value int
}

// Dataset is the pre-generated input for one benchmark size. The same
// dataset is replayed against every implementation so the comparison
// is apples to apples.
type Dataset struct {
	Size  int
	Pairs []Pair
}

// NewDataset generates size random pairs: fixed-length alphabetic keys
// and integer values in [1, MaxValue].
func NewDataset(size, keyLength int, rng *rand.Rand) Dataset {
	pairs := make([]Pair, size)
	for i := range pairs {
		pairs[i] = Pair{
			Key:   randomKey(rng, keyLength),
			Value: rng.Intn(MaxValue) + 1,
		}
	}
	return Dataset{Size: size, Pairs: pairs}
}

func randomKey(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

// GenerateDatasets builds the dataset for every requested size. Each
// size gets its own source derived from the seed, so generation can
// run concurrently and still be deterministic for a fixed seed. Only
// generation is concurrent; the timed benchmark batches stay
// sequential.
func GenerateDatasets(sizes []int, keyLength int, seed int64) ([]Dataset, error) {
	datasets := make([]Dataset, len(sizes))
	var g errgroup.Group
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(size)))
			datasets[i] = NewDataset(size, keyLength, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}
