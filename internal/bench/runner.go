package bench

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lojhan/hashtable/internal/hashtable"
)

// Implementation names as they appear in results and reports.
const (
	ImplChaining  = "Chaining"
	ImplProbing   = "Linear Probing"
	ImplTombstone = "Probing+Tombstone"
)

// implementations in report order.
var implementations = []string{ImplChaining, ImplProbing, ImplTombstone}

// Result holds the measured wall-clock seconds for one implementation
// over one dataset.
type Result struct {
	Implementation string
	Size           int
	Insert         float64
	Retrieve       float64
	Remove         float64
}

// Runner times insert/retrieve/remove batches against each table
// implementation. Tables are sized at capacityFactor times the batch
// size so probing stays comfortably below capacity, matching the
// classic comparison setup.
type Runner struct {
	capacityFactor int
	logger         *zap.Logger
}

// NewRunner returns a runner with the given table capacity multiplier.
// A nil logger disables logging.
func NewRunner(capacityFactor int, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{capacityFactor: capacityFactor, logger: logger}
}

// Run benchmarks every implementation against every dataset, in order.
func (r *Runner) Run(datasets []Dataset) ([]Result, error) {
	results := make([]Result, 0, len(datasets)*len(implementations))
	for _, ds := range datasets {
		for _, name := range implementations {
			result, err := r.runOne(name, ds)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (r *Runner) newTable(name string, capacity int) (hashtable.Table[string, int], error) {
	switch name {
	case ImplChaining:
		return hashtable.NewChainingTable[string, int](capacity)
	case ImplProbing:
		return hashtable.NewProbingTable[string, int](capacity)
	case ImplTombstone:
		return hashtable.NewProbingTableTombstone[string, int](capacity)
	}
	return nil, fmt.Errorf("bench: unknown implementation %q", name)
}

func (r *Runner) runOne(name string, ds Dataset) (Result, error) {
	table, err := r.newTable(name, ds.Size*r.capacityFactor)
	if err != nil {
		return Result{}, fmt.Errorf("build %s table: %w", name, err)
	}

	start := time.Now()
	for _, p := range ds.Pairs {
		if err := table.Set(p.Key, p.Value); err != nil {
			return Result{}, fmt.Errorf("%s insert %q: %w", name, p.Key, err)
		}
	}
	insert := time.Since(start)

	start = time.Now()
	for _, p := range ds.Pairs {
		table.Get(p.Key)
	}
	retrieve := time.Since(start)

	start = time.Now()
	for _, p := range ds.Pairs {
		table.Delete(p.Key)
	}
	remove := time.Since(start)

	r.logger.Info("benchmark batch complete",
		zap.String("implementation", name),
		zap.Int("size", ds.Size),
		zap.Duration("insert", insert),
		zap.Duration("retrieve", retrieve),
		zap.Duration("remove", remove),
	)

	return Result{
		Implementation: name,
		Size:           ds.Size,
		Insert:         insert.Seconds(),
		Retrieve:       retrieve.Seconds(),
		Remove:         remove.Seconds(),
	}, nil
}
