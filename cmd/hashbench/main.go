package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lojhan/hashtable/internal/bench"
	"github.com/lojhan/hashtable/internal/hashtable"
)

func main() {
	configFile := flag.String("config", "", "TOML config file")
	sizesFlag := flag.String("sizes", "", "Comma-separated test sizes (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config when non-zero)")
	logFile := flag.String("logfile", "", "Rotating log file (overrides config)")
	flag.Parse()

	cfg := bench.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = bench.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *sizesFlag != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Sizes = sizes
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logFile != "" {
		cfg.Log.Filename = *logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	defer logger.Sync()

	fmt.Println("Running basic functionality tests...")
	if err := runDemo(os.Stdout); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}

	datasets, err := bench.GenerateDatasets(cfg.Sizes, cfg.KeyLength, cfg.Seed)
	if err != nil {
		logger.Fatal("generate datasets", zap.Error(err))
	}

	runner := bench.NewRunner(cfg.CapacityFactor, logger)
	results, err := runner.Run(datasets)
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	fmt.Println("\nRunning performance comparison...")
	if err := bench.WriteReport(os.Stdout, results); err != nil {
		logger.Fatal("write report", zap.Error(err))
	}
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// newLogger logs to stderr by default, or to a rotating file when one
// is configured.
func newLogger(cfg bench.LogConfig) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	sink := zapcore.Lock(os.Stderr)
	if cfg.Filename != "" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		})
	}
	return zap.New(zapcore.NewCore(encoder, sink, zap.InfoLevel))
}

// runDemo exercises the documented scenario against both strategies:
// three inserts, retrieval, an update, a removal, and a miss.
func runDemo(w io.Writer) error {
	chaining, err := hashtable.NewChainingTable[string, any](10)
	if err != nil {
		return err
	}
	probing, err := hashtable.NewProbingTable[string, any](10)
	if err != nil {
		return err
	}

	tables := []struct {
		name  string
		table hashtable.Table[string, any]
	}{
		{bench.ImplChaining, chaining},
		{bench.ImplProbing, probing},
	}

	pairs := []struct {
		key   string
		value any
	}{
		{"name", "John"},
		{"age", 25},
		{"city", "New York"},
	}

	for _, tt := range tables {
		fmt.Fprintf(w, "\nTesting %s implementation:\n", tt.name)
		fmt.Fprintln(w, strings.Repeat("-", 30))

		for _, p := range pairs {
			if err := tt.table.Set(p.key, p.value); err != nil {
				return fmt.Errorf("%s: set %q: %w", tt.name, p.key, err)
			}
		}
		for _, p := range pairs {
			value, _ := tt.table.Get(p.key)
			fmt.Fprintf(w, "Retrieved %s: %v\n", p.key, value)
		}

		if err := tt.table.Set("name", "Jane"); err != nil {
			return fmt.Errorf("%s: update name: %w", tt.name, err)
		}
		value, _ := tt.table.Get("name")
		fmt.Fprintf(w, "Updated name: %v\n", value)

		tt.table.Delete("age")
		if _, ok := tt.table.Get("age"); !ok {
			fmt.Fprintln(w, "After removing age: <absent>")
		}
		if _, ok := tt.table.Get("country"); !ok {
			fmt.Fprintln(w, "Unknown key country: <absent>")
		}
	}
	return nil
}
