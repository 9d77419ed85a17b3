package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/MeKo-Tech/lapbench/internal/benchmark"
	"github.com/MeKo-Tech/lapbench/internal/config"
	"github.com/MeKo-Tech/lapbench/internal/dataset"
	"github.com/MeKo-Tech/lapbench/internal/sort"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RoundResult holds the mean times for one array size.
type RoundResult struct {
	Round    int     `yaml:"round" json:"round"`
	Size     int     `yaml:"size" json:"size"`
	Random   float64 `yaml:"random_ms" json:"random_ms"`
	Partial  float64 `yaml:"partially_ordered_ms" json:"partially_ordered_ms"`
	Ordered  float64 `yaml:"ordered_ms" json:"ordered_ms"`
	Reversed float64 `yaml:"reverse_ordered_ms" json:"reverse_ordered_ms"`
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Benchmark insertion sort over generated integer arrays",
	Long: `Benchmarks insertion sort over four input orderings (random, partially
ordered, ordered, reverse ordered), doubling the array size each round.
Every measurement clones the array in an untimed prepare step and checks
sortedness in an untimed verify step, so only the sort itself is timed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		results, err := runSortBenchmarks(cfg.Sort, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if cfg.Sort.Output != "" {
			if err := writeResults(cfg.Sort.Output, results); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Results saved to: %s\n", cfg.Sort.Output)
		}
		return nil
	},
}

func init() {
	sortCmd.Flags().Int("rounds", 10, "number of size-doubling rounds")
	sortCmd.Flags().Int("initial-size", 20, "array size before the first doubling")
	sortCmd.Flags().Int("runs", 30, "timed repetitions per measurement")
	sortCmd.Flags().Int("max-value", 1000, "exclusive upper bound for generated integers")
	sortCmd.Flags().Int64("seed", 0, "data generator seed (0 seeds from the current time)")
	sortCmd.Flags().String("output", "", "write results to this YAML file")

	_ = viper.BindPFlag("sort.rounds", sortCmd.Flags().Lookup("rounds"))
	_ = viper.BindPFlag("sort.initial_size", sortCmd.Flags().Lookup("initial-size"))
	_ = viper.BindPFlag("sort.runs", sortCmd.Flags().Lookup("runs"))
	_ = viper.BindPFlag("sort.max_value", sortCmd.Flags().Lookup("max-value"))
	_ = viper.BindPFlag("sort.seed", sortCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("sort.output", sortCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(sortCmd)
}

// runSortBenchmarks executes the doubling rounds and prints a table row per
// round to w.
func runSortBenchmarks(cfg config.SortConfig, w io.Writer) ([]RoundResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: Benchmark data only

	bench := benchmark.New("insertion sort", func(a []int) error {
		sort.Insertion(a)
		return nil
	},
		// The measured sort mutates in place, so each iteration gets a copy.
		benchmark.WithPrepare(func(a []int) ([]int, error) {
			return slices.Clone(a), nil
		}),
		benchmark.WithVerify(func(a []int) error {
			if !sort.IsSorted(a) {
				return errors.New("array is not sorted after run")
			}
			return nil
		}),
	)

	_, _ = fmt.Fprintf(w, "Insertion sort, %d runs per measurement (seed %d)\n\n", cfg.Runs, seed)
	_, _ = fmt.Fprintf(w, "%-6s %-10s %14s %14s %14s %14s\n",
		"round", "n", "random", "partial", "ordered", "reversed")

	results := make([]RoundResult, 0, cfg.Rounds)
	n := cfg.InitialSize
	for round := 1; round <= cfg.Rounds; round++ {
		n *= 2

		random := dataset.Random(r, n, cfg.MaxValue)
		inputs := map[string][]int{
			"random":   random,
			"partial":  dataset.PartiallyOrdered(random),
			"ordered":  dataset.Ordered(random),
			"reversed": dataset.ReverseOrdered(random),
		}

		means := make(map[string]float64, len(inputs))
		for name, input := range inputs {
			mean, err := bench.Run(input, cfg.Runs)
			if err != nil {
				return nil, fmt.Errorf("round %d (%s, n=%d): %w", round, name, n, err)
			}
			means[name] = mean
		}

		result := RoundResult{
			Round:    round,
			Size:     n,
			Random:   means["random"],
			Partial:  means["partial"],
			Ordered:  means["ordered"],
			Reversed: means["reversed"],
		}
		results = append(results, result)

		_, _ = fmt.Fprintf(w, "%-6d %-10d %11.4f ms %11.4f ms %11.4f ms %11.4f ms\n",
			result.Round, result.Size, result.Random, result.Partial, result.Ordered, result.Reversed)
	}

	return results, nil
}

// writeResults saves round results as YAML.
func writeResults(path string, results []RoundResult) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
