package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/lapbench/internal/config"
)

func smallSortConfig() config.SortConfig {
	return config.SortConfig{
		Rounds:      3,
		InitialSize: 4,
		Runs:        5,
		MaxValue:    100,
		Seed:        1,
	}
}

func TestRunSortBenchmarks(t *testing.T) {
	var out bytes.Buffer

	results, err := runSortBenchmarks(smallSortConfig(), &out)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Sizes double from the initial size each round.
	assert.Equal(t, 8, results[0].Size)
	assert.Equal(t, 16, results[1].Size)
	assert.Equal(t, 32, results[2].Size)

	for _, r := range results {
		assert.GreaterOrEqual(t, r.Random, 0.0)
		assert.GreaterOrEqual(t, r.Partial, 0.0)
		assert.GreaterOrEqual(t, r.Ordered, 0.0)
		assert.GreaterOrEqual(t, r.Reversed, 0.0)
	}

	output := out.String()
	assert.Contains(t, output, "seed 1")
	assert.Contains(t, output, "random")
	assert.Contains(t, output, "reversed")
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")
	results := []RoundResult{
		{Round: 1, Size: 40, Random: 0.5, Partial: 0.3, Ordered: 0.1, Reversed: 0.9},
	}

	require.NoError(t, writeResults(path, results))

	data, err := os.ReadFile(path) //nolint:gosec // G304: Test file with controlled path
	require.NoError(t, err)

	var loaded []RoundResult
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, results, loaded)
}

func TestSortCommandRegistered(t *testing.T) {
	cmd, _, err := GetRootCommand().Find([]string{"sort"})
	require.NoError(t, err)
	assert.Equal(t, "sort", cmd.Name())
}
