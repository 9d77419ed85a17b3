// Package support provides the godog step definitions for the lapbench CLI
// feature tests. Commands run in process against the cobra root command.
package support

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MeKo-Tech/lapbench/cmd/lapbench/cmd"
	"github.com/cucumber/godog"
	"github.com/spf13/pflag"
)

// TestContext holds the state shared between the steps of one scenario.
type TestContext struct {
	output  bytes.Buffer
	lastErr error
	workDir string
}

// NewTestContext creates a fresh context with its own working directory.
func NewTestContext() (*TestContext, error) {
	workDir, err := os.MkdirTemp("", "lapbench-cli-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	return &TestContext{workDir: workDir}, nil
}

// Cleanup removes the scenario working directory.
func (testCtx *TestContext) Cleanup() error {
	return os.RemoveAll(testCtx.workDir)
}

// RegisterSteps wires the step definitions into the scenario.
func (testCtx *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I run lapbench with arguments "([^"]*)"$`, testCtx.iRunLapbenchWithArguments)
	sc.Step(`^I run lapbench with arguments "([^"]*)" in a temporary directory$`, testCtx.iRunLapbenchInTempDir)
	sc.Step(`^the command succeeds$`, testCtx.theCommandSucceeds)
	sc.Step(`^the command fails$`, testCtx.theCommandFails)
	sc.Step(`^the output contains "([^"]*)"$`, testCtx.theOutputContains)
	sc.Step(`^the results file "([^"]*)" exists$`, testCtx.theResultsFileExists)
	sc.Step(`^the results file "([^"]*)" contains "([^"]*)"$`, testCtx.theResultsFileContains)
}

func (testCtx *TestContext) runCommand(args []string) error {
	testCtx.output.Reset()

	root := cmd.GetRootCommand()
	root.SetOut(&testCtx.output)
	root.SetErr(&testCtx.output)
	root.SetArgs(args)

	testCtx.lastErr = root.Execute()
	return nil
}

func (testCtx *TestContext) iRunLapbenchWithArguments(arguments string) error {
	return testCtx.runCommand(strings.Fields(arguments))
}

func (testCtx *TestContext) iRunLapbenchInTempDir(arguments string) error {
	originalWd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if err := os.Chdir(testCtx.workDir); err != nil {
		return fmt.Errorf("failed to enter temp dir: %w", err)
	}
	defer func() { _ = os.Chdir(originalWd) }()

	return testCtx.runCommand(strings.Fields(arguments))
}

func (testCtx *TestContext) theCommandSucceeds() error {
	if testCtx.lastErr != nil {
		return fmt.Errorf("expected success, got error: %w\noutput:\n%s", testCtx.lastErr, testCtx.output.String())
	}
	return nil
}

func (testCtx *TestContext) theCommandFails() error {
	if testCtx.lastErr == nil {
		return fmt.Errorf("expected failure, command succeeded\noutput:\n%s", testCtx.output.String())
	}
	return nil
}

func (testCtx *TestContext) theOutputContains(expected string) error {
	if !strings.Contains(testCtx.output.String(), expected) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, testCtx.output.String())
	}
	return nil
}

func (testCtx *TestContext) theResultsFileExists(name string) error {
	path := filepath.Join(testCtx.workDir, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("results file not found: %w", err)
	}
	return nil
}

func (testCtx *TestContext) theResultsFileContains(name, expected string) error {
	path := filepath.Join(testCtx.workDir, name)
	data, err := os.ReadFile(path) //nolint:gosec // G304: Test file with controlled path
	if err != nil {
		return fmt.Errorf("failed to read results file: %w", err)
	}
	if !strings.Contains(string(data), expected) {
		return fmt.Errorf("results file does not contain %q:\n%s", expected, string(data))
	}
	return nil
}

// ResetConfig restores the sort command's flags to their defaults so flag
// values parsed by one scenario do not leak into the next.
func ResetConfig() {
	root := cmd.GetRootCommand()
	sortCmd, _, err := root.Find([]string{"sort"})
	if err != nil {
		return
	}
	sortCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}
