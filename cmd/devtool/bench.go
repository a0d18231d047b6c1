package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	benchResultsDir = "benchmarks/results"
	benchTime       = "-benchtime=2s"

	// benchstatModule is tracked in tools.go so go run resolves it without a separate install
	benchstatModule = "golang.org/x/perf/cmd/benchstat"
)

// hotPaths are the benchmarks covering the draw and reveal path
var hotPaths = []struct {
	label   string
	dir     string
	pattern string
}{
	{"Simulate 100 draws", "./internal/raffle", "BenchmarkSimulate"},
	{"Render final frame", "./internal/reveal", "BenchmarkRender"},
}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and compare benchmarks (run|hot|baseline|compare)"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "hot":
		return c.runHot()
	case "baseline":
		return c.runAndSave("baseline.txt", os.Stdout)
	case "compare":
		return c.compare()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	return runCommandVerbose("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")
	for _, hp := range hotPaths {
		fmt.Printf("  → %s\n", hp.label)
		if err := runCommandVerbose("go", "test", "-run=^$", "-bench="+hp.pattern, "-benchmem", benchTime, hp.dir); err != nil {
			return fmt.Errorf("%s: %w", hp.pattern, err)
		}
	}
	return nil
}

func (c *BenchCommand) runAndSave(filename string, echo io.Writer) error {
	if err := os.MkdirAll(benchResultsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
	cmd.Stdout = io.MultiWriter(echo, f)
	cmd.Stderr = cmd.Stdout
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, "baseline.txt")
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	PrintHeader("Running benchmarks and comparing to baseline...")
	if err := c.runAndSave("current.txt", io.Discard); err != nil {
		return err
	}
	current := filepath.Join(benchResultsDir, "current.txt")

	if _, err := exec.LookPath("benchstat"); err == nil {
		return runCommandVerbose("benchstat", baseline, current)
	}
	return runCommandVerbose("go", "run", benchstatModule, baseline, current)
}
