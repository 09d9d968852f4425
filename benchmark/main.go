// Package main provides a performance benchmarking tool for the LangRadar CLI.
// It measures execution times of the browse commands against each catalog backend,
// running each command several times, treating the first successful run as cold and
// averaging the rest as warm, and writes the results as CSV.
//
// Prerequisites:
// - langradar binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory that holds the benchmark SQLite catalog
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Backend  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Backends []string
	Commands map[string][]string
	Order    []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  time.Minute,
		Runs:     5,
		Backends: []string{"embedded", "sqlite"},
		Commands: map[string][]string{
			"list":    {"list", "--output", "json"},
			"search":  {"list", "--search", "script", "--sort", "learning", "--output", "json"},
			"show":    {"show", "rust", "--output", "svg"},
			"compare": {"compare", "c", "python", "go", "--output", "csv"},
		},
		Order: []string{"list", "search", "show", "compare"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Seed the SQLite catalog using langradar catalog import
	fmt.Printf("Importing catalog...\n")
	importCmd := exec.Command("langradar", "catalog", "import", "--catalog-backend", "sqlite", "--catalog-source", dbPath(config))
	if output, err := importCmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to import catalog: %v\nOutput: %s\n", err, string(output))
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// dbPath returns the SQLite catalog used by the benchmark.
func dbPath(config BenchmarkConfig) string {
	return filepath.Join(config.WorkDir, "langradar_benchmark.db")
}

// checkPrerequisites verifies that the langradar binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("langradar"); err != nil {
		return fmt.Errorf("langradar binary not found in PATH")
	}
	if info, err := os.Stat(config.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("work directory %s not found", config.WorkDir)
	}
	return nil
}

// runBenchmarks executes every command against every backend
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d backends, %d commands, %v timeout, %d runs\n",
		len(config.Backends), len(config.Order), config.Timeout, config.Runs)

	for _, backend := range config.Backends {
		fmt.Printf("Benchmarking %s backend\n", backend)
		for _, name := range config.Order {
			results = append(results, runBenchmarkSuite(config, backend, name))
		}
	}
	return results
}

// runBenchmarkSuite runs one command several times and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, backend, name string) BenchmarkResult {
	coldTime, warmTimes := runBenchmark(config, backend, config.Commands[name])

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  %-8s Cold time: %s, Warm average: %s\n", name, coldTimeStr, warmAvg)
	return BenchmarkResult{Backend: backend, Command: name, ColdTime: coldTimeStr, WarmTime: warmAvg}
}

// runBenchmark executes a langradar command several times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, backend string, commandArgs []string) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, commandArgs...)
	args = append(args, "--catalog-backend", backend)
	if backend == "sqlite" {
		args = append(args, "--catalog-source", dbPath(config))
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("langradar", args...)
		cmd.Dir = config.WorkDir

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return coldTime, warmTimes
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("langradar_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"backend", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Backend, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by command
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, name := range config.Order {
		fmt.Printf("%s:\n", name)
		for _, result := range results {
			if result.Command == name {
				fmt.Printf("  %-10s: Cold: %s, Warm: %s\n", result.Backend, result.ColdTime, result.WarmTime)
			}
		}
	}
}
