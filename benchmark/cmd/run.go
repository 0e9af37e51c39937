package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type BenchmarkResult struct {
	Name       string
	Framework  string
	Category   string
	Scenario   string
	Iterations int64
	NsPerOp    float64
	BytesPerOp int64
	AllocsOp   int64
}

type CategoryResults struct {
	Category string
	Results  []BenchmarkResult
}

var categoryOrder = []string{
	"Register_Simple", "Register_Chain",
	"Resolve_Singleton", "Resolve_Chain",
	"Construct_Tagged",
	"Lazy_Materialize", "Lazy_Memoized",
}

var categoryTitles = map[string]string{
	"Register_Simple":   "Registration (single value)",
	"Register_Chain":    "Registration (dependency chain)",
	"Resolve_Singleton": "Resolution (memoized singleton)",
	"Resolve_Chain":     "Resolution (dependency chain)",
	"Construct_Tagged":  "Tag-driven construction",
	"Lazy_Materialize":  "Lazy singleton (first resolve)",
	"Lazy_Memoized":     "Lazy singleton (memoized hit)",
}

func main() {
	fmt.Println("autoinject benchmark suite")
	fmt.Println("Running benchmarks, this takes a minute...")
	fmt.Println()

	benchDir := ".."
	if len(os.Args) > 1 && os.Args[1] != "--json" {
		benchDir = os.Args[1]
	}

	cmd := exec.Command("go", "test", "-bench=.", "-benchmem", "-count=3", "-benchtime=100ms")
	cmd.Dir = benchDir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Benchmark failed: %s\n", string(exitErr.Stderr))
		}
		os.Exit(1)
	}

	results := parseResults(output)
	grouped := groupByCategory(results)

	for _, cat := range grouped {
		renderCategory(cat)
	}

	renderSummary(grouped)

	if len(os.Args) > 1 && os.Args[1] == "--json" {
		exportJSON(results)
	}
}

func parseResults(output []byte) []BenchmarkResult {
	var results []BenchmarkResult
	benchPattern := regexp.MustCompile(`^Benchmark(\w+)-\d+\s+(\d+)\s+([\d.]+) ns/op\s+(\d+) B/op\s+(\d+) allocs/op`)
	namePattern := regexp.MustCompile(`^([^_]+)_([^_]+)_(\w+)$`)

	seen := make(map[string][]BenchmarkResult)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		matches := benchPattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.ParseInt(matches[2], 10, 64)
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)
		bytesPerOp, _ := strconv.ParseInt(matches[4], 10, 64)
		allocsOp, _ := strconv.ParseInt(matches[5], 10, 64)

		nameParts := namePattern.FindStringSubmatch(name)
		var category, scenario, framework string
		if nameParts != nil {
			category = nameParts[1]
			scenario = nameParts[2]
			framework = nameParts[3]
		} else {
			parts := strings.Split(name, "_")
			if len(parts) >= 2 {
				framework = parts[len(parts)-1]
				category = parts[0]
				scenario = strings.Join(parts[1:len(parts)-1], "_")
			}
		}

		key := name
		seen[key] = append(
			seen[key], BenchmarkResult{
				Name:       name,
				Framework:  framework,
				Category:   category,
				Scenario:   scenario,
				Iterations: iterations,
				NsPerOp:    nsPerOp,
				BytesPerOp: bytesPerOp,
				AllocsOp:   allocsOp,
			},
		)
	}

	// Average the -count=3 runs per benchmark.
	for _, runs := range seen {
		if len(runs) == 0 {
			continue
		}

		var totalNs float64
		var totalBytes, totalAllocs int64
		for _, r := range runs {
			totalNs += r.NsPerOp
			totalBytes += r.BytesPerOp
			totalAllocs += r.AllocsOp
		}
		count := float64(len(runs))

		avg := runs[0]
		avg.NsPerOp = totalNs / count
		avg.BytesPerOp = int64(float64(totalBytes) / count)
		avg.AllocsOp = int64(float64(totalAllocs) / count)
		results = append(results, avg)
	}

	return results
}

func groupByCategory(results []BenchmarkResult) []CategoryResults {
	groups := make(map[string][]BenchmarkResult)
	for _, r := range results {
		key := r.Category + "_" + r.Scenario
		groups[key] = append(groups[key], r)
	}

	var ordered []CategoryResults
	for _, catKey := range categoryOrder {
		if results, ok := groups[catKey]; ok {
			sort.Slice(
				results, func(i, j int) bool {
					return results[i].NsPerOp < results[j].NsPerOp
				},
			)
			ordered = append(
				ordered, CategoryResults{
					Category: catKey,
					Results:  results,
				},
			)
		}
	}

	// Anything not in the canonical order still gets printed, after it.
	for key, results := range groups {
		found := false
		for _, o := range categoryOrder {
			if o == key {
				found = true
				break
			}
		}
		if !found {
			sort.Slice(
				results, func(i, j int) bool {
					return results[i].NsPerOp < results[j].NsPerOp
				},
			)
			ordered = append(
				ordered, CategoryResults{
					Category: key,
					Results:  results,
				},
			)
		}
	}

	return ordered
}

func renderCategory(cat CategoryResults) {
	if len(cat.Results) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(categoryTitle(cat.Category))
	tw.AppendHeader(table.Row{"Framework", "Time/op", "B/op", "Allocs/op", "vs fastest"})
	tw.SetColumnConfigs(
		[]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		},
	)

	fastest := cat.Results[0].NsPerOp
	for i, r := range cat.Results {
		relative := "fastest"
		if i > 0 && fastest > 0 {
			relative = fmt.Sprintf("%.1fx slower", r.NsPerOp/fastest)
		}
		tw.AppendRow(table.Row{r.Framework, formatNs(r.NsPerOp), r.BytesPerOp, r.AllocsOp, relative})
	}

	tw.Render()
	fmt.Println()
}

func categoryTitle(cat string) string {
	if title, ok := categoryTitles[cat]; ok {
		return title
	}
	return strings.ReplaceAll(cat, "_", " ")
}

func formatNs(ns float64) string {
	if ns >= 1_000_000 {
		return fmt.Sprintf("%.2f ms", ns/1_000_000)
	}
	if ns >= 1_000 {
		return fmt.Sprintf("%.2f µs", ns/1_000)
	}
	return fmt.Sprintf("%.0f ns", ns)
}

func renderSummary(groups []CategoryResults) {
	wins := make(map[string]int)
	for _, cat := range groups {
		if len(cat.Results) > 0 {
			wins[cat.Results[0].Framework]++
		}
	}

	type frameworkWins struct {
		name string
		wins int
	}

	var sorted []frameworkWins
	for name, count := range wins {
		sorted = append(sorted, frameworkWins{name, count})
	}
	sort.Slice(
		sorted, func(i, j int) bool {
			return sorted[i].wins > sorted[j].wins
		},
	)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Summary")
	tw.AppendHeader(table.Row{"Framework", "Fastest in"})
	total := len(groups)
	for _, fw := range sorted {
		tw.AppendRow(table.Row{fw.name, fmt.Sprintf("%d/%d benchmarks", fw.wins, total)})
	}
	tw.Render()

	fmt.Println()
	fmt.Println("Frameworks compared:")
	fmt.Println("  Autoinject - this library (github.com/BrunoMoraes-Z/autoinject)")
	fmt.Println("  Do         - generics-based DI (github.com/samber/do)")
	fmt.Println("  Dig        - reflection-based DI (go.uber.org/dig)")
	fmt.Println("  Fx         - full application framework (go.uber.org/fx)")
	fmt.Println()
}

func exportJSON(results []BenchmarkResult) {
	output := struct {
		Benchmarks []BenchmarkResult `json:"benchmarks"`
	}{
		Benchmarks: results,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	_ = os.WriteFile("benchmark_results.json", data, 0644)
	fmt.Println("Results exported to benchmark_results.json")
}
