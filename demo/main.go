// Package main demonstrates the moving-window bootstrap on a synthetic
// geochemical record and cross-validates the two orchestrator strategies.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/geoboot/bootstrap"
	"github.com/sartorproj/geoboot/stats"
	"github.com/sartorproj/geoboot/timeseries"
)

// RunReport holds one strategy's output for JSON export.
type RunReport struct {
	Method    string              `json:"method"`
	M         int                 `json:"m"`
	NRecords  int                 `json:"n_records"`
	Summaries []bootstrap.Summary `json:"summaries"`
}

// Report is the full demo output.
type Report struct {
	NObs       int         `json:"n_obs"`
	AgeMin     float64     `json:"age_min"`
	AgeMax     float64     `json:"age_max"`
	WindowSize float64     `json:"window_size"`
	GridStep   float64     `json:"grid_step"`
	Replicates int         `json:"replicates"`
	Runs       []RunReport `json:"runs"`
}

// syntheticRecord builds an irregularly sampled proxy curve: a long
// trend plus an excursion around age 45, with Gaussian measurement
// noise and deliberately uneven sampling density (the upper third of
// the record is sampled three times as densely as the rest).
func syntheticRecord() *timeseries.Series {
	src := rand.NewSource(2024)
	rng := rand.New(src)
	noise := distuv.Normal{Mu: 0, Sigma: 0.4, Src: src}

	var ages, values []float64
	sample := func(age float64) {
		signal := 2 + 0.02*age + 1.5*math.Exp(-math.Pow((age-45)/8, 2))
		ages = append(ages, age)
		values = append(values, signal+noise.Rand())
	}

	for i := 0; i < 200; i++ {
		sample(100 * rng.Float64())
	}
	for i := 0; i < 400; i++ {
		sample(100 * (2 + rng.Float64()) / 3)
	}

	s, err := timeseries.New(ages, values)
	if err != nil {
		panic(err)
	}
	s.Name = "synthetic d13c"
	return s
}

func main() {
	series := syntheticRecord()
	fmt.Printf("Record: %s, %d observations over [%.1f, %.1f]\n",
		series.Name, series.Len(), series.AgeMin(), series.AgeMax())

	cfg := bootstrap.DefaultConfig()
	cfg.WindowSize = 10
	cfg.GridStep = 2.5
	cfg.Replicates = 1000
	cfg.Seed = 42
	cfg.Stats = []stats.Spec{
		stats.Median(),
		stats.Quantile(0.25),
		stats.Quantile(0.75),
	}

	vec, err := bootstrap.RunVectorized(series, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectorized run: %v\n", err)
		os.Exit(1)
	}
	loop, err := bootstrap.RunLoop(series, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loop run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Common resample size m = %d, %d records per strategy\n\n",
		loop.M, len(loop.Records))

	compareStrategies(vec, loop, cfg.Replicates)

	report := Report{
		NObs:       series.Len(),
		AgeMin:     series.AgeMin(),
		AgeMax:     series.AgeMax(),
		WindowSize: cfg.WindowSize,
		GridStep:   cfg.GridStep,
		Replicates: cfg.Replicates,
		Runs: []RunReport{
			{Method: "vectorized", M: vec.M, NRecords: len(vec.Records), Summaries: vec.Summaries()},
			{Method: "loop", M: loop.M, NRecords: len(loop.Records), Summaries: loop.Summaries()},
		},
	}
	if err := writeOutputs(report, bootstrap.Merge(vec, loop)); err != nil {
		fmt.Fprintf(os.Stderr, "writing outputs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nWrote bootstrap_report.json and bootstrap_table.csv")
}

// compareStrategies prints the per-grid-point medians of both
// strategies side by side with their relative disagreement.
func compareStrategies(vec, loop *bootstrap.Table, replicates int) {
	type key struct {
		age  float64
		stat string
	}
	sums := make(map[key]float64)
	for _, r := range vec.Records {
		sums[key{r.Age, r.Stat}] += r.Value
	}

	var rows []bootstrap.Summary
	for _, sm := range loop.Summaries() {
		if sm.Stat == "median" {
			rows = append(rows, sm)
		}
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].Age < rows[b].Age })

	fmt.Println("age     observed  loop mean  vectorized mean  rel diff")
	worst := 0.0
	for _, sm := range rows {
		vecMean := sums[key{sm.Age, sm.Stat}] / float64(replicates)
		rel := math.Abs(vecMean-sm.RowMean) / math.Abs(sm.RowMean)
		if rel > worst {
			worst = rel
		}
		fmt.Printf("%6.1f  %8.4f  %9.4f  %15.4f  %7.4f%%\n",
			sm.Age, sm.Observed, sm.RowMean, vecMean, 100*rel)
	}
	fmt.Printf("\nWorst cross-strategy disagreement: %.4f%%\n", 100*worst)
}

func writeOutputs(report Report, merged *bootstrap.Table) error {
	jf, err := os.Create("bootstrap_report.json")
	if err != nil {
		return err
	}
	defer jf.Close()
	enc := json.NewEncoder(jf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	cf, err := os.Create("bootstrap_table.csv")
	if err != nil {
		return err
	}
	defer cf.Close()
	return merged.WriteCSV(cf)
}
