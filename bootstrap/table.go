package bootstrap

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Method tags which orchestrator strategy produced a record.
type Method int

const (
	MethodVectorized Method = iota
	MethodLoop
)

// String returns the tidy-table method tag.
func (m Method) String() string {
	switch m {
	case MethodVectorized:
		return "vectorized"
	case MethodLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Record is one row of the tidy result table: the statistic value of a
// single bootstrap replicate at a single grid point, alongside the
// observed statistic of the full unresampled window.
type Record struct {
	Age      float64 // Grid point (window center)
	Run      int     // Replicate index, 1..R
	Stat     string  // Statistic name, e.g. "median", "q0.25"
	Value    float64 // Statistic of this replicate's draw
	Observed float64 // Statistic of the full window, no resampling
	Method   Method  // Producing strategy
}

// Summary is the per-grid-point view of a table, suitable for
// ribbon/interval plotting: one row per (age, statistic, method) with
// the observed value and, when the loop strategy produced the rows, the
// across-replicate mean.
type Summary struct {
	Age        float64
	Stat       string
	Observed   float64
	Method     Method
	RowMean    float64
	HasRowMean bool
}

type rowKey struct {
	age    float64
	stat   string
	method Method
}

// Table is the result of a bootstrap run: the tidy records plus the
// common resample size that produced them. Tables are produced, never
// updated in place; a fresh run yields a fresh table.
type Table struct {
	Records []Record
	M       int // Common resample size used for every window

	rowMeans map[rowKey]float64
}

// Filter returns the records matching a statistic name and method, in
// table order.
func (t *Table) Filter(stat string, method Method) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Stat == stat && r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// RowMean returns the across-replicate mean stored for a grid point and
// statistic, when the producing strategy recorded one.
func (t *Table) RowMean(age float64, stat string, method Method) (float64, bool) {
	v, ok := t.rowMeans[rowKey{age, stat, method}]
	return v, ok
}

// Summaries collapses the table to one row per (age, statistic, method),
// in first-appearance order.
func (t *Table) Summaries() []Summary {
	seen := make(map[rowKey]bool)
	var out []Summary
	for _, r := range t.Records {
		k := rowKey{r.Age, r.Stat, r.Method}
		if seen[k] {
			continue
		}
		seen[k] = true

		mean, ok := t.rowMeans[k]
		out = append(out, Summary{
			Age:        r.Age,
			Stat:       r.Stat,
			Observed:   r.Observed,
			Method:     r.Method,
			RowMean:    mean,
			HasRowMean: ok,
		})
	}
	return out
}

// Merge concatenates tables, typically the vectorized and loop runs of
// the same configuration, into one result table. The merged M is the
// inputs' common resample size; merging tables that disagree on m
// leaves M zero, since no single value would describe the records.
func Merge(tables ...*Table) *Table {
	merged := &Table{rowMeans: make(map[rowKey]float64)}
	first := true
	for _, t := range tables {
		if t == nil {
			continue
		}
		merged.Records = append(merged.Records, t.Records...)
		if first {
			merged.M = t.M
			first = false
		} else if t.M != merged.M {
			merged.M = 0
		}
		for k, v := range t.rowMeans {
			merged.rowMeans[k] = v
		}
	}
	return merged
}

// WriteCSV writes the tidy table with an age,run,stat,value,observed,
// method header. Persistence is the caller's concern; this is the hook
// for it.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"age", "run", "stat", "value", "observed", "method"}); err != nil {
		return err
	}
	for _, r := range t.Records {
		row := []string{
			strconv.FormatFloat(r.Age, 'g', -1, 64),
			strconv.Itoa(r.Run),
			r.Stat,
			strconv.FormatFloat(r.Value, 'g', -1, 64),
			strconv.FormatFloat(r.Observed, 'g', -1, 64),
			r.Method.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
