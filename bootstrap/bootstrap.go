// Package bootstrap orchestrates the moving-window m-out-of-n bootstrap.
package bootstrap

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/geoboot/resample"
	"github.com/sartorproj/geoboot/timeseries"
	"github.com/sartorproj/geoboot/window"
)

// plan is the shared preparation of both strategies: the grid, the
// window per grid point, and the common resample size m, all resolved
// once before any randomness is consumed.
type plan struct {
	cfg     *Config
	grid    []float64
	windows []window.Window
	m       int
	names   []string
}

func newPlan(s *timeseries.Series, cfg *Config) (*plan, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidConfig)
	}

	grid, err := window.BuildGrid(s.AgeMin(), s.AgeMax(), cfg.GridStep)
	if err != nil {
		return nil, err
	}
	windows, err := window.Slice(s, grid, cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	m, err := window.MinCount(windows)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(cfg.Stats))
	for i, sp := range cfg.Stats {
		names[i] = sp.Name()
	}

	return &plan{cfg: cfg, grid: grid, windows: windows, m: m, names: names}, nil
}

// index locates the record for (grid point i, statistic si, replicate t)
// in the flat output slice. Run identity comes from these indices, so
// the table content is the same no matter how the work is scheduled.
func (p *plan) index(i, si, t int) int {
	return (i*len(p.cfg.Stats)+si)*p.cfg.Replicates + t
}

// RunVectorized bootstraps the series by materializing, per grid point,
// all R replicate draws of size m at once and evaluating each requested
// statistic over the batch. Draws come from a per-window PCG stream
// derived from Config.Seed, or from process entropy when Seed is zero.
// Output is statistically equivalent to RunLoop, not bit-identical.
func RunVectorized(s *timeseries.Series, cfg *Config) (*Table, error) {
	p, err := newPlan(s, cfg)
	if err != nil {
		return nil, err
	}

	base := p.cfg.Seed
	if base == 0 {
		base = resample.EntropySeed()
	}

	records := make([]Record, len(p.grid)*len(p.cfg.Stats)*p.cfg.Replicates)
	err = p.forEachWindow(func(i int) error {
		win := p.windows[i]
		rng := rand.New(rand.NewSource(base ^ resample.PairSeed(i, 0)))

		// The whole replicate batch for this window, drawn up front.
		draws := make([][]float64, p.cfg.Replicates)
		for t := range draws {
			draw, err := resample.Draw(win.Values, p.m, rng)
			if err != nil {
				return fmt.Errorf("grid point %v: %w", win.Center, err)
			}
			draws[t] = draw
		}

		for si, sp := range p.cfg.Stats {
			observed, err := sp.Evaluate(win.Values)
			if err != nil {
				return fmt.Errorf("grid point %v: %w", win.Center, err)
			}
			for t, draw := range draws {
				v, err := sp.Evaluate(draw)
				if err != nil {
					return fmt.Errorf("grid point %v: %w", win.Center, err)
				}
				records[p.index(i, si, t)] = Record{
					Age:      win.Center,
					Run:      t + 1,
					Stat:     p.names[si],
					Value:    v,
					Observed: observed,
					Method:   MethodVectorized,
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Table{Records: records, M: p.m}, nil
}

// RunLoop bootstraps the series with explicit iteration over grid index
// i and replicate index t. Each cell draws with the derived seed
// PairSeed(i, t), so two runs over the same inputs are bit-identical and
// any single cell of the table can be regenerated in isolation. The
// across-replicate mean of each (grid point, statistic) row is stored as
// its row mean.
func RunLoop(s *timeseries.Series, cfg *Config) (*Table, error) {
	p, err := newPlan(s, cfg)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(p.grid)*len(p.cfg.Stats)*p.cfg.Replicates)
	rowMeanVals := make([]float64, len(p.grid)*len(p.cfg.Stats))
	err = p.forEachWindow(func(i int) error {
		win := p.windows[i]
		for si, sp := range p.cfg.Stats {
			observed, err := sp.Evaluate(win.Values)
			if err != nil {
				return fmt.Errorf("grid point %v: %w", win.Center, err)
			}

			vals := make([]float64, p.cfg.Replicates)
			for t := 0; t < p.cfg.Replicates; t++ {
				draw, err := resample.DrawSeeded(win.Values, p.m, resample.PairSeed(i, t))
				if err != nil {
					return fmt.Errorf("grid point %v replicate %d: %w", win.Center, t+1, err)
				}
				v, err := sp.Evaluate(draw)
				if err != nil {
					return fmt.Errorf("grid point %v replicate %d: %w", win.Center, t+1, err)
				}
				vals[t] = v
				records[p.index(i, si, t)] = Record{
					Age:      win.Center,
					Run:      t + 1,
					Stat:     p.names[si],
					Value:    v,
					Observed: observed,
					Method:   MethodLoop,
				}
			}
			rowMeanVals[i*len(p.cfg.Stats)+si] = stat.Mean(vals, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rowMeans := make(map[rowKey]float64, len(rowMeanVals))
	for i, win := range p.windows {
		for si, name := range p.names {
			rowMeans[rowKey{win.Center, name, MethodLoop}] = rowMeanVals[i*len(p.cfg.Stats)+si]
		}
	}

	return &Table{Records: records, M: p.m, rowMeans: rowMeans}, nil
}

// forEachWindow runs fn over every grid index on a small worker pool.
// Workers stride over the indices and write only to pre-assigned regions
// of the output, so no synchronization beyond the final join is needed.
// The first error aborts the run.
func (p *plan) forEachWindow(fn func(i int) error) error {
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(p.grid) {
		workers = len(p.grid)
	}

	if workers <= 1 {
		for i := range p.grid {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(p.grid); i += workers {
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
