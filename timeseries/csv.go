package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	AgeColumn   string // Column name for ages (default: "age")
	ValueColumn string // Column name for values (default: "value")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		AgeColumn:   "age",
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader.
//
// With a header row, the age and value columns are located by name;
// without one, column 0 is the age and column 1 is the value.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	ageIdx, valueIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		ageIdx, valueIdx = -1, -1
		for i, col := range header {
			name := strings.TrimSpace(strings.ToLower(col))
			switch name {
			case strings.ToLower(opts.AgeColumn):
				ageIdx = i
			case strings.ToLower(opts.ValueColumn):
				valueIdx = i
			}
		}
		if ageIdx < 0 {
			return nil, fmt.Errorf("timeseries: age column %q not found in header", opts.AgeColumn)
		}
		if valueIdx < 0 {
			return nil, fmt.Errorf("timeseries: value column %q not found in header", opts.ValueColumn)
		}
	}

	var ages, values []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if ageIdx >= len(record) || valueIdx >= len(record) {
			return nil, fmt.Errorf("timeseries: row %d has %d fields, need at least %d",
				row, len(record), max(ageIdx, valueIdx)+1)
		}

		age, err := strconv.ParseFloat(strings.TrimSpace(record[ageIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: invalid age %q", row, record[ageIdx])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: invalid value %q", row, record[valueIdx])
		}

		ages = append(ages, age)
		values = append(values, value)
	}

	if len(ages) == 0 {
		return nil, errors.New("timeseries: no observations found")
	}

	return New(ages, values)
}
