package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := `age,value
3.0,10
0.0,1
1.0,2
2.0,3
`
	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader error: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d; want 4", s.Len())
	}
	// Rows arrive out of order; the loader must return a sorted series.
	if s.Ages[0] != 0 || s.Values[0] != 1 {
		t.Errorf("first observation = (%v, %v); want (0, 1)", s.Ages[0], s.Values[0])
	}
	if s.Ages[3] != 3 || s.Values[3] != 10 {
		t.Errorf("last observation = (%v, %v); want (3, 10)", s.Ages[3], s.Values[3])
	}
}

func TestLoadCSVCustomColumns(t *testing.T) {
	data := `site,age_ma,d13c
A,12.5,0.8
A,10.0,0.3
`
	opts := DefaultCSVOptions()
	opts.AgeColumn = "age_ma"
	opts.ValueColumn = "d13c"

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d; want 2", s.Len())
	}
	if s.Ages[0] != 10.0 || s.Values[0] != 0.3 {
		t.Errorf("first observation = (%v, %v); want (10, 0.3)", s.Ages[0], s.Values[0])
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	data := "1.0,2.0\n2.0,3.0\n"
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader error: %v", err)
	}
	if s.Len() != 2 || s.Values[1] != 3.0 {
		t.Errorf("unexpected series: ages=%v values=%v", s.Ages, s.Values)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"MissingAgeColumn", "time,value\n1,2\n"},
		{"BadValue", "age,value\n1,abc\n"},
		{"BadAge", "age,value\nxyz,2\n"},
		{"Empty", "age,value\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadCSVFromReader(strings.NewReader(tc.data), nil); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}
