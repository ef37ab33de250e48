package timeseries

import (
	"math"
	"testing"
)

func TestNewSortsByAge(t *testing.T) {
	s, err := New([]float64{3, 0, 2, 1}, []float64{10, 1, 3, 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	wantAges := []float64{0, 1, 2, 3}
	wantValues := []float64{1, 2, 3, 10}
	for i := range wantAges {
		if s.Ages[i] != wantAges[i] {
			t.Errorf("Ages[%d] = %v; want %v", i, s.Ages[i], wantAges[i])
		}
		if s.Values[i] != wantValues[i] {
			t.Errorf("Values[%d] = %v; want %v", i, s.Values[i], wantValues[i])
		}
	}
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestNewDuplicateAgesStable(t *testing.T) {
	// Two samples at age 5 must keep their input order.
	s, err := New([]float64{5, 1, 5}, []float64{20, 1, 30})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if s.Values[1] != 20 || s.Values[2] != 30 {
		t.Errorf("duplicate ages reordered: got values %v", s.Values)
	}
}

func TestAgeBounds(t *testing.T) {
	s, _ := New([]float64{2, 7, 4}, []float64{1, 2, 3})
	if s.AgeMin() != 2 {
		t.Errorf("AgeMin = %v; want 2", s.AgeMin())
	}
	if s.AgeMax() != 7 {
		t.Errorf("AgeMax = %v; want 7", s.AgeMax())
	}

	empty := &Series{}
	if !math.IsNaN(empty.AgeMin()) || !math.IsNaN(empty.AgeMax()) {
		t.Error("empty series should report NaN age bounds")
	}
}

func TestValuesBetweenClosedInterval(t *testing.T) {
	s, _ := New([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 10})

	// Window of width 1 centered on 1 keeps both endpoints.
	got := s.ValuesBetween(0.5, 1.5)
	want := []float64{2}
	if len(got) != len(want) || got[0] != 2 {
		t.Errorf("ValuesBetween(0.5, 1.5) = %v; want %v", got, want)
	}

	// Endpoints are inclusive.
	got = s.ValuesBetween(1, 3)
	if len(got) != 3 || got[0] != 2 || got[2] != 10 {
		t.Errorf("ValuesBetween(1, 3) = %v; want [2 3 10]", got)
	}

	// Empty result is legal.
	if got := s.ValuesBetween(4.5, 5.5); len(got) != 0 {
		t.Errorf("ValuesBetween(4.5, 5.5) = %v; want empty", got)
	}
}

func TestValuesBetweenCopies(t *testing.T) {
	s, _ := New([]float64{0, 1}, []float64{1, 2})
	got := s.ValuesBetween(0, 1)
	got[0] = 99
	if s.Values[0] != 1 {
		t.Error("ValuesBetween must not alias the series storage")
	}
}

func TestCountBetween(t *testing.T) {
	s, _ := New([]float64{0, 1, 1, 2, 3}, []float64{1, 2, 3, 4, 5})
	if n := s.CountBetween(1, 2); n != 3 {
		t.Errorf("CountBetween(1, 2) = %d; want 3", n)
	}
	if n := s.CountBetween(10, 20); n != 0 {
		t.Errorf("CountBetween(10, 20) = %d; want 0", n)
	}
}

func TestMeanMedian(t *testing.T) {
	s, _ := New([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 10})
	if math.Abs(s.Mean()-4) > 1e-12 {
		t.Errorf("Mean = %v; want 4", s.Mean())
	}
	if math.Abs(s.Median()-2.5) > 1e-12 {
		t.Errorf("Median = %v; want 2.5", s.Median())
	}

	odd, _ := New([]float64{0, 1, 2}, []float64{3, 1, 2})
	if odd.Median() != 2 {
		t.Errorf("Median = %v; want 2", odd.Median())
	}
}

func TestCopyIsDeep(t *testing.T) {
	s, _ := New([]float64{0, 1}, []float64{1, 2})
	c := s.Copy()
	c.Values[0] = 99
	c.Ages[0] = 99
	if s.Values[0] != 1 || s.Ages[0] != 0 {
		t.Error("Copy must not share storage with the original")
	}
}
