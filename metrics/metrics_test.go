package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mlprep/pkg/errors"
)

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "3-4-5 triangle",
			a:         []float64{1, 0, 0},
			b:         []float64{1, 3, 4},
			want:      5.0,
			tolerance: 1e-12,
		},
		{
			name:      "identical vectors",
			a:         []float64{1, 2.5, -3},
			b:         []float64{1, 2.5, -3},
			want:      0.0,
			tolerance: 1e-12,
		},
		{
			name:      "negative components",
			a:         []float64{1, -1},
			b:         []float64{1, 1},
			want:      2.0,
			tolerance: 1e-12,
		},
		{
			name: "empty vectors",
			a:    []float64{},
			b:    []float64{},
			want: 0.0,
		},
		{
			name:    "dimension mismatch",
			a:       []float64{1, 2, 3},
			b:       []float64{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EuclideanDistance(tt.a, tt.b)

			if (err != nil) != tt.wantErr {
				t.Fatalf("EuclideanDistance() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var de *errors.DimensionError
				if !errors.As(err, &de) {
					t.Errorf("expected DimensionError, got %T", err)
				}
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("EuclideanDistance() = %v, want %v", got, tt.want)
			}

			sq, err := SquaredEuclideanDistance(tt.a, tt.b)
			if err != nil {
				t.Fatalf("SquaredEuclideanDistance() error = %v", err)
			}
			if math.Abs(sq-tt.want*tt.want) > 1e-9 {
				t.Errorf("SquaredEuclideanDistance() = %v, want %v", sq, tt.want*tt.want)
			}
		})
	}
}

func TestLabelCounts(t *testing.T) {
	counts := LabelCounts([]string{"a", "b", "a", "c", "a"})

	want := map[string]int{"a": 3, "b": 1, "c": 1}
	if len(counts) != len(want) {
		t.Fatalf("LabelCounts() = %v, want %v", counts, want)
	}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("counts[%q] = %d, want %d", k, counts[k], v)
		}
	}
}

func TestUniqueLabels(t *testing.T) {
	got := UniqueLabels([]string{"7", "0", "7", "3", "0"})
	want := []string{"0", "3", "7"}
	if len(got) != len(want) {
		t.Fatalf("UniqueLabels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueLabels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(UniqueLabels(nil)) != 0 {
		t.Error("UniqueLabels(nil) should be empty")
	}
}

func TestFormatLabelCounts(t *testing.T) {
	got := FormatLabelCounts(map[string]int{"b": 2, "a": 5})
	want := "a 5 dataPoints\nb 2 dataPoints\n"
	if got != want {
		t.Errorf("FormatLabelCounts() = %q, want %q", got, want)
	}
}
