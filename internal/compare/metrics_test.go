package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name          string
		tp, fp, fn    int
		precision     float64
		recall        float64
		f1            float64
	}{
		{"all zero", 0, 0, 0, 0.0, 0.0, 0.0},
		{"perfect", 5, 0, 0, 1.0, 1.0, 1.0},
		{"nothing right", 0, 5, 5, 0.0, 0.0, 0.0},
		{"balanced half", 1, 1, 1, 0.5, 0.5, 0.5},
		{"precision only denominator", 0, 3, 0, 0.0, 0.0, 0.0},
		{"recall only denominator", 0, 0, 3, 0.0, 0.0, 0.0},
		{"typical", 90, 10, 30, 0.9, 0.75, 2 * 0.9 * 0.75 / (0.9 + 0.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMetrics(tt.tp, tt.fp, tt.fn)
			assert.InDelta(t, tt.precision, m.Precision, 1e-12)
			assert.InDelta(t, tt.recall, m.Recall, 1e-12)
			assert.InDelta(t, tt.f1, m.F1, 1e-12)
		})
	}
}

func TestComputeMetrics_Range(t *testing.T) {
	// Scores always land in [0,1] for non-negative counts
	counts := []int{0, 1, 7, 1000}
	for _, tp := range counts {
		for _, fp := range counts {
			for _, fn := range counts {
				m := ComputeMetrics(tp, fp, fn)
				assert.GreaterOrEqual(t, m.Precision, 0.0)
				assert.LessOrEqual(t, m.Precision, 1.0)
				assert.GreaterOrEqual(t, m.Recall, 0.0)
				assert.LessOrEqual(t, m.Recall, 1.0)
				assert.GreaterOrEqual(t, m.F1, 0.0)
				assert.LessOrEqual(t, m.F1, 1.0)
			}
		}
	}
}
