package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateSetIgnoresDuplicatesAndNonPositive(t *testing.T) {
	var s RateSet
	s.Add(5)
	s.Add(5)
	s.Add(0)
	s.Add(-9)
	s.Add(12)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{5, 12}, s.Values())
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(18))
}

func TestRateSetPreservesInsertionOrder(t *testing.T) {
	var s RateSet
	for _, r := range []float64{18, 5, 12, 5, 18} {
		s.Add(r)
	}
	assert.Equal(t, []float64{18, 5, 12}, s.Values())
}

func TestRateSetValuesReturnsCopy(t *testing.T) {
	var s RateSet
	s.Add(5)

	vals := s.Values()
	vals[0] = 99

	assert.Equal(t, []float64{5}, s.Values())
}

func TestRangeLabel(t *testing.T) {
	tests := []struct {
		name  string
		rates []float64
		want  string
	}{
		{"empty set", nil, "0"},
		{"single rate", []float64{7}, "7"},
		{"two rates", []float64{5, 12}, "5-12"},
		{"middle values collapse", []float64{5, 12, 18}, "5-18"},
		{"unordered input", []float64{18, 5, 12}, "5-18"},
		{"fractional rate", []float64{2.5}, "2.5"},
		{"fractional range", []float64{2.5, 14}, "2.5-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s RateSet
			for _, r := range tt.rates {
				s.Add(r)
			}
			assert.Equal(t, tt.want, s.RangeLabel())
		})
	}
}
