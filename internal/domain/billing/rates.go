package billing

import "strconv"

// RateSet is an ordered set of tax rates (percentages).
// Rates keep their first-seen order, duplicates are ignored, and
// non-positive rates are never admitted.
type RateSet struct {
	rates []float64
}

// Add inserts a rate into the set. Rates <= 0 and rates already present
// are silently dropped.
func (s *RateSet) Add(rate float64) {
	if rate <= 0 || s.Contains(rate) {
		return
	}
	s.rates = append(s.rates, rate)
}

// Contains reports whether the rate is already in the set.
func (s *RateSet) Contains(rate float64) bool {
	for _, r := range s.rates {
		if r == rate {
			return true
		}
	}
	return false
}

// Len returns the number of distinct rates in the set.
func (s *RateSet) Len() int {
	return len(s.rates)
}

// Values returns the rates in first-seen order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *RateSet) Values() []float64 {
	out := make([]float64, len(s.rates))
	copy(out, s.rates)
	return out
}

// RangeLabel returns the display string for the set: "0" when empty, the
// single rate when one element, and "min-max" otherwise. The range form
// collapses middle values (e.g. {5, 12, 18} -> "5-18"); receipts show the
// span of rates applied, not an enumeration.
func (s *RateSet) RangeLabel() string {
	switch len(s.rates) {
	case 0:
		return "0"
	case 1:
		return formatRate(s.rates[0])
	}

	min, max := s.rates[0], s.rates[0]
	for _, r := range s.rates[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return formatRate(min) + "-" + formatRate(max)
}

// formatRate renders a rate without trailing zeros: 5 -> "5", 2.5 -> "2.5".
func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
