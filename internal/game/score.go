package game

// Score accumulates points for a session. The total never decreases.
type Score struct {
	total int
}

// Add adds n points. Negative values are ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.total += n
	}
}

// Total returns the accumulated points.
func (s *Score) Total() int {
	return s.total
}
