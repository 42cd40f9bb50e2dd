package yuletree

// constSource always returns the same draw.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// seqSource cycles through a fixed list of draws.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
