package core

// Score tracks the current game score and the best score seen in this process.
type Score struct {
	Current int
	Best    int
}

// ApplyMerges adds every merged value to Current, then raises Best if needed.
func (s Score) ApplyMerges(merges []int) Score {
	for _, v := range merges {
		s.Current += v
	}
	s.Best = max(s.Best, s.Current)
	return s
}

// Reset starts a new game's score. Best is kept.
func (s Score) Reset() Score {
	s.Current = 0
	return s
}
