package game

// Score tracks the current round's score and the best seen this session.
type Score struct {
	current int
	best    int
}

// Increment adds one point and raises best when it is passed.
func (s *Score) Increment() {
	s.current++
	if s.current > s.best {
		s.best = s.current
	}
}

// Reset starts a new round. Best is kept.
func (s *Score) Reset() { s.current = 0 }

func (s *Score) Current() int { return s.current }
func (s *Score) Best() int    { return s.best }
