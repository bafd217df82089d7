package hexai

// IterationStats is the snapshot handed to a SearchListener. It mirrors
// the shape of the teacher's ListenerTreeStats (pkg/mcts/stats_listener.go)
// cut down to what the arena tracks.
type IterationStats struct {
	Iterations int
	TreeSize   int
	ElapsedMs  int64
	BestMove   int
	BestVisits int32
}

// SearchListener is an optional hook pair a caller can attach to a
// Solver to observe progress, the same role the teacher's
// StatsListener[T] plays for pkg/mcts. There is no logging output by
// default; a caller wanting UCI-style progress lines wires OnIteration
// itself, the way examples/chess/main.go wires OnCycle.
type SearchListener struct {
	onIteration func(IterationStats)
	onDone      func(IterationStats)
	nIterations int
}

// NewSearchListener returns an empty listener that fires OnIteration
// every iteration by default.
func NewSearchListener() *SearchListener {
	return &SearchListener{nIterations: 1}
}

// OnIteration attaches a callback invoked every IterationInterval
// iterations during search.
func (l *SearchListener) OnIteration(fn func(IterationStats)) *SearchListener {
	l.onIteration = fn
	return l
}

// OnDone attaches a callback invoked once, after search stops.
func (l *SearchListener) OnDone(fn func(IterationStats)) *SearchListener {
	l.onDone = fn
	return l
}

// IterationInterval sets how many iterations elapse between
// OnIteration calls; values below 1 are clamped to 1.
func (l *SearchListener) IterationInterval(n int) *SearchListener {
	if n < 1 {
		n = 1
	}
	l.nIterations = n
	return l
}

func (l *SearchListener) invokeIteration(stats IterationStats) {
	if l.onIteration != nil && stats.Iterations%l.nIterations == 0 {
		l.onIteration(stats)
	}
}

func (l *SearchListener) invokeDone(stats IterationStats) {
	if l.onDone != nil {
		l.onDone(stats)
	}
}
