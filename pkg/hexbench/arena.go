// Package hexbench runs self-play match series between hexai Solver
// configurations, adapting the teacher's concurrent versus-arena
// (pkg/bench/versus_arena.go) from a generic MoveLike/PositionLike tree
// matchup to a fixed Board/Solver matchup.
package hexbench

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KISSandDRY/Hex/pkg/hexai"
	"github.com/KISSandDRY/Hex/pkg/hexboard"
)

// MatchResult is the outcome of one game, from the perspective of
// whichever Solver played as "player 1" for that game.
type MatchResult int

const (
	Pl1Win MatchResult = 1
	Pl2Win MatchResult = -1
	// Draw never occurs on a completed Hex board (see hexboard invariants)
	// but is kept so the result type mirrors the teacher's three-way
	// VersusMatchResult exactly.
	Draw MatchResult = 0
)

// Stats accumulates game outcomes with atomic counters, safe for
// concurrent workers to update without a lock.
type Stats struct {
	p1Wins uint32
	p2Wins uint32
	draws  uint32
}

func (s *Stats) Total() int  { return s.P1Wins() + s.P2Wins() + s.Draws() }
func (s *Stats) P1Wins() int { return int(atomic.LoadUint32(&s.p1Wins)) }
func (s *Stats) P2Wins() int { return int(atomic.LoadUint32(&s.p2Wins)) }
func (s *Stats) Draws() int  { return int(atomic.LoadUint32(&s.draws)) }

// WorkerInfo is reported to a Listener as a single worker finishes its
// share of the match series.
type WorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	P1Wins        int
	P2Wins        int
	Draws         int
}

// SummaryInfo is reported once, after every worker has finished.
type SummaryInfo struct {
	TotalGames int
	P1Wins     int
	P2Wins     int
	Draws      int
	Workers    int
}

// Listener observes a VersusArena's progress, mirroring the shape of
// the teacher's ListenerLike[T] (pkg/bench/listener.go).
type Listener interface {
	OnFinishedWork(WorkerInfo)
	Summary(SummaryInfo)
}

// NopListener discards every callback; the default when no Listener is
// supplied to Start.
type NopListener struct{}

func (NopListener) OnFinishedWork(WorkerInfo) {}
func (NopListener) Summary(SummaryInfo)       {}

// Contestant pairs a difficulty with its own Config, letting the same
// Solver type face itself at different strengths.
type Contestant struct {
	Name       string
	Difficulty hexai.Difficulty
	Config     *hexai.Config
}

// VersusArena plays a series of self-play games between two
// Contestants on a fixed board size, splitting the series across
// NThreads worker goroutines. Each worker owns its own pair of Solvers,
// so no search state is ever shared between goroutines.
type VersusArena struct {
	Stats
	Rows, Cols int
	Player1    Contestant
	Player2    Contestant
	NGames     uint
	NThreads   uint

	wg       sync.WaitGroup
	finished atomic.Bool
	ctx      context.Context
}

// NewVersusArena builds an arena for boards of the given size, with a
// default of 100 games across 2 worker threads.
func NewVersusArena(rows, cols int, p1, p2 Contestant) *VersusArena {
	return &VersusArena{
		Rows:     rows,
		Cols:     cols,
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nThreads uint) {
	if nGames > 0 {
		va.NGames = nGames
	}
	if nThreads > 0 {
		va.NThreads = nThreads
	}
}

func (va *VersusArena) Wait() {
	va.wg.Wait()
	for !va.finished.Load() {
		runtime.Gosched()
	}
}

// Start distributes NGames as evenly as possible across NThreads
// workers and returns immediately; call Wait to block for completion.
func (va *VersusArena) Start(listener Listener) {
	if listener == nil {
		listener = NopListener{}
	}
	va.finished.Store(false)

	nGames := va.NGames / va.NThreads
	rest := uint(0)
	if va.NThreads > 1 {
		rest = va.NGames % va.NThreads
	}

	for i := uint(0); i < va.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)
		go va.worker(int(i), int(nGames+delta), listener)
	}
}

func (va *VersusArena) worker(id, nGames int, listener Listener) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	solver1 := hexai.NewSolver(va.Player1.Config)
	solver2 := hexai.NewSolver(va.Player2.Config)

	local := Stats{}

Loop:
	for i := 0; i < nGames; i++ {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		p1First := rng.Intn(2) == 0
		var result MatchResult
		if p1First {
			result = playGame(va.Rows, va.Cols, solver1, va.Player1.Difficulty, solver2, va.Player2.Difficulty)
		} else {
			flipped := playGame(va.Rows, va.Cols, solver2, va.Player2.Difficulty, solver1, va.Player1.Difficulty)
			result = -flipped
		}

		switch result {
		case Draw:
			atomic.AddUint32(&va.draws, 1)
			local.draws++
		case Pl1Win:
			atomic.AddUint32(&va.p1Wins, 1)
			local.p1Wins++
		case Pl2Win:
			atomic.AddUint32(&va.p2Wins, 1)
			local.p2Wins++
		}
	}

	listener.OnFinishedWork(WorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: va.Total(),
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
	})
	va.wg.Done()

	if id == 0 {
		va.wg.Wait()
		listener.Summary(SummaryInfo{
			TotalGames: va.Total(),
			P1Wins:     va.P1Wins(),
			P2Wins:     va.P2Wins(),
			Draws:      va.Draws(),
			Workers:    int(va.NThreads),
		})
		va.finished.Store(true)
	}
}

// playGame plays one game to completion, first to move using solver1.
// Hex admits no draws (see hexboard's win invariant), so the loop is
// bounded by the number of cells on the board.
func playGame(rows, cols int, solver1 *hexai.Solver, diff1 hexai.Difficulty, solver2 *hexai.Solver, diff2 hexai.Difficulty) MatchResult {
	board := hexboard.NewBoard(rows, cols)
	current := hexboard.Player1

	for move := 0; move < rows*cols; move++ {
		var idx int
		if current == hexboard.Player1 {
			idx = solver1.GetMove(board, current, diff1)
		} else {
			idx = solver2.GetMove(board, current, diff2)
		}
		if idx < 0 {
			return Draw
		}

		r, c := board.GetCoord(idx)
		board.MakeMove(r, c, current)

		if winner := board.CheckWin(); winner != hexboard.Empty {
			if winner == hexboard.Player1 {
				return Pl1Win
			}
			return Pl2Win
		}

		current = hexboard.Opponent(current)
	}

	return Draw
}
