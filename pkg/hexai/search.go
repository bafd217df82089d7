package hexai

import (
	"math"
	"math/rand"
	"time"

	"github.com/KISSandDRY/Hex/pkg/hexboard"
)

// Solver holds the per-thread search state reused across GetMove calls:
// the node arena, playout scratch buffers, and RNG. A Solver must not
// be shared across goroutines, mirroring the teacher's thread-local
// treatment of pkg/mcts's per-call random source and the spec's
// per-thread scratch requirement.
type Solver struct {
	cfg      *Config
	pool     *pool
	scratch  *playoutScratch
	rng      *rand.Rand
	Listener *SearchListener
}

// NewSolver builds a Solver from cfg. A nil cfg falls back to
// DefaultConfig().
func NewSolver(cfg *Config) *Solver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Solver{
		cfg:     cfg,
		pool:    newPool(cfg.NodePoolSize),
		scratch: newPlayoutScratch(),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GetMove returns a legal move index for player on board under the
// given difficulty, or -1 if the position is terminal (already won) or
// the board is full. It runs one-ply tactical shortcuts first, then falls back to
// an arena-allocated RAVE-UCT search bounded by the difficulty's time
// budget.
func (s *Solver) GetMove(board *hexboard.Board, player hexboard.Cell, difficulty Difficulty) int {
	legal := board.GetLegalMoves()
	if len(legal) == 0 || board.CheckWin() != hexboard.Empty {
		return -1
	}

	opponent := hexboard.Opponent(player)

	for _, m := range legal {
		r, c := board.GetCoord(m)
		probe := board.Clone()
		probe.MakeMove(r, c, player)
		if probe.CheckWin() == player {
			return m
		}
	}

	for _, m := range legal {
		r, c := board.GetCoord(m)
		probe := board.Clone()
		probe.MakeMove(r, c, opponent)
		if probe.CheckWin() == opponent {
			return m
		}
	}

	return s.search(board, player, difficulty)
}

// search runs the time-bounded RAVE-UCT iteration loop and returns the
// root child with the most visits (lowest arena index breaks ties).
func (s *Solver) search(board *hexboard.Board, player hexboard.Cell, difficulty Difficulty) int {
	s.pool.reset()

	rootMoves := board.GetLegalMoves()
	sortUntriedMoves(rootMoves, board, player)

	root := s.pool.add(node{
		move:           noIndex,
		parent:         noIndex,
		playerWhoMoved: hexboard.Opponent(player),
		untried:        rootMoves,
	})

	deadline := time.Now().Add(time.Duration(difficulty.movetimeMs()) * time.Millisecond)
	bias := difficulty.raveBias()

	iterations := 0
	for {
		if iterations&deadlinePollMask == 0 {
			if time.Now().After(deadline) {
				break
			}
			if s.pool.nearCap() {
				break
			}
		}

		work := board.Clone()
		leaf := s.selectAndExpand(root, work, bias)
		result := s.scratch.playout(work, hexboard.Opponent(s.pool.get(leaf).playerWhoMoved), s.rng)
		s.backpropagate(leaf, result, work.Rows*work.Cols)

		iterations++

		if s.Listener != nil {
			best := s.bestRootChild(root)
			stats := IterationStats{Iterations: iterations, TreeSize: s.pool.size()}
			if best != noIndex {
				bn := s.pool.get(best)
				stats.BestMove, stats.BestVisits = bn.move, bn.visits
			}
			s.Listener.invokeIteration(stats)
		}
	}

	best := s.bestRootChild(root)
	if s.Listener != nil {
		stats := IterationStats{Iterations: iterations, TreeSize: s.pool.size()}
		if best != noIndex {
			bn := s.pool.get(best)
			stats.BestMove, stats.BestVisits = bn.move, bn.visits
		}
		s.Listener.invokeDone(stats)
	}

	if best == noIndex {
		return -1
	}
	return s.pool.get(best).move
}

// bestRootChild returns the arena index of root's highest-visit child,
// lowest index breaking ties, or noIndex if root has no children.
func (s *Solver) bestRootChild(root int32) int32 {
	rootNode := s.pool.get(root)
	best := int32(noIndex)
	var bestVisits int32 = -1
	for _, ch := range rootNode.children {
		v := s.pool.get(ch).visits
		if v > bestVisits {
			bestVisits = v
			best = ch
		}
	}
	return best
}

// selectAndExpand descends from root, applying each selected child's
// move to work, until it reaches a node with an untried move or no
// children; it then expands one child (if any untried move remains)
// and returns the resulting leaf's arena index.
func (s *Solver) selectAndExpand(root int32, work *hexboard.Board, bias float64) int32 {
	current := root

	for {
		n := s.pool.get(current)
		if len(n.untried) > 0 || len(n.children) == 0 {
			break
		}
		current = s.selectChild(current, bias)
		r, c := work.GetCoord(s.pool.get(current).move)
		work.MakeMove(r, c, s.pool.get(current).playerWhoMoved)
	}

	n := s.pool.get(current)
	if len(n.untried) == 0 {
		return current
	}

	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	childPlayer := hexboard.Opponent(n.playerWhoMoved)
	r, c := work.GetCoord(move)
	work.MakeMove(r, c, childPlayer)

	var untried []int
	if work.CheckWin() == hexboard.Empty {
		untried = work.GetLegalMoves()
		sortUntriedMoves(untried, work, hexboard.Opponent(childPlayer))
	}

	child := s.pool.add(node{
		move:           move,
		parent:         int(current),
		playerWhoMoved: childPlayer,
		untried:        untried,
	})
	n.children = append(n.children, child)
	return child
}

// selectChild picks the child of parent maximizing the RAVE-UCT score.
func (s *Solver) selectChild(parent int32, bias float64) int32 {
	p := s.pool.get(parent)
	lnParentVisits := math.Log(float64(p.visits) + 1)

	best := p.children[0]
	bestScore := math.Inf(-1)

	for _, ch := range p.children {
		c := s.pool.get(ch)
		v := float64(c.visits) + raveBetaEpsilon
		rv := c.raveVisits + raveBetaEpsilon
		w := c.wins / v
		rw := c.raveWins / rv

		beta := 1.0
		if c.visits > 0 {
			beta = rv / (rv + v + bias*v*w)
		}

		q := (1-beta)*w + beta*rw
		explore := UCTExploration * math.Sqrt(lnParentVisits/v)
		score := q + explore

		if score > bestScore {
			bestScore = score
			best = ch
		}
	}
	return best
}

// backpropagate walks from leaf to the root, updating visit/win
// counters and, on every ancestor's children, RAVE credit for moves
// that appear in the winner's playout history. The membership test
// uses the scratch RAVE lookup bitmap (spec's per-thread RAVE lookup
// buffer) instead of allocating a set per call.
func (s *Solver) backpropagate(leaf int32, result playoutResult, boardSize int) {
	s.scratch.ensureSize(boardSize)
	lookup := s.scratch.raveLookup
	for _, m := range result.winnerMoves {
		lookup[m] = true
	}

	for idx := leaf; idx != noIndex; {
		n := s.pool.get(idx)
		n.visits++
		if n.playerWhoMoved == result.winner {
			n.wins++
		}

		for _, ch := range n.children {
			c := s.pool.get(ch)
			if c.move >= 0 && c.move < len(lookup) && lookup[c.move] {
				c.raveVisits++
				if c.playerWhoMoved == result.winner {
					c.raveWins++
				}
			}
		}

		idx = int32(n.parent)
	}

	for _, m := range result.winnerMoves {
		lookup[m] = false
	}
}
