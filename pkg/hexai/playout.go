package hexai

import (
	"math/rand"

	"github.com/KISSandDRY/Hex/pkg/hexboard"
)

// playoutScratch holds the per-thread buffers reused across playouts:
// the swap-and-pop legal-move set, its inverse position map, and each
// player's move history (for RAVE credit). Buffers grow on demand to N
// and are never shrunk within a Solver's lifetime.
type playoutScratch struct {
	simMoves   []int
	simMovePos []int32 // simMovePos[i] = index of cell i within simMoves, or -1
	p1Moves    []int
	p2Moves    []int
	raveLookup []bool
}

func newPlayoutScratch() *playoutScratch {
	return &playoutScratch{
		simMoves:   make([]int, 0, 400),
		simMovePos: make([]int32, 0, 400),
		p1Moves:    make([]int, 0, 200),
		p2Moves:    make([]int, 0, 200),
		raveLookup: make([]bool, 0, 400),
	}
}

func (s *playoutScratch) ensureSize(n int) {
	if len(s.simMovePos) < n {
		grown := make([]int32, n)
		copy(grown, s.simMovePos)
		for i := len(s.simMovePos); i < n; i++ {
			grown[i] = -1
		}
		s.simMovePos = grown

		lookup := make([]bool, n)
		copy(lookup, s.raveLookup)
		s.raveLookup = lookup
	}
}

// playoutResult is the outcome of one simulated game: the winner and
// the ordered list of moves the winner made during the playout.
type playoutResult struct {
	winner       hexboard.Cell
	winnerMoves  []int
}

// playout runs a random (bridge-save-aware) simulation from board, with
// currentPlayer to move, to a terminal position.
func (s *playoutScratch) playout(board *hexboard.Board, currentPlayer hexboard.Cell, rng *rand.Rand) playoutResult {
	s.p1Moves = s.p1Moves[:0]
	s.p2Moves = s.p2Moves[:0]
	s.simMoves = s.simMoves[:0]

	n := board.Rows * board.Cols
	s.ensureSize(n)
	for i := 0; i < n; i++ {
		s.simMovePos[i] = -1
	}

	for i := 0; i < n; i++ {
		if board.GetCellByIndex(i) == hexboard.Empty {
			s.simMovePos[i] = int32(len(s.simMoves))
			s.simMoves = append(s.simMoves, i)
		}
	}

	winner := board.CheckWin()
	lastMove := -1

	for winner == hexboard.Empty && len(s.simMoves) > 0 {
		selected := -1

		if lastMove != -1 {
			if save := bridgeSaveMove(board, lastMove, currentPlayer); save != -1 && s.simMovePos[save] != -1 {
				selected = save
			}
		}

		if selected == -1 {
			selected = s.simMoves[rng.Intn(len(s.simMoves))]
		}

		// swap-and-pop removal, keeping simMovePos consistent
		posInVec := s.simMovePos[selected]
		lastVal := s.simMoves[len(s.simMoves)-1]
		s.simMoves[posInVec] = lastVal
		s.simMovePos[lastVal] = posInVec
		s.simMoves = s.simMoves[:len(s.simMoves)-1]
		s.simMovePos[selected] = -1

		r, c := board.GetCoord(selected)
		board.MakeMove(r, c, currentPlayer)

		if currentPlayer == hexboard.Player1 {
			s.p1Moves = append(s.p1Moves, selected)
		} else {
			s.p2Moves = append(s.p2Moves, selected)
		}

		lastMove = selected
		winner = board.CheckWin()
		currentPlayer = hexboard.Opponent(currentPlayer)
	}

	moves := s.p1Moves
	if winner == hexboard.Player2 {
		moves = s.p2Moves
	}
	return playoutResult{winner: winner, winnerMoves: moves}
}
