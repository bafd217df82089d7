package hexai

import "github.com/KISSandDRY/Hex/pkg/hexboard"

// bridgeOffsets are the six relative (dr, dc) positions of a Hex bridge
// partner cell, shared by bridge detection and bridge-save repair.
var bridgeOffsets = [6][2]int{{-1, -1}, {-1, 2}, {1, -2}, {1, 1}, {-2, 1}, {2, -1}}

// isBridgeMove reports whether placing at (r, c) would form a bridge
// with an existing stone of player: true iff any of the six bridge
// offsets from (r, c) lands on a cell player already owns.
func isBridgeMove(b *hexboard.Board, r, c int, player hexboard.Cell) bool {
	for _, off := range bridgeOffsets {
		tr, tc := r+off[0], c+off[1]
		if b.IsValid(tr, tc) && b.GetCell(tr, tc) == player {
			return true
		}
	}
	return false
}

// scoreMove is the untried-move ordering score: a center-distance
// penalty plus a large bonus if the move builds a bridge for player.
func scoreMove(b *hexboard.Board, move int, player hexboard.Cell) int {
	r, c := b.GetCoord(move)
	dist := abs(r-b.Rows/2) + abs(c-b.Cols/2)
	score := CenterBias - dist*DistPenalty
	if isBridgeMove(b, r, c, player) {
		score += BridgeBuild
	}
	return score
}

// sortUntriedMoves orders moves ascending by scoreMove, so the
// highest-priority candidate ends up last (cheap to pop).
func sortUntriedMoves(moves []int, b *hexboard.Board, player hexboard.Cell) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(b, m, player)
	}
	// insertion sort: untried lists are small (bounded by legal moves
	// left on a shrinking board) and re-sorted on every expansion.
	for i := 1; i < len(moves); i++ {
		j := i
		for j > 0 && scores[j-1] > scores[j] {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			moves[j-1], moves[j] = moves[j], moves[j-1]
			j--
		}
	}
}

// findCommonEmptyNeighbor returns the lowest-index cell that is a
// neighbor of both u and v, currently empty, and not the excluded
// (intruding) move, or -1 if none exists.
func findCommonEmptyNeighbor(b *hexboard.Board, u, v, exclude int) int {
	nu := b.GetNeighbors(u)
	nv := b.GetNeighbors(v)
	n := int32(b.Rows * b.Cols)

	for _, n1 := range nu {
		if n1 >= n || int(n1) == exclude || b.GetCellByIndex(int(n1)) != hexboard.Empty {
			continue
		}
		for _, n2 := range nv {
			if n1 == n2 {
				return int(n1)
			}
		}
	}
	return -1
}

// bridgeSaveMove looks for a bridge of defender's stones that the
// opponent's last move just intruded on, and returns the repair cell
// that restores the virtual connection, or -1 if none applies. The
// friendly-neighbor buffer is bounded to 6 entries: a standard hex grid
// never gives one cell more than six neighbors.
func bridgeSaveMove(b *hexboard.Board, lastMove int, defender hexboard.Cell) int {
	if lastMove == -1 {
		return -1
	}

	neighbors := b.GetNeighbors(lastMove)
	n := int32(b.Rows * b.Cols)

	var friendly [6]int
	count := 0
	for _, nb := range neighbors {
		if nb < n && b.GetCellByIndex(int(nb)) == defender {
			if count < len(friendly) {
				friendly[count] = int(nb)
				count++
			}
		}
	}
	if count < 2 {
		return -1
	}

	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			if repair := findCommonEmptyNeighbor(b, friendly[i], friendly[j], lastMove); repair != -1 {
				return repair
			}
		}
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
