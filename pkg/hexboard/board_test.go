package hexboard

import "testing"

func TestCoordIndexRoundTrip(t *testing.T) {
	b := NewBoard(5, 7)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			idx := b.GetIndex(r, c)
			gr, gc := b.GetCoord(idx)
			if gr != r || gc != c {
				t.Errorf("GetCoord(GetIndex(%d,%d))=(%d,%d), want (%d,%d)", r, c, gr, gc, r, c)
			}
		}
	}
	for i := 0; i < b.Rows*b.Cols; i++ {
		r, c := b.GetCoord(i)
		if got := b.GetIndex(r, c); got != i {
			t.Errorf("GetIndex(GetCoord(%d))=%d, want %d", i, got, i)
		}
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	b := NewBoard(4, 4)
	n := b.Rows * b.Cols
	for i := 0; i < n; i++ {
		for _, j := range b.GetNeighbors(i) {
			if int(j) >= n {
				continue // virtual node, not under test here
			}
			found := false
			for _, back := range b.GetNeighbors(int(j)) {
				if int(back) == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("adjacency not symmetric: %d -> %d but not %d -> %d", i, j, j, i)
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	b := NewBoard(5, 5)
	n := int32(b.Rows * b.Cols)

	countPhysical := func(idx int) int {
		count := 0
		for _, nb := range b.GetNeighbors(idx) {
			if nb < n {
				count++
			}
		}
		return count
	}

	corners := []int{
		b.GetIndex(0, 0), b.GetIndex(0, b.Cols-1),
		b.GetIndex(b.Rows-1, 0), b.GetIndex(b.Rows-1, b.Cols-1),
	}
	for _, idx := range corners {
		if c := countPhysical(idx); c < 2 || c > 3 {
			t.Errorf("corner %d has %d physical neighbors, want 2-3", idx, c)
		}
	}

	interior := b.GetIndex(2, 2)
	if c := countPhysical(interior); c != 6 {
		t.Errorf("interior cell has %d physical neighbors, want 6", c)
	}
}

func TestMakeMoveRejectsOccupiedAndOutOfRange(t *testing.T) {
	b := NewBoard(3, 3)
	if !b.MakeMove(1, 1, Player1) {
		t.Fatal("first move on empty cell should succeed")
	}
	if b.MakeMove(1, 1, Player2) {
		t.Error("move onto an occupied cell should fail")
	}
	if b.MakeMove(-1, 0, Player1) || b.MakeMove(0, 3, Player1) {
		t.Error("out-of-range move should fail")
	}
	if got := b.GetCell(1, 1); got != Player1 {
		t.Errorf("occupied cell changed after failed move: got %v", got)
	}
}

func TestCheckWinRow(t *testing.T) {
	b := NewBoard(3, 3)
	for c := 0; c < 3; c++ {
		if got := b.CheckWin(); got != Empty {
			t.Fatalf("unexpected win before move %d: %v", c, got)
		}
		b.MakeMove(0, c, Player1)
	}
	if got := b.CheckWin(); got != Player1 {
		t.Fatalf("CheckWin()=%v, want Player1", got)
	}
}

func TestCheckWinColumn(t *testing.T) {
	b := NewBoard(3, 3)
	for r := 0; r < 3; r++ {
		b.MakeMove(r, 1, Player2)
	}
	if got := b.CheckWin(); got != Player2 {
		t.Fatalf("CheckWin()=%v, want Player2", got)
	}
}

func TestOneByOneBoardFirstMoveWins(t *testing.T) {
	b := NewBoard(1, 1)
	b.MakeMove(0, 0, Player1)
	if got := b.CheckWin(); got != Player1 {
		t.Fatalf("1x1 board: CheckWin()=%v, want Player1", got)
	}
}

func TestGetLegalMoves(t *testing.T) {
	b := NewBoard(2, 2)
	b.MakeMove(0, 0, Player1)
	b.MakeMove(1, 1, Player2)
	legal := b.GetLegalMoves()
	want := []int{1, 2}
	if len(legal) != len(want) {
		t.Fatalf("GetLegalMoves()=%v, want %v", legal, want)
	}
	for i := range want {
		if legal[i] != want[i] {
			t.Fatalf("GetLegalMoves()=%v, want %v", legal, want)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := NewBoard(4, 4)
	b.MakeMove(0, 0, Player1)
	clone := b.Clone()

	clone.MakeMove(1, 1, Player1)
	if b.GetCell(1, 1) != Empty {
		t.Error("mutating a clone affected the original board")
	}
	if clone.adj != b.adj {
		t.Error("clone should alias the same adjacency graph")
	}
}

func TestWinningPathAfterRowWin(t *testing.T) {
	b := NewBoard(3, 3)
	b.MakeMove(0, 0, Player1)
	b.MakeMove(0, 1, Player1)
	b.MakeMove(0, 2, Player1)

	path := b.GetWinningPath(Player1)
	if len(path) != 3 {
		t.Fatalf("GetWinningPath returned %d cells, want 3", len(path))
	}
	for _, idx := range path {
		if b.GetCellByIndex(idx) != Player1 {
			t.Errorf("winning path cell %d not owned by Player1", idx)
		}
	}
	if path[0] != b.GetIndex(0, 0) {
		t.Errorf("path should start at the left edge, got %d", path[0])
	}
	if path[len(path)-1] != b.GetIndex(0, 2) {
		t.Errorf("path should end at the right edge, got %d", path[len(path)-1])
	}
}

func TestShortestDistanceZeroAfterWin(t *testing.T) {
	b := NewBoard(3, 3)
	for c := 0; c < 3; c++ {
		b.MakeMove(0, c, Player1)
	}
	if d := b.ShortestDistance(Player1); d != 0 {
		t.Errorf("ShortestDistance after win = %d, want 0", d)
	}
}

func TestShortestDistanceMonotone(t *testing.T) {
	b := NewBoard(5, 5)
	before := b.ShortestDistance(Player1)
	b.MakeMove(2, 2, Player1)
	after := b.ShortestDistance(Player1)
	if after > before {
		t.Errorf("distance increased after player's own move: %d -> %d", before, after)
	}

	before = b.ShortestDistance(Player1)
	b.MakeMove(2, 3, Player2)
	after = b.ShortestDistance(Player1)
	if after < before {
		t.Errorf("distance decreased after opponent's move: %d -> %d", before, after)
	}
}

func TestMakeMoveSameArgsTwiceIdempotentFailure(t *testing.T) {
	b := NewBoard(3, 3)
	if !b.MakeMove(0, 0, Player1) {
		t.Fatal("first move should succeed")
	}
	if b.MakeMove(0, 0, Player1) {
		t.Fatal("repeating the exact same move should fail")
	}
}
