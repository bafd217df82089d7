package hexbench

import (
	"testing"

	"github.com/KISSandDRY/Hex/pkg/hexai"
)

func contestant(name string, d hexai.Difficulty, seed int64) Contestant {
	return Contestant{
		Name:       name,
		Difficulty: d,
		Config:     hexai.DefaultConfig().WithDifficulty(d).WithSeed(seed).WithNodePoolSize(2000),
	}
}

func TestPlayGameProducesNoDrawOnSmallBoard(t *testing.T) {
	solver1 := hexai.NewSolver(hexai.DefaultConfig().WithDifficulty(hexai.Easy).WithSeed(1).WithNodePoolSize(2000))
	solver2 := hexai.NewSolver(hexai.DefaultConfig().WithDifficulty(hexai.Easy).WithSeed(2).WithNodePoolSize(2000))

	result := playGame(3, 3, solver1, hexai.Easy, solver2, hexai.Easy)
	if result == Draw {
		t.Fatalf("hex admits no draws, got Draw on a filled 3x3 board")
	}
}

func TestVersusArenaTalliesAllGames(t *testing.T) {
	arena := NewVersusArena(3, 3, contestant("p1", hexai.Easy, 10), contestant("p2", hexai.Easy, 20))
	arena.Setup(6, 2)

	arena.Start(NopListener{})
	arena.Wait()

	if got := arena.Total(); got != 6 {
		t.Fatalf("expected 6 total games, got %d", got)
	}
	if arena.Draws() != 0 {
		t.Fatalf("expected zero draws on a completed Hex board, got %d", arena.Draws())
	}
}
