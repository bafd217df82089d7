package main

import (
	"flag"
	"fmt"

	"github.com/KISSandDRY/Hex/pkg/hexai"
	"github.com/KISSandDRY/Hex/pkg/hexboard"
)

func parseDifficulty(s string) hexai.Difficulty {
	switch s {
	case "easy":
		return hexai.Easy
	case "hard":
		return hexai.Hard
	default:
		return hexai.Medium
	}
}

func main() {
	size := flag.Int("size", 11, "board size (rows and cols)")
	difficulty := flag.String("difficulty", "medium", "easy, medium, or hard")
	seed := flag.Int64("seed", 1, "solver RNG seed")
	flag.Parse()

	diff := parseDifficulty(*difficulty)
	board := hexboard.NewBoard(*size, *size)
	solver := hexai.NewSolver(hexai.DefaultConfig().WithDifficulty(diff).WithSeed(*seed))

	player := hexboard.Player1
	for {
		fmt.Println(board.PrintBoard())

		move := solver.GetMove(board, player, diff)
		if move == -1 {
			fmt.Println("no legal moves, game over")
			return
		}

		r, c := board.GetCoord(move)
		board.MakeMove(r, c, player)
		fmt.Printf("player %d plays (%d,%d)\n", player, r, c)

		if winner := board.CheckWin(); winner != hexboard.Empty {
			fmt.Println(board.PrintBoard())
			fmt.Printf("player %d wins\n", winner)
			path := board.GetWinningPath(winner)
			fmt.Printf("winning path: %v\n", path)
			return
		}

		player = hexboard.Opponent(player)
	}
}
