package main

import (
	"flag"

	"github.com/KISSandDRY/Hex/pkg/hexai"
	"github.com/KISSandDRY/Hex/pkg/hexbench"
)

func main() {
	size := flag.Int("size", 7, "board size (rows and cols)")
	games := flag.Uint("games", 50, "number of games to play")
	threads := flag.Uint("threads", 4, "number of worker goroutines")
	flag.Parse()

	p1 := hexbench.Contestant{
		Name:       "medium",
		Difficulty: hexai.Medium,
		Config:     hexai.DefaultConfig().WithDifficulty(hexai.Medium).WithSeed(1),
	}
	p2 := hexbench.Contestant{
		Name:       "hard",
		Difficulty: hexai.Hard,
		Config:     hexai.DefaultConfig().WithDifficulty(hexai.Hard).WithSeed(2),
	}

	arena := hexbench.NewVersusArena(*size, *size, p1, p2)
	arena.Setup(*games, *threads)
	arena.Start(hexbench.PrintListener{})
	arena.Wait()
}
