package hexbench

import "fmt"

// PrintListener prints a running score line after every worker batch
// and a final summary, adapting the teacher's DefaultListener
// (pkg/bench/listener.go) which prints per-move board state; a Hex
// match series cares about the win tally, not per-move output.
type PrintListener struct{}

func (PrintListener) OnFinishedWork(info WorkerInfo) {
	fmt.Printf("worker %d done: %d games (p1 %d, p2 %d, draws %d), %d total so far\n",
		info.WorkerID, info.NGames, info.P1Wins, info.P2Wins, info.Draws, info.FinishedGames)
}

func (PrintListener) Summary(s SummaryInfo) {
	fmt.Printf("=== %d games, %d workers: player1 %d, player2 %d, draws %d ===\n",
		s.TotalGames, s.Workers, s.P1Wins, s.P2Wins, s.Draws)
}
