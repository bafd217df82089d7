package hexboard

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBoard renders an ANSI-colored ASCII board and returns it as a
// string. Formatting is
// non-normative; it exists for interactive debugging and the demo
// driver, not as part of the programmatic contract.
func (b *Board) PrintBoard() string {
	var sb strings.Builder

	sb.WriteString("\n   ")
	for c := 0; c < b.Cols; c++ {
		sb.WriteString(termenv.String(fmt.Sprintf("%3d ", c)).Foreground(termenv.ANSIBlue).String())
	}
	sb.WriteByte('\n')

	for r := 0; r < b.Rows; r++ {
		if r%2 != 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(termenv.String(fmt.Sprintf("%2d ", r)).Foreground(termenv.ANSIRed).String())

		for c := 0; c < b.Cols; c++ {
			switch b.cells[b.GetIndex(r, c)] {
			case Player1:
				sb.WriteString(termenv.String(" X  ").Foreground(termenv.ANSIRed).String())
			case Player2:
				sb.WriteString(termenv.String(" O  ").Foreground(termenv.ANSIBlue).String())
			default:
				sb.WriteString(termenv.String(" .  ").Foreground(termenv.ANSIBrightBlack).String())
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
