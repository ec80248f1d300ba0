package outwriter

import (
	"os"

	"github.com/huangsam/qmetrics/internal/contract"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80
	maxDividerWidth  = 100
	minDividerWidth  = 20
)

// getTerminalWidth returns the width override, the detected terminal width, or a
// conservative default when neither is available.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// getDividerWidth bounds section dividers to the terminal.
func getDividerWidth(cfg *contract.Config) int {
	return min(max(getTerminalWidth(cfg), minDividerWidth), maxDividerWidth)
}
