package outwriter

import (
	"os"

	"github.com/langradar/langradar/internal/contract"
	"golang.org/x/term"
)

// Bounds of the free-text column in list tables.
const (
	minTextWidth = 20
	maxTextWidth = 60
)

// terminalWidth returns the width override, the detected terminal width, or 80.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}

// getMaxTableTextWidth calculates how wide the philosophy column of a list
// table may be after the fixed columns are laid out.
func getMaxTableTextWidth(cfg *contract.Config) int {
	// Rank + Name + six scores + Avg + Label with borders and padding
	baseWidth := 95
	available := terminalWidth(cfg) - baseWidth
	if available < minTextWidth {
		return minTextWidth
	}
	if available > maxTextWidth {
		return maxTextWidth
	}
	return available
}
