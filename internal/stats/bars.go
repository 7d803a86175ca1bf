package stats

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	barRune     = '#'
	maxBarWidth = 30
	colorReset  = "\x1b[0m"
	colorHigh   = "\x1b[32m"
	colorMid    = "\x1b[33m"
	colorLow    = "\x1b[36m"
)

// bar renders value as a run of barRune scaled against maxValue.
func bar(value, maxValue int, useColor bool) string {
	if value <= 0 || maxValue <= 0 {
		return ""
	}
	width := value * maxBarWidth / maxValue
	if width < 1 {
		width = 1
	}
	out := strings.Repeat(string(barRune), width)
	if !useColor {
		return out
	}
	return barColor(value, maxValue) + out + colorReset
}

func barColor(value, maxValue int) string {
	switch ratio := float64(value) / float64(maxValue); {
	case ratio >= 0.75:
		return colorHigh
	case ratio >= 0.4:
		return colorMid
	default:
		return colorLow
	}
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
