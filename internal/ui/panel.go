package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a Unicode progress bar with a done/total counter.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel frames lines in the theme's border. A positive width or height fixes
// the outer size of the box, border included; zero sizes it to the content.
func (s Styles) Panel(lines []string, width, height int) string {
	frame := s.Frame
	if width > 0 {
		frame = frame.Width(width - frame.GetHorizontalBorderSize())
	}
	if height > 0 {
		frame = frame.Height(height - frame.GetVerticalBorderSize())
	}
	return frame.Render(strings.Join(lines, "\n"))
}
