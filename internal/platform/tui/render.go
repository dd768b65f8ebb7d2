package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

var (
	styleMu    sync.Mutex
	styleCache = map[core.Style]lipgloss.Style{}
)

// styleFor maps a cell style to a lipgloss style, caching the result.
func styleFor(st core.Style) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if ls, ok := styleCache[st]; ok {
		return ls
	}
	ls := lipgloss.NewStyle()
	if st.HasFG {
		ls = ls.Foreground(lipgloss.Color(st.FG.Hex()))
	}
	if st.HasBG {
		ls = ls.Background(lipgloss.Color(st.BG.Hex()))
	}
	styleCache[st] = ls
	return ls
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			// Collect consecutive cells with the same style
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
