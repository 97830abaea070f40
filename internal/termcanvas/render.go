package termcanvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/borealis/internal/style"
)

// String renders the grid with one lipgloss style per run of equally
// colored cells. Lines are joined with "\n".
func (c *Canvas) String() string {
	w, h := c.buf.Size()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		var run strings.Builder
		var fg, bg style.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(cellStyle(fg, bg).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < w; x++ {
			cell := c.buf.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			if run.Len() > 0 && (cell.Fg != fg || cell.Bg != bg) {
				flush()
			}
			fg, bg = cell.Fg, cell.Bg
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Plain returns the grid as text without styling, trailing spaces trimmed.
func (c *Canvas) Plain() string {
	_, h := c.buf.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = strings.TrimRight(c.buf.Line(y), " ")
	}
	return strings.Join(lines, "\n")
}

func cellStyle(fg, bg style.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.String())).
		Background(lipgloss.Color(bg.String()))
}
