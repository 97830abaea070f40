package borealis

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextMeasurer reports the advance width of a single line of text.
type TextMeasurer interface {
	Width(text string, size float64) int
}

// MonospaceMeasurer measures text as a grid of equal-width cells, counting
// East Asian wide runes as two cells.
type MonospaceMeasurer struct {
	// Advance is the width of one cell as a fraction of the font size.
	// Zero means 0.5.
	Advance float64
}

var _ TextMeasurer = MonospaceMeasurer{}

// Width implements TextMeasurer.
func (m MonospaceMeasurer) Width(text string, size float64) int {
	adv := m.Advance
	if adv <= 0 {
		adv = 0.5
	}
	return int(math.Ceil(float64(runewidth.StringWidth(text)) * size * adv))
}

// wrapText breaks text into lines no wider than width. Words longer than a
// line are split at rune boundaries. Explicit newlines are kept.
func wrapText(m TextMeasurer, text string, size float64, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var cur string
		for _, word := range words {
			candidate := word
			if cur != "" {
				candidate = cur + " " + word
			}
			if width <= 0 || m.Width(candidate, size) <= width {
				cur = candidate
				continue
			}
			if cur != "" {
				lines = append(lines, cur)
			}
			cur = word
			for m.Width(cur, size) > width {
				head, tail := splitWord(m, cur, size, width)
				lines = append(lines, head)
				cur = tail
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// splitWord returns the longest prefix of word that fits width, and the rest.
// At least one rune always goes into the prefix.
func splitWord(m TextMeasurer, word string, size float64, width int) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.Width(string(runes[:n+1]), size) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
