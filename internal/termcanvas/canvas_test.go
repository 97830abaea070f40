package termcanvas

import (
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/borealis"
	"github.com/grindlemire/borealis/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCanvas maps a 100x100 surface onto 10x10 cells.
func newCanvas() *Canvas {
	return New(10, 10, 100, 100, black)
}

func TestCanvas_FillRect(t *testing.T) {
	type tc struct {
		rect      borealis.Rect
		wantAt    [2]int
		wantRune  rune
		wantBg    style.Color
		wantEmpty [2]int
	}

	tests := map[string]tc{
		"block paints backgrounds": {
			rect:      borealis.NewRect(10, 10, 30, 20),
			wantAt:    [2]int{3, 2},
			wantRune:  ' ',
			wantBg:    red,
			wantEmpty: [2]int{4, 2},
		},
		"thin horizontal line": {
			rect:      borealis.NewRect(0, 50, 100, 1),
			wantAt:    [2]int{5, 5},
			wantRune:  '─',
			wantBg:    black,
			wantEmpty: [2]int{5, 6},
		},
		"thin vertical line": {
			rect:      borealis.NewRect(50, 0, 2, 100),
			wantAt:    [2]int{5, 9},
			wantRune:  '│',
			wantBg:    black,
			wantEmpty: [2]int{6, 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newCanvas()
			c.FillRect(tt.rect, red)

			got := c.Buffer().Cell(tt.wantAt[0], tt.wantAt[1])
			assert.Equal(t, tt.wantRune, got.Rune)
			assert.Equal(t, tt.wantBg, got.Bg)
			assert.Equal(t, blank(black), c.Buffer().Cell(tt.wantEmpty[0], tt.wantEmpty[1]))
		})
	}
}

func TestCanvas_Text(t *testing.T) {
	type tc struct {
		x, y     int
		ts       borealis.TextStyle
		wantRow  int
		wantLine string
	}

	tests := map[string]tc{
		"left aligned": {
			x: 20, y: 35, ts: borealis.TextStyle{Size: 10, Color: white},
			wantRow: 3, wantLine: "  hi",
		},
		"right aligned": {
			x: 100, y: 35, ts: borealis.TextStyle{Size: 10, Color: white, Align: borealis.AlignRight},
			wantRow: 3, wantLine: "        hi",
		},
		"centered": {
			x: 50, y: 35, ts: borealis.TextStyle{Size: 10, Color: white, Align: borealis.AlignCenter},
			wantRow: 3, wantLine: "    hi",
		},
		"bottom baseline": {
			x: 0, y: 35, ts: borealis.TextStyle{Size: 10, Color: white, Baseline: borealis.BaselineBottom},
			wantRow: 2, wantLine: "hi",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newCanvas()
			c.Text(tt.x, tt.y, "hi", tt.ts)
			assert.Equal(t, tt.wantLine, strings.TrimRight(c.Buffer().Line(tt.wantRow), " "))
		})
	}
}

func TestCanvas_TextSkipsInvisibleRuns(t *testing.T) {
	c := newCanvas()
	c.Text(0, 0, "tiny", borealis.TextStyle{Size: 0.5, Color: white})
	c.Text(0, 0, "clear", borealis.TextStyle{Size: 10, Color: white.WithAlpha(0)})
	assert.Equal(t, strings.Repeat("\n", 9), c.Plain())
}

func TestCanvas_TextBlendsOverBackground(t *testing.T) {
	c := newCanvas()
	c.FillRect(borealis.NewRect(0, 0, 100, 10), red)
	c.Text(0, 5, "a", borealis.TextStyle{Size: 10, Color: white.WithAlpha(0.5)})

	cell := c.Buffer().Cell(0, 0)
	assert.Equal(t, 'a', cell.Rune)
	assert.Equal(t, red, cell.Bg)
	assert.InDelta(t, 1.0, cell.Fg.R, 1e-9)
	assert.InDelta(t, 0.5, cell.Fg.G, 0.01)
}

func TestCanvas_Transforms(t *testing.T) {
	c := newCanvas()
	c.Save()
	c.Translate(50, 50)
	c.Scale(0.5, 0.5)
	c.FillRect(borealis.NewRect(0, 0, 40, 40), red)
	c.Restore()
	c.FillRect(borealis.NewRect(0, 0, 10, 10), white)

	assert.Equal(t, red, c.Buffer().Cell(5, 5).Bg)
	assert.Equal(t, red, c.Buffer().Cell(6, 6).Bg)
	assert.Equal(t, black, c.Buffer().Cell(7, 7).Bg)
	assert.Equal(t, white, c.Buffer().Cell(0, 0).Bg, "Restore returns to the identity transform")
}

func TestCanvas_RotatedFillsAreDropped(t *testing.T) {
	c := newCanvas()
	c.Save()
	c.Rotate(0.7)
	c.FillRect(borealis.NewRect(0, 0, 100, 100), red)
	c.Restore()
	c.FillCircle(55, 55, 10, white)

	assert.Equal(t, black, c.Buffer().Cell(0, 0).Bg)
	assert.Equal(t, '●', c.Buffer().Cell(5, 5).Rune)
}

func TestCanvas_StrokeRect(t *testing.T) {
	c := newCanvas()
	c.StrokeRect(borealis.NewRect(0, 0, 40, 30), white, 2)

	assert.Equal(t, "┌──┐", c.Buffer().Line(0)[:len("┌──┐")])
	assert.Equal(t, '│', c.Buffer().Cell(0, 1).Rune)
	assert.Equal(t, '┘', c.Buffer().Cell(3, 2).Rune)
}

func TestCanvas_String(t *testing.T) {
	c := New(4, 1, 40, 10, black)
	c.Text(0, 5, "ok", borealis.TextStyle{Size: 10, Color: white})

	assert.Equal(t, "ok", c.Plain())
	assert.Contains(t, c.String(), "ok")
}

func TestCanvas_DrawsSettingsScreen(t *testing.T) {
	canvas := New(160, 45, 1280, 720, style.RGB(45, 45, 45))
	app, err := borealis.NewApp(borealis.WithCanvas(canvas))
	require.NoError(t, err)

	list := borealis.NewList(0)
	list.AddView(borealis.NewHeader("Network", true))
	list.AddView(borealis.NewToggleListItem("Wi-Fi", true, "", borealis.ToggleOnOff))
	list.AddView(borealis.NewSelectListItem("Language", []string{"English", "Français"}, 1))
	frame := borealis.NewSettingsFrame(false, false)
	frame.SetTitle("Settings")
	frame.SetContentView(list)
	app.PushView(frame)

	start := time.Unix(0, 0)
	app.Frame(start)
	app.Frame(start.Add(time.Second))

	out := canvas.Plain()
	for _, want := range []string{"Settings", "Network", "Wi-Fi", "ON", "Language", "Français"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "┌", "focused row is outlined")
}
