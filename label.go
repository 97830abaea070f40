package borealis

import "math"

// LabelStyle selects a label's font size and color.
type LabelStyle uint8

const (
	LabelRegular LabelStyle = iota
	LabelMedium
	LabelSmall
	LabelDescription
	LabelCrash
	LabelButton
)

// Label draws text. A multiline label wraps to its width and computes its
// height in Layout; a single-line label keeps its assigned height.
type Label struct {
	Base
	labelStyle LabelStyle
	text       string
	multiline  bool
	align      TextAlign
	color      *Color
	lines      []string
	lineHeight int
}

// NewLabel creates a label.
func NewLabel(labelStyle LabelStyle, text string, multiline bool) *Label {
	l := &Label{labelStyle: labelStyle, text: text, multiline: multiline}
	l.Init(l, KindGeneric)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text.
func (l *Label) SetText(text string) {
	l.text = text
	l.Invalidate()
}

// SetHorizontalAlign sets the text alignment.
func (l *Label) SetHorizontalAlign(align TextAlign) {
	l.align = align
	l.redraw()
}

// SetColor overrides the theme color.
func (l *Label) SetColor(c Color) {
	l.color = &c
	l.redraw()
}

// Lines returns the wrapped lines from the last layout pass.
func (l *Label) Lines() []string { return l.lines }

// FontSize returns the font size for the label style.
func (l *Label) FontSize(st *Style) int {
	switch l.labelStyle {
	case LabelMedium:
		return st.Label.MediumFontSize
	case LabelSmall:
		return st.Label.SmallFontSize
	case LabelDescription:
		return st.Label.DescriptionFontSize
	case LabelCrash:
		return st.Label.CrashFontSize
	case LabelButton:
		return st.Label.ButtonFontSize
	}
	return st.Label.RegularFontSize
}

// Layout wraps the text and, when multiline, sets the height to fit.
func (l *Label) Layout(ctx *LayoutContext) {
	size := float64(l.FontSize(ctx.Style))
	l.lineHeight = int(math.Ceil(size * ctx.Style.Label.LineHeight))

	if !l.multiline {
		l.lines = []string{l.text}
		if l.bounds.Height == 0 {
			l.bounds.Height = l.lineHeight
		}
		return
	}
	l.lines = wrapText(ctx.Measurer, l.text, size, l.bounds.Width)
	l.bounds.Height = len(l.lines) * l.lineHeight
}

func (l *Label) textColor(th *Theme) Color {
	if l.color != nil {
		return *l.color
	}
	switch l.labelStyle {
	case LabelDescription:
		return th.DescriptionColor
	case LabelCrash:
		return RGB(255, 255, 255)
	}
	return th.TextColor
}

// Draw draws each line.
func (l *Label) Draw(ctx *FrameContext) {
	ts := TextStyle{
		Size:  float64(l.FontSize(ctx.Style)),
		Color: ctx.Fade(l.textColor(ctx.Theme)),
		Align: l.align,
	}
	r := l.bounds
	x := r.X
	switch l.align {
	case AlignCenter:
		x = r.X + r.Width/2
	case AlignRight:
		x = r.Right()
	}

	if !l.multiline {
		ctx.Canvas.Text(x, r.Y+r.Height/2, l.text, ts)
		return
	}
	for i, line := range l.lines {
		ctx.Canvas.Text(x, r.Y+i*l.lineHeight+l.lineHeight/2, line, ts)
	}
}
