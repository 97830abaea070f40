package borealis

// Canvas is the drawing backend consumed by Draw. Positions and sizes are in
// surface units; transforms apply to every later call until Restore.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)
	Rotate(radians float64)

	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, width int)
	FillCircle(cx, cy, radius int, c Color)
	// Text draws a single line anchored at (x, y) according to the style's
	// alignment.
	Text(x, y int, text string, ts TextStyle)
	// Image draws an image source into r. Decoding is up to the backend.
	Image(r Rect, src ImageSource)
}

// TextAlign is the horizontal anchor of a text run.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of a text run.
type TextBaseline uint8

const (
	BaselineMiddle TextBaseline = iota
	BaselineTop
	BaselineBottom
)

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Size     float64
	Color    Color
	Align    TextAlign
	Baseline TextBaseline
}

// ImageScale controls how an image fills its bounds.
type ImageScale uint8

const (
	ImageFit ImageScale = iota
	ImageStretch
)

// ImageSource references image content for the backend. Exactly one of Path
// and Data is set.
type ImageSource struct {
	Path  string
	Data  []byte
	Scale ImageScale
}

// LayoutContext is passed to View.Layout.
type LayoutContext struct {
	Style    *Style
	Measurer TextMeasurer
}

// FrameContext is passed to View.Draw.
type FrameContext struct {
	Canvas   Canvas
	Style    *Style
	Theme    *Theme
	Measurer TextMeasurer
	// Alpha multiplies every color drawn through Fade.
	Alpha float64
}

// Fade applies the context alpha to c.
func (f *FrameContext) Fade(c Color) Color {
	return c.Fade(f.Alpha)
}

// WithAlpha returns a copy of the context with its alpha multiplied by a.
func (f *FrameContext) WithAlpha(a float64) *FrameContext {
	cp := *f
	cp.Alpha *= a
	return &cp
}

// WithTheme returns a copy of the context drawing with th.
func (f *FrameContext) WithTheme(th *Theme) *FrameContext {
	cp := *f
	cp.Theme = th
	return &cp
}
