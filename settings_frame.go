package borealis

import "github.com/grindlemire/borealis/internal/debug"

// SettingsFrame hosts one content view between a titled header band and a
// footer band. It owns the content view.
type SettingsFrame struct {
	Base
	title    string
	footer   string
	content  View
	padLeft  bool
	padRight bool
}

// NewSettingsFrame creates an empty frame. The pad flags inset the content
// from the left and right separators.
func NewSettingsFrame(padLeft, padRight bool) *SettingsFrame {
	f := &SettingsFrame{padLeft: padLeft, padRight: padRight}
	f.Init(f, KindGeneric)
	return f
}

// Title returns the header title.
func (f *SettingsFrame) Title() string { return f.title }

// SetTitle sets the header title.
func (f *SettingsFrame) SetTitle(title string) {
	f.title = title
	f.redraw()
}

// SetFooterText sets the text drawn in the footer band.
func (f *SettingsFrame) SetFooterText(text string) {
	f.footer = text
	f.redraw()
}

// ContentView returns the content view, or nil.
func (f *SettingsFrame) ContentView() View { return f.content }

// SetContentView replaces the content view. The old view gets WillDisappear
// and is disposed before the new one is attached and gets WillAppear.
func (f *SettingsFrame) SetContentView(v View) {
	if v == nil {
		panic("borealis: SettingsFrame.SetContentView with nil view")
	}
	if old := f.content; old != nil {
		debug.Log("SettingsFrame.SetContentView: replacing %T", old)
		f.content = nil
		old.WillDisappear()
		old.Dispose()
	}
	f.content = v
	v.SetParent(f.self)
	v.WillAppear()
	f.Invalidate()
}

// Children implements View.
func (f *SettingsFrame) Children() []View {
	if f.content == nil {
		return nil
	}
	return []View{f.content}
}

// Layout assigns the content the area between header and footer.
func (f *SettingsFrame) Layout(ctx *LayoutContext) {
	if f.content == nil {
		return
	}
	sf := ctx.Style.SettingsFrame
	left, right := 0, 0
	if f.padLeft {
		left = sf.SeparatorSpacing
	}
	if f.padRight {
		right = sf.SeparatorSpacing
	}
	r := f.bounds
	f.content.SetBoundaries(
		r.X+left,
		r.Y+sf.HeaderHeight,
		max(0, r.Width-left-right),
		max(0, r.Height-sf.HeaderHeight-sf.FooterHeight),
	)
	LayoutView(f.content, ctx)
}

// Draw draws the title, the separators and the content.
func (f *SettingsFrame) Draw(ctx *FrameContext) {
	sf := ctx.Style.SettingsFrame
	r := f.bounds

	ctx.Canvas.Text(r.X+sf.TitleStart, r.Y+sf.HeaderHeight/2+sf.TitleOffset, f.title, TextStyle{
		Size:  float64(sf.TitleSize),
		Color: ctx.Fade(ctx.Theme.TextColor),
	})

	sep := ctx.Fade(ctx.Theme.SeparatorColor)
	lineWidth := max(0, r.Width-sf.SeparatorSpacing*2)
	ctx.Canvas.FillRect(Rect{X: r.X + sf.SeparatorSpacing, Y: r.Y + sf.HeaderHeight - 1, Width: lineWidth, Height: 1}, sep)
	ctx.Canvas.FillRect(Rect{X: r.X + sf.SeparatorSpacing, Y: r.Bottom() - sf.FooterHeight, Width: lineWidth, Height: 1}, sep)

	if f.footer != "" {
		ctx.Canvas.Text(r.X+sf.SeparatorSpacing+sf.FooterTextSpacing, r.Bottom()-sf.FooterHeight/2, f.footer, TextStyle{
			Size:  float64(sf.FooterTextSize),
			Color: ctx.Fade(ctx.Theme.TextColor),
		})
	}

	if f.content != nil {
		DrawView(f.content, ctx)
	}
}

// RequestFocus forwards offers to the content. Requests from inside the
// frame use the base behavior so focus never re-enters the content.
func (f *SettingsFrame) RequestFocus(dir FocusDirection, old View, fromUp bool) View {
	if fromUp {
		return f.Base.RequestFocus(dir, old, true)
	}
	if f.content == nil {
		return nil
	}
	return f.content.RequestFocus(dir, old, false)
}

// Dispose sends WillDisappear to the content before disposing it.
func (f *SettingsFrame) Dispose() {
	if !f.IsDisposed() && f.content != nil {
		f.content.WillDisappear()
	}
	f.Base.Dispose()
}
