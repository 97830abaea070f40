package borealis

import "math"

// CrashFrame is a full-screen modal showing an error message and a single
// OK button that quits the app. Focus always lands on the button.
type CrashFrame struct {
	Base
	label  *Label
	button *Button
}

// NewCrashFrame creates a crash screen for text.
func NewCrashFrame(text string) *CrashFrame {
	c := &CrashFrame{}
	c.Init(c, KindGeneric)

	c.label = NewLabel(LabelCrash, text, true)
	c.label.SetHorizontalAlign(AlignCenter)
	c.label.SetParent(c)

	c.button = NewButton(ButtonCrash, "OK")
	c.button.SetParent(c)
	c.button.SetAlpha(0)
	c.button.SetClickListener(func(View) {
		if a := c.App(); a != nil {
			a.Quit()
		}
	})
	return c
}

// Label returns the message label.
func (c *CrashFrame) Label() *Label { return c.label }

// Button returns the OK button.
func (c *CrashFrame) Button() *Button { return c.button }

// Children implements View.
func (c *CrashFrame) Children() []View { return []View{c.label, c.button} }

// OnShowAnimationEnd fades the button in once the frame is shown.
func (c *CrashFrame) OnShowAnimationEnd() {
	c.button.Show(nil, true)
}

// RequestFocus always returns the button.
func (c *CrashFrame) RequestFocus(FocusDirection, View, bool) View {
	return c.button
}

// Layout centers the label and places the button above the footer.
func (c *CrashFrame) Layout(ctx *LayoutContext) {
	cs := ctx.Style.CrashFrame
	footer := ctx.Style.SettingsFrame.FooterHeight
	r := c.bounds

	c.label.SetBoundaries(0, 0, int(math.Round(float64(r.Width)*cs.LabelWidth)), 0)
	LayoutView(c.label, ctx)
	lw, lh := c.label.Width(), c.label.Height()
	c.label.SetBoundaries(r.X+r.Width/2-lw/2, r.Y+(r.Height-footer)/2, lw, lh)

	c.button.SetBoundaries(
		r.X+r.Width/2-cs.ButtonWidth/2,
		r.Bottom()-footer-cs.BoxSpacing-cs.ButtonHeight,
		cs.ButtonWidth,
		cs.ButtonHeight,
	)
	LayoutView(c.button, ctx)
}

// Draw draws the message scaled in with the frame's show animation.
func (c *CrashFrame) Draw(ctx *FrameContext) {
	cs := ctx.Style.CrashFrame
	sf := ctx.Style.SettingsFrame
	r := c.bounds
	white := ctx.Fade(RGB(255, 255, 255))

	ctx.Canvas.FillRect(r, RGB(0, 0, 0))

	scale := (c.alpha + 2) / 3
	ctx.Canvas.Save()
	ctx.Canvas.Translate((1-scale)*float64(r.Width)*0.5, (1-scale)*float64(r.Height)*0.5)
	ctx.Canvas.Scale(scale, scale)

	DrawView(c.label, ctx)

	box := cs.BoxSize
	ctx.Canvas.StrokeRect(Rect{X: r.X + r.Width/2 - box/2, Y: r.Y + cs.BoxSpacing, Width: box, Height: box}, white, cs.BoxStrokeWidth)
	ctx.Canvas.Text(r.X+r.Width/2, r.Y+cs.BoxSpacing+box/2, "!", TextStyle{
		Size:  float64(box) / 1.25,
		Color: white,
		Align: AlignCenter,
	})
	ctx.Canvas.Restore()

	ctx.Canvas.FillRect(Rect{X: r.X + sf.SeparatorSpacing, Y: r.Bottom() - sf.FooterHeight, Width: max(0, r.Width-sf.SeparatorSpacing*2), Height: 1}, white)
	title := "borealis"
	if a := c.App(); a != nil {
		title = a.Title()
	}
	ctx.Canvas.Text(r.X+sf.SeparatorSpacing+sf.FooterTextSpacing, r.Bottom()-sf.FooterHeight/2, title, TextStyle{
		Size:  float64(sf.FooterTextSize),
		Color: white,
	})

	dark := DarkTheme()
	DrawView(c.button, ctx.WithTheme(&dark))
}
