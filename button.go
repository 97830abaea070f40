package borealis

// ButtonStyle selects a button's colors.
type ButtonStyle uint8

const (
	ButtonPrimary ButtonStyle = iota
	ButtonRegular
	ButtonCrash
)

// Button is a focusable control with a centered label.
type Button struct {
	Base
	buttonStyle ButtonStyle
	label       string
}

// NewButton creates a button.
func NewButton(buttonStyle ButtonStyle, label string) *Button {
	b := &Button{buttonStyle: buttonStyle, label: label}
	b.Init(b, KindGeneric)
	b.SetFocusable(true)
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	b.label = label
	b.redraw()
}

// Layout gives the button the style height unless one was assigned.
func (b *Button) Layout(ctx *LayoutContext) {
	if b.bounds.Height == 0 {
		b.bounds.Height = ctx.Style.Button.Height
	}
}

func (b *Button) colors(th *Theme) (bg, fg Color, border *Color) {
	switch b.buttonStyle {
	case ButtonRegular:
		c := th.ButtonRegularBorderColor
		return th.ButtonRegularColor, th.ButtonRegularTextColor, &c
	case ButtonCrash:
		return RGB(255, 255, 255), RGB(0, 0, 0), nil
	}
	return th.ButtonPrimaryColor, th.ButtonPrimaryTextColor, nil
}

// Draw implements View.
func (b *Button) Draw(ctx *FrameContext) {
	bg, fg, border := b.colors(ctx.Theme)
	r := b.bounds
	ctx.Canvas.FillRect(r, ctx.Fade(bg))
	if border != nil {
		ctx.Canvas.StrokeRect(r, ctx.Fade(*border), ctx.Style.Button.BorderWidth)
	}
	ctx.Canvas.Text(r.X+r.Width/2, r.Y+r.Height/2, b.label, TextStyle{
		Size:  float64(ctx.Style.Label.ButtonFontSize),
		Color: ctx.Fade(fg),
		Align: AlignCenter,
	})
}
