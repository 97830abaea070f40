package borealis

import (
	"math"

	"github.com/grindlemire/borealis/internal/anim"
	"github.com/grindlemire/borealis/internal/debug"
)

// ListItem is a settings row: a label on the left, a value on the right,
// and optionally a sub-label, a wrapped description below the row and a
// thumbnail.
type ListItem struct {
	Base

	label       string
	subLabel    string
	description *Label
	thumbnail   *Image
	textSize    int

	value         string
	valueFaint    bool
	oldValue      string
	oldValueFaint bool
	valueProgress float64
	valueAnim     anim.Handle

	collapse     float64
	collapseAnim anim.Handle

	drawTopSeparator bool
	indented         bool
	checked          bool

	rowHeight int
}

var _ Row = (*ListItem)(nil)

// NewListItem creates a row. Empty description and subLabel are omitted.
func NewListItem(label, description, subLabel string) *ListItem {
	li := &ListItem{}
	li.InitListItem(li, label, description, subLabel)
	return li
}

// InitListItem initializes an embedded ListItem for self.
func (li *ListItem) InitListItem(self View, label, description, subLabel string) {
	li.Base.Init(self, KindRow)
	li.SetFocusable(true)
	li.label = label
	li.subLabel = subLabel
	li.collapse = 1
	li.drawTopSeparator = true
	if description != "" {
		li.description = NewLabel(LabelDescription, description, true)
		li.description.SetParent(self)
	}
}

// Label returns the row label.
func (li *ListItem) Label() string { return li.label }

// SubLabel returns the sub-label, or "".
func (li *ListItem) SubLabel() string { return li.subLabel }

// HasDescription reports whether the row has a description block.
func (li *ListItem) HasDescription() bool { return li.description != nil }

// Description returns the description text, or "".
func (li *ListItem) Description() string {
	if li.description == nil {
		return ""
	}
	return li.description.Text()
}

// Children returns the description and thumbnail views.
func (li *ListItem) Children() []View {
	var out []View
	if li.description != nil {
		out = append(out, li.description)
	}
	if li.thumbnail != nil {
		out = append(out, li.thumbnail)
	}
	return out
}

// Value returns the current value text.
func (li *ListItem) Value() string { return li.value }

// IsValueFaint reports whether the current value is drawn faint.
func (li *ListItem) IsValueFaint() bool { return li.valueFaint }

// PreviousValue returns the value being faded out, and its faint flag.
func (li *ListItem) PreviousValue() (string, bool) { return li.oldValue, li.oldValueFaint }

// ValueProgress returns the value transition progress. It is 0 unless a
// transition is running.
func (li *ListItem) ValueProgress() float64 { return li.valueProgress }

// SetValue replaces the value. The previous value is kept for a cross-fade,
// which runs only when animate is set and a previous value exists. While a
// transition is running the value it fades from is kept, so rapid updates
// fade from what was last fully shown.
func (li *ListItem) SetValue(value string, faint, animate bool) {
	if li.valueAnim == nil || !li.valueAnim.Active() {
		li.oldValue = li.value
		li.oldValueFaint = li.valueFaint
	}
	li.value = value
	li.valueFaint = faint

	li.resetValueTransition()
	debug.Log("ListItem.SetValue: %q %q -> %q animate=%v", li.label, li.oldValue, value, animate)

	if animate && li.oldValue != "" {
		li.valueAnim = li.Scheduler().Schedule(anim.Transition{
			Subject:    &li.valueProgress,
			From:       0,
			Target:     1,
			Duration:   li.style().Animations.ValueTransition,
			Easing:     anim.EaseInOutQuad,
			OnTick:     li.redraw,
			OnComplete: li.resetValueTransition,
		})
	}
	li.redraw()
}

// resetValueTransition cancels the running transition and returns to
// single-value rendering.
func (li *ListItem) resetValueTransition() {
	li.valueProgress = 0
	if li.valueAnim != nil {
		li.valueAnim.Cancel()
		li.valueAnim = nil
	}
}

// DrawTopSeparator reports whether the separator above the row is drawn.
func (li *ListItem) DrawTopSeparator() bool { return li.drawTopSeparator }

// SetDrawTopSeparator is called by the parent List while resolving spacing.
func (li *ListItem) SetDrawTopSeparator(draw bool) { li.drawTopSeparator = draw }

// SetIndented shifts the row right by the style indent.
func (li *ListItem) SetIndented(indented bool) {
	li.indented = indented
	li.Invalidate()
}

// Indented reports whether the row is indented.
func (li *ListItem) Indented() bool { return li.indented }

// SetChecked toggles the check marker in place of the value.
func (li *ListItem) SetChecked(checked bool) {
	li.checked = checked
	li.redraw()
}

// Checked reports whether the check marker is drawn.
func (li *ListItem) Checked() bool { return li.checked }

// SetTextSize overrides the label font size. Zero uses the style.
func (li *ListItem) SetTextSize(size int) {
	li.textSize = size
	li.redraw()
}

// SetThumbnailPath replaces the thumbnail with an image loaded from path.
func (li *ListItem) SetThumbnailPath(path string) {
	li.setThumbnail(NewImageFromPath(path))
}

// SetThumbnailData replaces the thumbnail with an encoded image buffer.
func (li *ListItem) SetThumbnailData(data []byte) {
	li.setThumbnail(NewImageFromData(data))
}

// Thumbnail returns the thumbnail view, or nil.
func (li *ListItem) Thumbnail() *Image { return li.thumbnail }

func (li *ListItem) setThumbnail(img *Image) {
	if li.thumbnail != nil {
		li.thumbnail.Dispose()
	}
	img.SetScaleType(ImageFit)
	img.SetParent(li.self)
	li.thumbnail = img
	li.Invalidate()
}

// CollapseProgress returns 1 when fully expanded and 0 when collapsed.
func (li *ListItem) CollapseProgress() float64 { return li.collapse }

// Collapse shrinks the row to nothing.
func (li *ListItem) Collapse(animate bool) { li.animateCollapse(0, animate) }

// Expand grows the row back to full height.
func (li *ListItem) Expand(animate bool) { li.animateCollapse(1, animate) }

func (li *ListItem) animateCollapse(target float64, animate bool) {
	if li.collapseAnim != nil {
		li.collapseAnim.Cancel()
		li.collapseAnim = nil
	}
	if !animate {
		li.collapse = target
		li.Invalidate()
		return
	}
	li.collapseAnim = li.Scheduler().Schedule(anim.Transition{
		Subject:  &li.collapse,
		From:     li.collapse,
		Target:   target,
		Duration: li.style().Animations.Collapse,
		Easing:   anim.EaseInOutQuad,
		OnTick:   li.Invalidate,
	})
}

// RequestFocus refuses focus until the row is fully expanded. Once
// expanded the row takes focus itself whatever the direction or origin.
func (li *ListItem) RequestFocus(dir FocusDirection, old View, fromUp bool) View {
	if li.collapse != 1 || !li.self.IsFocusable() {
		return nil
	}
	return li.self
}

// Dispose cancels pending transitions and disposes the owned views.
func (li *ListItem) Dispose() {
	if !li.IsDisposed() {
		li.resetValueTransition()
		if li.collapseAnim != nil {
			li.collapseAnim.Cancel()
			li.collapseAnim = nil
		}
	}
	li.Base.Dispose()
}

// Layout sizes the row from the style and lays out the description below it.
func (li *ListItem) Layout(ctx *LayoutContext) {
	st := ctx.Style.List.Item
	r := li.bounds

	li.rowHeight = st.Height
	if li.subLabel != "" {
		li.rowHeight = st.HeightWithSubLabel
	}
	height := li.rowHeight

	if li.description != nil {
		indent := st.DescriptionIndent
		if li.indented {
			indent += st.Indent
		}
		li.description.SetBoundaries(r.X+indent, r.Y+li.rowHeight+st.DescriptionSpacing, r.Width-indent*2, 0)
		LayoutView(li.description, ctx)
		height += li.description.Height() + st.DescriptionSpacing
	}

	if li.thumbnail != nil {
		size := li.rowHeight - st.ThumbnailPadding*2
		x := r.X + st.ThumbnailPadding
		if li.indented {
			x += st.Indent
		}
		li.thumbnail.SetBoundaries(x, r.Y+st.ThumbnailPadding, size, size)
		LayoutView(li.thumbnail, ctx)
	}

	li.bounds.Height = int(math.Round(float64(height) * li.collapse))
}

// HighlightRect covers the row itself, excluding the description and indent.
func (li *ListItem) HighlightRect() Rect {
	r := li.bounds
	r.Height = min(r.Height, li.rowHeight)
	if li.indented {
		indent := li.style().List.Item.Indent
		r.X += indent
		r.Width -= indent
	}
	return r
}

func (li *ListItem) valueColor(th *Theme, faint bool) Color {
	if faint {
		return th.ListItemFaintValueColor
	}
	return th.ListItemValueColor
}

// Draw draws the row. While a value transition runs, the previous and
// current values cross-fade with complementary opacity.
func (li *ListItem) Draw(ctx *FrameContext) {
	st := ctx.Style.List.Item
	th := ctx.Theme
	if li.collapse < 1 {
		ctx = ctx.WithAlpha(li.collapse)
	}

	r := li.bounds
	r.Height = li.rowHeight
	if li.indented {
		r.X += st.Indent
		r.Width -= st.Indent
	}
	hasSubLabel := li.subLabel != ""

	leftPadding := st.Padding
	if li.thumbnail != nil {
		leftPadding = li.thumbnail.Width() + st.ThumbnailPadding*2
	}

	if li.description != nil {
		DrawView(li.description, ctx)
	}

	valueX := r.Right() - st.Padding
	midY := r.Y + r.Height/2
	if p := li.valueProgress; p != 0 {
		ctx.Canvas.Text(valueX, midY, li.oldValue, TextStyle{
			Size:  float64(st.ValueSize) * (1 - p),
			Color: ctx.Fade(li.valueColor(th, li.oldValueFaint).Fade(1 - p)),
			Align: AlignRight,
		})
		ctx.Canvas.Text(valueX, midY, li.value, TextStyle{
			Size:  float64(st.ValueSize) * p,
			Color: ctx.Fade(li.valueColor(th, li.valueFaint).Fade(p)),
			Align: AlignRight,
		})
	} else if li.value != "" {
		ts := TextStyle{Size: float64(st.ValueSize), Color: ctx.Fade(li.valueColor(th, li.valueFaint)), Align: AlignRight}
		y := midY
		if hasSubLabel {
			ts.Size = float64(ctx.Style.Label.DescriptionFontSize)
			ts.Baseline = BaselineTop
			y = r.Y + r.Height - r.Height/3
		}
		ctx.Canvas.Text(valueX, y, li.value, ts)
	}

	if li.checked {
		li.drawCheckMark(ctx, r)
	}

	textSize := li.textSize
	if textSize == 0 {
		textSize = st.TextSize
	}
	labelY := midY
	if hasSubLabel {
		labelY = r.Y + r.Height/3
	}
	ctx.Canvas.Text(r.X+leftPadding, labelY, li.label, TextStyle{
		Size:  float64(textSize),
		Color: ctx.Fade(th.TextColor),
	})

	if hasSubLabel {
		ctx.Canvas.Text(r.X+leftPadding, r.Y+r.Height-r.Height/3, li.subLabel, TextStyle{
			Size:     float64(ctx.Style.Label.DescriptionFontSize),
			Color:    ctx.Fade(th.DescriptionColor),
			Baseline: BaselineTop,
		})
	}

	if li.thumbnail != nil {
		DrawView(li.thumbnail, ctx)
	}

	sep := ctx.Fade(th.ListItemSeparatorColor)
	if li.drawTopSeparator {
		ctx.Canvas.FillRect(Rect{X: r.X, Y: r.Y - 1, Width: r.Width, Height: 1}, sep)
	}
	ctx.Canvas.FillRect(Rect{X: r.X, Y: r.Y + 1 + r.Height, Width: r.Width, Height: 1}, sep)
}

func (li *ListItem) drawCheckMark(ctx *FrameContext, r Rect) {
	radius := ctx.Style.List.Item.SelectRadius
	cx := r.Right() - radius - ctx.Style.List.Item.Padding
	cy := r.Y + r.Height/2
	rf := float64(radius)
	thickness := int(math.Max(1, math.Round(rf*0.10)))

	ctx.Canvas.FillCircle(cx, cy, radius, ctx.Fade(ctx.Theme.ListItemValueColor))
	mark := ctx.Fade(ctx.Theme.BackgroundColor)

	ctx.Canvas.Save()
	ctx.Canvas.Translate(float64(cx), float64(cy))
	ctx.Canvas.Rotate(-math.Pi / 4)
	ctx.Canvas.FillRect(Rect{X: int(-rf * 0.55), Y: 0, Width: int(rf * 1.3), Height: thickness}, mark)
	ctx.Canvas.Restore()

	ctx.Canvas.Save()
	ctx.Canvas.Translate(float64(cx)-rf*0.65, float64(cy))
	ctx.Canvas.Rotate(math.Pi / 4)
	ctx.Canvas.FillRect(Rect{X: 0, Y: -thickness / 2, Width: int(rf * 0.53), Height: thickness}, mark)
	ctx.Canvas.Restore()
}
