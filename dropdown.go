package borealis

import "github.com/grindlemire/borealis/internal/debug"

// Dropdown is the built-in Picker: a modal list of values with a check
// marker on the current one. Confirming a row reports its index; backing
// out reports -1. Either way the dropdown pops itself.
type Dropdown struct {
	Base
	title string
	list  *List
	cb    func(int)
	done  bool
	panel Rect
}

// NewDropdown creates a dropdown. Push it with App.PushView.
func NewDropdown(title string, values []string, cb func(int), selected int) *Dropdown {
	d := &Dropdown{title: title, cb: cb}
	d.Init(d, KindGeneric)

	d.list = NewList(max(0, selected))
	for i, v := range values {
		item := NewListItem(v, "", "")
		item.SetChecked(i == selected)
		item.SetClickListener(func(View) { d.finish(i) })
		d.list.AddView(item)
	}
	d.list.SetParent(d)
	return d
}

// Title returns the dropdown title.
func (d *Dropdown) Title() string { return d.title }

// List returns the list of choices.
func (d *Dropdown) List() *List { return d.list }

// Children implements View.
func (d *Dropdown) Children() []View { return []View{d.list} }

// IsTranslucent keeps the views below the dropdown visible.
func (d *Dropdown) IsTranslucent() bool { return true }

// Layout centers the panel and places the list below its header.
func (d *Dropdown) Layout(ctx *LayoutContext) {
	ds := ctx.Style.Dropdown
	r := d.bounds
	w := min(ds.ListWidth, r.Width)
	d.panel = Rect{X: r.X + (r.Width-w)/2, Y: r.Y, Width: w, Height: r.Height}

	d.list.SetBoundaries(d.panel.X, d.panel.Y+ds.HeaderHeight, d.panel.Width, max(0, d.panel.Height-ds.HeaderHeight))
	LayoutView(d.list, ctx)
}

// Draw implements View.
func (d *Dropdown) Draw(ctx *FrameContext) {
	ds := ctx.Style.Dropdown
	ctx.Canvas.FillRect(d.bounds, ctx.Fade(ctx.Theme.DropdownBackgroundColor))
	ctx.Canvas.FillRect(d.panel, ctx.Fade(ctx.Theme.BackgroundColor))

	ctx.Canvas.Text(d.panel.X+ds.HeaderPadding, d.panel.Y+ds.HeaderHeight/2, d.title, TextStyle{
		Size:  float64(ds.TitleSize),
		Color: ctx.Fade(ctx.Theme.TextColor),
	})
	ctx.Canvas.FillRect(Rect{
		X:      d.panel.X + ds.ListPadding,
		Y:      d.panel.Y + ds.HeaderHeight - 1,
		Width:  max(0, d.panel.Width-ds.ListPadding*2),
		Height: 1,
	}, ctx.Fade(ctx.Theme.SeparatorColor))

	DrawView(d.list, ctx)
}

// RequestFocus keeps focus inside the dropdown.
func (d *Dropdown) RequestFocus(dir FocusDirection, old View, fromUp bool) View {
	if fromUp {
		return nil
	}
	return d.list.RequestFocus(dir, old, false)
}

// OnBack cancels the dropdown.
func (d *Dropdown) OnBack() bool {
	d.finish(-1)
	return true
}

func (d *Dropdown) finish(selected int) {
	if d.done {
		return
	}
	d.done = true
	debug.Log("Dropdown.finish: %q selected=%d", d.title, selected)
	if a := d.App(); a != nil && a.Top() == View(d) {
		a.PopView()
	}
	if d.cb != nil {
		d.cb(selected)
	}
}

// dropdownPicker opens a Dropdown on the app's view stack.
type dropdownPicker struct {
	app *App
}

func (p dropdownPicker) Open(title string, values []string, f func(int), selected int) {
	p.app.PushView(NewDropdown(title, values, f, selected))
}
