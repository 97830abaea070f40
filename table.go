package borealis

import "github.com/grindlemire/borealis/internal/layout"

// TableRow is one label/value line of a Table.
type TableRow struct {
	Label string
	Value string
}

// Table shows column-aligned label/value rows with alternating backgrounds.
type Table struct {
	Base
	rows []TableRow
	slot []Rect
}

// NewTable creates an empty table.
func NewTable() *Table {
	t := &Table{}
	t.Init(t, KindTabular)
	return t
}

// AddRow appends a row.
func (t *Table) AddRow(label, value string) {
	t.rows = append(t.rows, TableRow{Label: label, Value: value})
	t.Invalidate()
}

// Rows returns the table rows.
func (t *Table) Rows() []TableRow { return t.rows }

// Layout stacks the rows and sizes the table to fit.
func (t *Table) Layout(ctx *LayoutContext) {
	track := layout.NewTrack(Vertical, t.bounds)
	t.slot = t.slot[:0]
	for range t.rows {
		t.slot = append(t.slot, track.Slot(ctx.Style.Table.RowHeight))
		track.Advance(ctx.Style.Table.RowHeight, 0)
	}
	t.bounds.Height = track.Extent()
}

// Draw implements View.
func (t *Table) Draw(ctx *FrameContext) {
	ts := ctx.Style.Table
	for i, row := range t.rows {
		if i >= len(t.slot) {
			break
		}
		r := t.slot[i]
		if i%2 == 0 {
			ctx.Canvas.FillRect(r, ctx.Fade(ctx.Theme.TableEvenBackgroundColor))
		}
		mid := r.Y + r.Height/2
		ctx.Canvas.Text(r.X+ts.Padding, mid, row.Label, TextStyle{
			Size:  float64(ts.FontSize),
			Color: ctx.Fade(ctx.Theme.TextColor),
		})
		ctx.Canvas.Text(r.Right()-ts.Padding, mid, row.Value, TextStyle{
			Size:  float64(ts.FontSize),
			Color: ctx.Fade(ctx.Theme.TableBodyTextColor),
			Align: AlignRight,
		})
	}
}
