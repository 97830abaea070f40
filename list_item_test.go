package borealis

import (
	"math"
	"testing"
)

func TestListItem_SetValue(t *testing.T) {
	type tc struct {
		initial     string
		calls       []string
		animate     bool
		wantActive  int
		wantCreated int
		wantValue   string
		wantPrev    string
	}

	tests := map[string]tc{
		"animated change schedules one transition": {
			initial:     "Low",
			calls:       []string{"High"},
			animate:     true,
			wantActive:  1,
			wantCreated: 1,
			wantValue:   "High",
			wantPrev:    "Low",
		},
		"second change cancels the first and keeps the original previous value": {
			initial:     "Low",
			calls:       []string{"Medium", "High"},
			animate:     true,
			wantActive:  1,
			wantCreated: 2,
			wantValue:   "High",
			wantPrev:    "Low",
		},
		"unanimated changes schedule nothing": {
			initial:   "Low",
			calls:     []string{"Medium", "High"},
			wantValue: "High",
			wantPrev:  "Medium",
		},
		"no previous value skips the transition": {
			calls:     []string{"High"},
			animate:   true,
			wantValue: "High",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, sched, _ := newTestApp(t)
			item := NewListItem("Volume", "", "")
			attach(item, app)
			if tt.initial != "" {
				item.SetValue(tt.initial, false, false)
			}

			for _, v := range tt.calls {
				item.SetValue(v, false, tt.animate)
			}

			if got := len(sched.active()); got != tt.wantActive {
				t.Errorf("active transitions = %d, want %d", got, tt.wantActive)
			}
			if got := len(sched.handles); got != tt.wantCreated {
				t.Errorf("scheduled transitions = %d, want %d", got, tt.wantCreated)
			}
			if item.Value() != tt.wantValue {
				t.Errorf("Value() = %q, want %q", item.Value(), tt.wantValue)
			}
			if prev, _ := item.PreviousValue(); prev != tt.wantPrev {
				t.Errorf("PreviousValue() = %q, want %q", prev, tt.wantPrev)
			}
			if item.ValueProgress() != 0 {
				t.Errorf("ValueProgress() = %v, want 0", item.ValueProgress())
			}
		})
	}
}

func TestListItem_ValueTransitionCompletes(t *testing.T) {
	app, sched, _ := newTestApp(t)
	item := NewListItem("Volume", "", "")
	attach(item, app)
	item.SetValue("Low", false, false)
	item.SetValue("High", false, true)

	h := sched.active()[0]
	if h.t.Duration != app.Style().Animations.ValueTransition {
		t.Errorf("Duration = %v, want %v", h.t.Duration, app.Style().Animations.ValueTransition)
	}

	sched.advance(h, 0.5)
	if item.ValueProgress() != 0.5 {
		t.Errorf("ValueProgress() mid transition = %v, want 0.5", item.ValueProgress())
	}

	sched.finish(h)
	if item.ValueProgress() != 0 {
		t.Errorf("ValueProgress() after completion = %v, want 0", item.ValueProgress())
	}

	// Once settled, the next change fades from the value last shown.
	item.SetValue("Off", true, true)
	if prev, faint := item.PreviousValue(); prev != "High" || faint {
		t.Errorf("PreviousValue() = %q, %v, want \"High\", false", prev, faint)
	}
}

func TestListItem_DrawCrossFade(t *testing.T) {
	app, sched, _ := newTestApp(t)
	item := NewListItem("Volume", "", "")
	attach(item, app)
	item.SetValue("Low", false, false)
	item.SetValue("High", true, true)
	sched.advance(sched.active()[0], 0.25)

	layoutAt(item, 0, 0, 800, 0)
	c := NewMockCanvas()
	DrawView(item, testFrameContext(c))

	old, ok := c.TextOp("Low")
	if !ok {
		t.Fatal("previous value was not drawn")
	}
	cur, ok := c.TextOp("High")
	if !ok {
		t.Fatal("current value was not drawn")
	}
	if math.Abs(old.Style.Color.A-0.75) > 1e-9 {
		t.Errorf("previous value alpha = %v, want 0.75", old.Style.Color.A)
	}
	if math.Abs(cur.Style.Color.A-0.25) > 1e-9 {
		t.Errorf("current value alpha = %v, want 0.25", cur.Style.Color.A)
	}
	if old.Style.Size != 15 || cur.Style.Size != 5 {
		t.Errorf("sizes = %v, %v, want 15, 5", old.Style.Size, cur.Style.Size)
	}
	th := DarkTheme()
	if cur.Style.Color.Color != th.ListItemFaintValueColor.Color {
		t.Error("faint value should use the faint value color")
	}
	if old.Style.Align != AlignRight || old.X != 785 {
		t.Errorf("value anchor = %d align %v, want 785 right", old.X, old.Style.Align)
	}
}

func TestListItem_CollapseGatesFocus(t *testing.T) {
	type tc struct {
		collapse float64
		fromUp   bool
		want     bool
	}

	tests := map[string]tc{
		"expanded":                      {collapse: 1, want: true},
		"expanded from child":           {collapse: 1, fromUp: true, want: true},
		"partially expanded":            {collapse: 0.5, want: false},
		"partially expanded from child": {collapse: 0.5, fromUp: true, want: false},
		"collapsed":                     {collapse: 0, want: false},
		"collapsed from child":          {collapse: 0, fromUp: true, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, sched, _ := newTestApp(t)
			list := NewList(0)
			item := NewListItem("Wi-Fi", "", "")
			other := NewListItem("Bluetooth", "", "")
			list.AddView(item)
			list.AddView(other)
			attach(list, app)
			item.Collapse(true)
			sched.advance(sched.active()[0], 1-tt.collapse)

			if item.CollapseProgress() != tt.collapse {
				t.Fatalf("CollapseProgress() = %v, want %v", item.CollapseProgress(), tt.collapse)
			}
			for _, dir := range []FocusDirection{FocusNone, FocusUp, FocusDown, FocusLeft, FocusRight} {
				got := item.RequestFocus(dir, other, tt.fromUp)
				if tt.want && got != View(item) {
					t.Errorf("RequestFocus(%s, fromUp=%v) = %T, want the row itself", dir, tt.fromUp, got)
				}
				if !tt.want && got != nil {
					t.Errorf("RequestFocus(%s, fromUp=%v) = %T, want nil", dir, tt.fromUp, got)
				}
			}
		})
	}
}

func TestListItem_CollapseScalesHeight(t *testing.T) {
	item := NewListItem("Wi-Fi", "", "")
	layoutAt(item, 0, 0, 800, 0)
	if item.Height() != 69 {
		t.Fatalf("Height() = %d, want 69", item.Height())
	}

	item.Collapse(false)
	layoutAt(item, 0, 0, 800, 0)
	if item.Height() != 0 {
		t.Errorf("collapsed Height() = %d, want 0", item.Height())
	}

	item.Expand(false)
	layoutAt(item, 0, 0, 800, 0)
	if item.Height() != 69 {
		t.Errorf("expanded Height() = %d, want 69", item.Height())
	}
}

func TestListItem_Layout(t *testing.T) {
	type tc struct {
		description string
		subLabel    string
		indented    bool
		wantHeight  int
		wantHigh    Rect
	}

	tests := map[string]tc{
		"plain row": {
			wantHeight: 69,
			wantHigh:   Rect{X: 0, Y: 10, Width: 800, Height: 69},
		},
		"row with sub-label": {
			subLabel:   "Connected",
			wantHeight: 99,
			wantHigh:   Rect{X: 0, Y: 10, Width: 800, Height: 99},
		},
		"row with description": {
			description: "Applies on restart",
			wantHeight:  69 + 16 + 27,
			wantHigh:    Rect{X: 0, Y: 10, Width: 800, Height: 69},
		},
		"indented row": {
			indented:   true,
			wantHeight: 69,
			wantHigh:   Rect{X: 40, Y: 10, Width: 760, Height: 69},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := NewListItem("Wi-Fi", tt.description, tt.subLabel)
			item.SetIndented(tt.indented)
			layoutAt(item, 0, 10, 800, 0)

			if item.Height() != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", item.Height(), tt.wantHeight)
			}
			if got := item.HighlightRect(); got != tt.wantHigh {
				t.Errorf("HighlightRect() = %+v, want %+v", got, tt.wantHigh)
			}
		})
	}
}

func TestListItem_Thumbnail(t *testing.T) {
	item := NewListItem("Profile", "", "")
	item.SetThumbnailPath("avatar.png")
	first := item.Thumbnail()
	item.SetThumbnailData([]byte{1, 2, 3})

	if !first.IsDisposed() {
		t.Error("replaced thumbnail should be disposed")
	}
	if item.Thumbnail().Parent() != View(item) {
		t.Error("thumbnail should be owned by the row")
	}

	layoutAt(item, 0, 0, 800, 0)
	if got, want := item.Thumbnail().Bounds(), (Rect{X: 11, Y: 11, Width: 47, Height: 47}); got != want {
		t.Errorf("thumbnail bounds = %+v, want %+v", got, want)
	}

	c := NewMockCanvas()
	DrawView(item, testFrameContext(c))
	label, ok := c.TextOp("Profile")
	if !ok {
		t.Fatal("label not drawn")
	}
	if label.X != 47+22 {
		t.Errorf("label x = %d, want %d", label.X, 47+22)
	}
	if len(c.OpsOf(OpImage)) != 1 {
		t.Error("thumbnail image not drawn")
	}
}

func TestListItem_DisposeCancelsTransitions(t *testing.T) {
	app, sched, _ := newTestApp(t)
	item := NewListItem("Volume", "", "")
	attach(item, app)
	item.SetValue("Low", false, false)
	item.SetValue("High", false, true)
	item.Collapse(true)

	item.Dispose()

	if n := len(sched.active()); n != 0 {
		t.Errorf("active transitions after Dispose = %d, want 0", n)
	}
}

func TestListItem_Separators(t *testing.T) {
	type tc struct {
		top       bool
		wantFills int
	}

	tests := map[string]tc{
		"top and bottom": {top: true, wantFills: 2},
		"bottom only":    {top: false, wantFills: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := NewListItem("Wi-Fi", "", "")
			item.SetDrawTopSeparator(tt.top)
			layoutAt(item, 0, 100, 800, 0)

			c := NewMockCanvas()
			DrawView(item, testFrameContext(c))
			fills := c.OpsOf(OpFillRect)
			if len(fills) != tt.wantFills {
				t.Fatalf("fills = %d, want %d", len(fills), tt.wantFills)
			}
			if bottom := fills[len(fills)-1].Rect; bottom.Y != 100+1+69 {
				t.Errorf("bottom separator y = %d, want %d", bottom.Y, 170)
			}
			if tt.top && fills[0].Rect.Y != 99 {
				t.Errorf("top separator y = %d, want 99", fills[0].Rect.Y)
			}
		})
	}
}

func TestListItem_CheckMark(t *testing.T) {
	item := NewListItem("English", "", "")
	item.SetChecked(true)
	layoutAt(item, 0, 0, 800, 0)

	c := NewMockCanvas()
	DrawView(item, testFrameContext(c))

	circles := c.OpsOf(OpFillCircle)
	if len(circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(circles))
	}
	if circles[0].X != 800-15-15 || circles[0].Width != 15 {
		t.Errorf("circle = (%d, r=%d), want (770, r=15)", circles[0].X, circles[0].Width)
	}
	if c.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", c.Depth())
	}
}
