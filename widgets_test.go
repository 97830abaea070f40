package borealis

import (
	"testing"
)

func TestHeader(t *testing.T) {
	type tc struct {
		separator bool
		wantFills int
	}

	tests := map[string]tc{
		"with separator":    {separator: true, wantFills: 2},
		"without separator": {separator: false, wantFills: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewHeader("Network", tt.separator)
			layoutAt(h, 0, 0, 600, 0)
			if h.Height() != 44 || h.Kind() != KindHeader {
				t.Errorf("height = %d kind = %s, want 44 header", h.Height(), h.Kind())
			}

			c := NewMockCanvas()
			DrawView(h, testFrameContext(c))
			if _, ok := c.TextOp("Network"); !ok {
				t.Error("header label not drawn")
			}
			if n := len(c.OpsOf(OpFillRect)); n != tt.wantFills {
				t.Errorf("fills = %d, want %d", n, tt.wantFills)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable()
	tbl.AddRow("Firmware", "17.0.0")
	tbl.AddRow("Serial", "XAW1000")
	tbl.AddRow("Region", "EU")
	layoutAt(tbl, 0, 0, 600, 0)

	if tbl.Height() != 3*38 {
		t.Errorf("Height() = %d, want %d", tbl.Height(), 3*38)
	}

	c := NewMockCanvas()
	DrawView(tbl, testFrameContext(c))

	// Rows 0 and 2 get the even background.
	fills := c.OpsOf(OpFillRect)
	if len(fills) != 2 || fills[1].Rect.Y != 76 {
		t.Errorf("even row backgrounds = %+v", fills)
	}
	for _, text := range []string{"Firmware", "17.0.0", "Serial", "XAW1000", "Region", "EU"} {
		if _, ok := c.TextOp(text); !ok {
			t.Errorf("%q not drawn", text)
		}
	}
}

func TestButton(t *testing.T) {
	type tc struct {
		style      ButtonStyle
		wantStroke bool
	}

	tests := map[string]tc{
		"primary": {style: ButtonPrimary},
		"regular": {style: ButtonRegular, wantStroke: true},
		"crash":   {style: ButtonCrash},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewButton(tt.style, "OK")
			if !b.IsFocusable() {
				t.Error("buttons are focusable")
			}
			layoutAt(b, 0, 0, 200, 0)
			if b.Height() != 60 {
				t.Errorf("Height() = %d, want 60", b.Height())
			}

			c := NewMockCanvas()
			DrawView(b, testFrameContext(c))
			if got := len(c.OpsOf(OpStrokeRect)) == 1; got != tt.wantStroke {
				t.Errorf("border drawn = %v, want %v", got, tt.wantStroke)
			}
			op, ok := c.TextOp("OK")
			if !ok || op.X != 100 || op.Style.Align != AlignCenter {
				t.Errorf("label op = %+v", op)
			}
		})
	}
}

func TestImage(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	img := NewImageFromData(data)
	data[0] = 0
	img.SetScaleType(ImageStretch)
	layoutAt(img, 5, 5, 40, 40)

	c := NewMockCanvas()
	DrawView(img, testFrameContext(c))
	ops := c.OpsOf(OpImage)
	if len(ops) != 1 {
		t.Fatalf("image ops = %d, want 1", len(ops))
	}
	if ops[0].Image.Data[0] != 0x89 {
		t.Error("image data should be copied")
	}
	if ops[0].Image.Scale != ImageStretch || ops[0].Rect != NewRect(5, 5, 40, 40) {
		t.Errorf("image op = %+v", ops[0])
	}
}

func TestMockCanvas(t *testing.T) {
	c := NewMockCanvas()
	c.Save()
	c.FillRect(NewRect(0, 0, 1, 1), RGB(1, 1, 1))
	c.Text(3, 4, "hi", TextStyle{Size: 12})
	if c.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", c.Depth())
	}
	c.Restore()

	if got := c.Texts(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("Texts() = %v", got)
	}
	if len(c.Ops()) != 4 {
		t.Errorf("Ops() = %d, want 4", len(c.Ops()))
	}
	if c.String() == "" {
		t.Error("String() should describe the ops")
	}
	c.Reset()
	if len(c.Ops()) != 0 || c.Depth() != 0 {
		t.Error("Reset() should clear the recording")
	}
}
