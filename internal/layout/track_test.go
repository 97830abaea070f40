package layout

import "testing"

func TestTrack_VerticalSlots(t *testing.T) {
	content := NewRect(10, 20, 100, 500)
	tr := NewTrack(Vertical, content)

	first := tr.Slot(30)
	if first != NewRect(10, 20, 100, 30) {
		t.Fatalf("first slot = %+v", first)
	}
	tr.Advance(40, 5) // child grew during its own layout

	second := tr.Slot(30)
	if second.Y != 65 {
		t.Errorf("second slot Y = %d, want 65", second.Y)
	}
	tr.Advance(30, 5)

	if got := tr.Extent(); got != 75 {
		t.Errorf("Extent() = %d, want 75 (trailing gap excluded)", got)
	}
	if got := tr.Offset(); got != 100 {
		t.Errorf("Offset() = %d, want 100", got)
	}
}

func TestTrack_HorizontalSlots(t *testing.T) {
	tr := NewTrack(Horizontal, NewRect(0, 5, 300, 40))

	tr.Advance(50, 10)
	slot := tr.Slot(20)

	if slot != NewRect(60, 5, 20, 40) {
		t.Errorf("slot = %+v, want {60 5 20 40}", slot)
	}
	if tr.Axis() != Horizontal {
		t.Errorf("Axis() = %v, want horizontal", tr.Axis())
	}
}

func TestTrack_NegativeGapOverlaps(t *testing.T) {
	tr := NewTrack(Vertical, NewRect(0, 0, 10, 100))
	tr.Advance(10, -2)
	if got := tr.Slot(1).Y; got != 8 {
		t.Errorf("slot Y = %d, want 8", got)
	}
}

func TestTrack_EmptyExtent(t *testing.T) {
	tr := NewTrack(Vertical, NewRect(0, 50, 10, 100))
	if got := tr.Extent(); got != 0 {
		t.Errorf("Extent() = %d, want 0", got)
	}
}
