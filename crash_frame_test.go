package borealis

import (
	"testing"
	"time"
)

func TestCrashFrame_FocusIsAlwaysTheButton(t *testing.T) {
	frame := NewCrashFrame("Something went wrong")
	for _, dir := range []FocusDirection{FocusNone, FocusUp, FocusDown, FocusLeft, FocusRight} {
		for _, fromUp := range []bool{false, true} {
			if got := frame.RequestFocus(dir, nil, fromUp); got != View(frame.Button()) {
				t.Errorf("RequestFocus(%s, fromUp=%v) = %T, want the button", dir, fromUp, got)
			}
		}
	}
}

func TestCrashFrame_Layout(t *testing.T) {
	frame := NewCrashFrame("Something went wrong")
	layoutAt(frame, 0, 0, 1280, 720)

	label := frame.Label().Bounds()
	if label.Width != 768 || label.X != 256 || label.Y != 323 {
		t.Errorf("label bounds = %+v, want x=256 y=323 width=768", label)
	}
	if got, want := frame.Button().Bounds(), (Rect{X: 462, Y: 485, Width: 356, Height: 60}); got != want {
		t.Errorf("button bounds = %+v, want %+v", got, want)
	}
}

func TestCrashFrame_ButtonQuitsApp(t *testing.T) {
	quits := 0
	app, _, _ := newTestApp(t, WithOnQuit(func() { quits++ }))
	frame := NewCrashFrame("Something went wrong")
	app.PushView(frame)

	if app.Focused() != View(frame.Button()) {
		t.Fatalf("Focused() = %T, want the button", app.Focused())
	}
	if !app.Confirm() {
		t.Fatal("Confirm() should be consumed by the button")
	}

	select {
	case <-app.Done():
	default:
		t.Error("app should be quitting")
	}
	app.Confirm()
	if quits != 1 {
		t.Errorf("onQuit ran %d times, want 1", quits)
	}
}

func TestCrashFrame_ButtonFadesInAfterShow(t *testing.T) {
	app, err := NewApp(WithCanvas(NewMockCanvas()))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	frame := NewCrashFrame("Something went wrong")
	app.PushView(frame)

	if frame.Button().Alpha() != 0 {
		t.Fatalf("button alpha = %v, want 0 before the frame is shown", frame.Button().Alpha())
	}

	// Each transition starts on the tick after it is scheduled.
	start := time.Unix(0, 0)
	show := app.Style().Animations.Show
	app.Frame(start)
	app.Frame(start.Add(show))
	if frame.Alpha() != 1 {
		t.Fatalf("frame alpha = %v, want 1", frame.Alpha())
	}
	if frame.Button().Alpha() != 0 {
		t.Errorf("button alpha = %v, want 0 until its own transition runs", frame.Button().Alpha())
	}

	app.Frame(start.Add(2 * show))
	app.Frame(start.Add(3 * show))
	if frame.Button().Alpha() != 1 {
		t.Errorf("button alpha = %v, want 1", frame.Button().Alpha())
	}
}

func TestCrashFrame_Draw(t *testing.T) {
	app, _, canvas := newTestApp(t, WithTitle("Console"))
	frame := NewCrashFrame("Something went wrong")
	app.PushView(frame)
	frame.SetAlpha(1)
	frame.Button().SetAlpha(1)

	canvas.Reset()
	app.Frame(time.Now())

	for _, want := range []string{"Something went wrong", "!", "Console", "OK"} {
		if _, ok := canvas.TextOp(want); !ok {
			t.Errorf("text %q not drawn; ops:\n%s", want, canvas)
		}
	}
	if canvas.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", canvas.Depth())
	}
	scales := canvas.OpsOf(OpScale)
	if len(scales) != 1 || scales[0].F1 != 1 {
		t.Errorf("scale ops = %+v, want one op at scale 1", scales)
	}
}
