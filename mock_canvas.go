package borealis

import (
	"fmt"
	"strings"
)

// DrawOpKind identifies a recorded Canvas call.
type DrawOpKind uint8

const (
	OpSave DrawOpKind = iota
	OpRestore
	OpTranslate
	OpScale
	OpRotate
	OpFillRect
	OpStrokeRect
	OpFillCircle
	OpText
	OpImage
)

var opNames = [...]string{"save", "restore", "translate", "scale", "rotate", "fill_rect", "stroke_rect", "fill_circle", "text", "image"}

func (k DrawOpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", k)
}

// DrawOp is a single recorded Canvas call. Only the fields relevant to Kind
// are set.
type DrawOp struct {
	Kind  DrawOpKind
	Rect  Rect
	Color Color
	X, Y  int
	// Width is the stroke width or the circle radius.
	Width  int
	F1, F2 float64
	Text   string
	Style  TextStyle
	Image  ImageSource
}

// MockCanvas is a Canvas that records every call for verification.
type MockCanvas struct {
	ops   []DrawOp
	depth int
}

// Ensure MockCanvas implements Canvas.
var _ Canvas = (*MockCanvas)(nil)

// NewMockCanvas creates an empty recording canvas.
func NewMockCanvas() *MockCanvas {
	return &MockCanvas{}
}

func (m *MockCanvas) Save() {
	m.depth++
	m.ops = append(m.ops, DrawOp{Kind: OpSave})
}

func (m *MockCanvas) Restore() {
	m.depth--
	m.ops = append(m.ops, DrawOp{Kind: OpRestore})
}

func (m *MockCanvas) Translate(dx, dy float64) {
	m.ops = append(m.ops, DrawOp{Kind: OpTranslate, F1: dx, F2: dy})
}

func (m *MockCanvas) Scale(sx, sy float64) {
	m.ops = append(m.ops, DrawOp{Kind: OpScale, F1: sx, F2: sy})
}

func (m *MockCanvas) Rotate(radians float64) {
	m.ops = append(m.ops, DrawOp{Kind: OpRotate, F1: radians})
}

func (m *MockCanvas) FillRect(r Rect, c Color) {
	m.ops = append(m.ops, DrawOp{Kind: OpFillRect, Rect: r, Color: c})
}

func (m *MockCanvas) StrokeRect(r Rect, c Color, width int) {
	m.ops = append(m.ops, DrawOp{Kind: OpStrokeRect, Rect: r, Color: c, Width: width})
}

func (m *MockCanvas) FillCircle(cx, cy, radius int, c Color) {
	m.ops = append(m.ops, DrawOp{Kind: OpFillCircle, X: cx, Y: cy, Width: radius, Color: c})
}

func (m *MockCanvas) Text(x, y int, text string, ts TextStyle) {
	m.ops = append(m.ops, DrawOp{Kind: OpText, X: x, Y: y, Text: text, Style: ts, Color: ts.Color})
}

func (m *MockCanvas) Image(r Rect, src ImageSource) {
	m.ops = append(m.ops, DrawOp{Kind: OpImage, Rect: r, Image: src})
}

// Ops returns every recorded call in order.
func (m *MockCanvas) Ops() []DrawOp {
	return m.ops
}

// OpsOf returns the recorded calls of one kind.
func (m *MockCanvas) OpsOf(kind DrawOpKind) []DrawOp {
	var out []DrawOp
	for _, op := range m.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// TextOp returns the first text call drawing exactly s.
func (m *MockCanvas) TextOp(s string) (DrawOp, bool) {
	for _, op := range m.ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return DrawOp{}, false
}

// Texts returns the strings of all text calls in order.
func (m *MockCanvas) Texts() []string {
	var out []string
	for _, op := range m.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Depth returns the current Save nesting. A balanced frame ends at zero.
func (m *MockCanvas) Depth() int {
	return m.depth
}

// Reset clears the recording.
func (m *MockCanvas) Reset() {
	m.ops = nil
	m.depth = 0
}

// String returns a one-line-per-call dump, useful in failure messages.
func (m *MockCanvas) String() string {
	var sb strings.Builder
	for _, op := range m.ops {
		switch op.Kind {
		case OpText:
			fmt.Fprintf(&sb, "%s %q @(%d,%d) a=%.2f\n", op.Kind, op.Text, op.X, op.Y, op.Color.A)
		case OpFillRect, OpStrokeRect, OpImage:
			fmt.Fprintf(&sb, "%s %+v\n", op.Kind, op.Rect)
		default:
			fmt.Fprintf(&sb, "%s\n", op.Kind)
		}
	}
	return sb.String()
}
