package layout

// Axis is the main axis a box stacks its children along.
type Axis uint8

const (
	Vertical   Axis = iota // Children stacked top-to-bottom
	Horizontal             // Children stacked left-to-right
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
