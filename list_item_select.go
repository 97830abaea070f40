package borealis

import (
	"fmt"
	"slices"

	"github.com/grindlemire/borealis/internal/debug"
)

// SelectListItem is a row choosing one of several values through the
// app's Picker.
type SelectListItem struct {
	ListItem
	values   []string
	selected int
	listener func(selected int)
}

// NewSelectListItem creates a select row. It panics if selected is not a
// valid index into values.
func NewSelectListItem(label string, values []string, selected int) *SelectListItem {
	if selected < 0 || selected >= len(values) {
		panic(fmt.Sprintf("borealis: SelectListItem %q: selected index %d out of range [0,%d)", label, selected, len(values)))
	}
	s := &SelectListItem{values: slices.Clone(values), selected: selected}
	s.InitListItem(s, label, "", "")
	s.SetValue(s.values[selected], false, false)
	return s
}

// Values returns the candidate values.
func (s *SelectListItem) Values() []string { return slices.Clone(s.values) }

// SelectedValue returns the selected index.
func (s *SelectListItem) SelectedValue() int { return s.selected }

// SetListener registers the callback fired after the user picks a value.
func (s *SelectListItem) SetListener(fn func(selected int)) {
	s.listener = fn
}

// OnClick opens the picker, then runs the click listener.
func (s *SelectListItem) OnClick() bool {
	s.picker().Open(s.label, s.Values(), s.onPicked, s.selected)
	s.ListItem.OnClick()
	return true
}

// onPicked applies a picker result. -1 leaves the row unchanged.
func (s *SelectListItem) onPicked(result int) {
	if result < 0 || result >= len(s.values) {
		debug.Log("SelectListItem.onPicked: %q ignoring result %d", s.label, result)
		return
	}
	s.selected = result
	s.SetValue(s.values[result], false, false)
	if s.listener != nil {
		s.listener(result)
	}
}

func (s *SelectListItem) picker() Picker {
	if a := s.App(); a != nil {
		return a.Picker()
	}
	return detachedPicker{}
}

type detachedPicker struct{}

func (detachedPicker) Open(title string, _ []string, _ func(int), _ int) {
	debug.Log("Picker.Open: %q ignored, no app attached", title)
}
