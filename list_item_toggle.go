package borealis

// ToggleMode selects the strings a ToggleListItem shows.
type ToggleMode uint8

const (
	ToggleOnOff ToggleMode = iota
	ToggleYesNo
)

// Labels returns the on and off strings for the mode.
func (m ToggleMode) Labels() (on, off string) {
	if m == ToggleYesNo {
		return "YES", "NO"
	}
	return "ON", "OFF"
}

// ToggleListItem is a row holding a boolean. The off value is drawn faint.
type ToggleListItem struct {
	ListItem
	state    bool
	onValue  string
	offValue string
}

// NewToggleListItem creates a toggle row labeled by mode.
func NewToggleListItem(label string, initial bool, description string, mode ToggleMode) *ToggleListItem {
	on, off := mode.Labels()
	return NewToggleListItemWithValues(label, initial, description, on, off)
}

// NewToggleListItemWithValues creates a toggle row with custom strings.
func NewToggleListItemWithValues(label string, initial bool, description, onValue, offValue string) *ToggleListItem {
	t := &ToggleListItem{state: initial, onValue: onValue, offValue: offValue}
	t.InitListItem(t, label, description, "")
	t.updateValue(false)
	return t
}

func (t *ToggleListItem) updateValue(animate bool) {
	if t.state {
		t.SetValue(t.onValue, false, animate)
	} else {
		t.SetValue(t.offValue, true, animate)
	}
}

// State returns the toggle state.
func (t *ToggleListItem) State() bool { return t.state }

// SetState changes the state without firing the click listener.
func (t *ToggleListItem) SetState(state, animate bool) {
	if state == t.state {
		return
	}
	t.state = state
	t.updateValue(animate)
}

// OnClick flips the state with an animated value change, then runs the
// click listener.
func (t *ToggleListItem) OnClick() bool {
	t.state = !t.state
	t.updateValue(true)
	t.ListItem.OnClick()
	return true
}
