package borealis

import (
	"strconv"

	"github.com/grindlemire/borealis/internal/debug"
)

// InputListItem is a row whose value is typed on the on-screen keyboard.
type InputListItem struct {
	ListItem
	helpText       string
	maxInputLength int
}

// NewInputListItem creates a text input row.
func NewInputListItem(label, initialValue, helpText, description string, maxInputLength int) *InputListItem {
	in := &InputListItem{}
	in.initInput(in, label, initialValue, helpText, description, maxInputLength)
	return in
}

func (in *InputListItem) initInput(self View, label, initialValue, helpText, description string, maxInputLength int) {
	in.InitListItem(self, label, description, "")
	in.helpText = helpText
	in.maxInputLength = maxInputLength
	in.SetValue(initialValue, false, false)
}

// HelpText returns the keyboard header text.
func (in *InputListItem) HelpText() string { return in.helpText }

// MaxInputLength returns the keyboard length limit.
func (in *InputListItem) MaxInputLength() int { return in.maxInputLength }

// OnClick opens the text keyboard, then runs the click listener.
func (in *InputListItem) OnClick() bool {
	shown := in.keyboard().OpenText(func(text string) {
		in.SetValue(text, false, false)
	}, in.helpText, "", in.maxInputLength, in.value)
	debug.Log("InputListItem.OnClick: %q keyboard shown=%v", in.label, shown)
	in.ListItem.OnClick()
	return true
}

func (in *InputListItem) keyboard() Keyboard {
	if a := in.App(); a != nil {
		return a.Keyboard()
	}
	return noKeyboard{}
}

// IntegerInputListItem is an input row restricted to integers.
type IntegerInputListItem struct {
	InputListItem
}

// NewIntegerInputListItem creates a numeric input row.
func NewIntegerInputListItem(label string, initialValue int, helpText, description string, maxInputLength int) *IntegerInputListItem {
	in := &IntegerInputListItem{}
	in.initInput(in, label, strconv.Itoa(initialValue), helpText, description, maxInputLength)
	return in
}

// IntValue returns the value as an integer.
func (in *IntegerInputListItem) IntValue() int {
	n, _ := strconv.Atoi(in.value)
	return n
}

// OnClick opens the number keyboard, then runs the click listener.
func (in *IntegerInputListItem) OnClick() bool {
	shown := in.keyboard().OpenNumber(func(n int) {
		in.SetValue(strconv.Itoa(n), false, false)
	}, in.helpText, "", in.maxInputLength, in.value)
	debug.Log("IntegerInputListItem.OnClick: %q keyboard shown=%v", in.label, shown)
	in.ListItem.OnClick()
	return true
}
