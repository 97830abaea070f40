package borealis

// Keyboard opens an on-screen keyboard. The callback runs at most once,
// later, on the frame loop goroutine. Open reports whether the keyboard
// was shown.
type Keyboard interface {
	OpenText(f func(text string), headerText, subText string, maxLength int, initialText string) bool
	OpenNumber(f func(n int), headerText, subText string, maxLength int, initialText string) bool
}

// Picker opens a single-choice list. The callback receives the chosen
// index, or -1 when the user backed out.
type Picker interface {
	Open(title string, values []string, f func(selected int), selected int)
}

// noKeyboard is used when the app has no keyboard configured.
type noKeyboard struct{}

func (noKeyboard) OpenText(func(string), string, string, int, string) bool { return false }
func (noKeyboard) OpenNumber(func(int), string, string, int, string) bool  { return false }
