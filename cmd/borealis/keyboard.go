package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/borealis"
)

var (
	keyboardBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00ffcc")).
			Padding(0, 1)
	keyboardTitle = lipgloss.NewStyle().Bold(true)
	keyboardHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// keyboard implements borealis.Keyboard with a bubbles text input drawn
// under the preview. Results are delivered through App.Post.
type keyboard struct {
	post    func(func())
	input   textinput.Model
	active  bool
	numeric bool
	header  string
	sub     string
	submit  func(string)
}

var _ borealis.Keyboard = (*keyboard)(nil)

func newKeyboard(post func(func())) *keyboard {
	return &keyboard{post: post}
}

// OpenText implements borealis.Keyboard.
func (k *keyboard) OpenText(f func(text string), headerText, subText string, maxLength int, initialText string) bool {
	k.open(headerText, subText, maxLength, initialText, false)
	k.submit = f
	return true
}

// OpenNumber implements borealis.Keyboard. Input that is not an integer is
// discarded.
func (k *keyboard) OpenNumber(f func(n int), headerText, subText string, maxLength int, initialText string) bool {
	k.open(headerText, subText, maxLength, initialText, true)
	k.submit = func(text string) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		f(n)
	}
	return true
}

func (k *keyboard) open(header, sub string, maxLength int, initial string, numeric bool) {
	ti := textinput.New()
	ti.CharLimit = maxLength
	ti.Width = 40
	ti.SetValue(initial)
	ti.Focus()
	k.input = ti
	k.header = header
	k.sub = sub
	k.numeric = numeric
	k.active = true
}

// Active reports whether the keyboard owns key input.
func (k *keyboard) Active() bool {
	return k.active
}

// Update feeds a key to the input. Enter submits, esc cancels.
func (k *keyboard) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			k.close()
			return nil
		case "enter":
			text := strings.TrimSpace(k.input.Value())
			submit := k.submit
			k.close()
			k.post(func() { submit(text) })
			return nil
		}
		if k.numeric && key.Type == tea.KeyRunes && !isDigits(key.Runes) {
			return nil
		}
	}
	var cmd tea.Cmd
	k.input, cmd = k.input.Update(msg)
	return cmd
}

func (k *keyboard) close() {
	k.active = false
	k.submit = nil
	k.input.Blur()
}

// View renders the input box, or nothing when closed.
func (k *keyboard) View() string {
	if !k.active {
		return ""
	}
	content := keyboardTitle.Render(k.header) + "\n"
	if k.sub != "" {
		content += k.sub + "\n"
	}
	content += k.input.View() + "\n"
	content += keyboardHelp.Render("Enter: done  Esc: cancel")
	return keyboardBox.Render(content)
}

func isDigits(rs []rune) bool {
	for i, r := range rs {
		if r == '-' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
