package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/borealis"
	"github.com/grindlemire/borealis/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreview(t *testing.T, root borealis.View) *previewModel {
	t.Helper()
	m, err := newPreviewModel(style.Defaults())
	require.NoError(t, err)
	m.app.PushView(root)
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 46})
	return m
}

// settle runs frames until the show animation has finished.
func settle(m *previewModel) tea.Cmd {
	start := time.Unix(0, 0)
	m.Update(frameMsg(start))
	_, cmd := m.Update(frameMsg(start.Add(time.Second)))
	return cmd
}

func focusedLabel(t *testing.T, m *previewModel) string {
	t.Helper()
	type labeled interface{ Label() string }
	l, ok := m.app.Focused().(labeled)
	require.True(t, ok, "focused view %T has no label", m.app.Focused())
	return l.Label()
}

func TestPreview_DrawsDemo(t *testing.T) {
	m := newTestPreview(t, newDemoFrame())
	settle(m)

	view := m.View()
	for _, want := range []string{"Settings", "Network", "Wi-Fi", "Airplane mode", previewHelp} {
		assert.Contains(t, view, want)
	}
}

func TestPreview_Keys(t *testing.T) {
	type tc struct {
		keys      []tea.KeyMsg
		wantFocus string
	}

	tests := map[string]tc{
		"starts on default row": {
			wantFocus: "Wi-Fi",
		},
		"down moves to next row": {
			keys:      []tea.KeyMsg{{Type: tea.KeyDown}},
			wantFocus: "Airplane mode",
		},
		"vim keys": {
			keys:      []tea.KeyMsg{runes("j"), runes("j"), runes("k")},
			wantFocus: "Airplane mode",
		},
		"up from first row stays": {
			keys:      []tea.KeyMsg{{Type: tea.KeyUp}},
			wantFocus: "Wi-Fi",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestPreview(t, newDemoFrame())
			settle(m)
			for _, key := range tt.keys {
				m.Update(key)
			}
			assert.Equal(t, tt.wantFocus, focusedLabel(t, m))
		})
	}
}

func TestPreview_ConfirmToggles(t *testing.T) {
	m := newTestPreview(t, newDemoFrame())
	settle(m)

	wifi, ok := m.app.Focused().(*borealis.ToggleListItem)
	require.True(t, ok)
	require.True(t, wifi.State())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, wifi.State())
}

func TestPreview_InputOpensKeyboard(t *testing.T) {
	m := newTestPreview(t, newDemoFrame())
	settle(m)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "Device name", focusedLabel(t, m))

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.keyboard.Active())
	assert.Contains(t, m.View(), "Name shown to other devices")

	// Keys go to the keyboard, not to navigation.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Device name", focusedLabel(t, m))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.keyboard.Active())
	input := m.app.Focused().(*borealis.InputListItem)
	assert.Equal(t, "borealis", input.Value())
}

func TestPreview_SelectOpensDropdown(t *testing.T) {
	m := newTestPreview(t, newDemoFrame())
	settle(m)

	lang := findSelect(t, m.app.Top(), "Language")
	m.app.Focus().Give(lang)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.app.Views(), 2, "dropdown is pushed")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settle(m)

	assert.Len(t, m.app.Views(), 1)
	assert.Equal(t, 1, lang.SelectedValue())
	assert.Equal(t, "Français", lang.Value())
}

func findSelect(t *testing.T, v borealis.View, label string) *borealis.SelectListItem {
	t.Helper()
	s := findSelectOrNil(v, label)
	require.NotNil(t, s, "no select row %q", label)
	return s
}

func findSelectOrNil(v borealis.View, label string) *borealis.SelectListItem {
	if s, ok := v.(*borealis.SelectListItem); ok && s.Label() == label {
		return s
	}
	for _, c := range v.Children() {
		if s := findSelectOrNil(c, label); s != nil {
			return s
		}
	}
	return nil
}

func TestPreview_Quit(t *testing.T) {
	m := newTestPreview(t, newDemoFrame())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPreview_CrashButtonQuits(t *testing.T) {
	m := newTestPreview(t, borealis.NewCrashFrame("something went wrong"))
	settle(m)
	assert.Contains(t, m.View(), "something went wrong")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.quitting)

	cmd := settle(m)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
