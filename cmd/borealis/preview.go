package main

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/borealis"
	"github.com/grindlemire/borealis/internal/debug"
	"github.com/grindlemire/borealis/internal/termcanvas"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	surfaceWidth  = 1280
	surfaceHeight = 720
	frameInterval = 16 * time.Millisecond
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

const previewHelp = "↑↓←→ move  enter select  esc back  q quit"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run the demo settings screen in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Bool("watch", false, "reload the style file when it changes")
}

func runPreview(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	loader, st, err := loadStyle()
	if err != nil {
		return err
	}
	m, err := newPreviewModel(st)
	if err != nil {
		return err
	}
	if watch {
		if viper.GetString("style") == "" {
			return errors.New("--watch needs --style")
		}
		m.app.WatchStyle(loader, func(err error) { m.status = err.Error() })
	}
	m.app.PushView(newDemoFrame())
	return runProgram(m)
}

func runProgram(m *previewModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// previewModel hosts a borealis App inside a bubbletea program. Keys map to
// focus moves, confirm and back; every tick runs one App frame.
type previewModel struct {
	app      *borealis.App
	canvas   *termcanvas.Canvas
	keyboard *keyboard
	cols     int
	rows     int
	status   string
	quitting bool
}

func newPreviewModel(st *borealis.StyleStore) (*previewModel, error) {
	m := &previewModel{cols: 80, rows: 24}
	m.canvas = termcanvas.New(m.cols, m.rows-1, surfaceWidth, surfaceHeight, st.Theme().BackgroundColor)

	var app *borealis.App
	m.keyboard = newKeyboard(func(fn func()) { app.Post(fn) })
	app, err := borealis.NewApp(
		borealis.WithStyleStore(st),
		borealis.WithCanvas(m.canvas),
		borealis.WithKeyboard(m.keyboard),
		borealis.WithSize(surfaceWidth, surfaceHeight),
		borealis.WithOnQuit(func() { m.quitting = true }),
	)
	if err != nil {
		return nil, err
	}
	m.app = app
	return m, nil
}

// Init implements tea.Model.
func (m *previewModel) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(msg.Height, 2)
		m.canvas.Resize(m.cols, m.rows-1, surfaceWidth, surfaceHeight)
		m.app.MarkDirty()
		return m, nil

	case frameMsg:
		m.app.Frame(time.Time(msg))
		if m.quitting {
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.keyboard.Active() {
			return m, m.keyboard.Update(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *previewModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		m.app.Navigate(borealis.FocusUp)
	case "down", "j":
		m.app.Navigate(borealis.FocusDown)
	case "left", "h":
		m.app.Navigate(borealis.FocusLeft)
	case "right", "l":
		m.app.Navigate(borealis.FocusRight)
	case "enter", " ":
		m.app.Confirm()
	case "esc", "backspace":
		m.app.Back()
	default:
		debug.Log("preview: unbound key %q", msg.String())
	}
	return nil
}

// View implements tea.Model.
func (m *previewModel) View() string {
	if m.quitting {
		return ""
	}
	screen := m.canvas.String()
	if m.keyboard.Active() {
		screen = lipgloss.Place(m.cols, m.rows-1, lipgloss.Center, lipgloss.Center, m.keyboard.View())
	}
	status := m.status
	if status == "" {
		status = previewHelp
	}
	return screen + "\n" + statusStyle.Render(status)
}
