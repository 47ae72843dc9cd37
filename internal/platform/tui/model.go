package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Model is the Bubble Tea model for one runner session. Bubble Tea owns the
// timer; every TickMsg is one fixed simulation step of the loop driver.
type Model struct {
	session   *runner.Session
	driver    *loop.Driver
	queue     *core.EventQueue
	presenter *ScreenPresenter
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	hold      duckHold
	tickRate  int
	tickID    int64
	quitting  bool
	goingBack bool
}

// NewModel creates a model driving session in a width x height terminal.
func NewModel(session *runner.Session, tickRate, width, height int) Model {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	screen := core.NewScreen(width, core.Max(height-1, 1))
	title := session.Variant()
	if title == "" {
		title = "Runner"
	}
	presenter := NewScreenPresenter(screen, session.Skin(), strings.ToUpper(title))
	presenter.Present(session.Snapshot())

	queue := core.NewEventQueue()
	driver := loop.New(session,
		loop.WithEvents(queue),
		loop.WithPresenter(presenter),
		loop.WithTickRate(tickRate),
	)

	h := help.New()
	h.Width = width

	return Model{
		session:   session,
		driver:    driver,
		queue:     queue,
		presenter: presenter,
		screen:    screen,
		keyMapper: NewKeyMapper(),
		help:      h,
		hold:      newDuckHold(tickRate),
		tickRate:  tickRate,
		tickID:    nextTickID(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns key presses into session events. Events are queued and
// applied at the start of the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	state := m.session.State()
	if state != runner.Playing && m.keyMapper.IsBack(msg) {
		m.goingBack = true
		return m, tea.Quit
	}

	ev := m.keyMapper.MapKey(msg, state)
	switch ev {
	case core.EventNone:
		return m, nil
	case core.EventDuckPress:
		// Key repeat only extends the hold
		if !m.hold.press() {
			return m, nil
		}
	case core.EventJump:
		if m.hold.held {
			m.hold.release()
			m.queue.Push(core.EventDuckRelease)
		}
	}
	m.queue.Push(ev)
	return m, nil
}

// handleResize only changes the screen; the world keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.presenter.Redraw()
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hold.tick() {
		m.queue.Push(core.EventDuckRelease)
	}

	if !m.driver.Step() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.State() != runner.Playing {
		m.hold.release()
	}

	return m, tickCmd(m.tickID, m.tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Variant(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600)
}

// screenshotText returns the screen as plain text without trailing blanks.
func screenshotText(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// View renders the current frame and the key help.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Session returns the driven session.
func (m Model) Session() *runner.Session {
	return m.session
}

// IsQuitting reports whether the session ended with Quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run plays one variant in the terminal. It returns true when the player
// asked to go back to the menu rather than quit.
func Run(l *Launcher, variant string, width, height int) (goBack bool, err error) {
	session, err := l.NewSession(variant)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		NewModel(session, l.tickRate(), width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
