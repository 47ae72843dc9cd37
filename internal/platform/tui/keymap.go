package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Jump       key.Binding
	Duck       key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck},
		{k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "start/jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "duck (hold)"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to session events.
// One physical key maps to different logical events depending on the
// session state: space starts, jumps or restarts.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a session event for the given state.
// Returns EventNone for keys that mean nothing in that state.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state runner.State) core.Event {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.EventQuit

	case key.Matches(msg, km.keys.Jump):
		switch state {
		case runner.NotStarted:
			return core.EventStart
		case runner.GameOver:
			return core.EventRestart
		default:
			return core.EventJump
		}

	case key.Matches(msg, km.keys.Restart):
		switch state {
		case runner.NotStarted:
			return core.EventStart
		case runner.GameOver:
			return core.EventRestart
		}

	case key.Matches(msg, km.keys.Duck):
		if state == runner.Playing {
			return core.EventDuckPress
		}
	}

	return core.EventNone
}

// IsBack reports whether msg asks to leave the game.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Back)
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// duckHold turns repeated duck key presses into a held duck. Terminals
// report no key release, so the duck is released once no press has arrived
// for timeout ticks.
type duckHold struct {
	timeout int
	held    bool
	idle    int
}

func newDuckHold(tickRate int) duckHold {
	if tickRate <= 0 {
		tickRate = 60
	}
	// Longer than the usual keyboard repeat delay
	return duckHold{timeout: tickRate * 6 / 10}
}

// press records a duck key press and reports whether the duck just started.
func (d *duckHold) press() bool {
	d.idle = 0
	if d.held {
		return false
	}
	d.held = true
	return true
}

// tick advances one tick and reports whether the duck should be released.
func (d *duckHold) tick() bool {
	if !d.held {
		return false
	}
	d.idle++
	if d.idle < d.timeout {
		return false
	}
	d.release()
	return true
}

func (d *duckHold) release() {
	d.held = false
	d.idle = 0
}
