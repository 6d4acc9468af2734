package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

// GameKeyMap defines the key bindings used while a round is shown.
type GameKeyMap struct {
	Color   key.Binding
	Undo    key.Binding
	Submit  key.Binding
	Quit    key.Binding
	Restart key.Binding
	Back    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Submit, k.Undo, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.Submit, k.Undo},
		{k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Color: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "color"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace", "ctrl+z"),
			key.WithHelp("backspace", "undo"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "guess"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new round"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game command.
// Returns false for keys that are not game commands.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (codebreaker.Command, bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return codebreaker.QuitCommand, true
	case key.Matches(msg, km.keys.Color):
		// Digit keys map to zero-based color indices.
		return codebreaker.ColorCommand(int(msg.String()[0] - '1')), true
	case key.Matches(msg, km.keys.Undo):
		return codebreaker.RemoveLastCommand, true
	case key.Matches(msg, km.keys.Submit):
		return codebreaker.SubmitCommand, true
	}
	return codebreaker.Command{}, false
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
