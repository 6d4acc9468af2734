// Package tui provides the Bubble Tea integration for codebreaker.
// It handles the terminal UI loop, key mapping, the preset menu and the scoreboard.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/codebreaker/internal/core"
	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
	"github.com/vovakirdan/codebreaker/internal/registry"
	"github.com/vovakirdan/codebreaker/internal/storage"
)

// Options configures a game screen.
type Options struct {
	Preset    registry.Preset    // Preset to play; its Config must be valid
	Runtime   core.RuntimeConfig // Initial terminal size and RNG seed
	Ledger    *storage.Ledger    // Optional; finished rounds are recorded here
	Logger    *log.Logger        // Optional; nil discards output
	AllowBack bool               // Whether b returns to the preset menu after a round
}

// Result describes how the game screen was left.
type Result struct {
	Final  codebreaker.Snapshot // State of the last round when the screen closed
	Rounds int                  // Rounds started, including the last one
	Back   bool                 // Player asked to go back to the menu
}

// Model is the Bubble Tea model for playing codebreaker rounds.
// Key presses are applied to the game one at a time in Update, so the
// program loop is the only owner of the game.
type Model struct {
	game      *codebreaker.Game
	preset    registry.Preset
	rng       *rand.Rand
	board     *core.Screen
	ledger    *storage.Ledger
	logger    *log.Logger
	keyMapper *KeyMapper
	help      help.Model
	width     int
	height    int
	rounds    int
	allowBack bool
	recorded  bool // Whether the current round has been written to the ledger
	quitting  bool
	goingBack bool
}

// NewModel creates a new Bubble Tea model and starts the first round.
func NewModel(opts Options) (Model, error) {
	seed := opts.Runtime.Seed
	// Use time-based seed if not specified
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := codebreaker.BoardSize(opts.Preset.Config)
	m := Model{
		preset:    opts.Preset,
		rng:       rand.New(rand.NewSource(seed)),
		board:     core.NewScreen(w, h),
		ledger:    opts.Ledger,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
		allowBack: opts.AllowBack,
	}

	if err := m.newRound(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRound replaces the game with a fresh one using the same preset.
func (m *Model) newRound() error {
	game, err := codebreaker.New(m.preset.Config, m.rng)
	if err != nil {
		return err
	}
	m.game = game
	m.recorded = false
	m.rounds++
	m.logger.Debug("round started", "preset", m.preset.ID, "round", m.rounds)
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	if m.game.Status().Terminal() {
		switch {
		case key.Matches(msg, keys.Restart):
			if err := m.newRound(); err != nil {
				m.logger.Error("cannot start round", "error", err)
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keys.Back) && m.allowBack:
			m.goingBack = true
			return m, tea.Quit
		}
	}

	cmd, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	if cmd.Kind == codebreaker.CommandQuit {
		m.quitting = true
		return m, tea.Quit
	}

	changed := m.game.Apply(cmd)
	m.logger.Debug("command applied", "command", cmd, "changed", changed)

	if changed && m.game.Status().Terminal() {
		m.recordRound()
	}
	return m, nil
}

// recordRound writes the finished round to the ledger, once.
func (m *Model) recordRound() {
	if m.recorded {
		return
	}
	m.recorded = true

	snap := m.game.Snapshot()
	m.logger.Info("round finished",
		"preset", m.preset.ID,
		"status", snap.Status,
		"guesses", len(snap.Rows),
		"solution", snap.Solution,
	)

	if m.ledger == nil {
		return
	}
	cfg := snap.Config
	_, err := m.ledger.SaveRound(storage.RoundResult{
		Preset:      m.preset.ID,
		Won:         snap.Status == codebreaker.StatusWon,
		GuessesUsed: len(snap.Rows),
		MaxGuesses:  cfg.MaxGuesses,
		Holes:       cfg.Holes,
		Colors:      cfg.Colors,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot record round", "error", err)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	snap := m.game.Snapshot()
	codebreaker.Render(m.board, snap)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O D E B R E A K E R"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(infoStyle.Render(m.statusLine(snap)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(RenderScreen(framed(m.board)), m.width))
	b.WriteString("\n\n")

	switch {
	case snap.Status == codebreaker.StatusWon:
		b.WriteString(centerText(wonStyle.Render(fmt.Sprintf("Solved in %d guesses", len(snap.Rows))), m.width))
		b.WriteString("\n")
	case snap.Revealed():
		b.WriteString(centerText(lostStyle.Render("Solution: "+snap.Solution.String()), m.width))
		b.WriteString("\n")
	}

	b.WriteString(centerText(helpStyle.Render(m.help.View(m.helpKeys())), m.width))
	b.WriteString("\n")

	return b.String()
}

// statusLine summarizes the preset and the round progress.
func (m Model) statusLine(snap codebreaker.Snapshot) string {
	return fmt.Sprintf("%s  |  round %d  |  %d guesses left",
		m.preset.Label(), m.rounds, snap.GuessesLeft())
}

// bindingList adapts a flat list of bindings to help.KeyMap.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpKeys returns the bindings relevant to the current state.
func (m Model) helpKeys() help.KeyMap {
	keys := m.keyMapper.Keys()
	if !m.game.Status().Terminal() {
		return keys
	}
	list := bindingList{keys.Restart}
	if m.allowBack {
		list = append(list, keys.Back)
	}
	return append(list, keys.Quit)
}

// Snapshot returns the state of the current round.
func (m Model) Snapshot() codebreaker.Snapshot {
	return m.game.Snapshot()
}

// Result reports how the screen was left.
func (m Model) Result() Result {
	return Result{
		Final:  m.game.Snapshot(),
		Rounds: m.rounds,
		Back:   m.goingBack,
	}
}

// Run starts the Bubble Tea program and blocks until the player leaves.
func Run(opts Options) (Result, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.Result(), err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Result(), nil
	}
	return m.Result(), nil
}
