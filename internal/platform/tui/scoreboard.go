package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/codebreaker/internal/registry"
	"github.com/vovakirdan/codebreaker/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show preset list sidebar
	sidebarWidth       = 20 // Width of preset list sidebar
	recentLimit        = 50 // Rounds shown on the all-presets page
)

// allPresets is the scoreboard page listing recent rounds of every preset.
var allPresets = registry.Preset{ID: "*", Title: "All presets"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	Clear      key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPreset, k.PrevPreset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPreset, k.PrevPreset},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev preset"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the rounds played in this run, one preset at a time,
// followed by a page with the most recent rounds of every preset.
type ScoreboardModel struct {
	presets      []registry.Preset
	presetCursor int
	ledger       *storage.Ledger
	rounds       []storage.RoundResult
	stats        storage.Stats
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool // True if user pressed back (not quit)
	showSidebar  bool // Whether to show preset list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(ledger *storage.Ledger, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		presets:     append(registry.List(), allPresets),
		ledger:      ledger,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRounds(m.presets[0].ID)

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Preset", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Guesses", Width: 9},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads the rounds and stats for the given preset, oldest first.
func (m *ScoreboardModel) loadRounds(presetID string) {
	m.rounds = nil
	m.stats = storage.Stats{Preset: presetID}

	switch {
	case m.ledger == nil:
	case presetID == allPresets.ID:
		if rounds, err := m.ledger.RecentRounds(recentLimit); err == nil {
			slices.Reverse(rounds)
			m.rounds = rounds
		}
		if all, err := m.ledger.AllStats(); err == nil {
			m.stats = totalStats(all)
		}
	default:
		if rounds, err := m.ledger.RoundsForPreset(presetID); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.ledger.Stats(presetID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// totalStats merges per-preset stats into one summary.
func totalStats(all []storage.Stats) storage.Stats {
	total := storage.Stats{Preset: allPresets.ID}
	var wonGuesses float64
	for _, st := range all {
		total.Played += st.Played
		total.Won += st.Won
		wonGuesses += st.AvgGuesses * float64(st.Won)
		if st.Won > 0 && (total.BestGuesses == 0 || st.BestGuesses < total.BestGuesses) {
			total.BestGuesses = st.BestGuesses
		}
	}
	if total.Won > 0 {
		total.AvgGuesses = wonGuesses / float64(total.Won)
	}
	return total
}

// updateTableRows updates the table with the loaded rounds, newest first.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i := range m.rounds {
		r := m.rounds[len(m.rounds)-1-i]
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.rounds)-i),
			r.Preset,
			result,
			fmt.Sprintf("%d/%d", r.GuessesUsed, r.MaxGuesses),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPreset):
			m.presetCursor = (m.presetCursor + 1) % len(m.presets)
			m.loadRounds(m.presets[m.presetCursor].ID)
			return m, nil

		case key.Matches(msg, m.keys.PrevPreset):
			m.presetCursor--
			if m.presetCursor < 0 {
				m.presetCursor = len(m.presets) - 1
			}
			m.loadRounds(m.presets[m.presetCursor].ID)
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.ledger != nil {
				if err := m.ledger.Clear(); err == nil {
					m.loadRounds(m.presets[m.presetCursor].ID)
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("THIS SESSION - %s", m.presetTitle(m.presets[m.presetCursor]))
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) presetTitle(p registry.Preset) string {
	if p.Title != "" {
		return p.Title
	}
	return p.ID
}

// renderWideLayout renders the scoreboard with sidebar for preset selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Presets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.presets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.presetCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := m.presetTitle(p)
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with the preset name above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.presetTitle(m.presets[m.presetCursor])), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the stats line and table, or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds played yet.\nPick this preset from the menu to play!")
	}

	return statsLine(m.stats) + "\n\n" + m.table.View()
}

// statsLine formats a preset summary such as "3 played, 2 won (67%), best 4, avg 5.5".
func statsLine(st storage.Stats) string {
	line := fmt.Sprintf("%d played, %d won (%.0f%%)", st.Played, st.Won, st.WinRate()*100)
	if st.Won > 0 {
		line += fmt.Sprintf(", best %d, avg %.1f", st.BestGuesses, st.AvgGuesses)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(ledger *storage.Ledger, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(ledger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
