package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/registry"
	"github.com/mamoru/ten/internal/storage"
)

const (
	scoreLimit      = 100 // Rows loaded per variant
	statsPanelWidth = 22
	wideScoreboard  = 72 // From this width the stats panel sits beside the table
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("up/down", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the recorded results of one variant at a time.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	entries  []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel opens the scoreboard on gameID, or on the first
// variant when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     newScoreboardKeys(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == gameID {
			m.current = i
		}
	}

	m.table = m.newTable()
	m.refresh()
	return m
}

// Variant returns the ID of the variant on display.
func (m ScoreboardModel) Variant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

func (m ScoreboardModel) wide() bool {
	return m.width >= wideScoreboard
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 6},
			{Title: "Moves", Width: 6},
			{Title: "Won", Width: 4},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

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

// refresh reloads results for the current variant.
func (m *ScoreboardModel) refresh() {
	m.entries, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.Variant()
		//nolint:errcheck // An unreadable table shows as empty
		m.entries, _ = m.store.TopScores(id, scoreLimit)
		//nolint:errcheck // Stats are optional decoration
		m.stats, _ = m.store.GetGameStats(id)
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = scoreRow(i+1, e)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// scoreRow formats one result for the table.
func scoreRow(rank int, e storage.ScoreEntry) table.Row {
	won := ""
	if e.Won {
		won = "yes"
	}
	return table.Row{
		strconv.Itoa(rank),
		ten.Display(e.Score).StringFixed(1),
		strconv.Itoa(e.Moves),
		won,
		e.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycle moves to the next or previous variant, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.refresh()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(statusStyle.Bold(true).Render(centerText("SCOREBOARD", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	results := boxStyle.Render(m.results())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, results, "  ", boxStyle.Render(m.statsPanel())))
	} else {
		b.WriteString(results)
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.summary()))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists the variants with the current one highlighted.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = activeTabStyle.Render(v.Title)
		} else {
			parts[i] = tabStyle.Render(v.Title)
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) results() string {
	if len(m.entries) == 0 {
		return hintStyle.Italic(true).Padding(1, 2).Render("No games finished yet.")
	}
	return m.table.View()
}

// statsPanel lists the aggregate stats one per line.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return lipgloss.NewStyle().Width(statsPanelWidth).Render("No stats yet")
	}

	lines := []string{
		fmt.Sprintf("%-8s%d", "Games", m.stats.GamesCount),
		fmt.Sprintf("%-8s%d", "Won", m.stats.Wins),
		fmt.Sprintf("%-8s%s", "Best", ten.Display(m.stats.HighScore).StringFixed(1)),
		fmt.Sprintf("%-8s%s", "Average", averageScore(m.stats)),
		fmt.Sprintf("%-8s%s", "Last", m.stats.LastPlayed.Local().Format("Jan 02")),
	}
	return lipgloss.NewStyle().Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// summary is the one-line form of the stats for narrow screens.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games, %d won, best %s, average %s",
		m.stats.GamesCount, m.stats.Wins, ten.Display(m.stats.HighScore).StringFixed(1), averageScore(m.stats))
}

func averageScore(s *storage.GameStats) string {
	return decimal.NewFromFloat(s.AvgScore).Shift(-1).StringFixed(1)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard and reports whether to go back to the
// menu rather than quit.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
