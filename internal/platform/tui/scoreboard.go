package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemswap/internal/registry"
	"github.com/vovakirdan/gemswap/internal/storage"
)

// topGames is how many finished games are listed under the stats table.
const topGames = 5

// boardStats is one row of the stats table.
type boardStats struct {
	variant registry.Variant
	stats   storage.VariantStats
}

// ScoreboardModel shows one stats row per board and the top games of the
// highlighted board.
type ScoreboardModel struct {
	store  *storage.Store
	boards []boardStats
	top    []storage.GameRecord
	table  table.Model
	keys   StatsKeyMap
	help   help.Model
	width  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the stats of every registered board.
// A nil store shows empty stats.
func NewScoreboardModel(store *storage.Store, width, _ int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		keys:  DefaultStatsKeyMap(),
		help:  help.New(),
		width: width,
	}

	for _, v := range registry.List() {
		row := boardStats{variant: v, stats: storage.VariantStats{Variant: v.ID}}
		if store != nil {
			if vs, err := store.GetVariantStats(v.ID); err == nil {
				row.stats = *vs
			}
		}
		m.boards = append(m.boards, row)
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Board", Width: 14},
			{Title: "Best", Width: 8},
			{Title: "Games", Width: 6},
			{Title: "Avg", Width: 8},
			{Title: "Moves/game", Width: 10},
			{Title: "Last played", Width: 12},
		}),
		table.WithRows(m.rows()),
		table.WithHeight(len(m.boards)+1),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(lipgloss.Color("229"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	m.table.SetStyles(st)

	m.loadTop()
	return m
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.boards))
	for _, b := range m.boards {
		s := b.stats
		avg, perGame, last := "-", "-", "-"
		if s.GamesCount > 0 {
			avg = fmt.Sprintf("%.0f", s.AvgScore)
			perGame = fmt.Sprintf("%.1f", float64(s.TotalMoves)/float64(s.GamesCount))
		}
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("Jan 02 15:04")
		}
		rows = append(rows, table.Row{
			b.variant.Title,
			fmt.Sprintf("%d", s.BestScore),
			fmt.Sprintf("%d", s.GamesCount),
			avg,
			perGame,
			last,
		})
	}
	return rows
}

// loadTop reads the top games of the highlighted board.
func (m *ScoreboardModel) loadTop() {
	m.top = nil
	b, ok := m.current()
	if !ok || m.store == nil {
		return
	}
	if games, err := m.store.TopScores(b.variant.ID, topGames); err == nil {
		m.top = games
	}
}

func (m ScoreboardModel) current() (boardStats, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.boards) {
		return boardStats{}, false
	}
	return m.boards[i], true
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			m.loadTop()
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			m.loadTop()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the stats table and the top games list.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boxStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	if cur, ok := m.current(); ok {
		b.WriteString("  " + titleStyle.Render("Top games - "+cur.variant.Title))
		b.WriteString("\n")
	}
	switch {
	case m.store == nil:
		b.WriteString(dimStyle.Render("  Scores are not kept without a database."))
		b.WriteString("\n")
	case len(m.top) == 0:
		b.WriteString(dimStyle.Render("  Nothing finished on this board yet."))
		b.WriteString("\n")
	default:
		for i, g := range m.top {
			b.WriteString(fmt.Sprintf("  %d. %6d  %3d moves  %-16s %s\n",
				i+1, g.Score, g.Moves, g.Player, g.CreatedAt.Format("Jan 02 15:04")))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the player left for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program.
// It returns true if the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
