package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemswap/internal/config"
	"github.com/vovakirdan/gemswap/internal/match3"
	"github.com/vovakirdan/gemswap/internal/registry"
	"github.com/vovakirdan/gemswap/internal/storage"
)

// GameOptions configures one board screen.
type GameOptions struct {
	Config   config.Match3Config // Already sized for Variant
	Variant  registry.Variant
	Store    *storage.Store // nil keeps scores in memory
	Player   string
	Logger   *log.Logger
	TickRate int
	Embedded bool // Hosted by SessionModel; Back hands control to its menu
}

// GameModel is the Bubble Tea model for one player's board.
type GameModel struct {
	opts    GameOptions
	session *match3.Session
	theme   Theme
	keys    GameKeyMap
	help    help.Model

	cursor match3.Pos
	hint   []match3.Pos
	replay *match3.Replay
	ticks  int // Ticks spent on the current replay stage

	message    string
	width      int
	height     int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates the session and the first board.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if err := opts.Config.Validate(); err != nil {
		return GameModel{}, fmt.Errorf("invalid config: %w", err)
	}

	var best match3.BestScoreStore = &storage.MemoryBest{}
	if opts.Store != nil {
		best = storage.NewBestScoreKey(opts.Store, opts.Variant.ID)
	}

	session, err := match3.NewSession(best, opts.Config.ToEngine())
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		opts:    opts,
		session: session,
		theme:   NewTheme(opts.Config.Symbols),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		m.advance()
		return m, tickCmd(m.opts.TickRate)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.session.Config().GridSize

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.saveScore()
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(0, m.cursor.Row-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(n-1, m.cursor.Row+1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(0, m.cursor.Col-1)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(n-1, m.cursor.Col+1)
	case key.Matches(msg, m.keys.Select):
		m.selectTile(m.cursor)
	case key.Matches(msg, m.keys.Hint):
		m.showHint()
	case key.Matches(msg, m.keys.NewGame):
		m.newGame()
	}
	return m, nil
}

// handleMouse selects the clicked cell.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := cellAt(msg.X, msg.Y, m.session.Config().GridSize); ok {
		m.cursor = p
		m.selectTile(p)
	}
	return m, nil
}

// selectTile forwards a pick to the session and starts the replay of a cascade.
func (m *GameModel) selectTile(p match3.Pos) {
	before := m.session.Board()
	res, err := m.session.SelectTile(p)
	m.hint = nil

	switch res.Outcome {
	case match3.OutcomeSelected, match3.OutcomeDeselected:
		m.message = ""
	case match3.OutcomeBusy:
		return
	case match3.OutcomeInvalidSwap:
		m.message = "Pick a neighbouring tile to swap."
	case match3.OutcomeNoEffect:
		m.message = "No match - swapped back."
	case match3.OutcomeCascade:
		passes := len(res.Swap.Cascade.Passes)
		m.message = fmt.Sprintf("+%d", res.Swap.Cascade.Score)
		if passes > 1 {
			m.message += fmt.Sprintf("  cascade x%d", passes)
		}
		if res.NewBest {
			m.message += "  new best!"
		}
		m.replay = match3.NewReplay(before, res.Swap)
		m.ticks = 0
		m.opts.Logger.Debug("cascade",
			"player", m.opts.Player,
			"swap", fmt.Sprintf("%v<->%v", res.Swap.A, res.Swap.B),
			"passes", passes,
			"score", res.Score,
		)
	}

	if err != nil {
		if errors.Is(err, match3.ErrCascadeOverflow) {
			m.message = "The board would not settle. Press n for a new game."
		}
		m.opts.Logger.Warn("select failed", "player", m.opts.Player, "error", err)
	}
}

// advance steps the cascade replay and settles the session when it ends.
func (m *GameModel) advance() {
	if m.replay == nil {
		return
	}
	m.ticks++
	if m.ticks < m.opts.Config.Cascade.StepTicks {
		return
	}
	m.ticks = 0

	more := m.replay.Step()
	// Without a step delay the whole replay is shown at once.
	for more && m.opts.Config.Cascade.StepTicks == 0 {
		more = m.replay.Step()
	}
	if more {
		return
	}

	m.replay = nil
	m.session.Settle()
	if m.session.Stuck() {
		m.message = "No moves left. Press n for a new game."
	}
}

func (m *GameModel) showHint() {
	if m.replay != nil {
		return
	}
	a, b, ok := m.session.HintMove()
	if !ok {
		m.message = "No moves left. Press n for a new game."
		return
	}
	m.hint = []match3.Pos{a, b}
}

// newGame saves the finished game and deals a new board. A fixed seed
// advances with every game so the sequence stays reproducible.
func (m *GameModel) newGame() {
	m.saveScore()

	cfg := m.opts.Config.ToEngine()
	if cfg.Seed != nil {
		s := *cfg.Seed + int64(m.session.Snapshot().Game)
		cfg.Seed = &s
	}
	if err := m.session.StartNewGame(cfg); err != nil {
		m.message = "Could not deal a new board."
		m.opts.Logger.Error("new game failed", "player", m.opts.Player, "error", err)
		return
	}

	m.replay = nil
	m.hint = nil
	m.message = ""
	m.scoreSaved = false
}

// saveScore records the current game once, if anything was scored.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.session.Score() == 0 {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveGame(storage.GameRecord{
		Variant: m.opts.Variant.ID,
		Player:  m.opts.Player,
		Score:   m.session.Score(),
		Moves:   m.session.Moves(),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save game", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	// Header lines must add up to boardTop for mouse mapping.
	b.WriteString(titleStyle.Render("  GEMSWAP - " + m.opts.Variant.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Score %-8d Best %-8d Moves %d", m.session.Score(), m.session.BestScore(), m.session.Moves()))
	b.WriteString("\n\n")

	view := BoardView{Cursor: m.cursor, Hint: m.hint}
	if p, ok := m.session.Selected(); ok {
		view.Selected = &p
	}
	board := m.session.Board()
	if m.replay != nil {
		board = m.replay.Board()
		view.Highlight = m.replay.Highlight()
	}
	b.WriteString(m.theme.RenderBoard(board, view))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString("  " + m.message)
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  " + m.help.View(m.keys)))

	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Session exposes the game session, mainly for tests.
func (m GameModel) Session() *match3.Session {
	return m.session
}

// Run starts a Bubble Tea program for a single board.
// It returns true if the player left with Back rather than Quit.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
