package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemswap/internal/config"
	"github.com/vovakirdan/gemswap/internal/match3"
)

// Board layout on screen. Every cell is cellWidth columns wide.
const (
	cellWidth = 3
	boardLeft = 2 // Columns before the first cell
	boardTop  = 3 // Lines before the first board row
)

// Theme maps symbols to glyphs and colors.
type Theme struct {
	glyphs []string
	styles []lipgloss.Style

	cursor    lipgloss.Style
	selected  lipgloss.Style
	highlight lipgloss.Style
	hint      lipgloss.Style
}

// NewTheme builds a theme from the configured symbol styles.
func NewTheme(symbols []config.SymbolStyle) Theme {
	t := Theme{
		cursor:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		selected:  lipgloss.NewStyle().Background(lipgloss.Color("57")).Bold(true),
		highlight: lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("16")),
		hint:      lipgloss.NewStyle().Underline(true).Background(lipgloss.Color("23")),
	}
	for _, s := range symbols {
		t.glyphs = append(t.glyphs, s.Glyph)
		t.styles = append(t.styles, lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)))
	}
	return t
}

// BoardView is what to draw on top of the tiles.
type BoardView struct {
	Cursor    match3.Pos
	Selected  *match3.Pos
	Highlight []match3.Pos // Tiles about to be removed
	Hint      []match3.Pos
}

// glyph returns the glyph for sym, falling back to a letter.
func (t Theme) glyph(sym match3.Symbol) string {
	if sym < 0 {
		return " "
	}
	if int(sym) < len(t.glyphs) && t.glyphs[sym] != "" {
		return t.glyphs[sym]
	}
	return string(rune('A' + sym%26))
}

// RenderBoard draws the board one cell per cellWidth columns.
func (t Theme) RenderBoard(b *match3.Board, v BoardView) string {
	marks := make(map[match3.Pos]lipgloss.Style)
	for _, p := range v.Hint {
		marks[p] = t.hint
	}
	for _, p := range v.Highlight {
		marks[p] = t.highlight
	}

	var sb strings.Builder
	pad := strings.Repeat(" ", boardLeft)
	n := b.Size()
	for r := range n {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pad)
		for c := range n {
			p := match3.P(r, c)
			sym := b.Symbol(p)

			style := lipgloss.NewStyle()
			if sym >= 0 && int(sym) < len(t.styles) {
				style = t.styles[sym]
			}
			if m, ok := marks[p]; ok {
				style = style.Inherit(m)
			}
			switch {
			case v.Selected != nil && *v.Selected == p:
				style = t.selected.Inherit(style)
			case v.Cursor == p:
				style = t.cursor.Inherit(style)
			}
			sb.WriteString(style.Render(" " + t.glyph(sym) + " "))
		}
	}
	return sb.String()
}

// cellAt maps a mouse position to a board cell.
func cellAt(x, y, size int) (match3.Pos, bool) {
	if x < boardLeft || y < boardTop {
		return match3.Pos{}, false
	}
	p := match3.P(y-boardTop, (x-boardLeft)/cellWidth)
	if p.Row >= size || p.Col >= size {
		return match3.Pos{}, false
	}
	return p, true
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
