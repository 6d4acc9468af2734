package codebreaker

import (
	"strconv"

	"github.com/vovakirdan/codebreaker/internal/core"
)

// Peg glyphs.
const (
	pegRune   = '●'
	emptyRune = '∙'
)

// Hint peg colors.
const (
	BullColor = core.ColorRed
	CowColor  = core.ColorWhite
)

// Board layout rows.
const (
	bullLegendY = 0
	cowLegendY  = 1
	boardY      = 3 // Solution row; guess rows follow below it
)

// Status line texts.
const (
	msgSelect = "Press number keys to select colors"
	msgSubmit = "Press enter to make a guess"
	msgUndo   = "Press backspace to undo"
	msgWon    = "You won!"
	msgLost   = "You lost"
)

// BoardSize returns the screen area needed to draw a game with the given config.
func BoardSize(cfg Config) (width, height int) {
	width = legendX(cfg) + 2*cfg.Colors - 1
	width = max(width, len(msgSelect))
	// legends + gap + solution row + guess rows + gap + status + undo hint
	height = boardY + 1 + cfg.MaxGuesses + 1 + 2
	return width, height
}

// legendX is the column of the color legend, right of the code and hint pegs.
func legendX(cfg Config) int {
	return hintX(cfg) + cfg.Holes + 2
}

// hintX is the column of the first hint peg on a row.
func hintX(cfg Config) int {
	return 2*cfg.Holes + 1
}

// statusY is the row of the status line.
func statusY(cfg Config) int {
	return boardY + 1 + cfg.MaxGuesses + 1
}

// Render draws the snapshot into the screen buffer.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	cfg := snap.Config

	dst.SetColored(0, bullLegendY, pegRune, BullColor)
	dst.DrawText(1, bullLegendY, " Correct color, correct position")
	dst.SetColored(0, cowLegendY, pegRune, CowColor)
	dst.DrawText(1, cowLegendY, " Correct color, wrong position")

	// The solution stays hidden until the round is over.
	renderCode(dst, cfg, boardY, snap.Solution)

	// Guess rows fill from the bottom up; the guess being entered takes the
	// first free row.
	for i := range cfg.MaxGuesses {
		y := boardY + cfg.MaxGuesses - i
		var guess Sequence
		var hint Hint
		switch {
		case i < len(snap.Rows):
			guess = snap.Rows[i].Guess
			hint = snap.Rows[i].Hint
		case i == len(snap.Rows):
			guess = snap.Current
		}
		renderCode(dst, cfg, y, guess)
		renderHint(dst, cfg, y, hint)
	}

	renderLegend(dst, cfg)
	renderStatus(dst, snap)
}

// renderCode draws one row of code pegs, with dots for empty holes.
func renderCode(dst *core.Screen, cfg Config, y int, code Sequence) {
	for i := range cfg.Holes {
		x := 2 * i
		if i < len(code) && code[i] >= 0 && code[i] < PaletteSize {
			dst.SetColored(x, y, pegRune, core.CodePalette[code[i]])
		} else {
			dst.Set(x, y, emptyRune)
		}
	}
}

// renderHint draws bulls first, then cows, then dots.
func renderHint(dst *core.Screen, cfg Config, y int, hint Hint) {
	x := hintX(cfg)
	for i := range cfg.Holes {
		switch {
		case i < hint.Bulls:
			dst.SetColored(x+i, y, pegRune, BullColor)
		case i < hint.Bulls+hint.Cows:
			dst.SetColored(x+i, y, pegRune, CowColor)
		default:
			dst.Set(x+i, y, emptyRune)
		}
	}
}

// renderLegend draws the key number above each color in play.
func renderLegend(dst *core.Screen, cfg Config) {
	x := legendX(cfg)
	for i := range cfg.Colors {
		dst.DrawText(x+2*i, boardY, strconv.Itoa(i+1))
		dst.SetColored(x+2*i, boardY+1, pegRune, core.CodePalette[i])
	}
}

// renderStatus draws the prompt or the result below the board.
func renderStatus(dst *core.Screen, snap Snapshot) {
	y := statusY(snap.Config)

	switch snap.Status {
	case StatusWon:
		dst.DrawText(0, y, msgWon)
	case StatusLost:
		dst.DrawText(0, y, msgLost)
	default:
		if len(snap.Current) < snap.Config.Holes {
			dst.DrawText(0, y, msgSelect)
		} else {
			dst.DrawText(0, y, msgSubmit)
		}
		if len(snap.Current) > 0 {
			dst.DrawText(0, y+1, msgUndo)
		}
	}
}
