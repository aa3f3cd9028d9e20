package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws a grid as rows of text glyphs
type TerminalRenderer struct {
	Alive string
	Dead  string
}

// NewTerminalRenderer returns a renderer using full blocks for live cells
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Alive: gridPosBlock, Dead: gridPosEmpty}
}

// Render writes one line per grid row
func (r *TerminalRenderer) Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, loc := range g.Locations() {
		glyph := r.Dead
		if g.IsAlive(loc) {
			glyph = r.Alive
		}
		bw.WriteString(glyph)
		if loc.X == g.width-1 {
			bw.WriteByte('\n')
		}
	}
	return errors.Wrap(bw.Flush(), "[Render] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClearScreen)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
