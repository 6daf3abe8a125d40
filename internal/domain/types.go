package domain

import "strings"

// Line is one row or column of cell states.
type Line []Cell

// Constraint lists the run lengths of consecutive filled blocks required in a
// line, in order. An empty constraint means the whole line is blank.
type Constraint []int

// Grid holds the current cell states, height×width.
type Grid struct {
	Cells []Line `json:"cells"`
}

// NewGrid returns an all-Unknown grid of the given dimensions.
func NewGrid(height, width int) *Grid {
	cells := make([]Line, height)
	for i := range cells {
		cells[i] = make(Line, width)
	}
	return &Grid{Cells: cells}
}

func (g *Grid) Height() int { return len(g.Cells) }

func (g *Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Row returns row i. The returned slice aliases the grid.
func (g *Grid) Row(i int) Line { return g.Cells[i] }

// Column returns a copy of column j.
func (g *Grid) Column(j int) Line {
	col := make(Line, len(g.Cells))
	for i := range g.Cells {
		col[i] = g.Cells[i][j]
	}
	return col
}

// Unknowns counts the cells not yet determined.
func (g *Grid) Unknowns() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c == Unknown {
				n++
			}
		}
	}
	return n
}

// Solved reports whether every cell is determined.
func (g *Grid) Solved() bool { return g.Unknowns() == 0 }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{Cells: make([]Line, len(g.Cells))}
	for i, row := range g.Cells {
		out.Cells[i] = append(Line(nil), row...)
	}
	return out
}

// String renders the grid with one glyph per cell, cells joined by single
// spaces and rows by newlines. Consumers diff against this format.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.Cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a nonogram definition with optional metadata.
type Puzzle struct {
	ID        string       `json:"id,omitempty"`
	Seed      int64        `json:"seed,omitempty"`
	Rows      []Constraint `json:"rows"`
	Columns   []Constraint `json:"columns"`
	CreatedAt int64        `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (p *Puzzle) Height() int { return len(p.Rows) }
func (p *Puzzle) Width() int  { return len(p.Columns) }

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	CreatedAt int64  `json:"createdAt"`
}

// Conflict reports a constraint line that fails validation.
type Conflict struct {
	Axis   Axis   `json:"axis"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Hint describes a single forced cell for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	State   Cell      `json:"state"`
}
