package domain

import "fmt"

// Cell is the state of a single grid position.
type Cell uint8

const (
	Unknown Cell = iota // not yet determined
	Filled              // part of a run
	Empty               // definitely blank
)

// Glyphs used for rendering and JSON interchange.
const (
	glyphFilled  = "#"
	glyphEmpty   = "."
	glyphUnknown = "?"
)

func (c Cell) String() string {
	switch c {
	case Filled:
		return glyphFilled
	case Empty:
		return glyphEmpty
	default:
		return glyphUnknown
	}
}

// MarshalJSON encodes a cell as its glyph.
func (c Cell) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a glyph back into a cell state.
func (c *Cell) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"` + glyphFilled + `"`:
		*c = Filled
	case `"` + glyphEmpty + `"`:
		*c = Empty
	case `"` + glyphUnknown + `"`:
		*c = Unknown
	default:
		return fmt.Errorf("invalid cell glyph %s", data)
	}
	return nil
}

// Axis distinguishes row lines from column lines.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}
