// Package token defines source positions used to locate parse failures.
package token

import "fmt"

// Pos identifies a location in the input being parsed.
type Pos struct {
	// Name of the input source, typically a file name (optional).
	Name string
	// Line number (1-indexed).
	Line int
	// Column is the rune offset on the line (1-indexed).
	Column int
}

// NoPos is a zero Pos used when the position is unknown.
var NoPos = Pos{}

// String returns a string representation of the position.
// Format: "name:line:column", or "line:column" if Name is empty.
func (p Pos) String() string {
	if p.Name != "" {
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position is valid (line > 0).
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p is before other in the input.
// Name does not participate in the ordering.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After reports whether p is after other in the input.
func (p Pos) After(other Pos) bool {
	if p.Line != other.Line {
		return p.Line > other.Line
	}
	return p.Column > other.Column
}
