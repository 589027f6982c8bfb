package parsec

import (
	"cmp"
	"fmt"
)

// MessageType identifies the kind of a failure Message.
type MessageType int

const (
	// SysUnexpected is generated by the parsing engine when input fails a
	// predicate. An empty text stands for the end of the input.
	SysUnexpected MessageType = iota
	// Unexpected is an explicit "unexpected" message supplied by calling code.
	Unexpected
	// Expected is an "expecting" label supplied by calling code, e.g. via a
	// labeling combinator.
	Expected
	// Generic is a free-form failure message, e.g. from an explicit failure
	// call.
	Generic
)

// ranks fixes the priority of each message type for sorting and grouping.
// It is deliberately explicit rather than derived from declaration order.
var ranks = map[MessageType]int{
	SysUnexpected: 0,
	Unexpected:    1,
	Expected:      2,
	Generic:       3,
}

// Message is one reason a parse attempt failed.
type Message struct {
	Type MessageType
	Text string
}

// Rank returns the fixed priority of the message's type.
func (m Message) Rank() int {
	return ranks[m.Type]
}

// Compare orders messages by rank first, then by text. It returns a negative
// number when m orders before other, zero when they are equal, and a
// positive number when m orders after other.
func (m Message) Compare(other Message) int {
	if c := cmp.Compare(m.Rank(), other.Rank()); c != 0 {
		return c
	}
	return cmp.Compare(m.Text, other.Text)
}

// Less reports whether m orders strictly before other.
func (m Message) Less(other Message) bool {
	return m.Compare(other) < 0
}

// Equal reports whether m and other have the same type and text.
func (m Message) Equal(other Message) bool {
	return m.Type == other.Type && m.Text == other.Text
}

// messageOfRank would be the inverse of Rank. A message cannot be
// reconstructed from a bare rank; reaching this is a contract violation.
func messageOfRank(rank int) Message {
	panic(fmt.Sprintf("parsec: no message can be built from rank %d", rank))
}
