package parsec

import (
	"slices"

	"github.com/KimNorgaard/go-parsec/token"
)

// Error describes a single parse failure: the position at which the parser
// could not proceed, plus the messages accumulated for it. Msgs is always
// sorted ascending by (rank, text).
//
// Error values are immutable. Every update operation returns a new value
// and leaves the receiver untouched, so errors can be freely shared between
// alternative parse attempts.
type Error struct {
	Pos  token.Pos
	Msgs []Message
}

// Unknown returns an error with no messages at pos. It marks a failure for
// which no reason has been recorded yet.
func Unknown(pos token.Pos) *Error {
	return &Error{Pos: pos}
}

// New returns an error carrying exactly one message at pos.
func New(msg Message, pos token.Pos) *Error {
	return &Error{Pos: pos, Msgs: []Message{msg}}
}

// IsUnknown reports whether e carries no messages.
func (e *Error) IsUnknown() bool {
	return len(e.Msgs) == 0
}

// WithPos returns a copy of e located at pos.
func (e *Error) WithPos(pos token.Pos) *Error {
	return &Error{Pos: pos, Msgs: e.Msgs}
}

// WithMessage returns a copy of e with msg inserted at its sorted position.
// Existing messages equal to msg (same type and text) are dropped in favor
// of the new occurrence, so inserting the same message twice is a no-op.
func (e *Error) WithMessage(msg Message) *Error {
	out := make([]Message, 0, len(e.Msgs)+1)
	for _, m := range e.Msgs {
		if m.Less(msg) {
			out = append(out, m)
		}
	}
	out = append(out, msg)
	for _, m := range e.Msgs {
		if msg.Less(m) {
			out = append(out, m)
		}
	}
	return &Error{Pos: e.Pos, Msgs: out}
}

// ReplaceMessage returns a copy of e where msg supersedes every existing
// message of the same type, regardless of text. At most one message of
// msg's type survives. Used when new context should fully replace prior
// context of that kind, e.g. a new "expecting" label.
func (e *Error) ReplaceMessage(msg Message) *Error {
	out := make([]Message, 0, len(e.Msgs)+1)
	for _, m := range e.Msgs {
		if m.Type != msg.Type && m.Less(msg) {
			out = append(out, m)
		}
	}
	out = append(out, msg)
	for _, m := range e.Msgs {
		if m.Type != msg.Type && msg.Less(m) {
			out = append(out, m)
		}
	}
	return &Error{Pos: e.Pos, Msgs: out}
}

// Equal reports whether e and other have the same position and the same
// message sequence.
func (e *Error) Equal(other *Error) bool {
	return e.Pos == other.Pos && slices.Equal(e.Msgs, other.Msgs)
}

// Merge combines two errors produced by alternative parse attempts, for
// example the two branches of a choice combinator, and keeps the one judged
// more relevant by position.
//
// The operand at the lesser position wins. When the positions are equal the
// result carries that position and the sorted concatenation of both message
// sequences; duplicates across the two operands are kept.
func Merge(e1, e2 *Error) *Error {
	switch {
	case e1.Pos.Before(e2.Pos):
		return e1
	case e1.Pos.After(e2.Pos):
		return e2
	}
	msgs := make([]Message, 0, len(e1.Msgs)+len(e2.Msgs))
	msgs = append(msgs, e1.Msgs...)
	msgs = append(msgs, e2.Msgs...)
	slices.SortStableFunc(msgs, Message.Compare)
	return &Error{Pos: e1.Pos, Msgs: msgs}
}

// Error implements the error interface. The report is the position followed
// by the rendered messages, one message group per line.
func (e *Error) Error() string {
	return e.Pos.String() + ":\n" + renderMessages(e.Msgs)
}
