/*
Package parsec provides the failure values of a parser-combinator front end:
a structured parse error that accumulates the reasons a parse attempt failed
and renders them as a compact human-readable report.

An Error pairs a source position with an ordered collection of Messages.
Each Message carries a type (SysUnexpected, Unexpected, Expected or Generic)
and free text. The collection is kept sorted by the fixed priority of the
types, then by text, which is what lets the renderer group related reasons
onto one line.

A parsing engine typically creates an error the moment it cannot proceed,
attaches context as it unwinds, and merges errors from sibling alternatives:

	pos := token.Pos{Name: "input.txt", Line: 3, Column: 14}
	err := parsec.New(parsec.Message{Type: parsec.SysUnexpected, Text: "'}'"}, pos)
	err = err.WithMessage(parsec.Message{Type: parsec.Expected, Text: "identifier"})
	err = err.WithMessage(parsec.Message{Type: parsec.Expected, Text: "number"})

	fmt.Println(err)
	// input.txt:3:14:
	// unexpected '}'
	// expecting identifier or number

All operations are pure: every update returns a new Error and never mutates
the receiver, so errors can be shared freely across alternative parse
attempts. Merge combines the failures of two alternatives, preferring the
operand whose position is judged more relevant.

The rendered text is a compatibility surface. Its exact wording, grouping
and line structure are stable and may be relied upon byte for byte.
*/
package parsec
