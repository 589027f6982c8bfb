package parsec_test

import (
	"testing"

	"github.com/KimNorgaard/go-parsec"
	"github.com/KimNorgaard/go-parsec/token"
	"github.com/stretchr/testify/require"
)

// buildError inserts msgs one by one, the way a parsing engine accumulates
// context around a failure.
func buildError(pos token.Pos, msgs ...parsec.Message) *parsec.Error {
	e := parsec.Unknown(pos)
	for _, m := range msgs {
		e = e.WithMessage(m)
	}
	return e
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		msgs     []parsec.Message
		expected string
	}{
		{
			"no messages",
			nil,
			"unknown parse error",
		},
		{
			"end of input",
			[]parsec.Message{
				msg(parsec.SysUnexpected, ""),
				msg(parsec.Expected, "digit"),
				msg(parsec.Expected, "letter"),
			},
			"unexpected end of input\nexpecting digit or letter",
		},
		{
			"explicit unexpected",
			[]parsec.Message{
				msg(parsec.Unexpected, "'x'"),
				msg(parsec.Expected, "')'"),
			},
			"unexpected 'x'\nexpecting ')'",
		},
		{
			"explicit unexpected suppresses system message",
			[]parsec.Message{
				msg(parsec.SysUnexpected, "'a'"),
				msg(parsec.Unexpected, "'a'"),
			},
			"unexpected 'a'",
		},
		{
			"generic only",
			[]parsec.Message{
				msg(parsec.Generic, "custom failure"),
			},
			"custom failure",
		},
		{
			"three expectations use comma list",
			[]parsec.Message{
				msg(parsec.SysUnexpected, "'}'"),
				msg(parsec.Expected, "identifier"),
				msg(parsec.Expected, "number"),
				msg(parsec.Expected, "string"),
			},
			"unexpected '}'\nexpecting identifier, number or string",
		},
		{
			"empty texts are dropped",
			[]parsec.Message{
				msg(parsec.Expected, ""),
				msg(parsec.Expected, "digit"),
			},
			"expecting digit",
		},
		{
			"run of only empty texts is omitted",
			[]parsec.Message{
				msg(parsec.Expected, ""),
				msg(parsec.Generic, "custom failure"),
			},
			"custom failure",
		},
		{
			"all four groups",
			[]parsec.Message{
				msg(parsec.SysUnexpected, "'1'"),
				msg(parsec.Unexpected, "digit"),
				msg(parsec.Expected, "letter"),
				msg(parsec.Generic, "identifiers must not start with a digit"),
			},
			"unexpected digit\nexpecting letter\nidentifiers must not start with a digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := buildError(testPos, tt.msgs...)
			expected := testPos.String() + ":\n" + tt.expected
			require.Equal(t, expected, e.Error())
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	// Rendering rewrites empty system messages to "end of input" in its
	// output only; the error value itself must stay untouched.
	e := buildError(testPos,
		msg(parsec.SysUnexpected, ""),
		msg(parsec.Expected, "digit"),
	)
	_ = e.Error()
	require.Equal(t, []parsec.Message{
		msg(parsec.SysUnexpected, ""),
		msg(parsec.Expected, "digit"),
	}, e.Msgs)
}

func TestRenderMergedDuplicates(t *testing.T) {
	// Equal-position merges keep duplicate messages; the renderer repeats
	// them verbatim in the list.
	e1 := parsec.New(msg(parsec.Expected, "digit"), testPos)
	e2 := parsec.New(msg(parsec.Expected, "digit"), testPos)

	got := parsec.Merge(e1, e2)
	require.Equal(t, testPos.String()+":\nexpecting digit or digit", got.Error())
}
