package parsec

import "strings"

// renderMessages builds the human-readable report for a message sequence
// sorted by (rank, text). The sequence decomposes into at most four
// contiguous runs, one per message type, and each run becomes at most one
// line of the report. Consumers compare the output byte for byte, so the
// exact wording here is a compatibility contract.
func renderMessages(msgs []Message) string {
	if len(msgs) == 0 {
		return "unknown parse error"
	}

	var sys, unexp, exp, generic []Message
	for _, m := range msgs {
		switch m.Type {
		case SysUnexpected:
			sys = append(sys, m)
		case Unexpected:
			unexp = append(unexp, m)
		case Expected:
			exp = append(exp, m)
		case Generic:
			generic = append(generic, m)
		}
	}

	// An explicit "unexpected" message supersedes everything the engine
	// generated on its own. Otherwise an empty system message means the
	// parser ran out of input.
	if len(unexp) > 0 {
		sys = nil
	} else {
		for i, m := range sys {
			if m.Text == "" {
				sys[i].Text = "end of input"
			}
		}
	}

	var lines []string
	if s := joinOr(messageTexts(sys)); s != "" {
		lines = append(lines, "unexpected "+s)
	}
	if s := joinOr(messageTexts(unexp)); s != "" {
		lines = append(lines, "unexpected "+s)
	}
	if s := joinOr(messageTexts(exp)); s != "" {
		lines = append(lines, "expecting "+s)
	}
	if s := joinOr(messageTexts(generic)); s != "" {
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// messageTexts collects the non-empty texts of a run.
func messageTexts(run []Message) []string {
	out := make([]string, 0, len(run))
	for _, m := range run {
		if m.Text != "" {
			out = append(out, m.Text)
		}
	}
	return out
}

// joinOr joins items as a human-readable alternative list:
// "a", "a or b", "a, b or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
