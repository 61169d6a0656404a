package scandown

// Thematic break: a line of three or more '-', '_', or '*' bytes (all the
// same), optionally separated and surrounded by spaces/tabs, indented less
// than TabSize. Not one of this port's two worked examples, but needed
// ahead of HeadingSetext in the flow construct table to demonstrate the
// ordering tie-break the setext worked example's design notes call out: a
// line of dashes with no other content is a break, not an underline
// continuation (SPEC_FULL.md §4). Grounded on the shape of
// scandown.ruler() in the teacher repository (a run-length marker scan),
// generalized to the three valid marker bytes and to emitting one
// ThematicBreakSequence per contiguous run.
type thematicBreakState struct {
	marker byte
	count  int
}

func startThematicBreak(t *Tokenizer, c Code) (State, stateFn) {
	return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
		return thematicBreakAfterIndent
	})(t, c)
}

func thematicBreakAfterIndent(t *Tokenizer, c Code) (State, stateFn) {
	if prefixWidth(t) >= TabSize {
		return StateNok, nil
	}
	if !(c.Char('-') || c.Char('_') || c.Char('*')) {
		return StateNok, nil
	}
	b, _ := c.Byte()
	t.Enter(ThematicBreak)
	st := &thematicBreakState{marker: b}
	t.Enter(ThematicBreakSequence)
	t.Consume(c)
	st.count = 1
	return StateFn, st.sequence
}

// sequence consumes a contiguous run of the marker byte.
func (st *thematicBreakState) sequence(t *Tokenizer, c Code) (State, stateFn) {
	if c.Char(st.marker) {
		t.Consume(c)
		st.count++
		return StateFn, st.sequence
	}
	t.Exit(ThematicBreakSequence)
	if c.IsSpaceOrTab() {
		return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
			return st.afterGap
		})(t, c)
	}
	return st.after(t, c)
}

// afterGap is reached after whitespace between marker runs; it either
// starts a new ThematicBreakSequence or ends the construct.
func (st *thematicBreakState) afterGap(t *Tokenizer, c Code) (State, stateFn) {
	if c.Char(st.marker) {
		t.Enter(ThematicBreakSequence)
		t.Consume(c)
		st.count++
		return StateFn, st.sequence
	}
	return st.after(t, c)
}

// after requires the line to end here (eol/eof) with at least 3 marker
// bytes seen in total; anything else (including too few markers, or
// trailing non-whitespace, non-marker bytes) is not a thematic break.
func (st *thematicBreakState) after(t *Tokenizer, c Code) (State, stateFn) {
	if (c.IsEOF() || c.IsLineEnding()) && st.count >= 3 {
		t.Exit(ThematicBreak)
		return StateOk, nil
	}
	return StateNok, nil
}
