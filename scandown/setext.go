package scandown

// Heading (setext): a paragraph-shaped run of text lines followed by an
// underline of repeated '-' or '=', optionally indented less than TabSize
// and optionally followed by trailing whitespace. Ported from
// _examples/original_source/src/construct/heading_setext.rs, the exact
// grammar this spec's worked example (SPEC_FULL.md §4) is drawn from.
//
//	heading_setext ::= line *(eol line) eol whitespace_opt (1*'-' | 1*'=') whitespace_opt

// setextState carries the bits of per-construct state that the surveyed
// Rust source kept implicitly on the shared tokenizer (the index of the
// still-open HeadingSetextText span, and the most recent Data child to
// link a new line's Data onto). Go's closures let this travel as an
// explicit value threaded through the state functions instead.
type setextState struct {
	textOpen int // event-log index of HeadingSetextText's Enter
	prevText int // event-log index of the most recently entered Data
}

// startHeadingSetext is the construct's entry point, registered in the
// flow construct table (construct.go). It must never be called at an eol
// or eof position — the construct table only attempts it at the start of
// a fresh line with content, same as the surveyed source's start().
func startHeadingSetext(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		panic("scandown: startHeadingSetext called at eol/eof")
	}
	t.Enter(HeadingSetext)
	textOpen := t.Enter(HeadingSetextText)
	data := t.Enter(Data)
	st := &setextState{textOpen: textOpen, prevText: data}
	return st.textInside(t, c)
}

// textInside consumes one line of heading text. At a line ending it closes
// the current Data and HeadingSetextText spans and attempts an underline;
// on failure textContinue reopens HeadingSetextText to keep accumulating.
func (st *setextState) textInside(t *Tokenizer, c Code) (State, stateFn) {
	switch {
	case c.IsEOF():
		return StateNok, nil
	case c.IsLineEnding():
		t.Exit(Data)
		t.Exit(HeadingSetextText)
		return t.Attempt(underlineBefore, func(ok bool) stateFn {
			if ok {
				return st.after
			}
			return st.textContinue
		})(t, c)
	default:
		t.Consume(c)
		return StateFn, st.textInside
	}
}

// textContinue runs when the line ending just seen was not followed by a
// valid underline: the HeadingSetextText exit that textInside wrote
// speculatively is undone (reopen), a LineEnding child is recorded, and
// the next line's Data is linked onto the chain of the previous one so
// the content router can later splice them into one logical text buffer
// (spec.md §4.4). This replaces the surveyed source's own
// `tokenizer.events.pop()` pair — marked there with "// To do: does it
// work?" — with the tokenizer's ordinary rollback-adjacent reopen
// operation, so the undo goes through the same bookkeeping as every other
// log mutation instead of raw slice surgery.
func (st *setextState) textContinue(t *Tokenizer, c Code) (State, stateFn) {
	t.reopen(st.textOpen)
	t.Enter(LineEnding)
	t.Consume(c)
	t.Exit(LineEnding)
	return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
		return st.textLineStart
	})(t, t.peek())
}

// textLineStart is reached right after the optional whitespace following a
// continuation line ending. A blank line ends the heading text outright
// (Nok, not a valid construct); otherwise a fresh Data child is entered
// and linked to the previous one.
func (st *setextState) textLineStart(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		return StateNok, nil
	}
	data := t.Enter(Data)
	t.Events().link(st.prevText, data, ContentText)
	st.prevText = data
	return st.textInside(t, c)
}

// after closes the whole construct once a valid underline has been
// confirmed; HeadingSetextText was already closed by textInside.
func (st *setextState) after(t *Tokenizer, c Code) (State, stateFn) {
	t.Exit(HeadingSetext)
	return StateOk, nil
}

// underlineBefore consumes the line ending before a candidate underline.
func underlineBefore(t *Tokenizer, c Code) (State, stateFn) {
	if !c.IsLineEnding() {
		panic("scandown: underlineBefore expected eol")
	}
	t.Enter(LineEnding)
	t.Consume(c)
	t.Exit(LineEnding)
	return StateFn, underlineStart
}

// underlineStart allows optional leading whitespace before the marker run.
func underlineStart(t *Tokenizer, c Code) (State, stateFn) {
	return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
		return underlineSequenceStart
	})(t, c)
}

// underlineSequenceStart checks the leading whitespace width (TabSize or
// more makes this indented code, not a heading underline — see the
// surveyed source's own "to do: 4+ should be okay if code (indented) is
// turned off!", which this port resolves the same way it is written:
// unconditionally rejecting, since CodeIndented is outside this port's
// scope) and then requires a '-' or '=' to begin the marker run.
func underlineSequenceStart(t *Tokenizer, c Code) (State, stateFn) {
	if prefixWidth(t) >= TabSize {
		return StateNok, nil
	}
	switch {
	case c.Char('-'):
		t.Enter(HeadingSetextUnderline)
		return underlineSequenceInside(t, c, '-')
	case c.Char('='):
		t.Enter(HeadingSetextUnderline)
		return underlineSequenceInside(t, c, '=')
	default:
		return StateNok, nil
	}
}

// prefixWidth returns the column width of the whitespace span most
// recently closed on the event log, or 0 if the log does not end with
// one.
func prefixWidth(t *Tokenizer) int {
	el := t.Events()
	n := el.Len()
	if n < 2 {
		return 0
	}
	exit := el.At(n - 1)
	if exit.Kind != Exit || exit.Name != SpaceOrTab {
		return 0
	}
	enter := el.At(n - 2)
	return exit.Point.Column - enter.Point.Column
}

// underlineSequenceInside consumes a run of the same marker byte, then any
// trailing whitespace, before requiring eol/eof.
func underlineSequenceInside(t *Tokenizer, c Code, marker byte) (State, stateFn) {
	if c.Char(marker) {
		t.Consume(c)
		return StateFn, func(t *Tokenizer, c Code) (State, stateFn) {
			return underlineSequenceInside(t, c, marker)
		}
	}
	// HeadingSetextUnderline is void, so it closes before any trailing
	// SpaceOrTab is entered.
	t.Exit(HeadingSetextUnderline)
	if c.IsSpaceOrTab() {
		return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
			return underlineAfter
		})(t, c)
	}
	return underlineAfter(t, c)
}

// underlineAfter requires the marker run (and any trailing whitespace) be
// followed immediately by eol or eof; anything else (e.g. a stray byte) is
// not a valid underline.
func underlineAfter(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		return StateOk, nil
	}
	return StateNok, nil
}
