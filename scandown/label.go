package scandown

// LinkReferenceSizeMax is the maximum number of content bytes a bracketed
// label may contain, per CommonMark's link label grammar. Ported from
// _examples/original_source/src/construct/partial_label.rs
// (LINK_REFERENCE_SIZE_MAX).
const LinkReferenceSizeMax = 999

// LabelOptions parameterizes the bracketed label factory: which Name to
// tag the whole `[...]` span, its `[`/`]` marker bytes, and the string
// content span holding whatever is between them. Definition (definition.go)
// instantiates this with DefinitionLabel/DefinitionLabelMarker/
// DefinitionLabelString; a future reference or footnote-call construct
// outside this port's scope would instantiate it with their own Name
// triple instead of duplicating the state machine (SPEC_FULL.md §4.6).
type LabelOptions struct {
	Label  Name
	Marker Name
	String Name
}

// labelState is the factory's per-invocation state: how many content bytes
// have been seen (for the size cap), whether any of them was non-blank
// (data, for the "must not be blank" rule), whether a Data child is
// currently open for the line being scanned, and the most recent Data
// child to Link a new line's onto, mirroring setextState's role in
// setext.go.
type labelState struct {
	opts     LabelOptions
	size     int
	data     bool
	dataOpen bool
	hasPrev  bool
	prevData int
}

// StartLabel returns a construct entry point recognizing a `[...]`
// bracketed label per opts. It requires the current Code to be '[';
// anything else is an immediate Nok, so it is safe to try speculatively
// from any position (e.g. Definition's attempt at a flow line start).
func StartLabel(opts LabelOptions) stateFn {
	return func(t *Tokenizer, c Code) (State, stateFn) {
		if !c.Char('[') {
			return StateNok, nil
		}
		t.Enter(opts.Label)
		t.Enter(opts.Marker)
		t.Consume(c)
		t.Exit(opts.Marker)
		t.Enter(opts.String)
		st := &labelState{opts: opts}
		return StateFn, st.atBreak
	}
}

// atBreak is the label body's main loop: it decides, byte by byte,
// whether the label is closing, overflowing, continuing onto a new line,
// or accumulating another content byte.
func (st *labelState) atBreak(t *Tokenizer, c Code) (State, stateFn) {
	if st.size > LinkReferenceSizeMax {
		st.closeData(t)
		return StateNok, nil
	}
	switch {
	case c.IsEOF():
		st.closeData(t)
		return StateNok, nil
	case c.Char('['):
		// An unescaped '[' inside a label is never allowed, not even
		// balanced: CommonMark's link label grammar rejects it outright.
		st.closeData(t)
		return StateNok, nil
	case c.Char(']'):
		if !st.data {
			st.closeData(t)
			return StateNok, nil // blank (possibly whitespace-only) labels are invalid
		}
		st.closeData(t)
		t.Exit(st.opts.String)
		t.Enter(st.opts.Marker)
		t.Consume(c)
		t.Exit(st.opts.Marker)
		t.Exit(st.opts.Label)
		return StateOk, nil
	case c.IsLineEnding():
		st.closeData(t)
		t.Enter(LineEnding)
		t.Consume(c)
		t.Exit(LineEnding)
		return StateFn, st.lineStart
	case c.Char('\\'):
		st.openData(t)
		t.Consume(c)
		st.size++
		st.data = true
		return StateFn, st.escape
	default:
		st.openData(t)
		t.Consume(c)
		st.size++
		if !c.IsSpaceOrTab() {
			st.data = true
		}
		return StateFn, st.atBreak
	}
}

// lineStart rejects a blank line inside a label (CommonMark's link labels
// may not contain one) and otherwise resumes atBreak.
func (st *labelState) lineStart(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		return StateNok, nil
	}
	return st.atBreak(t, c)
}

// escape is entered right after consuming a backslash. Only '[', '\', and
// ']' are recognized as escaped content (matching the surveyed source's
// own `'[' | '\\' | ']'` match arm); anything else means the backslash was
// an ordinary content byte, and the current code is reprocessed by
// atBreak without having been consumed here.
func (st *labelState) escape(t *Tokenizer, c Code) (State, stateFn) {
	switch {
	case c.Char('['), c.Char('\\'), c.Char(']'):
		t.Consume(c)
		st.size++
		return StateFn, st.atBreak
	default:
		return st.atBreak(t, c)
	}
}

// openData opens a Data child for the current line if one is not already
// open, linking it onto the chain of the previous line's Data so the
// content router can splice the whole label body into one logical buffer.
func (st *labelState) openData(t *Tokenizer) {
	if st.dataOpen {
		return
	}
	idx := t.Enter(Data)
	if st.hasPrev {
		t.Events().link(st.prevData, idx, ContentString)
	}
	st.prevData = idx
	st.hasPrev = true
	st.dataOpen = true
}

func (st *labelState) closeData(t *Tokenizer) {
	if st.dataOpen {
		t.Exit(Data)
		st.dataOpen = false
	}
}
