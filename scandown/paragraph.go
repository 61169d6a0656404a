package scandown

// Paragraph is the flow construct table's fallback: any non-blank line not
// claimed by another construct. It must be tried last, and must be the
// only construct in the table that cannot itself fail on a non-blank line
// (CommonMark §4's "nothing else matched" resolution).
//
// This port's flow driver (construct.go) tries the table once per
// physical line rather than modeling CommonMark's full multi-line block
// continuation machinery (an open paragraph being extended or interrupted
// line by line); each non-blank line becomes its own Paragraph span. Full
// block continuation is the Document/Flow driver's concern in a complete
// implementation and is beyond what this port's two worked examples plus
// three supplemental constructs are scoped to demonstrate (SPEC_FULL.md
// §1 Non-goals).
func startParagraph(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		return StateNok, nil
	}
	t.Enter(Paragraph)
	t.Enter(Data)
	t.Consume(c)
	return StateFn, paragraphInside
}

func paragraphInside(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		t.Exit(Data)
		t.Exit(Paragraph)
		return StateOk, nil
	}
	t.Consume(c)
	return StateFn, paragraphInside
}
