package scandown

// Definition: `[label]: destination "title"`. Added so the bracketed
// label factory (label.go) — itself one of this port's two worked
// examples — has a real, concrete caller instead of sitting unused: its
// DefinitionLabel/DefinitionLabelMarker/DefinitionLabelString
// parameterization is exactly the triple SPEC_FULL.md §4.6 names.
//
// Destination and title are deliberately simple: a bracketed `<...>`
// literal or a bare run of non-whitespace bytes for the destination, and a
// double-quoted run for the title, each holding one opaque Data leaf
// rather than further decomposing into character escape/reference
// constructs, which are themselves out of this port's scope (SPEC_FULL.md
// §1 Non-goals). Minimal backslash-escaping of the form's own delimiters
// is still honored so `\>`/`\"` don't terminate early.
var definitionLabelOptions = LabelOptions{
	Label:  DefinitionLabel,
	Marker: DefinitionLabelMarker,
	String: DefinitionLabelString,
}

func startDefinition(t *Tokenizer, c Code) (State, stateFn) {
	t.Enter(Definition)
	return t.Attempt(StartLabel(definitionLabelOptions), func(ok bool) stateFn {
		if ok {
			return definitionAfterLabel
		}
		return nok
	})(t, c)
}

// nok is a stateFn value that always fails without consuming anything;
// shared by constructs whose continuation, on failure, has nothing left
// to do beyond signaling Nok to their own caller (whatever attempt wraps
// them unwinds the rest).
func nok(t *Tokenizer, c Code) (State, stateFn) { return StateNok, nil }

func definitionAfterLabel(t *Tokenizer, c Code) (State, stateFn) {
	if !c.Char(':') {
		return StateNok, nil
	}
	t.Enter(DefinitionMarker)
	t.Consume(c)
	t.Exit(DefinitionMarker)
	return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
		return definitionBeforeDestination
	})(t, t.peek())
}

func definitionBeforeDestination(t *Tokenizer, c Code) (State, stateFn) {
	switch {
	case c.Char('<'):
		t.Enter(DefinitionDestination)
		t.Enter(DefinitionDestinationLiteral)
		t.Enter(DefinitionDestinationLiteralMarker)
		t.Consume(c)
		t.Exit(DefinitionDestinationLiteralMarker)
		t.Enter(DefinitionDestinationString)
		t.Enter(Data)
		return StateFn, definitionDestinationLiteralInside
	case c.IsEOF(), c.IsLineEnding(), c.IsSpaceOrTab():
		return StateNok, nil
	default:
		t.Enter(DefinitionDestination)
		t.Enter(DefinitionDestinationRaw)
		t.Enter(DefinitionDestinationString)
		t.Enter(Data)
		return definitionDestinationRawInside(t, c)
	}
}

func definitionDestinationLiteralInside(t *Tokenizer, c Code) (State, stateFn) {
	switch {
	case c.IsEOF(), c.IsLineEnding(), c.Char('<'):
		return StateNok, nil
	case c.Char('\\'):
		t.Consume(c)
		return StateFn, definitionDestinationLiteralEscape
	case c.Char('>'):
		t.Exit(Data)
		t.Exit(DefinitionDestinationString)
		t.Enter(DefinitionDestinationLiteralMarker)
		t.Consume(c)
		t.Exit(DefinitionDestinationLiteralMarker)
		t.Exit(DefinitionDestinationLiteral)
		t.Exit(DefinitionDestination)
		return definitionAfterDestination(t, t.peek())
	default:
		t.Consume(c)
		return StateFn, definitionDestinationLiteralInside
	}
}

func definitionDestinationLiteralEscape(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		return StateNok, nil
	}
	t.Consume(c)
	return StateFn, definitionDestinationLiteralInside
}

func definitionDestinationRawInside(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() || c.IsSpaceOrTab() {
		t.Exit(Data)
		t.Exit(DefinitionDestinationString)
		t.Exit(DefinitionDestinationRaw)
		t.Exit(DefinitionDestination)
		return definitionAfterDestination(t, c)
	}
	t.Consume(c)
	return StateFn, definitionDestinationRawInside
}

func definitionAfterDestination(t *Tokenizer, c Code) (State, stateFn) {
	return t.Attempt(whitespace(SpaceOrTab), func(ok bool) stateFn {
		return definitionAfterGap
	})(t, c)
}

func definitionAfterGap(t *Tokenizer, c Code) (State, stateFn) {
	if c.Char('"') {
		t.Enter(DefinitionTitle)
		t.Enter(DefinitionTitleMarker)
		t.Consume(c)
		t.Exit(DefinitionTitleMarker)
		t.Enter(DefinitionTitleString)
		t.Enter(Data)
		return StateFn, definitionTitleInside
	}
	return definitionEnd(t, c)
}

func definitionTitleInside(t *Tokenizer, c Code) (State, stateFn) {
	switch {
	case c.IsEOF():
		return StateNok, nil
	case c.Char('\\'):
		t.Consume(c)
		return StateFn, definitionTitleEscape
	case c.Char('"'):
		t.Exit(Data)
		t.Exit(DefinitionTitleString)
		t.Enter(DefinitionTitleMarker)
		t.Consume(c)
		t.Exit(DefinitionTitleMarker)
		t.Exit(DefinitionTitle)
		return StateFn, definitionEnd
	default:
		t.Consume(c)
		return StateFn, definitionTitleInside
	}
}

func definitionTitleEscape(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() {
		return StateNok, nil
	}
	t.Consume(c)
	return StateFn, definitionTitleInside
}

func definitionEnd(t *Tokenizer, c Code) (State, stateFn) {
	if c.IsEOF() || c.IsLineEnding() {
		t.Exit(Definition)
		return StateOk, nil
	}
	return StateNok, nil
}
