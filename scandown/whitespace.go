package scandown

// whitespace is a partial construct (not independently dispatched from a
// construct table; always called from inside another construct) matching
// zero or more consecutive space/tab/virtual-space Codes, entered and
// exited under the given name. It is shared by setext.go, thematicbreak.go
// and definition.go for their optional-whitespace steps, mirroring the
// surveyed source's own `partial_whitespace::start` helper used from
// several constructs.
func whitespace(name Name) stateFn {
	var inside stateFn
	inside = func(t *Tokenizer, c Code) (State, stateFn) {
		if c.IsSpaceOrTab() {
			t.Consume(c)
			return StateFn, inside
		}
		t.Exit(name)
		return StateOk, nil
	}
	return func(t *Tokenizer, c Code) (State, stateFn) {
		if !c.IsSpaceOrTab() {
			// Zero-width match: "optional" whitespace that matched nothing
			// still succeeds, it just enters and immediately exits.
			t.Enter(name)
			t.Exit(name)
			return StateOk, nil
		}
		t.Enter(name)
		t.Consume(c)
		return StateFn, inside
	}
}
