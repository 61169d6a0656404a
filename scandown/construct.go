package scandown

// Construct names one entry of a content-type's dispatch table: a
// diagnostic name (for debugging/tests) and its state-function entry
// point. Order within a table matters — the first construct whose start
// resolves Ok wins, and earlier constructs may deliberately shadow a
// later one for a given input shape (spec.md §4.3.4).
type Construct struct {
	Name  string
	Start stateFn
}

// flowConstructs returns this port's flow-level construct table, in
// dispatch order: ThematicBreak before HeadingSetext (SPEC_FULL.md §4: a
// lone dash run is a break, not an underline continuation), Definition
// before the Paragraph fallback, which must always be last.
func flowConstructs(cfg Config) []Construct {
	cs := []Construct{{Name: "thematic_break", Start: startThematicBreak}}
	if cfg.HeadingSetext {
		cs = append(cs, Construct{Name: "heading_setext", Start: startHeadingSetext})
	}
	cs = append(cs, Construct{Name: "definition", Start: startDefinition})
	cs = append(cs, Construct{Name: "paragraph", Start: startParagraph})
	return cs
}

// dispatch returns a stateFn that tries each construct of the table in
// order via Attempt, committing the first that succeeds and rolling back
// every one that doesn't before trying the next.
func dispatch(constructs []Construct) stateFn {
	return tryConstruct(constructs, 0)
}

func tryConstruct(constructs []Construct, i int) stateFn {
	if i >= len(constructs) {
		return nok
	}
	cur := constructs[i].Start
	return func(t *Tokenizer, c Code) (State, stateFn) {
		return t.Attempt(cur, func(ok bool) stateFn {
			if ok {
				return done
			}
			return tryConstruct(constructs, i+1)
		})(t, c)
	}
}

func done(t *Tokenizer, c Code) (State, stateFn) { return StateOk, nil }

// Tokenize runs the full flow-level drive over src and returns the
// resulting balanced, spliced event sequence — this package's single
// exported entry point (spec.md §6). It owns the top-level Document
// driving loop: try the flow construct table once per non-blank line,
// record an explicit LineEnding between lines, and record blank lines as
// BlankLineEnding; once the whole buffer is consumed, the content router
// (router.go) splices any linked chains before the result is returned.
func Tokenize(src []byte, cfg Config) []Event {
	t := NewTokenizer(src, cfg)
	t.Enter(Document)
	t.Enter(Flow)

	constructs := flowConstructs(cfg)
	table := dispatch(constructs)

	for {
		c := t.peek()
		if c.IsEOF() {
			break
		}
		if c.IsLineEnding() {
			t.Enter(BlankLineEnding)
			t.Consume(c)
			t.Exit(BlankLineEnding)
			continue
		}

		if ok := t.Run(table); !ok {
			// Paragraph, the table's fallback, always succeeds on a
			// non-blank line; reaching here means the table was built
			// without a fallback, an implementer bug, not user input.
			panic("scandown: flow construct table failed to claim a non-blank line")
		}

		if le := t.peek(); le.IsLineEnding() {
			t.Enter(LineEnding)
			t.Consume(le)
			t.Exit(LineEnding)
		}
	}

	t.Exit(Flow)
	t.Exit(Document)

	route(t)

	if !t.log.Balanced() {
		panic("scandown: unbalanced event log at end of Tokenize")
	}
	return append([]Event(nil), t.log.events...)
}
