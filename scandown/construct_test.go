package scandown_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/jcorbin/mdtok/scandown"
)

// describe renders an event sequence down to its Kind/Name shape, which is
// what these tests assert on: the taxonomy and nesting a construct produces,
// not the exact Points (those are covered directly in point_test.go and,
// for the content router, spot-checked in TestTokenize_headingSetext_multiline).
func describe(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = fmt.Sprintf("%v %v", e.Kind, e.Name)
	}
	return out
}

func TestTokenize_balanced(t *testing.T) {
	for _, src := range []string{
		"",
		"hello\n",
		"hello world",
		"---\n",
		"Title\n===\n",
		"Hello\nWorld\n===\n",
		"[a]: /url \"title\"\n",
		"\n\nhello\n\n",
	} {
		t.Run(fmt.Sprintf("%q", src), func(t *testing.T) {
			events := Tokenize([]byte(src), DefaultConfig())
			depth := 0
			for _, e := range events {
				if e.Kind == Exit {
					depth--
				}
				if !assert.True(t, depth >= 0, "negative depth") {
					return
				}
				if e.Kind == Enter {
					depth++
				}
			}
			assert.Equal(t, 0, depth, "unbalanced result")
		})
	}
}

func TestTokenize_paragraph_simple(t *testing.T) {
	events := Tokenize([]byte("hello"), DefaultConfig())
	assert.Equal(t, []string{
		"Enter Document",
		"Enter Flow",
		"Enter Paragraph",
		"Enter Data",
		"Exit Data",
		"Exit Paragraph",
		"Exit Flow",
		"Exit Document",
	}, describe(events))
}

func TestTokenize_thematicBreak_winsOverSetext(t *testing.T) {
	// A lone run of 3+ dashes with nothing before it is a thematic break,
	// never a setext underline (SPEC_FULL.md §4's ordering tie-break):
	// HeadingSetext can never even attempt this line, since ThematicBreak
	// is tried first and claims it outright.
	events := Tokenize([]byte("---"), DefaultConfig())
	assert.Equal(t, []string{
		"Enter Document",
		"Enter Flow",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Enter ThematicBreak",
		"Enter ThematicBreakSequence",
		"Exit ThematicBreakSequence",
		"Exit ThematicBreak",
		"Exit Flow",
		"Exit Document",
	}, describe(events))
}

func TestTokenize_thematicBreak_gapsAndIndent(t *testing.T) {
	events := Tokenize([]byte(" - - -"), DefaultConfig())
	names := describe(events)
	assert.Contains(t, names, "Enter ThematicBreak")
	assert.Contains(t, names, "Exit ThematicBreak")
	assert.NotContains(t, names, "Enter Paragraph")
}

func TestTokenize_thematicBreak_rejectsTooFewMarkers(t *testing.T) {
	events := Tokenize([]byte("--"), DefaultConfig())
	names := describe(events)
	assert.NotContains(t, names, "Enter ThematicBreak")
	assert.Contains(t, names, "Enter Paragraph")
}

func TestTokenize_headingSetext_singleLine(t *testing.T) {
	events := Tokenize([]byte("Title\n==="), DefaultConfig())
	assert.Equal(t, []string{
		"Enter Document",
		"Enter Flow",
		"Enter HeadingSetext",
		"Enter HeadingSetextText",
		"Enter Data",
		"Exit Data",
		"Exit HeadingSetextText",
		"Enter LineEnding",
		"Exit LineEnding",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Enter HeadingSetextUnderline",
		"Exit HeadingSetextUnderline",
		"Exit HeadingSetext",
		"Exit Flow",
		"Exit Document",
	}, describe(events))
}

func TestTokenize_headingSetext_disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeadingSetext = false
	events := Tokenize([]byte("Title\n==="), cfg)
	names := describe(events)
	assert.NotContains(t, names, "Enter HeadingSetext")
	// Without HeadingSetext in the table, "Title" and "===" become two
	// independent Paragraph lines instead of one heading.
	assert.Equal(t, 2, countName(names, "Enter Paragraph"))
}

func countName(names []string, s string) int {
	n := 0
	for _, name := range names {
		if name == s {
			n++
		}
	}
	return n
}

// TestTokenize_headingSetext_multiline exercises the content router: a
// two-line heading text should come out of Tokenize as a single flattened
// Data leaf spanning both physical lines, with its Enter/Exit Points
// correctly remapped back to source positions (spec.md §4.4).
func TestTokenize_headingSetext_multiline(t *testing.T) {
	src := "Hello\nWorld\n==="
	events := Tokenize([]byte(src), DefaultConfig())

	assert.Equal(t, []string{
		"Enter Document",
		"Enter Flow",
		"Enter HeadingSetext",
		"Enter HeadingSetextText",
		"Enter Data",
		"Exit Data",
		"Enter LineEnding",
		"Exit LineEnding",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Exit HeadingSetextText",
		"Enter LineEnding",
		"Exit LineEnding",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Enter HeadingSetextUnderline",
		"Exit HeadingSetextUnderline",
		"Exit HeadingSetext",
		"Exit Flow",
		"Exit Document",
	}, describe(events))

	// Find the flattened Data leaf and check its remapped span.
	var dataEnter, dataExit Event
	for i, e := range events {
		if e.Name == Data && e.Kind == Enter {
			dataEnter = e
			dataExit = events[i+1]
			break
		}
	}
	assert.Equal(t, 0, dataEnter.Point.Index)
	assert.Equal(t, 1, dataEnter.Point.Line)
	assert.Equal(t, 1, dataEnter.Point.Column)

	assert.Equal(t, len("Hello\nWorld"), dataExit.Point.Index)
	assert.Equal(t, 2, dataExit.Point.Line)
	assert.Equal(t, len("World")+1, dataExit.Point.Column)
	assert.Nil(t, dataEnter.Link) // the chain itself was consumed by splicing
}

func TestTokenize_definition_simple(t *testing.T) {
	events := Tokenize([]byte(`[a]: /url "title"`), DefaultConfig())
	assert.Equal(t, []string{
		"Enter Document",
		"Enter Flow",
		"Enter Definition",
		"Enter DefinitionLabel",
		"Enter DefinitionLabelMarker",
		"Exit DefinitionLabelMarker",
		"Enter DefinitionLabelString",
		"Enter Data",
		"Exit Data",
		"Exit DefinitionLabelString",
		"Enter DefinitionLabelMarker",
		"Exit DefinitionLabelMarker",
		"Exit DefinitionLabel",
		"Enter DefinitionMarker",
		"Exit DefinitionMarker",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Enter DefinitionDestination",
		"Enter DefinitionDestinationRaw",
		"Enter DefinitionDestinationString",
		"Enter Data",
		"Exit Data",
		"Exit DefinitionDestinationString",
		"Exit DefinitionDestinationRaw",
		"Exit DefinitionDestination",
		"Enter SpaceOrTab",
		"Exit SpaceOrTab",
		"Enter DefinitionTitle",
		"Enter DefinitionTitleMarker",
		"Exit DefinitionTitleMarker",
		"Enter DefinitionTitleString",
		"Enter Data",
		"Exit Data",
		"Exit DefinitionTitleString",
		"Enter DefinitionTitleMarker",
		"Exit DefinitionTitleMarker",
		"Exit DefinitionTitle",
		"Exit Definition",
		"Exit Flow",
		"Exit Document",
	}, describe(events))
}

func TestTokenize_definition_angleBracketDestination(t *testing.T) {
	events := Tokenize([]byte(`[a]: <url with spaces>`), DefaultConfig())
	names := describe(events)
	assert.Contains(t, names, "Enter DefinitionDestinationLiteral")
	assert.Contains(t, names, "Enter DefinitionDestinationLiteralMarker")
}

func TestTokenize_definition_emptyLabelRejected(t *testing.T) {
	// An empty "[]" label is invalid, so the whole line falls through to
	// Paragraph instead.
	events := Tokenize([]byte(`[]: /url`), DefaultConfig())
	names := describe(events)
	assert.NotContains(t, names, "Enter Definition")
	assert.Contains(t, names, "Enter Paragraph")
}

func TestTokenize_definition_whitespaceOnlyLabelRejected(t *testing.T) {
	// A whitespace-only "[ ]" label is blank, same as "[]": invalid.
	events := Tokenize([]byte(`[ ]: /url`), DefaultConfig())
	names := describe(events)
	assert.NotContains(t, names, "Enter Definition")
	assert.Contains(t, names, "Enter Paragraph")
}

func TestTokenize_blankLines(t *testing.T) {
	events := Tokenize([]byte("a\n\nb"), DefaultConfig())
	names := describe(events)
	assert.Contains(t, names, "Enter BlankLineEnding")
	assert.Equal(t, 2, countName(names, "Enter Paragraph"))
}
