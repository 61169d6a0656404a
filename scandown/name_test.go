package scandown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNameInfo_matchesVoidNames asserts nameInfo and voidNames agree for
// every Name in the taxonomy: a Name's content model is contentModelVoid
// exactly when it is in voidNames. The two tables are grounded on the same
// source (event.rs's per-variant "## Info" comments) and must never drift
// apart, since IsVoid is what the tokenizer's Enter/Exit actually enforce.
func TestNameInfo_matchesVoidNames(t *testing.T) {
	for n := nameInvalid + 1; n < nameCount; n++ {
		info, ok := nameInfo[n]
		if !assert.True(t, ok, "%v has no nameInfo entry", n) {
			continue
		}
		assert.Equal(t, info.model == contentModelVoid, voidNames[n],
			"%v: nameInfo model %v disagrees with voidNames", n, info.model)
	}
}

// assertNoVoidChildren walks events and fails if any void Name's Enter is
// ever followed by anything other than its own matching Exit, i.e. a void
// span with a child Event. This is the structural check the package's
// Void discipline (spec.md §8) rests on.
func assertNoVoidChildren(t *testing.T, events []Event) {
	t.Helper()
	for i, e := range events {
		if e.Kind != Enter || !e.Name.IsVoid() {
			continue
		}
		if !assert.Less(t, i+1, len(events), "%v at %d: void Enter with nothing after it", e.Name, i) {
			continue
		}
		next := events[i+1]
		assert.Equal(t, Exit, next.Kind, "%v at %d: void span has a child event", e.Name, i)
		assert.Equal(t, e.Name, next.Name, "%v at %d: void span closed under a different Name", e.Name, i)
	}
}

// TestVoidDiscipline_structural runs every construct this package fully
// implements (HeadingSetext, ThematicBreak, Paragraph, Definition and its
// bracketed-label factory) over inputs that exercise each void Name they
// produce, and asserts none of them ever nests a child under a void Enter.
func TestVoidDiscipline_structural(t *testing.T) {
	cfg := DefaultConfig()
	for _, src := range []string{
		"",
		"hello\n",
		"hello world\n",
		"plain paragraph text\n",
		"---\n",
		"***\n",
		"___\n",
		"Title\n===\n",
		"Subtitle\n---\n",
		"[a]: /url\n",
		"[a]: /url \"title\"\n",
		"[a]: </url with spaces>\n",
		"[a]: /url 'title'\n",
		"[a]: /url (title)\n",
		"\n\nhello\n\n",
		"hello\nworld\n===\n",
	} {
		events := Tokenize([]byte(src), cfg)
		assertNoVoidChildren(t, events)
	}
}

func TestName_Context_and_Construct(t *testing.T) {
	assert.Equal(t, ContentTypeFlow, ThematicBreak.Context())
	assert.Equal(t, "thematic_break", ThematicBreak.Construct())

	assert.Equal(t, ContentTypeFlow, HeadingSetext.Context())
	assert.Equal(t, "heading_setext", HeadingSetext.Construct())

	assert.Equal(t, ContentTypeText, Data.Context())
	assert.Equal(t, "partial_data", Data.Construct())

	// LineEnding and SpaceOrTab are "Construct: n/a" in event.rs: produced
	// by the tokenizer's own primitives, not one named construct.
	assert.Equal(t, "", LineEnding.Construct())
	assert.Equal(t, "", SpaceOrTab.Construct())
}
