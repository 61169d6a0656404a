package scandown

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// describe renders an event sequence down to its Kind/Name shape, like the
// helper of the same name in the black-box construct_test.go.
func describe(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = fmt.Sprintf("%v %v", e.Kind, e.Name)
	}
	return out
}

func TestStartLabel_simple(t *testing.T) {
	tk := NewTokenizer([]byte("[ab]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)
	assert.True(t, tk.Events().Balanced())
	assert.Equal(t, len("[ab]"), tk.Point().Index)

	names := describe(append([]Event(nil), tk.Events().Slice(0, tk.Events().Len())...))
	assert.Equal(t, []string{
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
	}, names)
}

func TestStartLabel_requiresOpenBracket(t *testing.T) {
	tk := NewTokenizer([]byte("ab]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
	assert.Equal(t, 0, tk.Events().Len())
	assert.Equal(t, 0, tk.Point().Index) // nothing consumed
}

func TestStartLabel_emptyRejected(t *testing.T) {
	tk := NewTokenizer([]byte("[]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

// TestStartLabel_whitespaceOnlyRejected: a label containing only
// whitespace has no data (partial_label.rs's Info.data stays false for
// space/tab/virtual-space bytes), so it is blank and must be rejected the
// same as a literal `[]`, even though size > 0.
func TestStartLabel_whitespaceOnlyRejected(t *testing.T) {
	tk := NewTokenizer([]byte("[ ]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

func TestStartLabel_unescapedBracketRejected(t *testing.T) {
	tk := NewTokenizer([]byte("[a[b]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

func TestStartLabel_escapedBracketAllowed(t *testing.T) {
	tk := NewTokenizer([]byte(`[a\]b]`), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)
	assert.Equal(t, len(`[a\]b]`), tk.Point().Index)
}

func TestStartLabel_escapedBackslashAllowed(t *testing.T) {
	// `\\` is an escaped backslash, not an escape of whatever follows it;
	// the trailing `]` still closes the label.
	tk := NewTokenizer([]byte(`[a\\]`), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)
}

func TestStartLabel_otherEscapeIsOrdinary(t *testing.T) {
	// A backslash before anything other than '[', '\', ']' is just an
	// ordinary content byte; both bytes count toward the label.
	tk := NewTokenizer([]byte(`[a\nb]`), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)
}

func TestStartLabel_blankLineRejected(t *testing.T) {
	tk := NewTokenizer([]byte("[a\n\nb]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

func TestStartLabel_eofRejected(t *testing.T) {
	tk := NewTokenizer([]byte("[ab"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

func TestStartLabel_sizeOverflowRejected(t *testing.T) {
	body := bytes.Repeat([]byte("a"), LinkReferenceSizeMax+1)
	src := append([]byte("["), append(body, ']')...)
	tk := NewTokenizer(src, DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.False(t, ok)
}

func TestStartLabel_sizeAtCapAllowed(t *testing.T) {
	body := bytes.Repeat([]byte("a"), LinkReferenceSizeMax)
	src := append([]byte("["), append(body, ']')...)
	tk := NewTokenizer(src, DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)
}

// TestStartLabel_multilineLinksChain checks that a label spanning two
// physical lines chains its per-line Data children together (spec.md
// §4.4), the same linking shape setext.go's text lines use.
func TestStartLabel_multilineLinksChain(t *testing.T) {
	tk := NewTokenizer([]byte("[a\nb]"), DefaultConfig())
	ok := tk.Run(StartLabel(definitionLabelOptions))
	assert.True(t, ok)

	var dataIdxs []int
	for i := 0; i < tk.Events().Len(); i++ {
		if e := tk.Events().At(i); e.Kind == Enter && e.Name == Data {
			dataIdxs = append(dataIdxs, i)
		}
	}
	if assert.Len(t, dataIdxs, 2) {
		first := tk.Events().At(dataIdxs[0])
		second := tk.Events().At(dataIdxs[1])
		if assert.NotNil(t, first.Link) {
			assert.False(t, first.Link.hasPrevious())
			assert.Equal(t, dataIdxs[1], first.Link.Next)
		}
		if assert.NotNil(t, second.Link) {
			assert.Equal(t, dataIdxs[0], second.Link.Previous)
			assert.False(t, second.Link.hasNext())
		}
	}
}
