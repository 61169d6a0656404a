package scandown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRoute_flattensChain builds a three-node Data chain by hand (skipping
// a full Tokenize) so the router's splice math can be checked directly
// against an expected event slice via go-cmp, per SPEC_FULL.md's event-log
// diffing approach. The chain's nodes are deliberately non-adjacent in the
// log — a LineEnding sibling sits between each pair, mirroring how
// setext.go's textContinue links one line's Data to the next across a
// LineEnding/SpaceOrTab pair (spec.md §4.4).
func TestRoute_flattensChain(t *testing.T) {
	buf := []byte("aXbYc")
	tk := NewTokenizer(buf, DefaultConfig())

	consumeAs := func(name Name) {
		c, _ := Classify(buf, tk.Point().Index)
		tk.Enter(name)
		tk.Consume(c)
		tk.Exit(name)
	}
	consumeOne := func() {
		c, _ := Classify(buf, tk.Point().Index)
		tk.Consume(c)
	}

	tk.Enter(Paragraph)
	first := tk.Enter(Data)
	consumeOne() // 'a'
	tk.Exit(Data)
	consumeAs(LineEnding) // 'X', a sibling filler between chain nodes
	second := tk.Enter(Data)
	consumeOne() // 'b'
	tk.Exit(Data)
	consumeAs(LineEnding) // 'Y'
	third := tk.Enter(Data)
	consumeOne() // 'c'
	tk.Exit(Data)
	tk.Exit(Paragraph)

	tk.Events().link(first, second, ContentText)
	tk.Events().link(second, third, ContentText)

	route(tk)

	want := []Event{
		{Kind: Enter, Name: Paragraph, Point: Point{Line: 1, Column: 1, Index: 0}},
		{Kind: Enter, Name: Data, Point: Point{Line: 1, Column: 1, Index: 0}},
		{Kind: Exit, Name: Data, Point: Point{Line: 1, Column: 6, Index: 5}},
		{Kind: Enter, Name: LineEnding, Point: Point{Line: 1, Column: 2, Index: 1}},
		{Kind: Exit, Name: LineEnding, Point: Point{Line: 1, Column: 3, Index: 2}},
		{Kind: Enter, Name: LineEnding, Point: Point{Line: 1, Column: 4, Index: 3}},
		{Kind: Exit, Name: LineEnding, Point: Point{Line: 1, Column: 5, Index: 4}},
		{Kind: Exit, Name: Paragraph, Point: Point{Line: 1, Column: 6, Index: 5}},
	}

	got := append([]Event(nil), tk.Events().Slice(0, tk.Events().Len())...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("route() mismatch (-want +got):\n%s", diff)
	}
	if !tk.Events().Balanced() {
		t.Error("route() left the log unbalanced")
	}
}

// TestRoute_noChains leaves the log untouched when there is nothing linked.
func TestRoute_noChains(t *testing.T) {
	tk := NewTokenizer([]byte("a"), DefaultConfig())
	tk.Enter(Data)
	c, _ := Classify(tk.buf, 0)
	tk.Consume(c)
	tk.Exit(Data)

	before := append([]Event(nil), tk.Events().Slice(0, tk.Events().Len())...)
	route(tk)
	after := append([]Event(nil), tk.Events().Slice(0, tk.Events().Len())...)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("route() touched an unlinked log (-before +after):\n%s", diff)
	}
}
