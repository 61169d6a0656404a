package scandown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_enterExit_balance(t *testing.T) {
	tk := NewTokenizer([]byte("ab"), DefaultConfig())
	tk.Enter(Paragraph)
	tk.Enter(Data)
	assert.False(t, tk.Events().Balanced())
	tk.Exit(Data)
	tk.Exit(Paragraph)
	assert.True(t, tk.Events().Balanced())

	events := tk.Events()
	assert.Equal(t, 4, events.Len())
	assert.Equal(t, Enter, events.At(0).Kind)
	assert.Equal(t, Paragraph, events.At(0).Name)
	assert.Equal(t, Exit, events.At(3).Kind)
	assert.Equal(t, Paragraph, events.At(3).Name)
}

func TestTokenizer_exit_mismatchPanics(t *testing.T) {
	tk := NewTokenizer([]byte("a"), DefaultConfig())
	tk.Enter(Paragraph)
	assert.PanicsWithValue(t,
		"scandown: exit(Data) does not match open Paragraph",
		func() { tk.Exit(Data) },
	)
}

func TestTokenizer_exit_nothingOpenPanics(t *testing.T) {
	tk := NewTokenizer([]byte("a"), DefaultConfig())
	assert.Panics(t, func() { tk.Exit(Data) })
}

func TestTokenizer_void_reenterPanics(t *testing.T) {
	tk := NewTokenizer([]byte("a"), DefaultConfig())
	tk.Enter(Data) // Data is void
	assert.True(t, Data.IsVoid())
	assert.Panics(t, func() { tk.Enter(Data) })
}

func TestTokenizer_void_childPanics(t *testing.T) {
	tk := NewTokenizer([]byte("a"), DefaultConfig())
	tk.Enter(Data)
	tk.Enter(Paragraph) // entering a non-void child under an open void span
	assert.Panics(t, func() { tk.Exit(Data) })
}

func TestEventLog_link_chain(t *testing.T) {
	tk := NewTokenizer([]byte("ab"), DefaultConfig())
	first := tk.Enter(Data)
	tk.Exit(Data)
	second := tk.Enter(Data)
	tk.Exit(Data)
	tk.Events().link(first, second, ContentText)

	events := tk.Events()
	firstEvt := events.At(first)
	secondEvt := events.At(second)
	if assert.NotNil(t, firstEvt.Link) {
		assert.False(t, firstEvt.Link.hasPrevious())
		assert.True(t, firstEvt.Link.hasNext())
		assert.Equal(t, second, firstEvt.Link.Next)
	}
	if assert.NotNil(t, secondEvt.Link) {
		assert.True(t, secondEvt.Link.hasPrevious())
		assert.False(t, secondEvt.Link.hasNext())
		assert.Equal(t, first, secondEvt.Link.Previous)
	}
}

func TestEventLog_truncate(t *testing.T) {
	tk := NewTokenizer([]byte("ab"), DefaultConfig())
	tk.Enter(Paragraph)
	mark := tk.Events().Len()
	tk.Enter(Data)
	tk.Exit(Data)
	assert.Equal(t, mark+2, tk.Events().Len())

	tk.Events().truncate(mark)
	assert.Equal(t, mark, tk.Events().Len())
	assert.Equal(t, 1, tk.Events().Depth()) // Paragraph is still open

	tk.Exit(Paragraph)
	assert.True(t, tk.Events().Balanced())
}

func TestName_IsVoid(t *testing.T) {
	assert.True(t, Data.IsVoid())
	assert.True(t, LineEnding.IsVoid())
	assert.False(t, Paragraph.IsVoid())
	assert.False(t, Document.IsVoid())
}

func TestName_String_unknown(t *testing.T) {
	var n Name
	assert.Equal(t, "Invalid", n.String())
}
