// Package scandown implements a CommonMark-flavored markdown tokenizer: a
// state-machine driver that turns a byte buffer into a flat, balanced
// sequence of Enter/Exit Events, plus the speculative-execution substrate
// (attempt/check/interrupt) that lets constructs try and roll back a parse.
//
// The package does not read from an io.Reader, build an AST, or render
// HTML; those are external collaborators layered on top of the Event
// sequence this package produces.
package scandown

import "fmt"

// TabSize is the number of columns a tab stop advances to, per CommonMark's
// tab expansion rule (spec.md §3, §4.1).
const TabSize = 4

// Code is the classified unit the tokenizer consumes one at a time: either
// a concrete byte, one of the three line-ending shapes, a virtual space
// produced by tab expansion, or end of input.
//
// Code is a closed, comparable value type (no pointers), so it can be
// stored on attempt-stack frames and compared with ==.
type Code struct {
	kind codeKind
	b    byte
}

type codeKind uint8

const (
	codeByte codeKind = iota
	codeCRLF
	codeLF
	codeCR
	codeVS
	codeEOF
)

// ByteCode returns the Code for a single concrete input byte.
func ByteCode(b byte) Code { return Code{kind: codeByte, b: b} }

// EOF is the Code signaling end of input; it is returned forever once the
// classifier runs off the end of the buffer, and is never consumed.
var EOF = Code{kind: codeEOF}

// CRLF is the Code for a carriage-return/line-feed pair, classified and
// consumed as a single unit.
var CRLF = Code{kind: codeCRLF}

// LF is the Code for a bare line-feed byte.
var LF = Code{kind: codeLF}

// CR is the Code for a bare carriage-return byte not followed by a line feed.
var CR = Code{kind: codeCR}

// VS is the Code for one column of virtual space produced by tab expansion;
// VS never itself carries a byte of input, since the originating tab byte
// is represented by the '\t' Code that precedes the run (see
// Tokenizer.peek).
var VS = Code{kind: codeVS}

// IsEOF reports whether c is the end-of-input code.
func (c Code) IsEOF() bool { return c.kind == codeEOF }

// IsLineEnding reports whether c is CRLF, LF, or CR.
func (c Code) IsLineEnding() bool {
	switch c.kind {
	case codeCRLF, codeLF, codeCR:
		return true
	default:
		return false
	}
}

// IsVirtualSpace reports whether c is a tab-expansion virtual space.
func (c Code) IsVirtualSpace() bool { return c.kind == codeVS }

// Byte returns the raw byte backing c and true, or (0, false) if c does not
// correspond to a single concrete input byte (EOF, VS, or CRLF, which spans
// two bytes).
func (c Code) Byte() (byte, bool) {
	switch c.kind {
	case codeByte:
		return c.b, true
	case codeLF:
		return '\n', true
	case codeCR:
		return '\r', true
	default:
		return 0, false
	}
}

// Char reports whether c is a concrete byte equal to b.
func (c Code) Char(b byte) bool { return c.kind == codeByte && c.b == b }

// IsSpaceOrTab reports whether c is an ordinary space, a tab, or a virtual
// space produced by expanding one.
func (c Code) IsSpaceOrTab() bool {
	return c.kind == codeVS || c.Char(' ') || c.Char('\t')
}

// Len returns the number of source bytes c accounts for: 2 for CRLF, 1 for
// any other concrete byte or bare line ending, 0 for EOF and virtual space
// (which consume column/index but no source byte).
func (c Code) Len() int {
	switch c.kind {
	case codeCRLF:
		return 2
	case codeByte, codeLF, codeCR:
		return 1
	default:
		return 0
	}
}

// Classify inspects buf at index i (i < len(buf)) and returns the Code
// there along with the number of source bytes it spans. Tab expansion is
// the caller's concern (via the Point tracker, see point.go): Classify
// itself only ever returns a concrete '\t' byte Code, never VS.
func Classify(buf []byte, i int) (Code, int) {
	if i >= len(buf) {
		return EOF, 0
	}
	b := buf[i]
	switch b {
	case '\r':
		if i+1 < len(buf) && buf[i+1] == '\n' {
			return CRLF, 2
		}
		return CR, 1
	case '\n':
		return LF, 1
	default:
		return ByteCode(b), 1
	}
}

// Format implements fmt.Formatter so Codes print as short markers under %v
// (e.g. "␊" for LF) and with a verbose struct form under %+v, following the
// dual-mode convention scandown's Block types use.
func (c Code) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "Code{kind:%v byte:%q}", c.kind, c.b)
			return
		}
		switch c.kind {
		case codeEOF:
			fmt.Fprint(f, "␀")
		case codeCRLF:
			fmt.Fprint(f, "␍␊")
		case codeLF:
			fmt.Fprint(f, "␊")
		case codeCR:
			fmt.Fprint(f, "␍")
		case codeVS:
			fmt.Fprint(f, "␣")
		default:
			fmt.Fprintf(f, "%q", string(c.b))
		}
	default:
		fmt.Fprintf(f, "%%!%c(scandown.Code)", verb)
	}
}

func (k codeKind) String() string {
	switch k {
	case codeByte:
		return "byte"
	case codeCRLF:
		return "crlf"
	case codeLF:
		return "lf"
	case codeCR:
		return "cr"
	case codeVS:
		return "vs"
	case codeEOF:
		return "eof"
	default:
		return "invalid"
	}
}
