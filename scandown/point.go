package scandown

import "fmt"

// Point is a position within the source buffer: a 1-indexed line and
// column, a 0-indexed byte index, and vs, the number of virtual-space
// columns already consumed within the tab stop the point currently sits
// in. (index, vs) together form a strict total order over positions,
// matching spec.md §3's Point definition.
type Point struct {
	Line   int
	Column int
	Index  int
	VS     int
}

// StartPoint is the position immediately before the first byte of input.
var StartPoint = Point{Line: 1, Column: 1, Index: 0, VS: 0}

// Less reports whether p sorts strictly before q by (index, vs).
func (p Point) Less(q Point) bool {
	if p.Index != q.Index {
		return p.Index < q.Index
	}
	return p.VS < q.VS
}

// advance moves p forward by one Code, classified at p.Index in buf.
// It is the only place that understands tab virtualization: a tab byte is
// not advanced over all at once, but is instead expanded into TabSize-VS.vs
// virtual-space steps, the first of which shares the tab's own byte index
// and the rest of which share it too (only vs increments), so that the
// byte index only moves forward once the whole tab has been stepped
// through.
func (p Point) advance(buf []byte, c Code) Point {
	switch {
	case c.kind == codeVS:
		next := p
		next.Column++
		next.VS++
		if (next.Column-1)%TabSize == 0 {
			next.VS = 0
			next.Index++
		}
		return next
	case c.Char('\t'):
		// A tab stop is any column congruent to 1 mod TabSize. If the next
		// column already lands on one, the whole tab collapses into this
		// single step; otherwise this is the first virtual-space column of
		// a run that continues until a later VS step lands on the stop.
		next := p
		next.Column++
		if (next.Column-1)%TabSize == 0 {
			next.Index++
			next.VS = 0
			return next
		}
		next.VS = 1
		return next
	case c.kind == codeCRLF:
		next := p
		next.Line++
		next.Column = 1
		next.Index += 2
		next.VS = 0
		return next
	case c.kind == codeLF, c.kind == codeCR:
		next := p
		next.Line++
		next.Column = 1
		next.Index++
		next.VS = 0
		return next
	case c.kind == codeEOF:
		return p
	default:
		next := p
		next.Column++
		next.Index++
		next.VS = 0
		return next
	}
}

// ShiftTo advances p to index within buf, where [p.Index, index) is known
// to contain no line endings. It is used by the content router (router.go)
// to remap a logical offset in a spliced buffer back to a source Point
// without re-walking the whole tokenizer loop.
//
// Panics if a line ending is found in the span, which is a contract
// violation by the caller (spec.md §9's open question on shift_to: the
// surveyed source left its tab-handling branch as unreachable!("to do:
// tab"); here it is completed by delegating one Code at a time to the same
// classify+advance path the main loop uses, so tab virtualization is never
// duplicated).
func (p Point) ShiftTo(buf []byte, index int) Point {
	for p.Index < index {
		c, n := Classify(buf, p.Index)
		if c.IsLineEnding() {
			panic("scandown: ShiftTo span contains a line ending")
		}
		if c.Char('\t') {
			// Step through the tab one virtual-space column at a time so
			// that landing exactly on a tab stop lines up with index.
			for {
				before := p
				p = p.advance(buf, c)
				if p.Index > index {
					panic("scandown: ShiftTo index splits a tab stop")
				}
				if p.Index == index && p.VS == 0 {
					return p
				}
				if p.Index == before.Index && p.VS == 0 {
					break // tab fully consumed without reaching index via VS
				}
				if p.VS == 0 {
					break
				}
				c = VS
			}
			continue
		}
		p = p.advance(buf, c)
		_ = n
	}
	return p
}

// Format implements fmt.Formatter: %v prints "line:column" and %+v adds the
// byte index and virtual-space offset, following the verbose/terse
// dual-mode convention used throughout this package.
func (p Point) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(f, "%d:%d", p.Line, p.Column)
		if f.Flag('+') {
			fmt.Fprintf(f, "[%d", p.Index)
			if p.VS != 0 {
				fmt.Fprintf(f, "+%dvs", p.VS)
			}
			fmt.Fprint(f, "]")
		}
	default:
		fmt.Fprintf(f, "%%!%c(scandown.Point)", verb)
	}
}
