package scandown

// The content router implements spec.md §4.4: after flow-level
// tokenization finishes, it finds every chain of Linked Enter events (a
// construct's content split across non-adjacent source spans — e.g. a
// setext heading's text, one Data child per physical line), concatenates
// the bytes each chain's nodes cover into a logical buffer while keeping a
// mapping back to source positions, and splices a sub-parse of that
// buffer back into the parent log in place of the chain.
//
// The sub-parse is dispatched through splicers, a table keyed by
// ContentType (the same enum a full construct table would be keyed by),
// read off the chain's own Link.Content. This port registers exactly one
// sub-parse behavior, "flatten", for every entry: the whole logical buffer
// becomes a single Data leaf, replacing the N per-line Data nodes the
// chain held with one Data span whose Exit point is computed by mapping
// the logical buffer's end back to a real source Point. This is
// deliberately the simplest faithful instance of "run a sub-tokenizer and
// splice its result back" — not a second Tokenizer instance walking the
// logical buffer with its own construct table, which would require richer
// Text/String content constructs (emphasis, autolink, character
// reference, ...) to have anything to dispatch to, and those are out of
// this port's scope (SPEC_FULL.md §1 Non-goals). Flatten is still real,
// observable work: it merges a multi-line chain into one leaf a
// downstream consumer can read without walking Links itself, with
// correctly remapped boundaries, and it is reached through the same
// content-type dispatch point a richer sub-parse would plug into.

// chunkBreak records where one chain node's bytes begin within the
// logical buffer (logicalStart), the corresponding index in the original
// source buffer (sourceIndex), and the source Point at that position —
// enough to map any logical offset within the node back to a real Point
// via Point.ShiftTo (safe because a single chain node's span, being a
// Data leaf, never itself contains a line ending).
type chunkBreak struct {
	logicalStart int
	sourceIndex  int
	point        Point
}

// mapOffset returns the source Point corresponding to a logical offset
// produced by concatenating the chain nodes described by breaks.
func mapOffset(buf []byte, breaks []chunkBreak, offset int) Point {
	bi := 0
	for i, b := range breaks {
		if b.logicalStart <= offset {
			bi = i
		} else {
			break
		}
	}
	b := breaks[bi]
	return b.point.ShiftTo(buf, b.sourceIndex+(offset-b.logicalStart))
}

// splicePlan is what buildSplicePlan computes for one chain: the set of
// parent-log indices the chain's own Enter/Exit events occupy (to be
// dropped — note these are not contiguous, since sibling LineEnding and
// SpaceOrTab events fall between chain nodes) and the replacement Data
// Enter/Exit pair to insert at the chain head's position.
type splicePlan struct {
	headIdx   int
	drop      map[int]bool
	flatEnter Event
	flatExit  Event
}

// splicers is the sub-parse dispatch table a full content router would
// index by the chain's Content kind (flow/text/string, carried on the
// chain head's Link): one splicer per ContentType this package's Link
// values can carry. Every entry is "flatten" here — see the package doc
// comment and SPEC_FULL.md's content-router scope note — but the table
// still dispatches through ContentType rather than hard-coding a single
// case, so adding a real sub-parse for one content type later is a table
// entry, not a rewrite of route's control flow.
var splicers = map[ContentType]func(logical []byte, breaks []chunkBreak, buf []byte) (Event, Event){
	ContentTypeFlow:   flattenSplicer,
	ContentTypeText:   flattenSplicer,
	ContentTypeString: flattenSplicer,
}

// contentType maps a Link's Content (the three kinds a chain can carry) to
// the larger ContentType enum splicers is indexed by.
func contentType(c Content) ContentType {
	switch c {
	case ContentFlow:
		return ContentTypeFlow
	case ContentString:
		return ContentTypeString
	default:
		return ContentTypeText
	}
}

// flattenSplicer is this port's one registered sub-parse: the whole
// logical buffer becomes a single Data leaf.
func flattenSplicer(logical []byte, breaks []chunkBreak, buf []byte) (Event, Event) {
	enter := Event{Kind: Enter, Name: Data, Point: mapOffset(buf, breaks, 0)}
	exit := Event{Kind: Exit, Name: Data, Point: mapOffset(buf, breaks, len(logical))}
	return enter, exit
}

func buildSplicePlan(t *Tokenizer, headIdx int) splicePlan {
	plan := splicePlan{headIdx: headIdx, drop: map[int]bool{}}

	var logical []byte
	var breaks []chunkBreak
	var content Content

	idx := headIdx
	for {
		enter := t.log.At(idx)
		exit := t.log.At(idx + 1) // Data is void: its Exit is always the very next event
		content = enter.Link.Content
		breaks = append(breaks, chunkBreak{
			logicalStart: len(logical),
			sourceIndex:  enter.Point.Index,
			point:        enter.Point,
		})
		logical = append(logical, t.buf[enter.Point.Index:exit.Point.Index]...)
		plan.drop[idx] = true
		plan.drop[idx+1] = true

		if !enter.Link.hasNext() {
			break
		}
		idx = enter.Link.Next
	}

	splice := splicers[contentType(content)]
	plan.flatEnter, plan.flatExit = splice(logical, breaks, t.buf)
	return plan
}

// route finds every chain head in t's event log (an Enter event with a
// Link that starts a multi-node chain) and replaces each chain with its
// flattened form.
func route(t *Tokenizer) {
	var plans []splicePlan
	seen := map[int]bool{}
	n := t.log.Len()

	for i := 0; i < n; i++ {
		e := t.log.At(i)
		if e.Kind != Enter || e.Link == nil || e.Link.hasPrevious() || !e.Link.hasNext() {
			continue
		}
		if seen[i] {
			continue
		}
		plan := buildSplicePlan(t, i)
		for idx := range plan.drop {
			seen[idx] = true
		}
		plans = append(plans, plan)
	}

	if len(plans) == 0 {
		return
	}
	applySplicePlans(t, plans, seen)
}

func applySplicePlans(t *Tokenizer, plans []splicePlan, drop map[int]bool) {
	byHead := make(map[int]splicePlan, len(plans))
	for _, p := range plans {
		byHead[p.headIdx] = p
	}

	out := make([]Event, 0, t.log.Len())
	for i := 0; i < t.log.Len(); i++ {
		if p, ok := byHead[i]; ok {
			out = append(out, p.flatEnter, p.flatExit)
			continue
		}
		if drop[i] {
			continue
		}
		out = append(out, t.log.At(i))
	}
	t.log.events = out
}
