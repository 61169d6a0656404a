package scandown

import "fmt"

// Kind distinguishes whether an Event opens or closes a span.
type Kind uint8

// The two Event kinds.
const (
	Enter Kind = iota
	Exit
)

func (k Kind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// Event is one entry of the flat, balanced sequence this package produces:
// a single Enter or Exit tag, the Name of the span it delimits, the source
// Point it occurred at, and an optional Link to a non-adjacent sibling
// Enter of the same Name (spec.md §3).
type Event struct {
	Kind  Kind
	Name  Name
	Point Point
	Link  *Link
}

func (e Event) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(f, "%v %v @%v", e.Kind, e.Name, e.Point)
		if f.Flag('+') && e.Link != nil {
			fmt.Fprintf(f, " %+v", *e.Link)
		}
	default:
		fmt.Fprintf(f, "%%!%c(scandown.Event)", verb)
	}
}

// EventLog is the append-only event vector a Tokenizer builds. It is kept
// as its own type, rather than a bare []Event, so that the balance
// invariant and the attempt stack's truncate-on-rollback behavior have one
// place to live.
type EventLog struct {
	events []Event

	// open holds the log index of each currently-open Enter, innermost
	// last, so Exit can assert it is closing the matching span without a
	// separate pass over events.
	open []int
}

// Len returns the number of events currently in the log.
func (el *EventLog) Len() int { return len(el.events) }

// At returns the i-th event.
func (el *EventLog) At(i int) Event { return el.events[i] }

// Slice returns the events in [i, j) directly referencing the log's
// backing array; callers must not retain it across a truncate.
func (el *EventLog) Slice(i, j int) []Event { return el.events[i:j] }

// Depth returns the number of currently-open (entered-but-not-exited)
// spans.
func (el *EventLog) Depth() int { return len(el.open) }

// enter appends an Enter event for name at point and returns its index.
// Panics if name is void and the innermost open span already has the same
// name (a void span may never itself be entered while already open — that
// would make it non-void).
func (el *EventLog) enter(name Name, point Point) int {
	if name.IsVoid() && len(el.open) > 0 && el.events[el.open[len(el.open)-1]].Name == name {
		panic(fmt.Sprintf("scandown: cannot re-enter void span %v while still open", name))
	}
	idx := len(el.events)
	el.events = append(el.events, Event{Kind: Enter, Name: name, Point: point})
	el.open = append(el.open, idx)
	return idx
}

// exit appends an Exit event for the innermost open span, which must be
// named name. Panics otherwise (spec.md §7: mismatched Enter/Exit is an
// implementer bug, not a recoverable condition).
func (el *EventLog) exit(name Name, point Point) int {
	if len(el.open) == 0 {
		panic(fmt.Sprintf("scandown: exit(%v) with nothing open", name))
	}
	top := el.open[len(el.open)-1]
	if el.events[top].Name != name {
		panic(fmt.Sprintf("scandown: exit(%v) does not match open %v", name, el.events[top].Name))
	}
	if el.events[top].Name.IsVoid() && len(el.events) != top+1 {
		panic(fmt.Sprintf("scandown: void span %v acquired a child event", name))
	}
	el.open = el.open[:len(el.open)-1]
	idx := len(el.events)
	el.events = append(el.events, Event{Kind: Exit, Name: name, Point: point})
	return idx
}

// truncate discards every event and open-span marker from index i onward,
// the core of attempt rollback (attempt.go): O(1) beyond the slice
// re-slice, no event data is copied or freed.
func (el *EventLog) truncate(i int) {
	el.events = el.events[:i]
	for len(el.open) > 0 && el.open[len(el.open)-1] >= i {
		el.open = el.open[:len(el.open)-1]
	}
}

// link records that the Enter at `next` continues the chain whose most
// recent Enter is at `previous`, both event-log indices, with content c
// describing what kind of sub-tokenization the chain feeds (spec.md §4.4).
func (el *EventLog) link(previous, next int, c Content) {
	if prev := el.events[previous].Link; prev != nil {
		prev.Next = next
	} else {
		el.events[previous].Link = &Link{Previous: noLink, Next: next, Content: c}
	}
	el.events[next].Link = &Link{Previous: previous, Next: noLink, Content: c}
}

// Balanced reports whether every Enter in the log has a matching Exit,
// i.e. no spans are left open. Used by whole-log invariant tests
// (spec.md §8, Balance) and asserted true at the end of Tokenize.
func (el *EventLog) Balanced() bool { return len(el.open) == 0 }
