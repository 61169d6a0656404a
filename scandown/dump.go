package scandown

import (
	"fmt"
	"io"
)

// String renders a State for diagnostics and %v formatting.
func (s State) String() string {
	switch s {
	case StateFn:
		return "Fn"
	case StateOk:
		return "Ok"
	case StateNok:
		return "Nok"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// DumpEvents writes one line per event to w, indented by nesting depth, in
// the style of the teacher's block-stack dumps: a plain %v line per event,
// or %+v (with Point detail) when verbose is set. Returns an error on the
// first write failure or if the log itself is unbalanced (an Exit without a
// matching, still-open Enter).
func DumpEvents(w io.Writer, events []Event, verbose bool) error {
	depth := 0
	for _, e := range events {
		if e.Kind == Exit {
			depth--
		}
		if depth < 0 {
			return fmt.Errorf("scandown: negative depth dumping events (unbalanced log)")
		}
		verb := "%v\n"
		if verbose {
			verb = "%+v\n"
		}
		if _, err := fmt.Fprintf(w, "%s"+verb, indent(depth), e); err != nil {
			return err
		}
		if e.Kind == Enter {
			depth++
		}
	}
	return nil
}

func indent(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
