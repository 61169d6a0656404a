package scandown

import "fmt"

// Content classifies what kind of sub-tokenization a Link chain should be
// fed through when the content router (router.go) splices it: Flow for
// block-level content, Text for inline content, String for restricted
// inline content (no further block or link resolution). This mirrors the
// three-member Content enum on the surveyed grammar's Link type exactly;
// see ContentType for the larger, four-member enum used to index construct
// tables.
type Content uint8

// The three content kinds a Link chain can carry.
const (
	ContentFlow Content = iota
	ContentText
	ContentString
)

func (c Content) String() string {
	switch c {
	case ContentFlow:
		return "flow"
	case ContentText:
		return "text"
	case ContentString:
		return "string"
	default:
		return fmt.Sprintf("Content(%d)", uint8(c))
	}
}

// ContentType indexes a construct table (construct.go). It has one more
// member than Content: Document, the top driving level that is never
// itself the target of a Link (nothing splices document content — only
// flow/text/string regions do, once a Document-level driver has found
// their boundaries).
type ContentType uint8

// The four content types a construct table can be built for.
const (
	ContentTypeDocument ContentType = iota
	ContentTypeFlow
	ContentTypeText
	ContentTypeString
)

func (ct ContentType) String() string {
	switch ct {
	case ContentTypeDocument:
		return "document"
	case ContentTypeFlow:
		return "flow"
	case ContentTypeText:
		return "text"
	case ContentTypeString:
		return "string"
	default:
		return fmt.Sprintf("ContentType(%d)", uint8(ct))
	}
}

// Link connects an Enter event to a sibling Enter event of the same Name
// that is not textually adjacent to it in the source, forming a chain the
// content router can walk and concatenate (spec.md §4.4). previous/next
// are event-log indices (-1 meaning "none"), matching the index-based,
// zero-copy linking the rollback-heavy attempt substrate requires.
type Link struct {
	Previous int
	Next     int
	Content  Content
}

// noLink is the sentinel meaning "not part of a chain".
const noLink = -1

func (l Link) hasPrevious() bool { return l.Previous != noLink }
func (l Link) hasNext() bool     { return l.Next != noLink }

func (l Link) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(f, "Link{content:%v", l.Content)
		if l.hasPrevious() {
			fmt.Fprintf(f, " prev:%d", l.Previous)
		}
		if l.hasNext() {
			fmt.Fprintf(f, " next:%d", l.Next)
		}
		fmt.Fprint(f, "}")
	default:
		fmt.Fprintf(f, "%%!%c(scandown.Link)", verb)
	}
}
