package scandown

import "fmt"

// Name identifies the kind of span an Event delimits. The taxonomy is
// closed and flat: every construct in a complete CommonMark+GFM
// implementation tags its spans with one of these ~120 names, rather than
// each construct inventing its own token type, so that downstream
// consumers (an AST builder, an HTML compiler) can dispatch on Name alone
// without knowing which construct produced it.
//
// This port implements five constructs (HeadingSetext, the bracketed
// Label factory, ThematicBreak, Paragraph, Definition) in full; the
// remaining names are reserved taxonomy slots for constructs that are
// external collaborators per this package's scope (see package doc and
// SPEC_FULL.md §1 Non-goals). Reserved names still participate correctly
// in Void (IsVoid) and Format, since those properties are taxonomy-wide
// invariants, not per-construct ones.
type Name uint8

// The full Name taxonomy, reproduced from the markdown-rs Name enum this
// package's grammar was distilled from (_examples/original_source).
const (
	nameInvalid Name = iota

	// Generic leaf content. ChunkText/ChunkString in older drafts of this
	// grammar collapsed into Data here: the content model (text vs string)
	// is carried by the enclosing construct and by the Link chain a Data
	// span belongs to, not by Data itself.
	Data
	LineEnding
	BlankLineEnding
	SpaceOrTab
	ByteOrderMark

	// Document-level containers.
	Document
	Flow

	// Thematic break.
	ThematicBreak
	ThematicBreakSequence

	// Heading (ATX): '#'-prefixed.
	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText

	// Heading (setext): underlined. Fully implemented, see setext.go.
	HeadingSetext
	HeadingSetextText
	HeadingSetextUnderline

	// Paragraph: the flow-level fallback construct. See paragraph.go.
	Paragraph

	// Block quote.
	BlockQuote
	BlockQuoteMarker
	BlockQuotePrefix

	// List (ordered/unordered) and its items.
	ListOrdered
	ListUnordered
	ListItem
	ListItemPrefix
	ListItemMarker
	ListItemValue

	// Code (indented).
	CodeIndented

	// Code (fenced).
	CodeFenced
	CodeFencedFence
	CodeFencedFenceSequence
	CodeFencedFenceInfo
	CodeFencedFenceMeta
	CodeFlowChunk

	// HTML (flow).
	HtmlFlow
	HtmlFlowData

	// Definition: label/destination/title. Fully implemented, see
	// definition.go; its label is produced by the bracketed Label factory
	// (label.go) parameterized with the DefinitionLabel* names below.
	Definition
	DefinitionMarker
	DefinitionLabel
	DefinitionLabelMarker
	DefinitionLabelString
	DefinitionDestination
	DefinitionDestinationLiteral
	DefinitionDestinationLiteralMarker
	DefinitionDestinationRaw
	DefinitionDestinationString
	DefinitionTitle
	DefinitionTitleMarker
	DefinitionTitleString

	// Frontmatter (YAML-ish document preamble), a GFM-adjacent extension.
	Frontmatter
	FrontmatterFence
	FrontmatterSequence
	FrontmatterChunk

	// GFM footnote definition.
	GfmFootnoteDefinition
	GfmFootnoteDefinitionPrefix
	GfmFootnoteDefinitionMarker
	GfmFootnoteDefinitionLabel
	GfmFootnoteDefinitionLabelMarker
	GfmFootnoteDefinitionLabelString

	// Text-level containers.
	Text
	StringContent

	// Character escape / character reference, inline.
	CharacterEscape
	CharacterEscapeMarker
	CharacterEscapeValue
	CharacterReference
	CharacterReferenceMarker
	CharacterReferenceMarkerNumeric
	CharacterReferenceMarkerHexadecimal
	CharacterReferenceMarkerSemi
	CharacterReferenceValue

	// Attention runs (emphasis/strong candidate markers) and their
	// resolved forms.
	AttentionSequence
	Emphasis
	EmphasisSequence
	EmphasisText
	Strong
	StrongSequence
	StrongText

	// Code (text), inline.
	CodeText
	CodeTextSequence
	CodeTextData

	// Hard breaks.
	HardBreakEscape
	HardBreakTrailing

	// HTML (text), inline.
	HtmlText
	HtmlTextData

	// Autolink.
	Autolink
	AutolinkMarker
	AutolinkProtocol
	AutolinkEmail

	// Label (link/image text), label end resolution, reference, resource.
	Label
	LabelMarker
	LabelImage
	LabelImageMarker
	LabelText
	LabelEnd
	LabelLink
	LinkSpan
	Image
	Reference
	ReferenceMarker
	ReferenceString
	Resource
	ResourceMarker
	ResourceDestination
	ResourceDestinationLiteral
	ResourceDestinationLiteralMarker
	ResourceDestinationRaw
	ResourceDestinationString
	ResourceTitle
	ResourceTitleMarker
	ResourceTitleString

	// GFM autolink literal.
	GfmAutolinkLiteralProtocol
	GfmAutolinkLiteralWww
	GfmAutolinkLiteralEmail

	// GFM footnote call.
	GfmFootnoteCall
	GfmFootnoteCallLabel
	GfmFootnoteCallMarker

	// GFM strikethrough.
	GfmStrikethrough
	GfmStrikethroughSequence
	GfmStrikethroughText

	// GFM task list item marker/checkbox.
	GfmTaskListItemCheck
	GfmTaskListItemMarker
	GfmTaskListItemValueChecked
	GfmTaskListItemValueUnchecked

	// Math (text), an extension in the same shape as code (text).
	MathText
	MathTextSequence
	MathTextData

	nameCount
)

// voidNames is exactly the VOID_EVENTS set from the surveyed grammar: Names
// that must never contain child Events. Cross-checked against nameInfo's
// per-Name content model below (a Name is in voidNames iff its nameInfo
// entry says contentModelVoid) and asserted structurally in name_test.go.
var voidNames = map[Name]bool{
	AttentionSequence:                   true,
	AutolinkEmail:                       true,
	AutolinkMarker:                      true,
	AutolinkProtocol:                    true,
	BlankLineEnding:                     true,
	BlockQuoteMarker:                    true,
	ByteOrderMark:                       true,
	CharacterEscapeMarker:               true,
	CharacterEscapeValue:                true,
	CharacterReferenceMarker:            true,
	CharacterReferenceMarkerHexadecimal: true,
	CharacterReferenceMarkerNumeric:     true,
	CharacterReferenceMarkerSemi:        true,
	CharacterReferenceValue:             true,
	CodeFencedFenceSequence:             true,
	CodeFlowChunk:                       true,
	CodeTextData:                        true,
	CodeTextSequence:                    true,
	Data:                                true,
	DefinitionDestinationLiteralMarker:  true,
	DefinitionLabelMarker:               true,
	DefinitionMarker:                    true,
	DefinitionTitleMarker:               true,
	EmphasisSequence:                    true,
	FrontmatterChunk:                    true,
	GfmAutolinkLiteralEmail:             true,
	GfmAutolinkLiteralProtocol:          true,
	GfmAutolinkLiteralWww:               true,
	GfmFootnoteCallMarker:               true,
	GfmFootnoteDefinitionLabelMarker:    true,
	GfmFootnoteDefinitionMarker:         true,
	GfmStrikethroughSequence:            true,
	GfmTaskListItemMarker:               true,
	GfmTaskListItemValueChecked:         true,
	GfmTaskListItemValueUnchecked:       true,
	FrontmatterSequence:                 true,
	HardBreakEscape:                     true,
	HardBreakTrailing:                   true,
	HeadingAtxSequence:                  true,
	HeadingSetextUnderline:              true,
	HtmlFlowData:                        true,
	HtmlTextData:                        true,
	LabelImageMarker:                    true,
	LabelMarker:                         true,
	LineEnding:                          true,
	ListItemMarker:                      true,
	ListItemValue:                       true,
	MathTextData:                        true,
	MathTextSequence:                    true,
	ReferenceMarker:                     true,
	ResourceDestinationLiteralMarker:    true,
	ResourceMarker:                      true,
	ResourceTitleMarker:                 true,
	SpaceOrTab:                          true,
	StrongSequence:                      true,
	ThematicBreakSequence:               true,
}

// IsVoid reports whether Events of this Name must never have children: a
// construct that enters a void Name must exit it again before entering any
// further Name, with no nested Enter in between (spec.md §8, Void
// discipline).
func (n Name) IsVoid() bool { return voidNames[n] }

// contentModel is the "what may this span contain" axis of a nameInfo
// entry: void names contain no Events at all, the other three mirror
// Content's three content regions.
type contentModel uint8

const (
	contentModelVoid contentModel = iota
	contentModelFlow
	contentModelText
	contentModelString
)

// nameTriple is the static context/content-model/construct metadata the
// surveyed grammar attaches to every Name variant's doc comment (event.rs,
// "## Info" / Context / Content model / Construct). context is the content
// region a span of this Name appears within; model is what it may itself
// contain; construct names the producing construct module, or "" for the
// handful of Names the grammar documents as "Construct: n/a" (produced by
// the tokenizer's own primitives rather than one named construct).
type nameTriple struct {
	context   ContentType
	model     contentModel
	construct string
}

// nameInfo is the static context/content-model/construct table spec.md §3
// requires ("each variant has an associated static metadata triple").
// Reproduced from the per-variant "## Info" doc comments in
// _examples/original_source/src/event.rs, the exact source this taxonomy
// was distilled from: context and content model are resolved transitively
// where a variant's own doc comment names another Name instead of a
// content-region keyword directly (e.g. AutolinkEmail's context is
// "[`Autolink`][Name::Autolink]", resolved here to Autolink's own context,
// text). Four entries have no Name counterpart in that source and are
// this port's own taxonomy additions for the document/flow/text/string
// container levels (see "Document-level containers" and "Text-level
// containers" above); their triples are grounded on content.go's
// ContentType/Content enums and the surrounding constructs' own contexts
// rather than on a event.rs doc comment.
var nameInfo = map[Name]nameTriple{
	Document: {context: ContentTypeDocument, model: contentModelFlow, construct: "document"},
	Flow:     {context: ContentTypeDocument, model: contentModelFlow, construct: "flow"},
	Text:     {context: ContentTypeFlow, model: contentModelText, construct: "text"},
	StringContent: {context: ContentTypeText, model: contentModelString, construct: "string"},

	AttentionSequence: {context: ContentTypeFlow, model: contentModelVoid, construct: "attention"},
	Autolink: {context: ContentTypeText, model: contentModelText, construct: "autolink"},
	AutolinkEmail: {context: ContentTypeText, model: contentModelVoid, construct: "autolink"},
	AutolinkMarker: {context: ContentTypeText, model: contentModelVoid, construct: "autolink"},
	AutolinkProtocol: {context: ContentTypeText, model: contentModelVoid, construct: "autolink"},
	BlankLineEnding: {context: ContentTypeFlow, model: contentModelVoid, construct: "blank_line"},
	BlockQuote: {context: ContentTypeDocument, model: contentModelFlow, construct: "block_quote"},
	BlockQuoteMarker: {context: ContentTypeDocument, model: contentModelVoid, construct: "block_quote"},
	BlockQuotePrefix: {context: ContentTypeDocument, model: contentModelFlow, construct: "block_quote"},
	ByteOrderMark: {context: ContentTypeFlow, model: contentModelVoid, construct: "document"},
	CharacterEscape: {context: ContentTypeText, model: contentModelText, construct: "character_escape"},
	CharacterEscapeMarker: {context: ContentTypeText, model: contentModelVoid, construct: "character_escape"},
	CharacterEscapeValue: {context: ContentTypeText, model: contentModelVoid, construct: "character_escape"},
	CharacterReference: {context: ContentTypeText, model: contentModelText, construct: "character_reference"},
	CharacterReferenceMarker: {context: ContentTypeText, model: contentModelVoid, construct: "character_reference"},
	CharacterReferenceMarkerHexadecimal: {context: ContentTypeText, model: contentModelVoid, construct: "character_reference"},
	CharacterReferenceMarkerNumeric: {context: ContentTypeText, model: contentModelVoid, construct: "character_reference"},
	CharacterReferenceMarkerSemi: {context: ContentTypeText, model: contentModelVoid, construct: "character_reference"},
	CharacterReferenceValue: {context: ContentTypeText, model: contentModelVoid, construct: "character_reference"},
	CodeFenced: {context: ContentTypeFlow, model: contentModelFlow, construct: "code_fenced"},
	CodeFencedFence: {context: ContentTypeFlow, model: contentModelFlow, construct: "code_fenced"},
	CodeFencedFenceInfo: {context: ContentTypeFlow, model: contentModelString, construct: "code_fenced"},
	CodeFencedFenceMeta: {context: ContentTypeFlow, model: contentModelString, construct: "code_fenced"},
	CodeFencedFenceSequence: {context: ContentTypeFlow, model: contentModelVoid, construct: "code_fenced"},
	CodeFlowChunk: {context: ContentTypeFlow, model: contentModelVoid, construct: "code_fenced"},
	CodeIndented: {context: ContentTypeFlow, model: contentModelFlow, construct: "code_fenced"},
	CodeText: {context: ContentTypeText, model: contentModelText, construct: "raw_text"},
	CodeTextData: {context: ContentTypeText, model: contentModelVoid, construct: "raw_text"},
	CodeTextSequence: {context: ContentTypeText, model: contentModelVoid, construct: "raw_text"},
	Data: {context: ContentTypeText, model: contentModelVoid, construct: "partial_data"},
	Definition: {context: ContentTypeFlow, model: contentModelFlow, construct: "definition"},
	DefinitionDestination: {context: ContentTypeFlow, model: contentModelFlow, construct: "partial_destination"},
	DefinitionDestinationLiteral: {context: ContentTypeFlow, model: contentModelFlow, construct: "partial_destination"},
	DefinitionDestinationLiteralMarker: {context: ContentTypeFlow, model: contentModelVoid, construct: "partial_destination"},
	DefinitionDestinationRaw: {context: ContentTypeFlow, model: contentModelFlow, construct: "partial_destination"},
	DefinitionDestinationString: {context: ContentTypeFlow, model: contentModelString, construct: "partial_destination"},
	DefinitionLabel: {context: ContentTypeFlow, model: contentModelFlow, construct: "partial_label"},
	DefinitionLabelMarker: {context: ContentTypeFlow, model: contentModelVoid, construct: "partial_label"},
	DefinitionLabelString: {context: ContentTypeFlow, model: contentModelString, construct: "partial_label"},
	DefinitionMarker: {context: ContentTypeFlow, model: contentModelVoid, construct: "definition"},
	DefinitionTitle: {context: ContentTypeFlow, model: contentModelFlow, construct: "partial_title"},
	DefinitionTitleMarker: {context: ContentTypeFlow, model: contentModelVoid, construct: "partial_title"},
	DefinitionTitleString: {context: ContentTypeFlow, model: contentModelString, construct: "partial_title"},
	Emphasis: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	EmphasisSequence: {context: ContentTypeText, model: contentModelVoid, construct: "attention"},
	EmphasisText: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	Frontmatter: {context: ContentTypeDocument, model: contentModelFlow, construct: "frontmatter"},
	FrontmatterChunk: {context: ContentTypeDocument, model: contentModelVoid, construct: "frontmatter"},
	FrontmatterFence: {context: ContentTypeDocument, model: contentModelFlow, construct: "frontmatter"},
	FrontmatterSequence: {context: ContentTypeDocument, model: contentModelVoid, construct: "frontmatter"},
	GfmAutolinkLiteralEmail: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_autolink_literal"},
	GfmAutolinkLiteralProtocol: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_autolink_literal"},
	GfmAutolinkLiteralWww: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_autolink_literal"},
	GfmFootnoteCall: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	GfmFootnoteCallLabel: {context: ContentTypeText, model: contentModelText, construct: "gfm_label_start_footnote"},
	GfmFootnoteCallMarker: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_label_start_footnote"},
	GfmFootnoteDefinition: {context: ContentTypeDocument, model: contentModelFlow, construct: "gfm_footnote_definition"},
	GfmFootnoteDefinitionLabel: {context: ContentTypeDocument, model: contentModelFlow, construct: "gfm_footnote_definition"},
	GfmFootnoteDefinitionLabelMarker: {context: ContentTypeDocument, model: contentModelVoid, construct: "gfm_footnote_definition"},
	GfmFootnoteDefinitionLabelString: {context: ContentTypeDocument, model: contentModelString, construct: "gfm_footnote_definition"},
	GfmFootnoteDefinitionMarker: {context: ContentTypeDocument, model: contentModelVoid, construct: "gfm_footnote_definition"},
	GfmFootnoteDefinitionPrefix: {context: ContentTypeDocument, model: contentModelFlow, construct: "gfm_footnote_definition"},
	GfmStrikethrough: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	GfmStrikethroughSequence: {context: ContentTypeText, model: contentModelVoid, construct: "attention"},
	GfmStrikethroughText: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	GfmTaskListItemCheck: {context: ContentTypeText, model: contentModelText, construct: "gfm_task_list_item_check"},
	GfmTaskListItemMarker: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_task_list_item_check"},
	GfmTaskListItemValueChecked: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_task_list_item_check"},
	GfmTaskListItemValueUnchecked: {context: ContentTypeText, model: contentModelVoid, construct: "gfm_task_list_item_check"},
	HardBreakEscape: {context: ContentTypeText, model: contentModelVoid, construct: "hard_break_escape"},
	HardBreakTrailing: {context: ContentTypeText, model: contentModelVoid, construct: "partial_whitespace"},
	HeadingAtx: {context: ContentTypeFlow, model: contentModelFlow, construct: "heading_atx"},
	HeadingAtxSequence: {context: ContentTypeFlow, model: contentModelVoid, construct: "heading_atx"},
	HeadingAtxText: {context: ContentTypeFlow, model: contentModelText, construct: "heading_atx"},
	HeadingSetext: {context: ContentTypeFlow, model: contentModelFlow, construct: "heading_setext"},
	HeadingSetextText: {context: ContentTypeFlow, model: contentModelText, construct: "heading_setext"},
	HeadingSetextUnderline: {context: ContentTypeFlow, model: contentModelVoid, construct: "heading_setext"},
	HtmlFlow: {context: ContentTypeFlow, model: contentModelFlow, construct: "html_flow"},
	HtmlFlowData: {context: ContentTypeFlow, model: contentModelVoid, construct: "html_flow"},
	HtmlText: {context: ContentTypeText, model: contentModelFlow, construct: "html_text"},
	HtmlTextData: {context: ContentTypeText, model: contentModelVoid, construct: "html_text"},
	Image: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	Label: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	LabelEnd: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	LabelImage: {context: ContentTypeText, model: contentModelText, construct: "label_start_image"},
	LabelImageMarker: {context: ContentTypeText, model: contentModelVoid, construct: "label_start_image"},
	LabelLink: {context: ContentTypeText, model: contentModelText, construct: "label_start_link"},
	LabelMarker: {context: ContentTypeText, model: contentModelVoid, construct: "label_start_image"},
	LabelText: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	LineEnding: {context: ContentTypeFlow, model: contentModelVoid, construct: ""},
	LinkSpan: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	ListItem: {context: ContentTypeDocument, model: contentModelFlow, construct: "list_item"},
	ListItemMarker: {context: ContentTypeDocument, model: contentModelVoid, construct: "list_item"},
	ListItemPrefix: {context: ContentTypeDocument, model: contentModelFlow, construct: "list_item"},
	ListItemValue: {context: ContentTypeDocument, model: contentModelVoid, construct: "list_item"},
	ListOrdered: {context: ContentTypeDocument, model: contentModelFlow, construct: "list_item"},
	ListUnordered: {context: ContentTypeDocument, model: contentModelFlow, construct: "list_item"},
	MathText: {context: ContentTypeText, model: contentModelText, construct: "raw_text"},
	MathTextData: {context: ContentTypeText, model: contentModelVoid, construct: "raw_text"},
	MathTextSequence: {context: ContentTypeText, model: contentModelVoid, construct: "raw_text"},
	Paragraph: {context: ContentTypeFlow, model: contentModelText, construct: "paragraph"},
	Reference: {context: ContentTypeText, model: contentModelText, construct: "partial_label"},
	ReferenceMarker: {context: ContentTypeText, model: contentModelVoid, construct: "partial_label"},
	ReferenceString: {context: ContentTypeText, model: contentModelString, construct: "partial_label"},
	Resource: {context: ContentTypeText, model: contentModelText, construct: "label_end"},
	ResourceDestination: {context: ContentTypeText, model: contentModelText, construct: "partial_destination"},
	ResourceDestinationLiteral: {context: ContentTypeText, model: contentModelText, construct: "partial_destination"},
	ResourceDestinationLiteralMarker: {context: ContentTypeText, model: contentModelVoid, construct: "partial_destination"},
	ResourceDestinationRaw: {context: ContentTypeText, model: contentModelText, construct: "partial_destination"},
	ResourceDestinationString: {context: ContentTypeText, model: contentModelString, construct: "partial_destination"},
	ResourceMarker: {context: ContentTypeText, model: contentModelVoid, construct: "label_end"},
	ResourceTitle: {context: ContentTypeText, model: contentModelText, construct: "partial_title"},
	ResourceTitleMarker: {context: ContentTypeText, model: contentModelVoid, construct: "partial_title"},
	ResourceTitleString: {context: ContentTypeText, model: contentModelString, construct: "partial_title"},
	SpaceOrTab: {context: ContentTypeFlow, model: contentModelVoid, construct: ""},
	Strong: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	StrongSequence: {context: ContentTypeText, model: contentModelVoid, construct: "attention"},
	StrongText: {context: ContentTypeText, model: contentModelText, construct: "attention"},
	ThematicBreak: {context: ContentTypeFlow, model: contentModelFlow, construct: "thematic_break"},
	ThematicBreakSequence: {context: ContentTypeFlow, model: contentModelVoid, construct: "thematic_break"},
}

// Context reports the content region a span of this Name appears within.
func (n Name) Context() ContentType { return nameInfo[n].context }

// Construct names the construct module that produces spans of this Name,
// or "" for the few Names the surveyed grammar documents as produced by
// the tokenizer's own primitives rather than one named construct (e.g.
// LineEnding, SpaceOrTab: "Construct: n/a" in event.rs).
func (n Name) Construct() string { return nameInfo[n].construct }

var nameStrings = [...]string{
	nameInvalid: "Invalid",
	Data:        "Data", LineEnding: "LineEnding", BlankLineEnding: "BlankLineEnding",
	SpaceOrTab: "SpaceOrTab", ByteOrderMark: "ByteOrderMark",
	Document: "Document", Flow: "Flow",
	ThematicBreak: "ThematicBreak", ThematicBreakSequence: "ThematicBreakSequence",
	HeadingAtx: "HeadingAtx", HeadingAtxSequence: "HeadingAtxSequence", HeadingAtxText: "HeadingAtxText",
	HeadingSetext: "HeadingSetext", HeadingSetextText: "HeadingSetextText", HeadingSetextUnderline: "HeadingSetextUnderline",
	Paragraph:        "Paragraph",
	BlockQuote:       "BlockQuote", BlockQuoteMarker: "BlockQuoteMarker", BlockQuotePrefix: "BlockQuotePrefix",
	ListOrdered: "ListOrdered", ListUnordered: "ListUnordered", ListItem: "ListItem",
	ListItemPrefix: "ListItemPrefix", ListItemMarker: "ListItemMarker", ListItemValue: "ListItemValue",
	CodeIndented: "CodeIndented",
	CodeFenced:   "CodeFenced", CodeFencedFence: "CodeFencedFence", CodeFencedFenceSequence: "CodeFencedFenceSequence",
	CodeFencedFenceInfo: "CodeFencedFenceInfo", CodeFencedFenceMeta: "CodeFencedFenceMeta", CodeFlowChunk: "CodeFlowChunk",
	HtmlFlow: "HtmlFlow", HtmlFlowData: "HtmlFlowData",
	Definition: "Definition", DefinitionMarker: "DefinitionMarker",
	DefinitionLabel: "DefinitionLabel", DefinitionLabelMarker: "DefinitionLabelMarker", DefinitionLabelString: "DefinitionLabelString",
	DefinitionDestination: "DefinitionDestination", DefinitionDestinationLiteral: "DefinitionDestinationLiteral",
	DefinitionDestinationLiteralMarker: "DefinitionDestinationLiteralMarker", DefinitionDestinationRaw: "DefinitionDestinationRaw",
	DefinitionDestinationString: "DefinitionDestinationString",
	DefinitionTitle:             "DefinitionTitle", DefinitionTitleMarker: "DefinitionTitleMarker", DefinitionTitleString: "DefinitionTitleString",
	Frontmatter: "Frontmatter", FrontmatterFence: "FrontmatterFence", FrontmatterSequence: "FrontmatterSequence", FrontmatterChunk: "FrontmatterChunk",
	GfmFootnoteDefinition: "GfmFootnoteDefinition", GfmFootnoteDefinitionPrefix: "GfmFootnoteDefinitionPrefix",
	GfmFootnoteDefinitionMarker: "GfmFootnoteDefinitionMarker", GfmFootnoteDefinitionLabel: "GfmFootnoteDefinitionLabel",
	GfmFootnoteDefinitionLabelMarker: "GfmFootnoteDefinitionLabelMarker", GfmFootnoteDefinitionLabelString: "GfmFootnoteDefinitionLabelString",
	Text: "Text", StringContent: "String",
	CharacterEscape: "CharacterEscape", CharacterEscapeMarker: "CharacterEscapeMarker", CharacterEscapeValue: "CharacterEscapeValue",
	CharacterReference: "CharacterReference", CharacterReferenceMarker: "CharacterReferenceMarker",
	CharacterReferenceMarkerNumeric: "CharacterReferenceMarkerNumeric", CharacterReferenceMarkerHexadecimal: "CharacterReferenceMarkerHexadecimal",
	CharacterReferenceMarkerSemi: "CharacterReferenceMarkerSemi", CharacterReferenceValue: "CharacterReferenceValue",
	AttentionSequence: "AttentionSequence",
	Emphasis:          "Emphasis", EmphasisSequence: "EmphasisSequence", EmphasisText: "EmphasisText",
	Strong: "Strong", StrongSequence: "StrongSequence", StrongText: "StrongText",
	CodeText: "CodeText", CodeTextSequence: "CodeTextSequence", CodeTextData: "CodeTextData",
	HardBreakEscape: "HardBreakEscape", HardBreakTrailing: "HardBreakTrailing",
	HtmlText: "HtmlText", HtmlTextData: "HtmlTextData",
	Autolink: "Autolink", AutolinkMarker: "AutolinkMarker", AutolinkProtocol: "AutolinkProtocol", AutolinkEmail: "AutolinkEmail",
	Label: "Label", LabelMarker: "LabelMarker", LabelImage: "LabelImage", LabelImageMarker: "LabelImageMarker",
	LabelText: "LabelText", LabelEnd: "LabelEnd", LabelLink: "LabelLink",
	LinkSpan: "Link", Image: "Image",
	Reference: "Reference", ReferenceMarker: "ReferenceMarker", ReferenceString: "ReferenceString",
	Resource: "Resource", ResourceMarker: "ResourceMarker",
	ResourceDestination: "ResourceDestination", ResourceDestinationLiteral: "ResourceDestinationLiteral",
	ResourceDestinationLiteralMarker: "ResourceDestinationLiteralMarker", ResourceDestinationRaw: "ResourceDestinationRaw",
	ResourceDestinationString: "ResourceDestinationString",
	ResourceTitle:             "ResourceTitle", ResourceTitleMarker: "ResourceTitleMarker", ResourceTitleString: "ResourceTitleString",
	GfmAutolinkLiteralProtocol: "GfmAutolinkLiteralProtocol", GfmAutolinkLiteralWww: "GfmAutolinkLiteralWww", GfmAutolinkLiteralEmail: "GfmAutolinkLiteralEmail",
	GfmFootnoteCall: "GfmFootnoteCall", GfmFootnoteCallLabel: "GfmFootnoteCallLabel", GfmFootnoteCallMarker: "GfmFootnoteCallMarker",
	GfmStrikethrough: "GfmStrikethrough", GfmStrikethroughSequence: "GfmStrikethroughSequence", GfmStrikethroughText: "GfmStrikethroughText",
	GfmTaskListItemCheck: "GfmTaskListItemCheck", GfmTaskListItemMarker: "GfmTaskListItemMarker",
	GfmTaskListItemValueChecked: "GfmTaskListItemValueChecked", GfmTaskListItemValueUnchecked: "GfmTaskListItemValueUnchecked",
	MathText: "MathText", MathTextSequence: "MathTextSequence", MathTextData: "MathTextData",
}

// String returns the canonical Name identifier, matching its const name,
// except StringContent and LinkSpan, which render as "String" and "Link".
func (n Name) String() string {
	if int(n) < len(nameStrings) && nameStrings[n] != "" {
		return nameStrings[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Format implements fmt.Formatter; Names only have one sensible rendering,
// so %v and %+v agree.
func (n Name) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, n.String())
	default:
		fmt.Fprintf(f, "%%!%c(scandown.Name=%s)", verb, n.String())
	}
}
