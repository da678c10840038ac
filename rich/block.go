package rich

// BlockKind identifies the semantic role of a Block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	ListItem
	CodeBlock
	BlockQuote
	TableRow
	ThematicBreak
)

var blockKindNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	ListItem:      "list item",
	CodeBlock:     "code block",
	BlockQuote:    "block quote",
	TableRow:      "table row",
	ThematicBreak: "thematic break",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "unknown"
	}
	return blockKindNames[k]
}

// Block is one semantic unit of a document. Every block with text is laid
// out on its own.
type Block struct {
	Kind    BlockKind
	Content Content

	Level  int    // heading level, 1-6
	Depth  int    // list or quote nesting, 0 for top level
	Marker string // list item marker such as "•" or "3."
	Info   string // code block info string
	Cells  int    // table row: number of cells; cells are tab separated
	Header bool   // table row: the header row
}

// HasText reports whether the block has anything to lay out.
func (b Block) HasText() bool {
	for _, s := range b.Content {
		if s.Text != "" {
			return true
		}
	}
	return false
}
