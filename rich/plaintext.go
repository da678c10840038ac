package rich

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// PlainText renders blocks as plain text for copying. List items carry
// their markers, nesting is shown by two spaces per level, table rows
// become comma separated values and thematic breaks become "***". Blocks
// are separated by a blank line except between consecutive list items or
// table rows.
func PlainText(blocks []Block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			prev := blocks[i-1].Kind
			if prev == b.Kind && (b.Kind == ListItem || b.Kind == TableRow) {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(plainBlock(b))
	}
	return sb.String()
}

func plainBlock(b Block) string {
	indent := strings.Repeat("  ", b.Depth)
	text := plainContent(b.Content)
	switch b.Kind {
	case ThematicBreak:
		return indent + "***"
	case ListItem:
		text = b.Marker + " " + text
	case TableRow:
		text = csvRow(strings.Split(text, "\t"))
	}
	return indent + strings.ReplaceAll(text, "\n", "\n"+indent)
}

func plainContent(c Content) string {
	var sb strings.Builder
	for _, s := range c {
		if s.Style.Image != nil {
			sb.WriteString(s.Style.Image.Description())
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func csvRow(cells []string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	w.Write(cells)
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}
