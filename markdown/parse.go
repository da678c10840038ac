// Package markdown turns Markdown text into rich blocks, one per paragraph,
// heading, list item, code block, quoted paragraph, table row or thematic
// break.
package markdown

import (
	"strconv"
	"strings"

	"github.com/rjkroege/richselect/rich"
)

// Parse parses text into blocks.
func Parse(text string) []rich.Block {
	return parseLines(splitLines(text))
}

func parseLines(lines []string) []rich.Block {
	var blocks []rich.Block

	var para []string
	inParagraph := false

	var code []string
	inIndentedBlock := false

	// The list item currently accepting continuation lines.
	item := -1

	emitParagraph := func() {
		if !inParagraph {
			return
		}
		blocks = append(blocks, rich.Block{Kind: rich.Paragraph, Content: paragraphContent(para, rich.DefaultStyle())})
		para, inParagraph = nil, false
	}
	emitIndentedBlock := func() {
		if !inIndentedBlock {
			return
		}
		for len(code) > 0 && isBlank(code[len(code)-1]) {
			code = code[:len(code)-1]
		}
		blocks = append(blocks, codeBlock(code, ""))
		code, inIndentedBlock = nil, false
	}
	endLeaf := func() {
		emitParagraph()
		emitIndentedBlock()
		item = -1
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Fenced code runs to its closing fence or the end of input.
		if marker, info, ok := fence(line); ok {
			endLeaf()
			var body []string
			for i++; i < len(lines) && !closesFence(lines[i], marker); i++ {
				body = append(body, lines[i])
			}
			blocks = append(blocks, codeBlock(body, info))
			continue
		}

		// List items take priority over indented code.
		isUL, ulIndent, ulText := isUnorderedListItem(line)
		isOL, olIndent, num, olText := isOrderedListItem(line)

		if isIndentedCodeLine(line) && !isUL && !isOL && !inParagraph && item < 0 {
			inIndentedBlock = true
			code = append(code, stripIndent(line))
			continue
		}
		if inIndentedBlock && isBlank(line) {
			code = append(code, "")
			continue
		}
		emitIndentedBlock()

		if isBlank(line) {
			endLeaf()
			continue
		}

		if ok, cells := isTableRow(line); ok && !inParagraph && i+1 < len(lines) && isTableSeparatorRow(lines[i+1]) {
			endLeaf()
			blocks = append(blocks, tableRow(cells, true))
			i++
			for i+1 < len(lines) {
				ok, cells := isTableRow(lines[i+1])
				if !ok || isBlank(lines[i+1]) {
					break
				}
				blocks = append(blocks, tableRow(cells, false))
				i++
			}
			continue
		}

		if level, text := headingLevel(line); level > 0 {
			endLeaf()
			blocks = append(blocks, rich.Block{
				Kind:    rich.Heading,
				Level:   level,
				Content: parseInline(text, rich.HeadingStyle(level), false),
			})
			continue
		}

		if isHorizontalRule(line) {
			endLeaf()
			blocks = append(blocks, rich.Block{Kind: rich.ThematicBreak})
			continue
		}

		if _, ok := quoteText(line); ok {
			endLeaf()
			var inner []string
			for ; i < len(lines); i++ {
				text, ok := quoteText(lines[i])
				if !ok {
					i--
					break
				}
				inner = append(inner, text)
			}
			for _, b := range parseLines(inner) {
				b.Depth++
				if b.Kind == rich.Paragraph {
					b.Kind = rich.BlockQuote
				}
				blocks = append(blocks, b)
			}
			continue
		}

		if isUL || isOL {
			endLeaf()
			b := rich.Block{Kind: rich.ListItem, Marker: "•", Depth: ulIndent / 2, Content: parseInline(ulText, rich.DefaultStyle(), false)}
			if isOL {
				b.Marker = strconv.Itoa(num) + "."
				b.Depth = olIndent / 2
				b.Content = parseInline(olText, rich.DefaultStyle(), false)
			}
			blocks = append(blocks, b)
			item = len(blocks) - 1
			continue
		}

		// Lazy continuation of the current list item.
		if item >= 0 {
			b := &blocks[item]
			b.Content = append(b.Content, rich.Span{Text: " ", Style: rich.DefaultStyle()})
			b.Content = append(b.Content, parseInline(strings.TrimSpace(line), rich.DefaultStyle(), false)...)
			b.Content = b.Content.Merge()
			continue
		}

		inParagraph = true
		para = append(para, line)
	}
	endLeaf()
	return blocks
}

// paragraphContent joins paragraph lines: soft breaks become spaces and
// hard breaks newlines.
func paragraphContent(lines []string, style rich.Style) rich.Content {
	var sb strings.Builder
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		text, hard := hardBreak(line)
		if i == len(lines)-1 {
			sb.WriteString(strings.TrimRight(line, " "))
			break
		}
		sb.WriteString(text)
		if hard {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return parseInline(sb.String(), style, false)
}

func codeBlock(lines []string, info string) rich.Block {
	return rich.Block{
		Kind:    rich.CodeBlock,
		Info:    info,
		Content: rich.Content{{Text: strings.Join(lines, "\n"), Style: rich.StyleCode}},
	}
}

func tableRow(cells []string, header bool) rich.Block {
	base := rich.DefaultStyle()
	if header {
		base = rich.StyleBold
	}
	var c rich.Content
	for i, cell := range cells {
		if i > 0 {
			c = append(c, rich.Span{Text: "\t", Style: rich.DefaultStyle()})
		}
		c = append(c, parseInline(cell, base, false)...)
	}
	return rich.Block{Kind: rich.TableRow, Header: header, Cells: len(cells), Content: c.Merge()}
}
