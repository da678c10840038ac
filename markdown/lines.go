package markdown

import (
	"strconv"
	"strings"
)

// splitLines splits text into lines without their terminators. A final
// newline does not start an empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// leadingIndent returns the width of line's leading blanks, counting a tab
// as four columns, and the byte length of that prefix.
func leadingIndent(line string) (width, n int) {
	for n < len(line) {
		switch line[n] {
		case ' ':
			width++
		case '\t':
			width += 4 - width%4
		default:
			return width, n
		}
		n++
	}
	return width, n
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// fence returns the fence marker and info string of a code fence line.
func fence(line string) (marker, info string, ok bool) {
	w, n := leadingIndent(line)
	if w > 3 {
		return "", "", false
	}
	rest := line[n:]
	for _, c := range []string{"```", "~~~"} {
		if strings.HasPrefix(rest, c) {
			k := len(c)
			for k < len(rest) && rest[k] == c[0] {
				k++
			}
			return rest[:k], strings.TrimSpace(rest[k:]), true
		}
	}
	return "", "", false
}

// closesFence reports whether line closes a fence opened with marker.
func closesFence(line, marker string) bool {
	m, info, ok := fence(line)
	return ok && info == "" && m[0] == marker[0] && len(m) >= len(marker)
}

func isIndentedCodeLine(line string) bool {
	w, _ := leadingIndent(line)
	return w >= 4 && !isBlank(line)
}

// stripIndent removes up to four columns of leading blanks.
func stripIndent(line string) string {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += 4 - w%4
		default:
			return line[i:]
		}
		if w >= 4 {
			return line[i+1:]
		}
	}
	return ""
}

// headingLevel returns the ATX heading level of line and its text.
func headingLevel(line string) (int, string) {
	w, n := leadingIndent(line)
	if w > 3 {
		return 0, ""
	}
	rest := line[n:]
	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, ""
	}
	if level < len(rest) && rest[level] != ' ' && rest[level] != '\t' {
		return 0, ""
	}
	text := strings.TrimSpace(rest[level:])
	// A closing sequence of #s is not part of the heading.
	if t := strings.TrimRight(text, "#"); t != text && (t == "" || strings.HasSuffix(t, " ")) {
		text = strings.TrimSpace(t)
	}
	return level, text
}

func isHorizontalRule(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case c:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// isUnorderedListItem reports a "-", "*" or "+" list item with its
// indentation and text.
func isUnorderedListItem(line string) (bool, int, string) {
	w, n := leadingIndent(line)
	rest := line[n:]
	if len(rest) < 2 || !strings.ContainsRune("-*+", rune(rest[0])) || (rest[1] != ' ' && rest[1] != '\t') {
		return false, 0, ""
	}
	return true, w, strings.TrimSpace(rest[2:])
}

// isOrderedListItem reports a "1." or "1)" list item with its indentation,
// number and text.
func isOrderedListItem(line string) (bool, int, int, string) {
	w, n := leadingIndent(line)
	rest := line[n:]
	k := 0
	for k < len(rest) && k < 9 && rest[k] >= '0' && rest[k] <= '9' {
		k++
	}
	if k == 0 || k+1 >= len(rest) || (rest[k] != '.' && rest[k] != ')') || (rest[k+1] != ' ' && rest[k+1] != '\t') {
		return false, 0, 0, ""
	}
	num, err := strconv.Atoi(rest[:k])
	if err != nil {
		return false, 0, 0, ""
	}
	return true, w, num, strings.TrimSpace(rest[k+2:])
}

// quoteText strips a block quote marker.
func quoteText(line string) (string, bool) {
	w, n := leadingIndent(line)
	if w > 3 || n >= len(line) || line[n] != '>' {
		return "", false
	}
	rest := line[n+1:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest, true
}

// isTableRow reports a pipe table row and returns its cells.
func isTableRow(line string) (bool, []string) {
	s := strings.TrimSpace(line)
	if !strings.Contains(s, "|") {
		return false, nil
	}
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '|':
			cur.WriteByte('|')
			i++
		case s[i] == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return true, cells
}

func isTableSeparatorRow(line string) bool {
	ok, cells := isTableRow(line)
	if !ok {
		return false
	}
	for _, c := range cells {
		c = strings.Trim(c, ":")
		if len(c) < 1 || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}

// hardBreak reports whether a paragraph line ends with a hard line break
// and returns the line without it.
func hardBreak(line string) (string, bool) {
	if strings.HasSuffix(line, "\\") {
		return strings.TrimSuffix(line, "\\"), true
	}
	if strings.HasSuffix(line, "  ") {
		return strings.TrimRight(line, " "), true
	}
	return line, false
}
