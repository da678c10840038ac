package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rjkroege/richselect/rich"
)

// parseInline parses inline formatting (emphasis, code, links, images)
// within text and returns styled spans. Emphasis nests: the text between
// delimiters is parsed again with the emphasized style as its base.
// noLinks disables links and images inside a link label.
func parseInline(text string, baseStyle rich.Style, noLinks bool) rich.Content {
	var spans rich.Content
	var currentText strings.Builder

	flushPlain := func() {
		if currentText.Len() > 0 {
			spans = append(spans, rich.Span{Text: currentText.String(), Style: baseStyle})
			currentText.Reset()
		}
	}

	// emphasis handles text[i:] opening with delim, styled by apply.
	emphasis := func(i int, delim string, apply func(*rich.Style)) (int, bool) {
		if !strings.HasPrefix(text[i:], delim) {
			return 0, false
		}
		inner := text[i+len(delim):]
		if inner == "" || unicode.IsSpace(firstRune(inner)) {
			return 0, false
		}
		if delim[0] == '_' && i > 0 && isWordByte(text[i-1]) {
			return 0, false
		}
		end := closingDelimiter(inner, delim)
		if end < 0 {
			return 0, false
		}
		flushPlain()
		s := baseStyle
		apply(&s)
		spans = append(spans, parseInline(inner[:end], s, noLinks)...)
		return i + len(delim) + end + len(delim), true
	}

	for i := 0; i < len(text); {
		c := text[i]

		// Backslash escapes
		if c == '\\' && i+1 < len(text) && isASCIIPunct(text[i+1]) {
			currentText.WriteByte(text[i+1])
			i += 2
			continue
		}

		// Image: ![alt](url)
		if !noLinks && c == '!' && i+1 < len(text) && text[i+1] == '[' {
			if label, dest, n, ok := linkParts(text[i+1:]); ok {
				flushPlain()
				url, _ := parseURLPart(dest)
				s := baseStyle
				s.Image = &rich.Image{URL: url, Alt: label}
				spans = append(spans, rich.Span{Text: rich.ObjectReplacement, Style: s})
				i += 1 + n
				continue
			}
		}

		// Link: [text](url)
		if !noLinks && c == '[' {
			if label, dest, n, ok := linkParts(text[i:]); ok {
				flushPlain()
				url, _ := parseURLPart(dest)
				spans = append(spans, parseInline(label, rich.LinkStyle(baseStyle, url), true)...)
				i += n
				continue
			}
		}

		// Autolink: <https://...>
		if !noLinks && c == '<' {
			if end := strings.IndexByte(text[i:], '>'); end > 0 {
				url := text[i+1 : i+end]
				if isAutolink(url) {
					flushPlain()
					spans = append(spans, rich.Span{Text: url, Style: rich.LinkStyle(baseStyle, url)})
					i += end + 1
					continue
				}
			}
		}

		// Inline code: `text`
		if c == '`' {
			ticks := 1
			for i+ticks < len(text) && text[i+ticks] == '`' {
				ticks++
			}
			fence := text[i : i+ticks]
			if end := strings.Index(text[i+ticks:], fence); end != -1 {
				flushPlain()
				code := text[i+ticks : i+ticks+end]
				if len(code) > 2 && code[0] == ' ' && code[len(code)-1] == ' ' {
					code = code[1 : len(code)-1]
				}
				s := baseStyle
				s.Code = true
				spans = append(spans, rich.Span{Text: code, Style: s})
				i += 2*ticks + end
				continue
			}
			currentText.WriteString(fence)
			i += ticks
			continue
		}

		if c == '~' {
			if next, ok := emphasis(i, "~~", func(s *rich.Style) { s.Strike = true }); ok {
				i = next
				continue
			}
		}
		if c == '*' || c == '_' {
			d := string(c)
			if next, ok := emphasis(i, d+d+d, func(s *rich.Style) { s.Bold, s.Italic = true, true }); ok {
				i = next
				continue
			}
			if next, ok := emphasis(i, d+d, func(s *rich.Style) { s.Bold = true }); ok {
				i = next
				continue
			}
			if next, ok := emphasis(i, d, func(s *rich.Style) { s.Italic = true }); ok {
				i = next
				continue
			}
		}

		// Regular character
		currentText.WriteByte(c)
		i++
	}

	flushPlain()
	return spans.Merge()
}

// linkParts parses "[label](dest)" at the start of s and returns the total
// length consumed.
func linkParts(s string) (label, dest string, n int, ok bool) {
	if s == "" || s[0] != '[' {
		return "", "", 0, false
	}
	depth := 0
	closeBracket := -1
	for i := 0; i < len(s) && closeBracket < 0; i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				closeBracket = i
			}
		}
	}
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	urlEnd := strings.IndexByte(s[closeBracket+2:], ')')
	if urlEnd < 0 {
		return "", "", 0, false
	}
	return s[1:closeBracket], s[closeBracket+2 : closeBracket+2+urlEnd], closeBracket + 2 + urlEnd + 1, true
}

// parseURLPart splits a link destination into URL and optional title.
func parseURLPart(s string) (url, title string) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		if end := strings.IndexByte(s, '>'); end > 0 {
			return s[1:end], strings.Trim(strings.TrimSpace(s[end+1:]), `"'`)
		}
	}
	if sp := strings.IndexAny(s, " \t"); sp >= 0 {
		return s[:sp], strings.Trim(strings.TrimSpace(s[sp+1:]), `"'`)
	}
	return s, ""
}

// closingDelimiter finds delim closing an emphasis run in s, skipping code
// spans and escapes. The closer must follow a non-space character. Runs of
// the same character that open nested spans are matched first.
func closingDelimiter(s, delim string) int {
	var open []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				i += end + 1
			}
		case delim[0]:
			j := i
			for j < len(s) && s[j] == delim[0] {
				j++
			}
			run := j - i
			closable := i > 0 && !unicode.IsSpace(lastRune(s[:i]))
			if delim[0] == '_' && j < len(s) && isWordByte(s[j]) {
				closable = false
			}
			openable := j < len(s) && !unicode.IsSpace(firstRune(s[j:]))
			if closable && len(open) > 0 {
				top := open[len(open)-1]
				open = open[:len(open)-1]
				if run <= top {
					i = j - 1
					continue
				}
				run -= top
			}
			if closable && run >= len(delim) {
				return j - len(delim)
			}
			if openable {
				open = append(open, run)
			}
			i = j - 1
		}
	}
	return -1
}

func isAutolink(s string) bool {
	if strings.ContainsAny(s, " \t<") {
		return false
	}
	for _, scheme := range []string{"http://", "https://", "mailto:", "ftp://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

func isASCIIPunct(c byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= utf8.RuneSelf
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
