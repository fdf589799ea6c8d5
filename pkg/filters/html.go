package filters

import (
	"strings"
	"unicode"
)

const escapable = `&<>"'`

// Escape replaces &, <, >, " and ' with their HTML entities.
// Text without any of these characters is returned unchanged.
func Escape(text string) string {
	if text == "" {
		return ""
	}

	first := strings.IndexAny(text, escapable)
	if first < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	b.WriteString(text[:first])

	for i := first; i < len(text); i++ {
		// All escapable characters are single-byte, so multi-byte runes pass through untouched.
		switch c := text[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// StripHTML removes tags and collapses whitespace.
// A closing '>' counts as a word boundary, so "<p>a</p><p>b</p>" becomes "a b".
// An unterminated '<' drops the rest of the input.
func StripHTML(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	insideTag := false
	prevSpace := false

	for _, r := range text {
		switch {
		case r == '<':
			insideTag = true
		case r == '>':
			insideTag = false
			if !prevSpace && b.Len() > 0 {
				b.WriteByte(' ')
				prevSpace = true
			}
		case insideTag:
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		default:
			b.WriteRune(r)
			prevSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

// StripNewlines removes every \n and \r.
func StripNewlines(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}

	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, text)
}

// newlineReplacer lists "\r\n" first: strings.Replacer picks the earliest
// listed match at each position, so CRLF pairs become a single <br>.
var newlineReplacer = strings.NewReplacer(
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

// NewlineToBr converts each line break (\r\n, \n or \r) into <br>.
func NewlineToBr(text string) string {
	if text == "" {
		return ""
	}
	return newlineReplacer.Replace(text)
}
