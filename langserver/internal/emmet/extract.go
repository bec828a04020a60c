package emmet

import "strings"

// ExtractAbbreviation finds the abbreviation that ends at pos on line. It
// scans backwards from the cursor, keeping brackets, braces and quotes
// balanced, and stops at the first character that cannot belong to an
// abbreviation. pos must be a valid offset into line; out-of-range values
// panic, which callers are expected to treat as a scanner fault.
func ExtractAbbreviation(line string, pos int, syntax Syntax) (Abbreviation, bool) {
	prefix := line[:pos]
	if syntax == Stylesheet {
		return extractStylesheet(prefix)
	}
	return extractMarkup(prefix)
}

func extractMarkup(prefix string) (Abbreviation, bool) {
	var brace, bracket, paren int
	var quote byte

	start := len(prefix)
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]

		if quote != 0 {
			if c == quote {
				quote = 0
			}
			start = i
			continue
		}

		switch c {
		case '"', '\'':
			// Closing quote of an attribute or text value, seen backwards.
			if bracket == 0 && brace == 0 {
				return trimMarkup(prefix, start)
			}
			quote = c
		case '}':
			brace++
		case '{':
			brace--
			if brace < 0 {
				return trimMarkup(prefix, start)
			}
		case ']':
			bracket++
		case '[':
			bracket--
			if bracket < 0 {
				return trimMarkup(prefix, start)
			}
		case ')':
			paren++
		case '(':
			paren--
			if paren < 0 {
				return trimMarkup(prefix, start)
			}
		default:
			if brace == 0 && bracket == 0 && !isMarkupChar(c) {
				return trimMarkup(prefix, start)
			}
		}
		start = i
	}
	return trimMarkup(prefix, start)
}

func isMarkupChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	return strings.IndexByte(".#*>+^$!-_:@=/", c) >= 0
}

// trimMarkup drops leading operator characters that cannot start an
// abbreviation and rejects candidates with no substance.
func trimMarkup(prefix string, start int) (Abbreviation, bool) {
	text := prefix[start:]

	// A candidate glued to an open tag, as in "<p>ul>li", begins after the
	// tag's closing angle bracket.
	if start > 0 && prefix[start-1] == '<' {
		gt := strings.IndexByte(text, '>')
		if gt < 0 {
			return Abbreviation{}, false
		}
		start += gt + 1
		text = text[gt+1:]
	}

	for len(text) > 0 && strings.IndexByte(">+^*@/=-", text[0]) >= 0 {
		start++
		text = text[1:]
	}
	if !hasSubstance(text) {
		return Abbreviation{}, false
	}
	return Abbreviation{Start: start, Text: text}, true
}

func extractStylesheet(prefix string) (Abbreviation, bool) {
	start := len(prefix)
	for i := len(prefix) - 1; i >= 0; i-- {
		if !isStylesheetChar(prefix[i]) {
			break
		}
		start = i
	}
	text := prefix[start:]
	for len(text) > 0 && strings.IndexByte("%!-", text[0]) >= 0 {
		start++
		text = text[1:]
	}
	if !hasSubstance(text) {
		return Abbreviation{}, false
	}
	return Abbreviation{Start: start, Text: text}, true
}

func isStylesheetChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	return strings.IndexByte(".#%!-", c) >= 0
}

func hasSubstance(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '!' {
			return true
		}
	}
	return false
}
