// Package emmet expands compact authoring abbreviations such as
// "div.container>ul>li*3" into markup, and "m10-20" into stylesheet
// declarations.
package emmet

import "fmt"

type Syntax int

const (
	Markup Syntax = iota
	Stylesheet
)

func (s Syntax) String() string {
	switch s {
	case Markup:
		return "markup"
	case Stylesheet:
		return "stylesheet"
	}
	return fmt.Sprintf("syntax(%d)", int(s))
}

// Options configures serialization.
//
// Field renders the numbered tab stops of the output. Indices start at 1 and
// restart for every serialization. A nil Field emits the placeholder text
// itself, which is what documentation previews want.
//
// Text, when set, is applied to every literal run of output text and
// attribute value. Callers emitting snippet syntax use it to escape
// characters the snippet grammar would otherwise claim.
type Options struct {
	Syntax Syntax
	Field  func(index int, placeholder string) string
	Text   func(text string) string
}

// Abbreviation is a shorthand located inside a line. Start is the character
// offset of its first character; the end is wherever the caller's cursor sat.
type Abbreviation struct {
	Start int
	Text  string
}

// Expand parses abbr under the configured syntax and serializes it back to
// output text.
func Expand(abbr string, opts Options) (string, error) {
	switch opts.Syntax {
	case Stylesheet:
		prop, err := ParseStylesheet(abbr)
		if err != nil {
			return "", err
		}
		return SerializeStylesheet(prop, opts), nil
	default:
		node, err := ParseMarkup(abbr)
		if err != nil {
			return "", err
		}
		return SerializeMarkup(node, opts)
	}
}
