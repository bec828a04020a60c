package completion

import (
	"fmt"
	"strings"

	"github.com/acomagu/emmetls/langserver/internal/emmet"
)

// snippetEscaper protects literal output text from the snippet grammar.
var snippetEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

// snippetField renders the n-th tab stop in LSP snippet syntax.
func snippetField(index int, placeholder string) string {
	if placeholder == "" {
		return fmt.Sprintf("${%d}", index)
	}
	return fmt.Sprintf("${%d:%s}", index, placeholder)
}

// render parses the abbreviation once and serializes it twice: with the
// tab-stop hook for the insertable snippet, and without for the
// documentation preview.
func (c *Completor) render(abbr emmet.Abbreviation, syntax emmet.Syntax) (CompletionItem, error) {
	var snippet, preview string
	switch syntax {
	case emmet.Stylesheet:
		prop, err := emmet.ParseStylesheet(abbr.Text)
		if err != nil {
			return CompletionItem{}, err
		}
		snippet = emmet.SerializeStylesheet(prop, emmet.Options{Syntax: syntax, Field: snippetField})
		preview = emmet.SerializeStylesheet(prop, emmet.Options{Syntax: syntax})
	default:
		node, err := emmet.ParseMarkup(abbr.Text)
		if err != nil {
			return CompletionItem{}, err
		}
		snippet, err = emmet.SerializeMarkup(node, emmet.Options{
			Syntax: syntax,
			Field:  snippetField,
			Text:   snippetEscaper.Replace,
		})
		if err != nil {
			return CompletionItem{}, err
		}
		preview, err = emmet.SerializeMarkup(node, emmet.Options{Syntax: syntax})
		if err != nil {
			return CompletionItem{}, err
		}
	}

	return CompletionItem{
		Abbreviation: abbr.Text,
		Preview:      preview,
		Snippet:      snippet,
		Start:        abbr.Start,
	}, nil
}
