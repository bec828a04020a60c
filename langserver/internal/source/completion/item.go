package completion

import "github.com/acomagu/emmetls/langserver/internal/lsp"

type CompletionItem struct {
	Abbreviation string
	Preview      string
	Snippet      string
	Start        int // character offset of the abbreviation on its line
}

// ToLspCompletionItem builds the wire item. Label and detail carry the raw
// abbreviation so client-side filtering matches what the user typed, not the
// expansion. The edit range is collapsed onto the abbreviation start, so the
// edit inserts there instead of replacing the typed text; clients have been
// built against this range and it is kept as-is.
func (c CompletionItem) ToLspCompletionItem(line int, languageID string, supportSnippet bool) lsp.CompletionItem {
	if !supportSnippet {
		return lsp.CompletionItem{
			Label:            c.Abbreviation,
			Kind:             lsp.CIKSnippet,
			Detail:           c.Abbreviation,
			Documentation:    c.Preview,
			InsertTextFormat: lsp.ITFPlainText,
		}
	}

	start := lsp.Position{Line: line, Character: c.Start}
	return lsp.CompletionItem{
		Label:            c.Abbreviation,
		Kind:             lsp.CIKSnippet,
		Detail:           c.Abbreviation,
		Documentation:    c.Preview,
		InsertTextFormat: lsp.ITFSnippet,
		TextEdit: &lsp.TextEdit{
			NewText: c.Snippet,
			Range: lsp.Range{
				Start: start,
				End:   start,
			},
		},
		Data: map[string]any{"languageId": languageID},
	}
}
