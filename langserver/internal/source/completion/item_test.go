package completion

import (
	"testing"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/google/go-cmp/cmp"
)

func TestCompletionItem_ToLspCompletionItem(t *testing.T) {
	item := CompletionItem{
		Abbreviation: "ul>li",
		Preview:      "<ul>\n\t<li></li>\n</ul>",
		Snippet:      "<ul>\n\t<li>${1}</li>\n</ul>",
		Start:        4,
	}

	got := item.ToLspCompletionItem(2, "html", true)

	expect := lsp.CompletionItem{
		Label:            "ul>li",
		Kind:             lsp.CIKSnippet,
		Detail:           "ul>li",
		Documentation:    "<ul>\n\t<li></li>\n</ul>",
		InsertTextFormat: lsp.ITFSnippet,
		TextEdit: &lsp.TextEdit{
			NewText: "<ul>\n\t<li>${1}</li>\n</ul>",
			Range: lsp.Range{
				// The range is collapsed onto the abbreviation start: the
				// edit inserts there rather than replacing the typed text.
				Start: lsp.Position{Line: 2, Character: 4},
				End:   lsp.Position{Line: 2, Character: 4},
			},
		},
		Data: map[string]any{"languageId": "html"},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("ToLspCompletionItem result diff (-expect, +got)\n%s", diff)
	}
}

func TestCompletionItem_ToLspCompletionItem_noSnippetSupport(t *testing.T) {
	item := CompletionItem{
		Abbreviation: "m10",
		Preview:      "margin: 10px;",
		Snippet:      "margin: 10px;",
	}

	got := item.ToLspCompletionItem(0, "css", false)

	if got.InsertTextFormat != lsp.ITFPlainText {
		t.Errorf("insertTextFormat expected plain text, got %v", got.InsertTextFormat)
	}
	if got.TextEdit != nil {
		t.Errorf("textEdit should be omitted without snippet support, got %+v", got.TextEdit)
	}
}
