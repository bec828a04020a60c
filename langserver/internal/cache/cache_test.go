package cache

import (
	"testing"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/google/go-cmp/cmp"
)

func TestGlobalCache(t *testing.T) {
	g := NewGlobalCache()
	uri := lsp.NewDocumentURI("/tmp/a.html")

	if _, ok := g.Get(uri); ok {
		t.Fatal("Get should miss before Put")
	}

	g.Put(uri, "html", 1, "<div>\n</div>")
	doc, ok := g.Get(uri)
	if !ok {
		t.Fatal("Get should hit after Put")
	}
	if doc.LanguageID != "html" || doc.Text != "<div>\n</div>" {
		t.Errorf("unexpected document: %+v", doc)
	}

	g.Delete(uri)
	if _, ok := g.Get(uri); ok {
		t.Fatal("Get should miss after Delete")
	}

	// Deleting an absent entry is a no-op.
	g.Delete(uri)
}

func TestGlobalCache_ApplyChanges(t *testing.T) {
	tests := map[string]struct {
		text    string
		changes []lsp.TextDocumentContentChangeEvent
		expect  string
	}{
		"Whole document replacement": {
			text: "old",
			changes: []lsp.TextDocumentContentChangeEvent{
				{Text: "new"},
			},
			expect: "new",
		},
		"Insertion": {
			text: "ul>li",
			changes: []lsp.TextDocumentContentChangeEvent{
				{
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 5},
						End:   lsp.Position{Line: 0, Character: 5},
					},
					Text: "*3",
				},
			},
			expect: "ul>li*3",
		},
		"Replacement across a line": {
			text: "aaa\nbbb",
			changes: []lsp.TextDocumentContentChangeEvent{
				{
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 1},
						End:   lsp.Position{Line: 1, Character: 1},
					},
					Text: "X",
				},
			},
			expect: "aXbb",
		},
		"Sequential changes": {
			text: "m1",
			changes: []lsp.TextDocumentContentChangeEvent{
				{
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 2},
						End:   lsp.Position{Line: 0, Character: 2},
					},
					Text: "0",
				},
				{
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 3},
						End:   lsp.Position{Line: 0, Character: 3},
					},
					Text: "-",
				},
			},
			expect: "m10-",
		},
	}

	for n, tt := range tests {
		t.Run(n, func(t *testing.T) {
			g := NewGlobalCache()
			uri := lsp.NewDocumentURI("/tmp/a.html")
			g.Put(uri, "html", 1, tt.text)

			if err := g.ApplyChanges(uri, 2, tt.changes); err != nil {
				t.Fatalf("ApplyChanges error: %v", err)
			}

			doc, _ := g.Get(uri)
			if diff := cmp.Diff(tt.expect, doc.Text); diff != "" {
				t.Errorf("ApplyChanges result diff (-expect, +got)\n%s", diff)
			}
			if doc.Version != 2 {
				t.Errorf("version expected 2, got %d", doc.Version)
			}
		})
	}
}

func TestGlobalCache_ApplyChangesErrors(t *testing.T) {
	g := NewGlobalCache()
	uri := lsp.NewDocumentURI("/tmp/a.html")

	if err := g.ApplyChanges(uri, 1, nil); err == nil {
		t.Error("ApplyChanges should fail for an unopened document")
	}

	g.Put(uri, "html", 1, "abc")
	changes := []lsp.TextDocumentContentChangeEvent{
		{
			Range: &lsp.Range{
				Start: lsp.Position{Line: 5, Character: 0},
				End:   lsp.Position{Line: 5, Character: 0},
			},
			Text: "x",
		},
	}
	if err := g.ApplyChanges(uri, 2, changes); err == nil {
		t.Error("ApplyChanges should fail for an out-of-range line")
	}
}

func TestDocument_Line(t *testing.T) {
	doc := &Document{Text: "first\nsecond\r\nthird"}

	tests := map[string]struct {
		n        int
		expect   string
		expectOK bool
	}{
		"First line":           {n: 0, expect: "first", expectOK: true},
		"CRLF line":            {n: 1, expect: "second", expectOK: true},
		"Last line":            {n: 2, expect: "third", expectOK: true},
		"Negative line number": {n: -1},
		"Past the end":         {n: 3},
	}

	for n, tt := range tests {
		t.Run(n, func(t *testing.T) {
			got, ok := doc.Line(tt.n)
			if ok != tt.expectOK || got != tt.expect {
				t.Errorf("Line(%d) = (%q, %v), expected (%q, %v)", tt.n, got, ok, tt.expect, tt.expectOK)
			}
		})
	}
}
