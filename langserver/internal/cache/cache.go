// Package cache tracks the text and language of open documents.
package cache

import (
	"fmt"
	"strings"
	"sync"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
)

type Document struct {
	LanguageID string
	Version    int
	Text       string
}

// Line returns the text of the zero-based line n, without its terminator.
func (d *Document) Line(n int) (string, bool) {
	lines := strings.Split(d.Text, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n], "\r"), true
}

type GlobalCache struct {
	mu        sync.RWMutex
	uriToDocs map[lsp.DocumentURI]*Document
}

func NewGlobalCache() *GlobalCache {
	return &GlobalCache{uriToDocs: make(map[lsp.DocumentURI]*Document)}
}

func (g *GlobalCache) Get(uri lsp.DocumentURI) (*Document, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	doc, ok := g.uriToDocs[uri]
	return doc, ok
}

func (g *GlobalCache) Put(uri lsp.DocumentURI, languageID string, version int, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uriToDocs[uri] = &Document{LanguageID: languageID, Version: version, Text: text}
}

// ApplyChanges applies incremental or whole-document edits in order.
func (g *GlobalCache) ApplyChanges(uri lsp.DocumentURI, version int, changes []lsp.TextDocumentContentChangeEvent) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc, ok := g.uriToDocs[uri]
	if !ok {
		return fmt.Errorf("document %s is not opened", uri)
	}

	for _, change := range changes {
		if change.Range == nil {
			doc.Text = change.Text
			continue
		}
		start, err := offsetAt(doc.Text, change.Range.Start)
		if err != nil {
			return err
		}
		end, err := offsetAt(doc.Text, change.Range.End)
		if err != nil {
			return err
		}
		if start > end {
			return fmt.Errorf("invalid change range %s", change.Range)
		}
		doc.Text = doc.Text[:start] + change.Text + doc.Text[end:]
	}
	doc.Version = version
	return nil
}

func (g *GlobalCache) Delete(uri lsp.DocumentURI) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.uriToDocs, uri)
}

func offsetAt(text string, position lsp.Position) (int, error) {
	offset := 0
	for line := 0; line < position.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next == -1 {
			return 0, fmt.Errorf("line %d is out of range", position.Line)
		}
		offset += next + 1
	}
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text) - offset
	}
	if position.Character < 0 || position.Character > lineEnd {
		return 0, fmt.Errorf("character %d is out of range on line %d", position.Character, position.Line)
	}
	return offset + position.Character, nil
}
