package langserver

import (
	"context"
	"encoding/json"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/jsonrpc2"
)

func (h *Handler) handleTextDocumentCompletion(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.CompletionParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	// A broken completion attempt degrades to no suggestions, never to a
	// protocol fault.
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", r).Error("completion handler fault")
			result, err = []lsp.CompletionItem{}, nil
		}
	}()

	return h.complete(ctx, params), nil
}

func (h *Handler) complete(ctx context.Context, params lsp.CompletionParams) []lsp.CompletionItem {
	uri := params.TextDocument.URI

	doc, ok := h.documents.Get(uri)
	if !ok {
		h.logger.WithField("uri", uri).Warn("completion requested for unknown document")
		return []lsp.CompletionItem{}
	}
	line, ok := doc.Line(params.Position.Line)
	if !ok {
		h.logger.WithFields(logrus.Fields{
			"uri":  uri,
			"line": params.Position.Line,
		}).Warn("completion position is out of range")
		return []lsp.CompletionItem{}
	}
	pos := params.Position.Character
	if pos < 0 || pos > len(line) {
		pos = len(line)
	}

	cfg := h.settings.Get(ctx, uri)
	items := h.completor.Complete(line, pos, doc.LanguageID, cfg)

	completionItems := make([]lsp.CompletionItem, 0, len(items))
	for _, item := range items {
		completionItems = append(completionItems, item.ToLspCompletionItem(params.Position.Line, doc.LanguageID, h.clientSupportSnippets()))
	}
	return completionItems
}

func (h *Handler) clientSupportSnippets() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.initializeParams.Capabilities.TextDocument.Completion.CompletionItem.SnippetSupport
}

// handleCompletionItemResolve returns the item unchanged: every field is
// already computed at completion time.
func (h *Handler) handleCompletionItemResolve(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var item lsp.CompletionItem
	if err := json.Unmarshal(*req.Params, &item); err != nil {
		return nil, err
	}
	return item, nil
}
