package langserver

import (
	"context"
	"encoding/json"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/sourcegraph/jsonrpc2"
)

func (h *Handler) handleTextDocumentDidOpen(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.DidOpenTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	doc := params.TextDocument
	h.documents.Put(doc.URI, doc.LanguageID, doc.Version, doc.Text)
	return nil, nil
}

func (h *Handler) handleTextDocumentDidChange(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.DidChangeTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	if err := h.documents.ApplyChanges(params.TextDocument.URI, params.TextDocument.Version, params.ContentChanges); err != nil {
		h.logger.WithError(err).WithField("uri", params.TextDocument.URI).Warn("failed to apply document changes")
		return nil, err
	}
	return nil, nil
}

// handleTextDocumentDidClose drops the document and its cached settings, so
// a reopened document resolves its configuration from scratch.
func (h *Handler) handleTextDocumentDidClose(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.DidCloseTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	h.documents.Delete(params.TextDocument.URI)
	h.settings.Forget(params.TextDocument.URI)
	return nil, nil
}
