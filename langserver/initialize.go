package langserver

import (
	"context"
	"encoding/json"

	"github.com/acomagu/emmetls/langserver/internal/config"
	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/sourcegraph/jsonrpc2"
)

func (h *Handler) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.InitializeParams[*config.Config]
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.initializeParams = params
	h.state = stateInitialized
	h.mu.Unlock()

	if params.InitializationOptions != nil {
		h.settings.SetGlobal(*params.InitializationOptions)
	}
	if params.Capabilities.Workspace.Configuration {
		h.settings.SetFetcher(&connFetcher{conn: conn})
	}

	return lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Kind: toPtr(lsp.TDSKIncremental),
			},
			CompletionProvider: &lsp.CompletionOptions{
				ResolveProvider:   true,
				TriggerCharacters: triggerCharacters(),
			},
		},
		ServerInfo: &lsp.ServerInfo{Name: "emmetls"},
	}, nil
}

// triggerCharacters lists the structural punctuation an abbreviation can end
// with, plus every letter and digit, since an abbreviation can start or grow
// on any of them.
func triggerCharacters() []string {
	chars := []string{">", ")", "]", "}", "@", "*", "$", "+"}
	for c := byte('a'); c <= 'z'; c++ {
		chars = append(chars, string(c))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chars = append(chars, string(c))
	}
	for c := byte('0'); c <= '9'; c++ {
		chars = append(chars, string(c))
	}
	return chars
}

func toPtr[T any](s T) *T {
	return &s
}
