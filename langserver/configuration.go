package langserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/acomagu/emmetls/langserver/internal/config"
	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/sourcegraph/jsonrpc2"
)

type changedSettings struct {
	Emmet *config.Config `json:"emmet"`
}

// handleWorkspaceDidChangeConfiguration replaces the process-wide routing
// configuration. Documents holding a cached scoped value keep it until they
// close.
func (h *Handler) handleWorkspaceDidChangeConfiguration(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result any, err error) {
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams}
	}

	var params lsp.DidChangeConfigurationParams[changedSettings]
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	if params.Settings.Emmet != nil {
		h.settings.SetGlobal(*params.Settings.Emmet)
	}
	return nil, nil
}

// connFetcher pulls document-scoped configuration over the session
// connection with a workspace/configuration request.
type connFetcher struct {
	conn *jsonrpc2.Conn
}

var _ config.Fetcher = (*connFetcher)(nil)

func (f *connFetcher) Fetch(ctx context.Context, uri lsp.DocumentURI) (config.Config, error) {
	params := lsp.ConfigurationParams{
		Items: []lsp.ConfigurationItem{{ScopeURI: uri, Section: config.Section}},
	}

	var result []*config.Config
	if err := f.conn.Call(ctx, "workspace/configuration", params, &result); err != nil {
		return config.Config{}, fmt.Errorf("workspace/configuration: %w", err)
	}
	if len(result) == 0 || result[0] == nil {
		return config.Config{}, nil
	}
	return *result[0], nil
}
