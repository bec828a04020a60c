package langserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/acomagu/emmetls/langserver/internal/cache"
	"github.com/acomagu/emmetls/langserver/internal/config"
	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/acomagu/emmetls/langserver/internal/source/completion"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/jsonrpc2"
)

const codeServerNotInitialized = -32002

type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateInitialized
	stateShuttingDown
)

type Handler struct {
	logger *logrus.Logger

	documents *cache.GlobalCache
	settings  *config.Store
	completor *completion.Completor

	mu               sync.Mutex
	state            lifecycleState
	initializeParams lsp.InitializeParams[*config.Config]
}

var _ jsonrpc2.Handler = (*Handler)(nil)

func NewHandler(logger *logrus.Logger) *Handler {
	return &Handler{
		logger:    logger,
		documents: cache.NewGlobalCache(),
		settings:  config.NewStore(logger),
		completor: completion.New(logger),
	}
}

func (h *Handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	jsonrpc2.HandlerWithError(h.handle).Handle(ctx, conn, req)
}

func (h *Handler) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result interface{}, err error) {
	if err := h.checkLifecycle(req.Method); err != nil {
		return nil, err
	}

	switch req.Method {
	case "initialize":
		return h.handleInitialize(ctx, conn, req)
	case "initialized":
		return
	case "shutdown":
		return h.handleShutdown(ctx, conn, req)
	case "exit":
		return h.handleExit(ctx, conn, req)
	case "textDocument/didOpen":
		return h.handleTextDocumentDidOpen(ctx, conn, req)
	case "textDocument/didChange":
		return h.handleTextDocumentDidChange(ctx, conn, req)
	case "textDocument/didClose":
		return h.handleTextDocumentDidClose(ctx, conn, req)
	case "textDocument/didSave":
		return nil, nil
	case "textDocument/completion":
		return h.handleTextDocumentCompletion(ctx, conn, req)
	case "completionItem/resolve":
		return h.handleCompletionItemResolve(ctx, conn, req)
	case "workspace/didChangeConfiguration":
		return h.handleWorkspaceDidChangeConfiguration(ctx, conn, req)
	}
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: fmt.Sprintf("method not supported: %s", req.Method)}
}

// checkLifecycle enforces uninitialized -> initialized -> shutting down.
// Before initialize only initialize and exit are accepted; after shutdown
// only exit is.
func (h *Handler) checkLifecycle(method string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case stateUninitialized:
		if method != "initialize" && method != "exit" {
			return &jsonrpc2.Error{Code: codeServerNotInitialized, Message: "server is not initialized"}
		}
	case stateShuttingDown:
		if method != "exit" {
			return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server is shutting down"}
		}
	}
	return nil
}

func (h *Handler) handleShutdown(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = stateShuttingDown
	return nil, nil
}

func (h *Handler) handleExit(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	return nil, conn.Close()
}
