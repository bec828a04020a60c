package lsp

type InitializeParams[T any] struct {
	ProcessID             int                `json:"processId,omitempty"`
	RootURI               DocumentURI        `json:"rootUri,omitempty"`
	InitializationOptions T                  `json:"initializationOptions,omitempty"`
	Capabilities          ClientCapabilities `json:"capabilities"`
}

type ClientCapabilities struct {
	Workspace    WorkspaceClientCapabilities    `json:"workspace,omitempty"`
	TextDocument TextDocumentClientCapabilities `json:"textDocument,omitempty"`
}

type WorkspaceClientCapabilities struct {
	/**
	 * The client supports `workspace/configuration` requests.
	 */
	Configuration bool `json:"configuration,omitempty"`

	DidChangeConfiguration struct {
		DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
	} `json:"didChangeConfiguration,omitempty"`
}

type TextDocumentClientCapabilities struct {
	Completion struct {
		CompletionItem struct {
			SnippetSupport bool `json:"snippetSupport,omitempty"`
		} `json:"completionItem,omitempty"`
	} `json:"completion,omitempty"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type ServerCapabilities struct {
	TextDocumentSync   *TextDocumentSyncOptionsOrKind `json:"textDocumentSync,omitempty"`
	CompletionProvider *CompletionOptions             `json:"completionProvider,omitempty"`
}

type TextDocumentSyncOptionsOrKind struct {
	Kind *TextDocumentSyncKind `json:"-"`
}

func (t TextDocumentSyncOptionsOrKind) MarshalJSON() ([]byte, error) {
	if t.Kind == nil {
		return []byte("null"), nil
	}
	return []byte{'0' + byte(*t.Kind)}, nil
}

func (t *TextDocumentSyncOptionsOrKind) UnmarshalJSON(data []byte) error {
	if len(data) == 1 && data[0] >= '0' && data[0] <= '2' {
		kind := TextDocumentSyncKind(data[0] - '0')
		t.Kind = &kind
	}
	return nil
}

type TextDocumentSyncKind int

const (
	TDSKNone        TextDocumentSyncKind = 0
	TDSKFull        TextDocumentSyncKind = 1
	TDSKIncremental TextDocumentSyncKind = 2
)

type CompletionOptions struct {
	ResolveProvider   bool     `json:"resolveProvider,omitempty"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

type DidChangeConfigurationParams[T any] struct {
	Settings T `json:"settings"`
}

type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

type ConfigurationItem struct {
	ScopeURI DocumentURI `json:"scopeUri,omitempty"`
	Section  string      `json:"section,omitempty"`
}
