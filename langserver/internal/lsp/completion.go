package lsp

type CompletionParams struct {
	TextDocumentPositionParams
	Context *CompletionContext `json:"context,omitempty"`
}

type CompletionContext struct {
	TriggerKind      int    `json:"triggerKind"`
	TriggerCharacter string `json:"triggerCharacter,omitempty"`
}

type CompletionItem struct {
	Label            string             `json:"label"`
	Kind             CompletionItemKind `json:"kind,omitempty"`
	Detail           string             `json:"detail,omitempty"`
	Documentation    string             `json:"documentation,omitempty"`
	InsertTextFormat InsertTextFormat   `json:"insertTextFormat,omitempty"`
	TextEdit         *TextEdit          `json:"textEdit,omitempty"`
	Data             any                `json:"data,omitempty"`
}

type CompletionItemKind int

const (
	CIKText        CompletionItemKind = 1
	CIKMethod      CompletionItemKind = 2
	CIKFunction    CompletionItemKind = 3
	CIKConstructor CompletionItemKind = 4
	CIKField       CompletionItemKind = 5
	CIKVariable    CompletionItemKind = 6
	CIKClass       CompletionItemKind = 7
	CIKInterface   CompletionItemKind = 8
	CIKModule      CompletionItemKind = 9
	CIKProperty    CompletionItemKind = 10
	CIKUnit        CompletionItemKind = 11
	CIKValue       CompletionItemKind = 12
	CIKEnum        CompletionItemKind = 13
	CIKKeyword     CompletionItemKind = 14
	CIKSnippet     CompletionItemKind = 15
	CIKColor       CompletionItemKind = 16
	CIKFile        CompletionItemKind = 17
	CIKReference   CompletionItemKind = 18
)

type InsertTextFormat int

const (
	ITFPlainText InsertTextFormat = 1
	ITFSnippet   InsertTextFormat = 2
)
