package lsp

type DocumentURI string

func NewDocumentURI(path string) DocumentURI {
	return DocumentURI("file://" + path)
}
