package lsp

import (
	"testing"
)

func TestNewServerRegistersHandlers(t *testing.T) {
	s := NewServer("test")

	if s.handler.TextDocumentColor == nil {
		t.Error("documentColor handler not registered")
	}
	if s.handler.TextDocumentColorPresentation == nil {
		t.Error("colorPresentation handler not registered")
	}
	if s.handler.TextDocumentHover == nil {
		t.Error("hover handler not registered")
	}
	if s.handler.TextDocumentCompletion == nil {
		t.Error("completion handler not registered")
	}
	if s.handler.TextDocumentDefinition == nil {
		t.Error("definition handler not registered")
	}
	if s.handler.TextDocumentFormatting == nil {
		t.Error("formatting handler not registered")
	}
	if s.handler.TextDocumentSemanticTokensFull == nil {
		t.Error("semantic tokens handler not registered")
	}
}

func TestAnalyzeCachesResult(t *testing.T) {
	s := NewServer("test")
	uri := "file:///test.cpal"

	s.analyze(nil, uri, "palette {\n  base = \"#191724\"\n}\n")

	result := s.getResult(uri)
	if result == nil {
		t.Fatal("expected a cached analysis result")
	}
	if result.Palette == nil {
		t.Fatal("expected a resolved palette")
	}
	if _, err := result.Palette.Lookup([]string{"base"}); err != nil {
		t.Errorf("Lookup(base) error: %v", err)
	}
}
