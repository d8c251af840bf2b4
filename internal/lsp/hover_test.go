package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHover_PaletteReference(t *testing.T) {
	content := `palette {
  base = "#191724"
}

colors {
  background = palette.base
}
`
	result := Analyze("test.cpal", content)

	var refLoc *ColorLocation
	for i, cl := range result.Colors {
		if cl.IsRef {
			refLoc = &result.Colors[i]
			break
		}
	}
	if refLoc == nil {
		t.Fatal("expected to find a palette reference ColorLocation")
	}

	pos := protocol.Position{
		Line:      refLoc.Range.Start.Line,
		Character: refLoc.Range.Start.Character + 2,
	}

	h := hover(result, content, pos)
	if h == nil {
		t.Fatal("expected non-nil hover result for palette reference")
	}

	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}

	if !strings.Contains(mc.Value, "palette.base") {
		t.Errorf("hover should contain the source text, got:\n%s", mc.Value)
	}
	if !strings.Contains(mc.Value, "#191724") {
		t.Errorf("hover should contain the hex value, got:\n%s", mc.Value)
	}
	if !strings.Contains(mc.Value, "rgb(25, 23, 36)") {
		t.Errorf("hover should contain the rgb form, got:\n%s", mc.Value)
	}
	if !strings.Contains(mc.Value, "hsl(") {
		t.Errorf("hover should contain the hsl form, got:\n%s", mc.Value)
	}
}

func TestHover_HexLiteral(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.cpal", content)
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color location, got %d", len(result.Colors))
	}

	loc := result.Colors[0]
	h := hover(result, content, loc.Range.Start)
	if h == nil {
		t.Fatal("expected non-nil hover for hex literal")
	}

	mc := h.Contents.(protocol.MarkupContent)
	if strings.Contains(mc.Value, "**") {
		t.Errorf("literal hover should not lead with a source expression, got:\n%s", mc.Value)
	}
	if !strings.Contains(mc.Value, "#191724") {
		t.Errorf("hover should contain the hex value, got:\n%s", mc.Value)
	}
}

func TestHover_TranslucentColor(t *testing.T) {
	content := `palette {
  glow = "#eb6f9280"
}
`
	result := Analyze("test.cpal", content)
	h := hover(result, content, result.Colors[0].Range.Start)
	if h == nil {
		t.Fatal("expected non-nil hover")
	}

	mc := h.Contents.(protocol.MarkupContent)
	if !strings.Contains(mc.Value, "#eb6f9280") {
		t.Errorf("hover should show the 8-digit hex, got:\n%s", mc.Value)
	}
	if !strings.Contains(mc.Value, "rgba(") || !strings.Contains(mc.Value, "hsla(") {
		t.Errorf("hover should show alpha-aware CSS forms, got:\n%s", mc.Value)
	}
}

func TestHover_OutsideAnyColor(t *testing.T) {
	content := `palette {
  base = "#191724"
}
`
	result := Analyze("test.cpal", content)

	h := hover(result, content, protocol.Position{Line: 0, Character: 0})
	if h != nil {
		t.Errorf("expected nil hover outside color ranges, got %+v", h)
	}
}

func TestHover_NilResult(t *testing.T) {
	if h := hover(nil, "", protocol.Position{}); h != nil {
		t.Errorf("expected nil hover for nil result, got %+v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 5},
		End:   protocol.Position{Line: 1, Character: 10},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"at start", protocol.Position{Line: 1, Character: 5}, true},
		{"inside", protocol.Position{Line: 1, Character: 7}, true},
		{"at end is exclusive", protocol.Position{Line: 1, Character: 10}, false},
		{"before", protocol.Position{Line: 1, Character: 4}, false},
		{"wrong line", protocol.Position{Line: 2, Character: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := posInRange(tt.pos, r); got != tt.want {
				t.Errorf("posInRange(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "first line\nsecond line\nthird line"

	tests := []struct {
		name string
		r    protocol.Range
		want string
	}{
		{
			"single line",
			protocol.Range{Start: protocol.Position{Line: 1, Character: 0}, End: protocol.Position{Line: 1, Character: 6}},
			"second",
		},
		{
			"multi line",
			protocol.Range{Start: protocol.Position{Line: 0, Character: 6}, End: protocol.Position{Line: 1, Character: 6}},
			"line\nsecond",
		},
		{
			"range past line end clamps",
			protocol.Range{Start: protocol.Position{Line: 2, Character: 0}, End: protocol.Position{Line: 2, Character: 99}},
			"third line",
		},
		{
			"start line out of bounds",
			protocol.Range{Start: protocol.Position{Line: 9, Character: 0}, End: protocol.Position{Line: 9, Character: 5}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.r); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
