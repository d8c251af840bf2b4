package lsp

import (
	"testing"

	"github.com/jsvensson/csscolors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestColorToLSP(t *testing.T) {
	c := colorToLSP(csscolors.NewRGBA(255, 0, 128, 255))

	if c.Red != 1.0 {
		t.Errorf("Red = %v, want 1.0", c.Red)
	}
	if c.Green != 0.0 {
		t.Errorf("Green = %v, want 0.0", c.Green)
	}
	if c.Blue < 0.49 || c.Blue > 0.51 {
		t.Errorf("Blue = %v, want ~0.5", c.Blue)
	}
	if c.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", c.Alpha)
	}

	translucent := colorToLSP(csscolors.NewRGBA(0, 0, 0, 128))
	if translucent.Alpha < 0.49 || translucent.Alpha > 0.51 {
		t.Errorf("Alpha = %v, want ~0.5", translucent.Alpha)
	}
}

func TestDocumentColors(t *testing.T) {
	content := `palette {
  base = "#191724"
  love = "#eb6f92"
}

colors {
  background = palette.base
}
`
	result := Analyze("test.cpal", content)
	infos := documentColors(result)

	if len(infos) != 3 {
		t.Fatalf("expected 3 color informations, got %d", len(infos))
	}
}

func TestDocumentColors_NilResult(t *testing.T) {
	infos := documentColors(nil)
	if infos == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(infos) != 0 {
		t.Errorf("expected 0 items, got %d", len(infos))
	}
}

func presentationParams(content string, r protocol.Range, c protocol.Color) *protocol.ColorPresentationParams {
	return &protocol.ColorPresentationParams{
		Color: c,
		Range: r,
	}
}

func TestColorPresentation_HexLiteral(t *testing.T) {
	content := `base = "#191724"`
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 7},
		End:   protocol.Position{Line: 0, Character: 16},
	}
	c := protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0}

	presentations := colorPresentation(content, presentationParams(content, r, c))
	if len(presentations) != 1 {
		t.Fatalf("expected 1 presentation, got %d", len(presentations))
	}

	p := presentations[0]
	if p.Label != "#ff0000" {
		t.Errorf("Label = %q, want %q", p.Label, "#ff0000")
	}
	if p.TextEdit == nil {
		t.Fatal("expected a TextEdit")
	}
	// Original had quotes, so the replacement keeps them.
	if p.TextEdit.NewText != `"#ff0000"` {
		t.Errorf("NewText = %q, want %q", p.TextEdit.NewText, `"#ff0000"`)
	}
}

func TestColorPresentation_TranslucentPicksEightDigits(t *testing.T) {
	content := `glow = "#eb6f9280"`
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 7},
		End:   protocol.Position{Line: 0, Character: 18},
	}
	c := protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 0.5}

	presentations := colorPresentation(content, presentationParams(content, r, c))
	if len(presentations) != 1 {
		t.Fatalf("expected 1 presentation, got %d", len(presentations))
	}
	if presentations[0].Label != "#ff000080" {
		t.Errorf("Label = %q, want %q", presentations[0].Label, "#ff000080")
	}
}

func TestColorPresentation_RoundTripsChannelBytes(t *testing.T) {
	// A color handed to the client must come back with the same bytes when
	// the picker returns it unchanged.
	content := `base = "#191724"`
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 7},
		End:   protocol.Position{Line: 0, Character: 16},
	}
	c := colorToLSP(csscolors.NewRGBA(25, 23, 36, 255))

	presentations := colorPresentation(content, presentationParams(content, r, c))
	if len(presentations) != 1 {
		t.Fatalf("expected 1 presentation, got %d", len(presentations))
	}
	if presentations[0].Label != "#191724" {
		t.Errorf("Label = %q, want %q", presentations[0].Label, "#191724")
	}
}

func TestChannelByte(t *testing.T) {
	tests := []struct {
		f    float32
		want uint8
	}{
		{0.0, 0},
		{1.0, 255},
		{0.5, 128}, // 127.5 rounds away from zero
		{float32(23) / 255, 23},
		{float32(254) / 255, 254},
	}

	for _, tt := range tests {
		if got := channelByte(tt.f); got != tt.want {
			t.Errorf("channelByte(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestColorPresentation_ReferenceNotReplaced(t *testing.T) {
	content := `background = palette.base`
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 13},
		End:   protocol.Position{Line: 0, Character: 25},
	}
	c := protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0}

	presentations := colorPresentation(content, presentationParams(content, r, c))
	if len(presentations) != 0 {
		t.Errorf("palette references must not be replaced, got %d presentations", len(presentations))
	}
}

func TestColorPresentation_FunctionCallNotReplaced(t *testing.T) {
	content := `accent = lighten(palette.love, 10)`
	r := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 9},
		End:   protocol.Position{Line: 0, Character: 34},
	}
	c := protocol.Color{Red: 1.0, Green: 0.0, Blue: 0.0, Alpha: 1.0}

	presentations := colorPresentation(content, presentationParams(content, r, c))
	if len(presentations) != 0 {
		t.Errorf("function calls must not be replaced, got %d presentations", len(presentations))
	}
}
