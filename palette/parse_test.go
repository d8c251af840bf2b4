package palette

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCPAL = `
meta {
  name   = "Rose Pine"
  author = "Test Author"
  url    = "https://example.com/palette"
}

palette {
  base    = "#191724"
  surface = "#1f1d2e"
  love    = "#eb6f92"
  gold    = "#f6c177"
  pine    = "#31748f"
  foam    = "#9ccfd8"
}

colors {
  background = palette.base
  foreground = palette.foam
  cursor     = palette.love
  accent     = lighten(palette.love, 10)
  overlay    = fade(palette.base, 50)
}
`

func writeTempCPAL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.cpal")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMeta(t *testing.T) {
	p, err := Load(writeTempCPAL(t, sampleCPAL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Meta.Name != "Rose Pine" {
		t.Errorf("Meta.Name = %q, want %q", p.Meta.Name, "Rose Pine")
	}
	if p.Meta.Author != "Test Author" {
		t.Errorf("Meta.Author = %q, want %q", p.Meta.Author, "Test Author")
	}
	if p.Meta.URL != "https://example.com/palette" {
		t.Errorf("Meta.URL = %q, want %q", p.Meta.URL, "https://example.com/palette")
	}
}

func TestLoadBaseColors(t *testing.T) {
	p, err := Load(writeTempCPAL(t, sampleCPAL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.Base.Children) != 6 {
		t.Errorf("len(Base.Children) = %d, want 6", len(p.Base.Children))
	}
	love, err := p.Base.Lookup([]string{"love"})
	if err != nil {
		t.Fatalf("Lookup(love) error: %v", err)
	}
	if love.ToRGB().Hex() != "#eb6f92" {
		t.Errorf("Base[love].Hex() = %q, want %q", love.ToRGB().Hex(), "#eb6f92")
	}
}

func TestLoadDerivedColors(t *testing.T) {
	p, err := Load(writeTempCPAL(t, sampleCPAL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	bg, ok := p.Colors["background"]
	if !ok {
		t.Fatal("colors.background missing")
	}
	if bg.ToRGB().Hex() != "#191724" {
		t.Errorf("Colors[background].Hex() = %q, want %q", bg.ToRGB().Hex(), "#191724")
	}
	overlay, ok := p.Colors["overlay"]
	if !ok {
		t.Fatal("colors.overlay missing")
	}
	if overlay.A.Byte() != 128 {
		t.Errorf("Colors[overlay].A = %d, want 128", overlay.A.Byte())
	}
}

func TestLoadMissingPalette(t *testing.T) {
	src := `
meta {
  name = "test"
}
`
	_, err := Parse([]byte(src), "test.cpal")
	if err == nil {
		t.Fatal("expected error for missing palette block")
	}
}

func TestLoadInvalidHex(t *testing.T) {
	src := `
palette {
  bad = "not-a-color"
}
`
	_, err := Parse([]byte(src), "test.cpal")
	if err == nil {
		t.Fatal("expected error for invalid hex color")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cpal"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNestedPalette(t *testing.T) {
	src := `
palette {
  base = "#191724"

  highlight {
    low  = "#21202e"
    mid  = "#403d52"
    high = "#524f67"
  }
}

colors {
  background = palette.base
  cursor     = palette.highlight.high
}
`
	p, err := Parse([]byte(src), "test.cpal")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	low, err := p.Base.Lookup([]string{"highlight", "low"})
	if err != nil {
		t.Fatalf("Lookup(highlight.low) error: %v", err)
	}
	if low.ToRGB().Hex() != "#21202e" {
		t.Errorf("Base[highlight][low].Hex() = %q, want %q", low.ToRGB().Hex(), "#21202e")
	}

	cursor := p.Colors["cursor"]
	if cursor.ToRGB().Hex() != "#524f67" {
		t.Errorf("Colors[cursor].Hex() = %q, want %q", cursor.ToRGB().Hex(), "#524f67")
	}
}

func TestGroupWithOwnColor(t *testing.T) {
	src := `
palette {
  highlight {
    color = "#c0c0c0"
    low   = "#21202e"
  }
}

colors {
  background = palette.highlight
  surface    = palette.highlight.low
}
`
	p, err := Parse([]byte(src), "test.cpal")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	highlight, err := p.Base.Lookup([]string{"highlight"})
	if err != nil {
		t.Fatalf("Lookup(highlight) error: %v", err)
	}
	if highlight.ToRGB().Hex() != "#c0c0c0" {
		t.Errorf("palette.highlight = %q, want %q", highlight.ToRGB().Hex(), "#c0c0c0")
	}

	bg := p.Colors["background"]
	if bg.ToRGB().Hex() != "#c0c0c0" {
		t.Errorf("Colors[background] = %q, want %q", bg.ToRGB().Hex(), "#c0c0c0")
	}
	surface := p.Colors["surface"]
	if surface.ToRGB().Hex() != "#21202e" {
		t.Errorf("Colors[surface] = %q, want %q", surface.ToRGB().Hex(), "#21202e")
	}
}

func TestGroupWithoutColorError(t *testing.T) {
	src := `
palette {
  highlight {
    low = "#21202e"
  }
}

colors {
  background = palette.highlight
}
`
	_, err := Parse([]byte(src), "test.cpal")
	if err == nil {
		t.Fatal("expected error when referencing a group without a color attribute")
	}
}

func TestPaletteEntriesAreLiterals(t *testing.T) {
	// Derivations belong in the colors block; palette entries cannot
	// reference each other.
	src := `
palette {
  base    = "#191724"
  surface = palette.base
}
`
	_, err := Parse([]byte(src), "test.cpal")
	if err == nil {
		t.Fatal("expected error for palette reference inside palette block")
	}
}

func TestLookupErrors(t *testing.T) {
	src := `
palette {
  base = "#191724"

  highlight {
    low = "#21202e"
  }
}
`
	p, err := Parse([]byte(src), "test.cpal")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if _, err := p.Base.Lookup([]string{"missing"}); err == nil {
		t.Error("expected error for unknown path")
	}
	if _, err := p.Base.Lookup([]string{"base", "deeper"}); err == nil {
		t.Error("expected error when traversing through a leaf")
	}
	if _, err := p.Base.Lookup([]string{"highlight"}); err == nil {
		t.Error("expected error for group without its own color")
	}
}

func TestAlphaColorsRoundTrip(t *testing.T) {
	src := `
palette {
  glow = "#eb6f9280"
}

colors {
  glow  = palette.glow
  solid = fade(palette.glow, 100)
}
`
	p, err := Parse([]byte(src), "test.cpal")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	glow := p.Colors["glow"]
	if glow.A.Byte() != 128 {
		t.Errorf("Colors[glow].A = %d, want 128", glow.A.Byte())
	}
	solid := p.Colors["solid"]
	if solid.A.Byte() != 255 {
		t.Errorf("Colors[solid].A = %d, want 255", solid.A.Byte())
	}
}
