package palette

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/csscolors"
	"github.com/zclconf/go-cty/cty"
)

// PaletteBlock wraps the palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig captures the palette block first (no EvalContext needed).
type RawConfig struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ColorBlock wraps a block with arbitrary color attributes for gohcl decoding.
type ColorBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// ResolvedConfig decodes the blocks that reference palette.
type ResolvedConfig struct {
	Meta   *Meta       `hcl:"meta,block"`
	Colors *ColorBlock `hcl:"colors,block"`
	Remain hcl.Body    `hcl:",remain"`
}

// Loader handles two-pass HCL decoding with palette resolution.
type Loader struct {
	body hcl.Body
	ctx  *hcl.EvalContext
	base *Node
}

// NewLoader parses palette source and builds the evaluation context from
// its palette block.
func NewLoader(src []byte, filename string) (*Loader, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: extract palette (literal values, no context needed)
	var raw RawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}

	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	paletteBody, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	base := &Node{}
	if err := parsePaletteBody(paletteBody, base); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}

	return &Loader{
		body: file.Body,
		ctx:  buildEvalContext(base),
		base: base,
	}, nil
}

// Decode decodes a value using the palette context.
func (l *Loader) Decode(target any) error {
	if diags := gohcl.DecodeBody(l.body, l.ctx, target); diags.HasErrors() {
		return fmt.Errorf("decoding: %s", diags.Error())
	}
	return nil
}

// Base returns the parsed base colors.
func (l *Loader) Base() *Node {
	return l.base
}

// Context returns the EvalContext for manual parsing.
func (l *Loader) Context() *hcl.EvalContext {
	return l.ctx
}

// Parse parses palette source and returns a fully-resolved Palette.
func Parse(src []byte, filename string) (*Palette, error) {
	loader, err := NewLoader(src, filename)
	if err != nil {
		return nil, err
	}

	// Second pass: decode blocks that reference palette
	var resolved ResolvedConfig
	if err := loader.Decode(&resolved); err != nil {
		return nil, err
	}

	var colors map[string]csscolors.RGBA
	if resolved.Colors != nil {
		colors, err = decodeColorBlock(resolved.Colors.Entries, loader.Context())
		if err != nil {
			return nil, fmt.Errorf("parsing colors: %w", err)
		}
	} else {
		colors = make(map[string]csscolors.RGBA)
	}

	meta := Meta{}
	if resolved.Meta != nil {
		meta = *resolved.Meta
	}

	return &Palette{
		Meta:   meta,
		Base:   loader.Base(),
		Colors: colors,
	}, nil
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path)
}

// decodeColorBlock evaluates every attribute in a colors block against the
// palette context and parses the results as colors.
func decodeColorBlock(body hcl.Body, ctx *hcl.EvalContext) (map[string]csscolors.RGBA, error) {
	if body == nil {
		return make(map[string]csscolors.RGBA), nil
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("getting attributes: %s", diags.Error())
	}

	result := make(map[string]csscolors.RGBA, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}
		c, err := resolveColor(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		result[name] = c
	}
	return result, nil
}

// resolveColor converts an evaluated expression result into a color.
// Strings are hex colors; objects are palette groups, resolved through
// their own "color" attribute.
func resolveColor(val cty.Value) (csscolors.RGBA, error) {
	switch {
	case val.Type() == cty.String:
		return csscolors.ParseHex(val.AsString())
	case val.Type().IsObjectType():
		if !val.Type().HasAttribute("color") {
			return csscolors.RGBA{}, fmt.Errorf("group has no color attribute")
		}
		return csscolors.ParseHex(val.GetAttr("color").AsString())
	default:
		return csscolors.RGBA{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
}

// parsePaletteBody parses a palette block body with support for:
// - Direct color attributes: key = "#hex"
// - Nested groups: key { sub = "#hex" }
// - Group colors: key { color = "#hex", sub = "#hex" }
// Palette entries are literals, parsed without context.
func parsePaletteBody(body *hclsyntax.Body, dest *Node) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("%s: palette entries must be hex strings", name)
		}
		c, err := csscolors.ParseHex(val.AsString())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if name == "color" {
			dest.Color = &c
		} else {
			dest.put(name, &Node{Color: &c})
		}
	}

	for _, block := range body.Blocks {
		child := &Node{}
		if err := parsePaletteBody(block.Body, child); err != nil {
			return fmt.Errorf("%s: %w", block.Type, err)
		}
		dest.put(block.Type, child)
	}

	return nil
}

func buildEvalContext(base *Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": NodeToCty(base),
		},
		Functions: Functions(),
	}
}
