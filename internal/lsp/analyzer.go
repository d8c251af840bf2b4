package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/csscolors"
	"github.com/jsvensson/csscolors/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// BlockTypes lists the top-level blocks a palette file may contain. The
// boolean marks blocks whose entries can be referenced by dot path.
var BlockTypes = map[string]bool{
	"meta":    false,
	"palette": true,
	"colors":  false,
}

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *palette.Node
	Symbols     map[string]protocol.Range // "palette.base", "palette.highlight.low" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color csscolors.RGBA
	IsRef bool // true for palette references and function calls, false for hex literals
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses palette content from memory and produces diagnostics, a
// symbol table, and color locations. It collects ALL errors rather than
// short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: make([]protocol.Diagnostic, 0),
		Symbols:     make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var paletteBody *hclsyntax.Body
	var colorsBody *hclsyntax.Body

	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			paletteBody = block.Body
		case "colors":
			colorsBody = block.Body
		case "meta":
			// meta is handled by gohcl in the parser; we skip it here
		default:
			result.addWarning(block.DefRange(),
				fmt.Sprintf("unknown block %q (valid: meta, palette, colors)", block.Type))
		}
	}

	if paletteBody == nil {
		result.addError(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "missing required palette block")
		return result
	}

	base := &palette.Node{}
	result.analyzePaletteBody(paletteBody, base, "palette")
	result.Palette = base

	if colorsBody != nil {
		ctx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"palette": palette.NodeToCty(base),
			},
			Functions: palette.Functions(),
		}
		result.analyzeColorsBlock(colorsBody, ctx)
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr("cpal"),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr("cpal"),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr("cpal"),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// paletteItem represents an attribute or block in source order.
type paletteItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

// analyzePaletteBody parses a palette block body, collecting diagnostics and
// building the symbol table and color locations. Palette entries are hex
// literals only; derivations belong in the colors block.
func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body, node *palette.Node, prefix string) {
	// Collect all items and sort by source position for deterministic output
	var items []paletteItem
	for _, attr := range body.Attributes {
		items = append(items, paletteItem{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, paletteItem{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pos.Line != items[j].pos.Line {
			return items[i].pos.Line < items[j].pos.Line
		}
		return items[i].pos.Column < items[j].pos.Column
	})

	for _, item := range items {
		if item.attr != nil {
			attrName := item.attr.Name
			symbolName := prefix + "." + attrName

			// Record symbol for non-"color" attributes
			if attrName != "color" {
				r.Symbols[symbolName] = hclRangeToLSP(item.attr.SrcRange)
			}

			val, diags := item.attr.Expr.Value(nil)
			if diags.HasErrors() {
				r.addError(item.attr.SrcRange,
					fmt.Sprintf("%s: palette entries must be hex literals; derive colors in the colors block", symbolName))
				continue
			}
			if val.Type() != cty.String {
				r.addError(item.attr.SrcRange,
					fmt.Sprintf("%s: expected a hex color string, got %s", symbolName, val.Type().FriendlyName()))
				continue
			}

			c, err := csscolors.ParseHex(val.AsString())
			if err != nil {
				r.addError(item.attr.SrcRange, fmt.Sprintf("%s: %s", symbolName, err.Error()))
				continue
			}

			r.Colors = append(r.Colors, ColorLocation{
				Range: hclRangeToLSP(item.attr.Expr.Range()),
				Color: c,
			})

			if attrName == "color" {
				node.Color = &c
			} else {
				if node.Children == nil {
					node.Children = make(map[string]*palette.Node)
				}
				node.Children[attrName] = &palette.Node{Color: &c}
			}
		} else {
			if node.Children == nil {
				node.Children = make(map[string]*palette.Node)
			}
			child := &palette.Node{}
			node.Children[item.block.Type] = child
			r.analyzePaletteBody(item.block.Body, child, prefix+"."+item.block.Type)
		}
	}
}

// analyzeColorsBlock walks the colors block, collecting diagnostics and
// color locations for every successfully evaluated entry.
func (r *AnalysisResult) analyzeColorsBlock(body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for _, block := range body.Blocks {
		r.addError(block.DefRange(), fmt.Sprintf("colors block cannot contain nested blocks (found %q)", block.Type))
	}

	for _, attr := range body.Attributes {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("colors.%s: %s", attr.Name, diags.Error()))
			continue
		}

		hexStr, err := analyzerResolveColor(val)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("colors.%s: %s", attr.Name, err.Error()))
			continue
		}

		c, err := csscolors.ParseHex(hexStr)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("colors.%s: %s", attr.Name, err.Error()))
			continue
		}

		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: !isLiteralExpr(attr.Expr),
		})
	}
}

// analyzerResolveColor extracts a color hex string from a cty.Value.
// Strings are returned directly; objects are palette groups, resolved
// through their "color" key.
func analyzerResolveColor(val cty.Value) (string, error) {
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("group has no color attribute; reference a specific child or add one")
	}
	return "", fmt.Errorf("expected string or palette group, got %s", val.Type().FriendlyName())
}

// isLiteralExpr returns true if the expression is a plain literal (or a
// string template wrapping one) rather than a reference or function call.
func isLiteralExpr(expr hclsyntax.Expression) bool {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return true
	case *hclsyntax.TemplateExpr:
		return e.IsStringLiteral()
	default:
		return false
	}
}
