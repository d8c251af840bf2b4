package lsp

import (
	"strings"

	"github.com/jsvensson/csscolors/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot    blockContext = iota
	contextMeta                 // inside meta {}
	contextPalette              // inside palette {} (any nesting depth)
	contextColors               // inside colors {}
)

// metaAttributes are the valid attributes inside the meta block.
var metaAttributes = []string{"name", "author", "url"}

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"meta", "palette", "colors"}

// functionSnippet describes one color function for completion.
type functionSnippet struct {
	name    string
	detail  string
	snippet string
}

var functionSnippets = []functionSnippet{
	{"rgb", "rgb(r, g, b)", "rgb(${1:255}, ${2:255}, ${3:255})"},
	{"rgba", "rgba(r, g, b, a)", "rgba(${1:255}, ${2:255}, ${3:255}, ${4:255})"},
	{"hsl", "hsl(hue, saturation, luminosity)", "hsl(${1:0}, ${2:100}, ${3:50})"},
	{"hsla", "hsla(hue, saturation, luminosity, alpha)", "hsla(${1:0}, ${2:100}, ${3:50}, ${4:1.0})"},
	{"saturate", "saturate(color, percentage)", "saturate(${1:color}, ${2:10})"},
	{"desaturate", "desaturate(color, percentage)", "desaturate(${1:color}, ${2:10})"},
	{"lighten", "lighten(color, percentage)", "lighten(${1:color}, ${2:10})"},
	{"darken", "darken(color, percentage)", "darken(${1:color}, ${2:10})"},
	{"fadein", "fadein(color, percentage)", "fadein(${1:color}, ${2:10})"},
	{"fadeout", "fadeout(color, percentage)", "fadeout(${1:color}, ${2:10})"},
	{"fade", "fade(color, percentage)", "fade(${1:color}, ${2:50})"},
	{"spin", "spin(color, degrees)", "spin(${1:color}, ${2:180})"},
	{"mix", "mix(color, other, weight)", "mix(${1:color}, ${2:other}, ${3:50})"},
	{"tint", "tint(color, weight)", "tint(${1:color}, ${2:50})"},
	{"shade", "shade(color, weight)", "shade(${1:color}, ${2:50})"},
	{"greyscale", "greyscale(color)", "greyscale(${1:color})"},
}

// complete produces completion items given an analysis result, document
// content, and cursor position. This is the core logic, decoupled from the
// LSP protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// Check for palette path completion: "palette." or "palette.xxx."
	if paletteItems := tryPaletteCompletion(result, textBeforeCursor); paletteItems != nil {
		return paletteItems
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	// Value position (after "=") in the colors block offers functions and
	// a palette reference.
	if ctx == contextColors && isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	switch ctx {
	case contextMeta:
		return metaCompletions(lines, int(pos.Line))
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a
// palette path prefix (e.g., "palette." or "palette.highlight.") and returns
// completion items for the children at that node in the palette tree.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}

	pathStr := textBeforeCursor[idx+len("palette."):]

	// Walk the palette tree based on the path segments.
	// - "palette."              -> children of root (segments = nil)
	// - "palette.highlight."    -> children of "highlight" node
	// - "palette.high"          -> children of root (client filters partial match)
	// - "palette.highlight.lo"  -> children of "highlight" (client filters "lo")
	var segments []string
	if pathStr == "" {
		segments = nil
	} else if before, ok := strings.CutSuffix(pathStr, "."); ok {
		segments = strings.Split(before, ".")
	} else if strings.Contains(pathStr, ".") {
		parts := strings.Split(pathStr, ".")
		segments = parts[:len(parts)-1]
	} else {
		segments = nil
	}

	node := result.Palette
	for _, seg := range segments {
		if node.Children == nil {
			return nil
		}
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}

	if node.Children == nil {
		return nil
	}

	return nodeChildrenToCompletionItems(node)
}

// nodeChildrenToCompletionItems converts a node's children into completion items.
func nodeChildrenToCompletionItems(node *palette.Node) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	kind := protocol.CompletionItemKindColor

	for name, child := range node.Children {
		item := protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		}

		if child.Color != nil {
			hex := shortHex(*child.Color)
			item.Detail = &hex
		} else if child.Children != nil {
			// A group without a color of its own
			groupKind := protocol.CompletionItemKindModule
			item.Kind = &groupKind
			detail := "color group"
			item.Detail = &detail
		}

		items = append(items, item)
	}

	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a value position: every
// color function as a snippet, plus a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(functionSnippets)+1)
	for _, fs := range functionSnippets {
		snippet := fs.snippet
		detail := fs.detail
		items = append(items, protocol.CompletionItem{
			Label:            fs.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           &detail,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	paletteSnippet := "palette."
	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: &paletteSnippet,
	})

	return items
}

// determineBlockContext scans from the top of the file down to the cursor
// line to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		if closes > 0 {
			for range closes {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[0] {
	case "meta":
		return contextMeta
	case "palette":
		return contextPalette
	case "colors":
		return contextColors
	default:
		return contextRoot
	}
}

// metaCompletions returns meta attribute completions, excluding attributes
// already defined in the block.
func metaCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindKeyword

	var items []protocol.CompletionItem
	for _, name := range metaAttributes {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening
// brace before cursorLine to cursorLine) and returns attribute names already
// defined (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	items := complete(result, content, params.Position)
	return items, nil
}
