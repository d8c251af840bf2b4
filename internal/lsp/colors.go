package lsp

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/jsvensson/csscolors"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// channelByte quantizes a protocol color channel to a byte, rounding the
// same way Ratio does.
func channelByte(f float32) uint8 {
	return uint8(math32.Round(f * 255))
}

// shortHex renders a color in its shortest hex form.
func shortHex(c csscolors.RGBA) string {
	if c.A.Byte() == 255 {
		return c.ToRGB().Hex()
	}
	return c.Hex()
}

// colorToLSP converts a color to a protocol.Color (float32 channels, 0.0-1.0).
func colorToLSP(c csscolors.RGBA) protocol.Color {
	return protocol.Color{
		Red:   c.R.Float32(),
		Green: c.G.Float32(),
		Blue:  c.B.Float32(),
		Alpha: c.A.Float32(),
	}
}

// documentColors converts the analysis result's color locations into LSP
// ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and
// range. For hex literals (text starting with `"` or `#`), it returns a
// presentation with a TextEdit to replace the old value. For palette
// references and function calls, it returns an empty slice so the color
// picker cannot overwrite an expression with a literal.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	r := channelByte(params.Color.Red)
	g := channelByte(params.Color.Green)
	b := channelByte(params.Color.Blue)
	hexStr := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	if params.Color.Alpha < 1.0 {
		hexStr = fmt.Sprintf("%s%02x", hexStr, channelByte(params.Color.Alpha))
	}

	text := extractText(content, params.Range)

	if strings.HasPrefix(text, "palette.") || strings.Contains(text, "(") {
		return []protocol.ColorPresentation{}
	}

	if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "#") {
		// Include quotes if the original had them.
		newText := hexStr
		if strings.HasPrefix(text, "\"") {
			newText = "\"" + hexStr + "\""
		}

		return []protocol.ColorPresentation{
			{
				Label: hexStr,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			},
		}
	}

	return []protocol.ColorPresentation{}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
