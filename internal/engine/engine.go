// Package engine renders Go templates against a resolved palette.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/csscolors"
	"github.com/jsvensson/csscolors/palette"
)

// Engine loads and executes Go templates against a resolved Palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Targets      []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given palette data, and writes output files.
func (e *Engine) Run(p *palette.Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no targets are specified, render all.
	if len(e.Targets) == 0 {
		return true
	}

	return slices.Contains(e.Targets, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    palette.Meta
	Colors  map[string]csscolors.RGBA
	FuncMap template.FuncMap
}

// lookupColor resolves a template color reference. A bare name hits the
// colors block first; dot paths and unmatched names resolve against the
// palette block.
func lookupColor(p *palette.Palette, path string) (csscolors.RGBA, error) {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		if c, ok := p.Colors[path]; ok {
			return c, nil
		}
	}
	c, err := p.Base.Lookup(parts)
	if err != nil {
		return csscolors.RGBA{}, fmt.Errorf("color %q: %w", path, err)
	}
	return c, nil
}

// hexFor renders a color in its shortest hex form.
func hexFor(c csscolors.RGBA) string {
	if c.A.Byte() == 255 {
		return c.ToRGB().Hex()
	}
	return c.Hex()
}

// cssFor renders a color in its shortest CSS functional form.
func cssFor(c csscolors.RGBA) string {
	if c.A.Byte() == 255 {
		return c.ToRGB().ToCSS()
	}
	return c.ToCSS()
}

func buildTemplateData(p *palette.Palette) templateData {
	return templateData{
		Meta:   p.Meta,
		Colors: p.Colors,
		FuncMap: template.FuncMap{
			// Output forms.
			"hex": hexFor,
			"hexBare": func(c csscolors.RGBA) string {
				return strings.TrimPrefix(hexFor(c), "#")
			},
			"css": cssFor,
			"rgb": func(c csscolors.RGBA) string {
				return c.ToRGB().ToCSS()
			},
			"rgba": func(c csscolors.RGBA) string {
				return c.ToCSS()
			},
			"hsl": func(c csscolors.RGBA) string {
				return c.ToHSL().ToCSS()
			},
			"hsla": func(c csscolors.RGBA) string {
				return c.ToHSLA().ToCSS()
			},

			// Lookup.
			"color": func(path string) (csscolors.RGBA, error) {
				return lookupColor(p, path)
			},

			// Adjustments; the piped color arrives last, so these chain:
			//   {{ color "love" | lighten 10 | hex }}
			"lighten": func(pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Lighten(r), nil
			},
			"darken": func(pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Darken(r), nil
			},
			"saturate": func(pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Saturate(r), nil
			},
			"desaturate": func(pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Desaturate(r), nil
			},
			"fade": func(pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Fade(r), nil
			},
			"spin": func(degrees int, c csscolors.RGBA) csscolors.RGBA {
				return c.Spin(csscolors.Deg(degrees))
			},
			"mix": func(other csscolors.RGBA, pct float64, c csscolors.RGBA) (csscolors.RGBA, error) {
				r, err := percentRatio(pct)
				if err != nil {
					return csscolors.RGBA{}, err
				}
				return c.Mix(other, r), nil
			},
			"greyscale": func(c csscolors.RGBA) csscolors.RGBA {
				return c.Greyscale()
			},
		},
	}
}

func percentRatio(pct float64) (csscolors.Ratio, error) {
	if pct < 0 || pct > 100 {
		return csscolors.Ratio{}, fmt.Errorf("percentage %v out of range 0-100", pct)
	}
	return csscolors.Float(float32(pct) / 100.0)
}
