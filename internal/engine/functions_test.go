package engine

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/jsvensson/csscolors"
)

// render executes a template snippet against the test palette.
func render(t *testing.T, src string) string {
	t.Helper()
	data := buildTemplateData(testPalette())
	tmpl, err := template.New("test").Funcs(data.FuncMap).Parse(src)
	if err != nil {
		t.Fatalf("parsing template: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("executing template: %v", err)
	}
	return buf.String()
}

func TestColorLookup(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"derived color", `{{ hex (color "background") }}`, "#191724"},
		{"base color", `{{ hex (color "love") }}`, "#eb6f92"},
		{"nested base color", `{{ hex (color "highlight.low") }}`, "#21202e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.src); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestOutputForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"hex", `{{ color "background" | hex }}`, "#191724"},
		{"hexBare", `{{ color "background" | hexBare }}`, "191724"},
		{"rgb", `{{ color "background" | rgb }}`, "rgb(25, 23, 36)"},
		{"rgba", `{{ color "overlay" | rgba }}`, "rgba(25, 23, 36, 0.50)"},
		{"css opaque", `{{ color "background" | css }}`, "rgb(25, 23, 36)"},
		{"css translucent", `{{ color "overlay" | css }}`, "rgba(25, 23, 36, 0.50)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.src); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestChainedAdjustments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"fade", `{{ color "background" | fade 50 | hex }}`, "#19172480"},
		{"greyscale red", `{{ rgbColor | greyscale | hex }}`, "#808080"},
		{"spin on grey is inert", `{{ greyColor | spin 180 | hex }}`, "#808080"},
		{"lighten clamps", `{{ greyColor | lighten 100 | hex }}`, "#ffffff"},
		{"darken clamps", `{{ greyColor | darken 100 | hex }}`, "#000000"},
		{"mix boundary", `{{ color "background" | mix (color "love") 100 | hex }}`, "#191724"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderWithHelpers(t, tt.src); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestAdjustmentRangeError(t *testing.T) {
	data := buildTemplateData(testPalette())
	tmpl, err := template.New("test").Funcs(data.FuncMap).Parse(`{{ color "background" | lighten 150 | hex }}`)
	if err != nil {
		t.Fatalf("parsing template: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err == nil {
		t.Fatal("expected error for out-of-range percentage")
	}
}

// renderWithHelpers is render with two fixture colors injected for
// adjustment tests.
func renderWithHelpers(t *testing.T, src string) string {
	t.Helper()
	data := buildTemplateData(testPalette())
	funcs := template.FuncMap{}
	for name, fn := range data.FuncMap {
		funcs[name] = fn
	}
	funcs["rgbColor"] = func() csscolors.RGBA { return csscolors.NewRGBA(255, 0, 0, 255) }
	funcs["greyColor"] = func() csscolors.RGBA { return csscolors.NewRGBA(128, 128, 128, 255) }

	tmpl, err := template.New("test").Funcs(funcs).Parse(src)
	if err != nil {
		t.Fatalf("parsing template: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("executing template: %v", err)
	}
	return buf.String()
}
