package palette

import (
	"fmt"
	"sort"

	"github.com/jsvensson/csscolors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// hexOut renders a color as its shortest hex form: six digits while fully
// opaque, eight once faded. Both forms parse back with csscolors.ParseHex,
// so function results chain.
func hexOut(c csscolors.RGBA) string {
	if c.A.Byte() == 255 {
		return c.ToRGB().Hex()
	}
	return c.Hex()
}

// ratioFromPercent converts a 0-100 function argument into a Ratio.
func ratioFromPercent(p float64) (csscolors.Ratio, error) {
	if p < 0 || p > 100 {
		return csscolors.Ratio{}, fmt.Errorf("percentage %v out of range 0-100", p)
	}
	return csscolors.Float(float32(p) / 100.0)
}

// argColor parses a color-valued function argument.
func argColor(v cty.Value) (csscolors.RGBA, error) {
	return csscolors.ParseHex(v.AsString())
}

// argByte validates a 0-255 numeric function argument.
func argByte(v cty.Value) (uint8, error) {
	f, _ := v.AsBigFloat().Float64()
	if f < 0 || f > 255 {
		return 0, fmt.Errorf("channel value %v out of range 0-255", f)
	}
	return uint8(f), nil
}

// makeAdjustFunc builds an HCL function of the shape fn(color, percentage)
// around one of the core color operations.
func makeAdjustFunc(desc string, apply func(csscolors.RGBA, csscolors.Ratio) csscolors.RGBA) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := argColor(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()
			amount, err := ratioFromPercent(pct)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hexOut(apply(c, amount))), nil
		},
	})
}

func makeSpinFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Rotates a color's hue by the given number of degrees",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "degrees", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := argColor(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			deg, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(hexOut(c.Spin(csscolors.Deg(int(deg))))), nil
		},
	})
}

func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Mixes two colors with the given weight (0-100) for the first",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "other", Type: cty.String},
			{Name: "weight", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := argColor(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			other, err := argColor(args[1])
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[2].AsBigFloat().Float64()
			weight, err := ratioFromPercent(pct)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hexOut(c.Mix(other, weight))), nil
		},
	})
}

func makeGreyscaleFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Drops all saturation from a color",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := argColor(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hexOut(c.Greyscale())), nil
		},
	})
}

func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Constructs a color from red, green, and blue bytes",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]uint8
			for i, arg := range args {
				b, err := argByte(arg)
				if err != nil {
					return cty.NilVal, err
				}
				ch[i] = b
			}
			return cty.StringVal(hexOut(csscolors.NewRGB(ch[0], ch[1], ch[2]).ToRGBA())), nil
		},
	})
}

func makeRGBAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Constructs a color from red, green, blue, and alpha bytes",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
			{Name: "a", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [4]uint8
			for i, arg := range args {
				b, err := argByte(arg)
				if err != nil {
					return cty.NilVal, err
				}
				ch[i] = b
			}
			return cty.StringVal(hexOut(csscolors.NewRGBA(ch[0], ch[1], ch[2], ch[3]))), nil
		},
	})
}

func makeHSLFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Constructs a color from hue degrees and saturation/luminosity percentages",
		Params: []function.Parameter{
			{Name: "h", Type: cty.Number},
			{Name: "s", Type: cty.Number},
			{Name: "l", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := args[0].AsBigFloat().Float64()
			s, err := pctArg(args[1], "saturation")
			if err != nil {
				return cty.NilVal, err
			}
			l, err := pctArg(args[2], "luminosity")
			if err != nil {
				return cty.NilVal, err
			}
			c, err := csscolors.NewHSL(int(h), s, l)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hexOut(c.ToRGBA())), nil
		},
	})
}

func makeHSLAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Constructs a color from hue, saturation, luminosity, and a 0.0-1.0 alpha",
		Params: []function.Parameter{
			{Name: "h", Type: cty.Number},
			{Name: "s", Type: cty.Number},
			{Name: "l", Type: cty.Number},
			{Name: "a", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := args[0].AsBigFloat().Float64()
			s, err := pctArg(args[1], "saturation")
			if err != nil {
				return cty.NilVal, err
			}
			l, err := pctArg(args[2], "luminosity")
			if err != nil {
				return cty.NilVal, err
			}
			a, _ := args[3].AsBigFloat().Float64()
			c, err := csscolors.NewHSLA(int(h), s, l, float32(a))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hexOut(c.ToRGBA())), nil
		},
	})
}

// pctArg validates a 0-100 percentage argument.
func pctArg(v cty.Value, name string) (uint8, error) {
	f, _ := v.AsBigFloat().Float64()
	if f < 0 || f > 100 {
		return 0, fmt.Errorf("%s %v out of range 0-100", name, f)
	}
	return uint8(f), nil
}

// Functions returns the full set of color functions available in palette
// expressions, one per color operation plus the four constructors.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":  makeRGBFunc(),
		"rgba": makeRGBAFunc(),
		"hsl":  makeHSLFunc(),
		"hsla": makeHSLAFunc(),

		"saturate": makeAdjustFunc("Increases a color's saturation by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Saturate(r) }),
		"desaturate": makeAdjustFunc("Decreases a color's saturation by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Desaturate(r) }),
		"lighten": makeAdjustFunc("Increases a color's luminosity by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Lighten(r) }),
		"darken": makeAdjustFunc("Decreases a color's luminosity by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Darken(r) }),
		"fadein": makeAdjustFunc("Increases a color's alpha by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.FadeIn(r) }),
		"fadeout": makeAdjustFunc("Decreases a color's alpha by the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.FadeOut(r) }),
		"fade": makeAdjustFunc("Sets a color's alpha to the given percentage",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Fade(r) }),
		"tint": makeAdjustFunc("Mixes a color with white at the given weight",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Tint(r) }),
		"shade": makeAdjustFunc("Mixes a color with black at the given weight",
			func(c csscolors.RGBA, r csscolors.Ratio) csscolors.RGBA { return c.Shade(r) }),

		"spin":      makeSpinFunc(),
		"mix":       makeMixFunc(),
		"greyscale": makeGreyscaleFunc(),
	}
}

// NodeToCty converts a palette Node to a cty.Value for the HCL evaluation
// context. Leaf nodes become strings; groups become objects, with the
// group's own color under a "color" key.
func NodeToCty(node *Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(hexOut(*node.Color))
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)

	if node.Color != nil {
		vals["color"] = cty.StringVal(hexOut(*node.Color))
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}
