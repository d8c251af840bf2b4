// Package palette loads HCL palette files (.cpal) into resolved colors.
//
// A palette file names its base colors as hex literals, optionally grouped
// into nested blocks, and derives further colors from them with the color
// functions of the csscolors package:
//
//	meta {
//	  name   = "Rose"
//	  author = "..."
//	}
//
//	palette {
//	  base = "#191724"
//	  love = "#eb6f92"
//
//	  highlight {
//	    color = "#c0c0c0"
//	    low   = "#21202e"
//	  }
//	}
//
//	colors {
//	  accent     = lighten(palette.love, 10)
//	  muted      = desaturate(palette.love, 30)
//	  overlay    = fade(palette.base, 50)
//	  complement = spin(palette.love, 180)
//	  blended    = mix(palette.love, palette.base, 50)
//	}
package palette

import (
	"fmt"

	"github.com/jsvensson/csscolors"
)

// Palette is a fully-resolved palette file.
type Palette struct {
	Meta   Meta
	Base   *Node                     // named base colors, possibly nested
	Colors map[string]csscolors.RGBA // derived colors
}

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
	URL    string `hcl:"url,optional"`
}

// Node is a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color attribute);
// Children is nil for leaf entries.
type Node struct {
	Color    *csscolors.RGBA
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a color. It fails if the path
// does not exist or names a group without a color of its own.
func (n *Node) Lookup(path []string) (csscolors.RGBA, error) {
	current := n
	for _, part := range path {
		next := current.child(part)
		if next == nil {
			return csscolors.RGBA{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = next
	}
	if current.Color == nil {
		return csscolors.RGBA{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// child returns the named child node, or nil.
func (n *Node) child(name string) *Node {
	if n.Children == nil {
		return nil
	}
	return n.Children[name]
}

// put attaches a child node, allocating the map on first use.
func (n *Node) put(name string, child *Node) {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	n.Children[name] = child
}
