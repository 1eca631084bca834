// Package scene loads layout trees described in YAML.
//
// A scene names every node by path and gives it a layout, an optional font
// size, an optional content size and an arbitrary data map:
//
//	name: menu
//	font_size: 16
//	viewport: {width: 800, height: 600}
//	nodes:
//	  - path: panel
//	    layout:
//	      window:
//	        pos: {abs: [10, 10]}
//	        size: {prc: [50, 100], abs: [0, -20]}
//	  - path: panel/logo
//	    layout:
//	      solid:
//	        size: {abs: [16, 9]}
//	        align_y: start
//	    data: {label: logo}
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/nodeui/internal/layout"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid scene")

// Payload is the user data attached to scene nodes.
type Payload map[string]any

// Document is a scene file.
type Document struct {
	Name     string     `yaml:"name"`
	FontSize float32    `yaml:"font_size"`
	Viewport Viewport   `yaml:"viewport"`
	Nodes    []NodeSpec `yaml:"nodes"`
}

// Viewport is the size of the root context.
type Viewport struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Vec2 returns the viewport as a size vector.
func (v Viewport) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{v.Width, v.Height}
}

// NodeSpec describes one node. Missing intermediate nodes on Path are
// created with the default layout.
type NodeSpec struct {
	Path        string      `yaml:"path"`
	Layout      *LayoutSpec `yaml:"layout,omitempty"`
	FontSize    *float32    `yaml:"font_size,omitempty"`
	ContentSize []float32   `yaml:"content_size,omitempty"`
	Data        Payload     `yaml:"data,omitempty"`
}

// DefaultScene returns an empty scene with sensible defaults.
func DefaultScene() *Document {
	return &Document{
		Name:     "scene",
		FontSize: layout.DefaultFontSize,
		Viewport: Viewport{Width: 800, Height: 600},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scene. Fields missing from data keep the
// values of DefaultScene.
func Parse(data []byte) (*Document, error) {
	doc := DefaultScene()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save writes the scene as YAML.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create scene directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}

	return nil
}

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if d.Name == "" {
		fail("name is empty")
	}
	if !(d.FontSize > 0) {
		fail("font_size must be positive, got %g", d.FontSize)
	}
	if d.Viewport.Width < 0 || d.Viewport.Height < 0 {
		fail("viewport must not be negative, got %gx%g", d.Viewport.Width, d.Viewport.Height)
	}

	for i, n := range d.Nodes {
		if n.Path == "" {
			fail("nodes[%d]: path is empty", i)
		}
		if n.FontSize != nil && !(*n.FontSize > 0) {
			fail("nodes[%d] %q: font_size must be positive, got %g", i, n.Path, *n.FontSize)
		}
		if n.ContentSize != nil && len(n.ContentSize) != 2 {
			fail("nodes[%d] %q: content_size needs 2 components, got %d", i, n.Path, len(n.ContentSize))
		}
		if n.Layout != nil {
			for _, msg := range n.Layout.problems() {
				fail("nodes[%d] %q: %s", i, n.Path, msg)
			}
		}
	}

	return result.ErrorOrNil()
}

// Build creates the layout tree described by the document. Nodes are
// created in document order.
func (d *Document) Build() (*layout.Tree[Payload], error) {
	tree := layout.NewTree[Payload](d.Name)
	tree.SetTopData(layout.Settings{FontSize: d.FontSize})

	for i, n := range d.Nodes {
		l := layout.DefaultLayout()
		if n.Layout != nil {
			l = n.Layout.build()
		}
		nd, err := layout.SetLayout(tree.Node, n.Path, l)
		if err != nil {
			return nil, fmt.Errorf("nodes[%d] %q: %w", i, n.Path, err)
		}
		if n.FontSize != nil {
			size := *n.FontSize
			nd.FontSize = &size
		}
		if len(n.ContentSize) == 2 {
			nd.ContentSize = &mgl32.Vec2{n.ContentSize[0], n.ContentSize[1]}
		}
		if n.Data != nil {
			data := n.Data
			nd.Data = &data
		}
	}
	return tree, nil
}

// Compute builds the tree and runs the layout pass over the viewport.
func (d *Document) Compute(opts ...layout.Option) (*layout.Tree[Payload], error) {
	tree, err := d.Build()
	if err != nil {
		return nil, err
	}
	if err := layout.CalculateTree(tree, d.Viewport.Vec2(), opts...); err != nil {
		return nil, fmt.Errorf("failed to compute layout: %w", err)
	}
	return tree, nil
}
