package layout

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Option configures a compute pass.
type Option func(*calculator) error

// WithLogger sets the logger that receives per-node debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *calculator) error {
		if logger == nil {
			return errors.New("layout: nil logger")
		}
		c.log = logger
		return nil
	}
}

// WithFontSize overrides the base font size of the pass.
func WithFontSize(size float32) Option {
	return func(c *calculator) error {
		if !(size > 0) {
			return fmt.Errorf("layout: font size must be positive, got %g", size)
		}
		c.fontSize = size
		return nil
	}
}

type calculator struct {
	log      *zap.Logger
	fontSize float32
}

func newCalculator(fontSize float32, opts []Option) (*calculator, error) {
	c := &calculator{log: zap.NewNop(), fontSize: fontSize}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Calculate recomputes node and every descendant it reaches against parent.
// The whole subtree is walked on every call; nothing is cached.
//
// A node without data is not computed and neither are its descendants.
func Calculate[N any](node *Node[N], parent Rect, opts ...Option) error {
	if node == nil {
		return nil
	}
	c, err := newCalculator(DefaultFontSize, opts)
	if err != nil {
		return err
	}
	calculateNode(c, node, parent, c.fontSize)
	return nil
}

// CalculateTree recomputes the whole tree inside a viewport of the given
// size at the origin. The base font size comes from the tree's Settings
// unless WithFontSize is passed.
func CalculateTree[N any](tree *Tree[N], viewport mgl32.Vec2, opts ...Option) error {
	if tree == nil {
		return nil
	}
	fontSize := DefaultFontSize
	if s := tree.TopData(); s != nil && s.FontSize > 0 {
		fontSize = s.FontSize
	}
	c, err := newCalculator(fontSize, opts)
	if err != nil {
		return err
	}
	calculateNode(c, tree.Node, RectFromSize(viewport), c.fontSize)
	return nil
}

func calculateNode[N any](c *calculator, node *Node[N], parent Rect, fontSize float32) {
	d := node.ObtainData()
	if d == nil {
		c.log.Debug("skipping subtree without data", zap.String("path", node.Path()))
		return
	}
	if d.FontSize != nil && *d.FontSize > 0 {
		fontSize = *d.FontSize
	}

	d.Rect = compute(d, parent, fontSize)
	c.log.Debug("computed node",
		zap.String("path", node.Path()),
		zap.Stringer("rect", d.Rect),
		zap.Float32("font_size", fontSize))

	for _, child := range node.Children() {
		calculateNode(c, child, d.Rect, fontSize)
	}
}

func compute[N any](d *NodeData[N], parent Rect, fontSize float32) Rect {
	switch l := d.Layout.(type) {
	case nil:
		return DefaultLayout().Compute(parent, fontSize)
	case Solid:
		if l.Size.IsZero() && d.ContentSize != nil {
			return l.place(parent, *d.ContentSize)
		}
	}
	return d.Layout.Compute(parent, fontSize)
}
