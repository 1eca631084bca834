// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package nodeui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/grindlemire/nodeui/internal/layout"
)

// Rect is an axis-aligned rectangle produced by the compute pass.
type Rect = layout.Rect

// Rect3D is a Rect with depth and orientation.
type Rect3D = layout.Rect3D

// Align positions a box along one axis, from -1 (start) to 1 (end).
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Scaling chooses how a Solid box is resized to its parent.
type Scaling = layout.Scaling

const (
	ScalingFit  = layout.ScalingFit
	ScalingFill = layout.ScalingFill
)

// Layout derives a node's Rect from its parent's Rect.
type Layout = layout.Layout

// Window places a node at a free-form offset with a free-form size.
type Window = layout.Window

// Solid fits an aspect-ratio box into the parent and aligns it.
type Solid = layout.Solid

// Settings is the tree-wide payload of a LayoutTree.
type Settings = layout.Settings

// NodeData is the per-node payload of a LayoutTree.
type NodeData[N any] = layout.NodeData[N]

// LayoutNode is a node of a LayoutTree.
type LayoutNode[N any] = layout.Node[N]

// LayoutTree is a node tree carrying layouts and computed rectangles.
type LayoutTree[N any] = layout.Tree[N]

// LayoutOption configures a compute pass.
type LayoutOption = layout.Option

// ErrNoData is returned by AbsoluteRect for a node without layout data.
var ErrNoData = layout.ErrNoData

// DefaultFontSize is the font size used when nothing else provides one.
const DefaultFontSize = layout.DefaultFontSize

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectFromSize creates a Rect of the given size at the origin.
func RectFromSize(size mgl32.Vec2) Rect {
	return layout.RectFromSize(size)
}

// DefaultLayout returns a Window that fills its parent.
func DefaultLayout() Layout {
	return layout.DefaultLayout()
}

// DefaultSettings returns Settings with the default font size.
func DefaultSettings() Settings {
	return layout.DefaultSettings()
}

// NewLayoutTree creates a layout tree with default settings and root data.
func NewLayoutTree[N any](name string) *LayoutTree[N] {
	return layout.NewTree[N](name)
}

// NewNodeData returns node data with the default layout.
func NewNodeData[N any](data *N) NodeData[N] {
	return layout.NewNodeData(data)
}

// EnsureData returns the node's data, adding default data when missing.
func EnsureData[N any](node *LayoutNode[N]) *NodeData[N] {
	return layout.EnsureData(node)
}

// SetLayout assigns l to the node at path, creating missing nodes.
func SetLayout[N any](root *LayoutNode[N], path string, l Layout) (*NodeData[N], error) {
	return layout.SetLayout(root, path, l)
}

// AbsoluteRect returns the rectangle of the node at path in the coordinate
// space root was computed in.
func AbsoluteRect[N any](root *LayoutNode[N], path string) (Rect, error) {
	return layout.AbsoluteRect(root, path)
}

// Calculate recomputes node and its reachable descendants inside parent.
func Calculate[N any](node *LayoutNode[N], parent Rect, opts ...LayoutOption) error {
	return layout.Calculate(node, parent, opts...)
}

// CalculateTree recomputes the whole tree inside a viewport.
func CalculateTree[N any](tree *LayoutTree[N], viewport mgl32.Vec2, opts ...LayoutOption) error {
	return layout.CalculateTree(tree, viewport, opts...)
}

// WithLogger sets the logger of a compute pass.
var WithLogger = layout.WithLogger

// WithFontSize overrides the base font size of a compute pass.
var WithFontSize = layout.WithFontSize
