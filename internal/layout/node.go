package layout

import (
	"errors"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/grindlemire/nodeui/internal/nodetree"
)

// ErrNoData is returned by AbsoluteRect when the target node carries no
// layout data.
var ErrNoData = errors.New("layout: node has no data")

// DefaultFontSize is the font size used when neither the tree settings nor
// an option provide one.
const DefaultFontSize float32 = 16

// Settings is the tree-wide payload of a layout Tree.
type Settings struct {
	FontSize float32
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{FontSize: DefaultFontSize}
}

// NodeData is the per-node payload of a layout Tree.
type NodeData[N any] struct {
	// Data is the user payload.
	Data *N

	// Rect is the last computed geometry. Only the compute pass writes it.
	Rect Rect

	// Layout describes how Rect is derived from the parent's Rect.
	// A nil Layout behaves like DefaultLayout.
	Layout Layout

	// FontSize overrides the font size for this node and its descendants.
	FontSize *float32

	// ContentSize is the natural size of the node's content. A Solid with
	// no size of its own uses it as the target box.
	ContentSize *mgl32.Vec2
}

// NewNodeData returns node data with the default full-parent layout.
func NewNodeData[N any](data *N) NodeData[N] {
	return NodeData[N]{Data: data, Layout: DefaultLayout()}
}

func (d NodeData[N]) String() string {
	var b strings.Builder
	b.WriteString(d.Rect.String())
	if d.Layout != nil {
		b.WriteString(" ")
		b.WriteString(spew.Sprint(d.Layout))
	}
	if d.Data != nil {
		b.WriteString(" ")
		b.WriteString(spew.Sprint(*d.Data))
	}
	return b.String()
}

// Node is a node of a layout tree.
type Node[N any] = nodetree.Node[NodeData[N]]

// Tree is a layout tree: Settings shared by the whole tree, NodeData per node.
type Tree[N any] = nodetree.Tree[Settings, NodeData[N]]

// NewTree creates a layout tree whose root is called name. The root carries
// default node data and the tree carries DefaultSettings.
func NewTree[N any](name string) *Tree[N] {
	t := nodetree.NewTree[Settings, NodeData[N]](name)
	t.SetTopData(DefaultSettings())
	t.AddData(NewNodeData[N](nil))
	return t
}

// EnsureData returns the node's data, adding default node data first when
// the node has none.
func EnsureData[N any](node *Node[N]) *NodeData[N] {
	if !node.HasData() {
		node.AddData(NewNodeData[N](nil))
	}
	return node.ObtainData()
}

// SetLayout assigns l to the node at path below root, creating missing nodes
// along the way. root and every node on the path get default data so the
// compute pass reaches the target.
func SetLayout[N any](root *Node[N], path string, l Layout) (*NodeData[N], error) {
	target, err := root.BorrowOrCreateNode(path)
	if err != nil {
		return nil, err
	}

	node := root
	EnsureData(node)
	for rest := path; rest != ""; {
		var head string
		head, rest, _ = strings.Cut(rest, nodetree.Separator)
		if node, err = node.ObtainNode(head); err != nil {
			return nil, err
		}
		EnsureData(node)
	}

	d := target.ObtainData()
	d.Layout = l
	return d, nil
}

// AbsoluteRect returns the computed rectangle of the node at path below root,
// translated out of its parent-relative space into the space root was
// computed in. The offsets of root and every node on the path are added up;
// nodes without data contribute nothing.
func AbsoluteRect[N any](root *Node[N], path string) (Rect, error) {
	target, err := root.BorrowNode(path)
	if err != nil {
		return Rect{}, err
	}
	d := target.ObtainData()
	if d == nil {
		return Rect{}, ErrNoData
	}

	ancestors := []*Node[N]{root}
	for rest := path; rest != ""; {
		var head string
		head, rest, _ = strings.Cut(rest, nodetree.Separator)
		last := ancestors[len(ancestors)-1]
		next, err := last.ObtainNode(head)
		if err != nil {
			return Rect{}, err
		}
		if next != last {
			ancestors = append(ancestors, next)
		}
	}

	var offset mgl32.Vec2
	for _, n := range ancestors[:len(ancestors)-1] {
		if nd := n.ObtainData(); nd != nil {
			offset = offset.Add(nd.Rect.Pos)
		}
	}
	return d.Rect.Translate(offset), nil
}
