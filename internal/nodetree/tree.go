package nodetree

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"
)

// Tree pairs a root Node with a payload shared by the whole tree, such as
// theme or scale settings. Every Node method is available on the Tree and
// acts on the root.
type Tree[D, T any] struct {
	*Node[T]
	data *D
}

// NewTree creates a tree whose root is called name.
func NewTree[D, T any](name string) *Tree[D, T] {
	return &Tree[D, T]{Node: NewNode[T](name)}
}

// TopData returns a pointer to the tree-wide payload, or nil.
func (t *Tree[D, T]) TopData() *D {
	return t.data
}

// SetTopData stores the tree-wide payload and returns the previous one.
func (t *Tree[D, T]) SetTopData(data D) *D {
	prev := t.data
	t.data = &data
	return prev
}

// TakeTopData removes and returns the tree-wide payload.
func (t *Tree[D, T]) TakeTopData() *D {
	prev := t.data
	t.data = nil
	return prev
}

// TreeNode builds the debug dump of the whole tree. The root line reads
// "name == <tree payload> :: <root payload>", each part present only when
// that payload is set and data is not suppressed with ParamNoData.
func (t *Tree[D, T]) TreeNode(params string) treeprint.Tree {
	opts := parseParams(params)
	label := t.Node.label(dumpOptions{noData: true})
	if !opts.noData {
		if t.data != nil {
			label += " == " + spew.Sprint(*t.data)
		}
		if root := t.ObtainData(); root != nil {
			label += " :: " + spew.Sprint(*root)
		}
	}
	root := treeprint.NewWithRoot(label)
	t.Node.branch(root, opts)
	return root
}

// Tree renders the debug dump of the whole tree.
func (t *Tree[D, T]) Tree(params string) string {
	return t.TreeNode(params).String()
}
