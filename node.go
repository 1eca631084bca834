// node.go re-exports the node store from internal/nodetree.
package nodeui

import "github.com/grindlemire/nodeui/internal/nodetree"

// Node is a named node with optional data and ordered named children.
type Node[T any] = nodetree.Node[T]

// NodeTree is a root Node plus data shared by the whole tree.
type NodeTree[D, T any] = nodetree.Tree[D, T]

// PathError records a failed node operation and the path it was given.
type PathError = nodetree.PathError

var (
	ErrDataConflict  = nodetree.ErrDataConflict
	ErrDuplicateName = nodetree.ErrDuplicateName
	ErrNameInUse     = nodetree.ErrNameInUse
	ErrInvalidPath   = nodetree.ErrInvalidPath
	ErrNoNode        = nodetree.ErrNoNode
)

// Tree dump parameters.
const (
	ParamShowHidden = nodetree.ParamShowHidden
	ParamNoData     = nodetree.ParamNoData
)

// NewNode creates a detached node called name.
func NewNode[T any](name string) *Node[T] {
	return nodetree.NewNode[T](name)
}

// NewNodeTree creates a tree whose root is called name.
func NewNodeTree[D, T any](name string) *NodeTree[D, T] {
	return nodetree.NewTree[D, T](name)
}
