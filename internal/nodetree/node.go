package nodetree

import (
	"errors"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// Separator delimits path segments.
	Separator = "/"
	// Self is the reserved segment that refers to the node itself.
	Self = "."
	// HiddenPrefix marks a name as hidden from the default tree dump.
	HiddenPrefix = "."
	// autoNamePrefix prefixes generated names; generated nodes are hidden.
	autoNamePrefix = ".||#:"
	// autoNameAttempts bounds the search for a free generated name.
	autoNameAttempts = 100
)

// Node is one entry of the tree. It owns its children, keyed by name in
// insertion order, and optionally carries a payload of type T.
//
// Name, Path and Depth are cached when the node is attached through AddNode
// and friends. A Node moved around by other means keeps stale values.
type Node[T any] struct {
	name     string
	path     string
	depth    float32
	data     *T
	children *orderedmap.OrderedMap[string, *Node[T]]
}

// NewNode creates a detached node. The name is used as both name and path,
// which is what a tree root wants; nodes attached later are re-stamped.
func NewNode[T any](name string) *Node[T] {
	return &Node[T]{name: name, path: name}
}

// Name returns the node's name within its parent.
func (n *Node[T]) Name() string { return n.name }

// Path returns the full address of the node, including its own name.
func (n *Node[T]) Path() string { return n.path }

// Depth returns the number of ancestors between the node and its root.
func (n *Node[T]) Depth() float32 { return n.depth }

// IsHidden reports whether the node's name starts with HiddenPrefix.
func (n *Node[T]) IsHidden() bool { return strings.HasPrefix(n.name, HiddenPrefix) }

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	if n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Children returns the direct children in insertion order.
func (n *Node[T]) Children() []*Node[T] {
	if n.Len() == 0 {
		return nil
	}
	out := make([]*Node[T], 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (n *Node[T]) kids() *orderedmap.OrderedMap[string, *Node[T]] {
	if n.children == nil {
		n.children = orderedmap.New[string, *Node[T]]()
	}
	return n.children
}

func (n *Node[T]) has(name string) bool {
	if n.children == nil {
		return false
	}
	_, ok := n.children.Get(name)
	return ok
}

// stamp re-derives name, path and depth for n and its whole subtree.
func (n *Node[T]) stamp(name string, parent *Node[T]) {
	n.name = name
	n.path = joinPath(parent.path, name)
	n.depth = parent.depth + 1
	for _, child := range n.Children() {
		child.stamp(child.name, n)
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Separator + name
}

// freeName finds an unused generated name, starting at the child count.
func (n *Node[T]) freeName() (string, bool) {
	start := n.Len()
	for i := 0; i < autoNameAttempts; i++ {
		candidate := autoNamePrefix + strconv.Itoa(start+i)
		if !n.has(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// owns reports whether target is n or lies anywhere in n's subtree.
func (n *Node[T]) owns(target *Node[T]) bool {
	if n == target {
		return true
	}
	for _, child := range n.Children() {
		if child.owns(target) {
			return true
		}
	}
	return false
}

// add attaches child under name. op and path only shape the error.
func (n *Node[T]) add(op, path, name string, child *Node[T]) (string, error) {
	if child == nil {
		return "", pathError(op, path, name, ErrNoNode)
	}
	if child.owns(n) {
		return "", pathError(op, path, name, ErrInvalidPath)
	}
	switch {
	case name == "":
		generated, ok := n.freeName()
		if !ok {
			return "", pathError(op, path, name, ErrInvalidPath)
		}
		name = generated
	case name == Self:
		return "", pathError(op, path, name, ErrNameInUse)
	case strings.Contains(name, Separator):
		return "", pathError(op, path, name, ErrInvalidPath)
	case n.has(name):
		return "", pathError(op, path, name, ErrNameInUse)
	}

	child.stamp(name, n)
	n.kids().Set(name, child)
	return name, nil
}

// AddNode attaches child as a direct child called name and returns the
// name it was stored under. An empty name picks a hidden generated name of
// the form ".||#:N". The reserved name "." and names already taken fail
// with ErrNameInUse. Attaching n itself or one of its ancestors fails with
// ErrInvalidPath, since the tree would no longer be a tree.
func (n *Node[T]) AddNode(name string, child *Node[T]) (string, error) {
	return n.add("add", name, name, child)
}

// MakeNode is AddNode with a new empty child.
func (n *Node[T]) MakeNode(name string) (string, error) {
	return n.add("make", name, name, NewNode[T](""))
}

// TakeNode detaches and returns the direct child called name.
func (n *Node[T]) TakeNode(name string) (*Node[T], error) {
	return n.take("take", name, name)
}

func (n *Node[T]) take(op, path, name string) (*Node[T], error) {
	if name == "" || name == Self {
		return nil, pathError(op, path, name, ErrInvalidPath)
	}
	if !n.has(name) {
		return nil, pathError(op, path, name, ErrNoNode)
	}
	child, _ := n.children.Delete(name)
	return child, nil
}

// ObtainNode returns the direct child called name. The name "." returns
// the node itself.
func (n *Node[T]) ObtainNode(name string) (*Node[T], error) {
	return n.obtain("obtain", name, name)
}

func (n *Node[T]) obtain(op, path, name string) (*Node[T], error) {
	switch name {
	case Self:
		return n, nil
	case "":
		return nil, pathError(op, path, name, ErrInvalidPath)
	}
	if n.children != nil {
		if child, ok := n.children.Get(name); ok {
			return child, nil
		}
	}
	return nil, pathError(op, path, name, ErrNoNode)
}

// ObtainOrCreateNode returns the direct child called name, creating an empty
// one first if it does not exist.
func (n *Node[T]) ObtainOrCreateNode(name string) (*Node[T], error) {
	return n.obtainOrCreate("obtain-or-create", name, name)
}

func (n *Node[T]) obtainOrCreate(op, path, name string) (*Node[T], error) {
	if name == "" {
		return nil, pathError(op, path, name, ErrInvalidPath)
	}
	if name != Self {
		if _, err := n.add(op, path, name, NewNode[T]("")); err != nil && !errors.Is(err, ErrNameInUse) {
			return nil, err
		}
	}
	return n.obtain(op, path, name)
}
