package nodetree

import "strings"

// splitLast separates the parent sub-path from the leaf name.
// A path without a separator has no parent sub-path.
func splitLast(path string) (parent, leaf string, nested bool) {
	i := strings.LastIndex(path, Separator)
	if i < 0 {
		return "", path, false
	}
	return path[:i], path[i+len(Separator):], true
}

// resolve walks target one segment at a time from n. With create set,
// missing segments are created as empty nodes instead of failing. path is
// the caller's original path, reported in errors.
func (n *Node[T]) resolve(op, path, target string, create bool) (*Node[T], error) {
	if create {
		if err := validateSegments(op, path, target); err != nil {
			return nil, err
		}
	}
	node := n
	rest := target
	for {
		head, tail, more := strings.Cut(rest, Separator)

		var err error
		if create {
			node, err = node.obtainOrCreate(op, path, head)
		} else {
			node, err = node.obtain(op, path, head)
		}
		if err != nil {
			return nil, err
		}
		if !more {
			return node, nil
		}
		rest = tail
	}
}

// validateSegments rejects a path with an empty segment before anything is
// created for it.
func validateSegments(op, path, target string) error {
	for _, segment := range strings.Split(target, Separator) {
		if segment == "" {
			return pathError(op, path, segment, ErrInvalidPath)
		}
	}
	return nil
}

// parentOf resolves the parent of the leaf addressed by path.
func (n *Node[T]) parentOf(op, path string) (*Node[T], string, error) {
	parentPath, leaf, nested := splitLast(path)
	if !nested {
		return n, leaf, nil
	}
	parent, err := n.resolve(op, path, parentPath, false)
	if err != nil {
		return nil, "", err
	}
	return parent, leaf, nil
}

// BorrowNode returns the node addressed by a "/"-delimited path relative to n.
// Every segment must exist; "." segments refer to the current node.
func (n *Node[T]) BorrowNode(path string) (*Node[T], error) {
	return n.resolve("borrow", path, path, false)
}

// BorrowOrCreateNode is BorrowNode but creates missing segments. A path
// with an empty segment fails before any node is created.
func (n *Node[T]) BorrowOrCreateNode(path string) (*Node[T], error) {
	return n.resolve("borrow-or-create", path, path, true)
}

// InsertNode attaches child at path. Everything before the last separator
// must already exist; the last segment is the new child's name, and an
// empty last segment picks a generated name. It returns the stored name.
func (n *Node[T]) InsertNode(path string, child *Node[T]) (string, error) {
	return n.insert("insert", path, child)
}

// CreateNode is InsertNode with a new empty child.
func (n *Node[T]) CreateNode(path string) (string, error) {
	return n.insert("create", path, NewNode[T](""))
}

func (n *Node[T]) insert(op, path string, child *Node[T]) (string, error) {
	parent, leaf, err := n.parentOf(op, path)
	if err != nil {
		return "", err
	}
	return parent.add(op, path, leaf, child)
}

// RemoveNode detaches and returns the node addressed by path.
func (n *Node[T]) RemoveNode(path string) (*Node[T], error) {
	parent, leaf, err := n.parentOf("remove", path)
	if err != nil {
		return nil, err
	}
	return parent.take("remove", path, leaf)
}
