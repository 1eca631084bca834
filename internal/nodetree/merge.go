package nodetree

import (
	"github.com/hashicorp/go-multierror"
)

// Merge moves every child of other into n, keeping other's order.
//
// other must not carry data (ErrDataConflict) and must not be n or one of
// its ancestors (ErrInvalidPath). Every child name is checked
// before anything moves; if any of them already exists in n, Merge returns
// all collisions as ErrDuplicateName errors and leaves both nodes unchanged.
// On success other is left without children.
func (n *Node[T]) Merge(other *Node[T]) error {
	if other == nil {
		return nil
	}
	if other.owns(n) {
		return pathError("merge", other.path, "", ErrInvalidPath)
	}
	if other.data != nil {
		return pathError("merge", other.path, "", ErrDataConflict)
	}

	var result *multierror.Error
	for _, child := range other.Children() {
		if child.name == Self || n.has(child.name) {
			result = multierror.Append(result,
				pathError("merge", joinPath(n.path, child.name), child.name, ErrDuplicateName))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, child := range other.Children() {
		child.stamp(child.name, n)
		n.kids().Set(child.name, child)
	}
	other.children = nil
	return nil
}
