package nodetree

// AddData stores data on n and returns the previous payload, or nil.
func (n *Node[T]) AddData(data T) *T {
	prev := n.data
	n.data = &data
	return prev
}

// TakeData removes and returns the payload, or nil if there is none.
func (n *Node[T]) TakeData() *T {
	prev := n.data
	n.data = nil
	return prev
}

// ObtainData returns a pointer to the payload, or nil if there is none.
// Writes through the pointer update the stored payload.
func (n *Node[T]) ObtainData() *T {
	return n.data
}

// HasData reports whether n carries a payload.
func (n *Node[T]) HasData() bool {
	return n.data != nil
}

// InsertData stores data on the node at path and returns its previous payload.
func (n *Node[T]) InsertData(path string, data T) (*T, error) {
	node, err := n.resolve("insert-data", path, path, false)
	if err != nil {
		return nil, err
	}
	return node.AddData(data), nil
}

// RemoveData removes and returns the payload of the node at path.
func (n *Node[T]) RemoveData(path string) (*T, error) {
	node, err := n.resolve("remove-data", path, path, false)
	if err != nil {
		return nil, err
	}
	return node.TakeData(), nil
}

// BorrowData returns a pointer to the payload of the node at path. The
// pointer is nil when the node exists but carries no data.
func (n *Node[T]) BorrowData(path string) (*T, error) {
	node, err := n.resolve("borrow-data", path, path, false)
	if err != nil {
		return nil, err
	}
	return node.data, nil
}
