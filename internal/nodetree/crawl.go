package nodetree

// Walk visits every descendant of n in pre-order, children in insertion
// order. Returning false from fn skips that node's subtree.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) {
	for _, child := range n.Children() {
		if fn(child) {
			child.Walk(fn)
		}
	}
}

// Crawl returns every descendant of n in pre-order. n itself is not included.
func (n *Node[T]) Crawl() []*Node[T] {
	var out []*Node[T]
	n.Walk(func(node *Node[T]) bool {
		out = append(out, node)
		return true
	})
	return out
}
