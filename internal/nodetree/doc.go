// Package nodetree implements a path-addressed tree of named nodes.
//
// Each [Node] owns its children in insertion order and may carry a payload.
// Nodes are addressed with "/"-delimited paths relative to the node a call
// starts from:
//
//	root.InsertNode("menu/button", nodetree.NewNode[Data](""))
//	button, err := root.BorrowNode("menu/button")
//
// The segment "." refers to the current node and cannot be used as a child
// name. Names starting with "." are hidden from the default [Node.Tree]
// dump; adding a child under an empty name gives it a hidden generated name
// of the form ".||#:N".
//
// A [Tree] adds a payload shared by the whole tree on top of its root node.
//
// Failures are reported as [*PathError] values wrapping one of the sentinel
// errors ([ErrNoNode], [ErrNameInUse], ...). The tree does no locking; callers
// sharing a tree between goroutines must serialize access to all of it.
package nodetree
