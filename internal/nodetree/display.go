package nodetree

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"
)

// Tree dump parameters. Pass them, in any combination, as one string.
const (
	ParamShowHidden = "show-hidden" // include names starting with "."
	ParamNoData     = "no-data"     // omit each node's payload
)

type dumpOptions struct {
	showHidden bool
	noData     bool
}

func parseParams(params string) dumpOptions {
	return dumpOptions{
		showHidden: strings.Contains(params, ParamShowHidden),
		noData:     strings.Contains(params, ParamNoData),
	}
}

func (n *Node[T]) label(opts dumpOptions) string {
	name := n.name
	if name == "" {
		name = Self
	}
	if n.data == nil || opts.noData {
		return name
	}
	return name + " == " + spew.Sprint(*n.data)
}

func (n *Node[T]) branch(t treeprint.Tree, opts dumpOptions) {
	for _, child := range n.Children() {
		if child.IsHidden() && !opts.showHidden {
			continue
		}
		child.branch(t.AddBranch(child.label(opts)), opts)
	}
}

// TreeNode builds the debug dump of n and its descendants. The result can be
// grafted into a larger treeprint.Tree.
func (n *Node[T]) TreeNode(params string) treeprint.Tree {
	opts := parseParams(params)
	root := treeprint.NewWithRoot(n.label(opts))
	n.branch(root, opts)
	return root
}

// Tree renders an indented, human-readable dump of n and its descendants.
// The format is meant for debugging and may change.
func (n *Node[T]) Tree(params string) string {
	return n.TreeNode(params).String()
}
