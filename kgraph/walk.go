package kgraph

import (
	"github.com/xlab/treeprint"
)

// Walk calls fn for root and every node downstream of it, in Accept order,
// with the path length from root.
func Walk(root GenericNode, fn func(depth int, n *AnyNode)) {
	traverse(root.Handle(), 0, func(n *AnyNode, depth int) {
		fn(depth, n)
	})
}

// Collect returns every node of concrete type T reached from root, in Accept
// order. A node reached through several paths appears once per path.
func Collect[T any](root GenericNode) []T {
	var found []T
	root.Handle().Accept(On(func(n T) {
		found = append(found, n)
	}))
	return found
}

// Dump renders the traversal from root as a tree, one line per visit.
func Dump(root GenericNode) string {
	var stack []treeprint.Tree
	tree := treeprint.NewWithRoot(root.Label())
	Walk(root, func(depth int, n *AnyNode) {
		if depth == 0 {
			stack = append(stack[:0], tree)
			return
		}
		stack = append(stack[:depth], stack[depth-1].AddBranch(n.Label()))
	})
	return tree.String()
}
