package kgraph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/birdayz/kframe/kid"
)

// MaxDepth bounds the longest path Validate follows.
const MaxDepth = 500

var (
	ErrCycleDetected = errors.New("kgraph: cycle detected")
	ErrTooDeep       = errors.New("kgraph: graph too deep")
)

// Validate checks that the graph reachable from roots is acyclic, which
// Accept, Walk and Dump require. The error names the nodes on the first
// cycle found.
func Validate(roots ...GenericNode) error {
	visited := make(map[kid.ID]bool)
	onPath := make(map[kid.ID]bool)

	var dfs func(*AnyNode, []*AnyNode) error
	dfs = func(n *AnyNode, path []*AnyNode) error {
		if len(path) > MaxDepth {
			return fmt.Errorf("%w: maximum depth %d exceeded", ErrTooDeep, MaxDepth)
		}
		visited[n.ID()] = true
		onPath[n.ID()] = true
		path = append(path, n)

		for _, child := range successors(n) {
			if !visited[child.ID()] {
				if err := dfs(child, path); err != nil {
					return err
				}
			} else if onPath[child.ID()] {
				labels := make([]string, 0, len(path)+1)
				for _, p := range append(path, child) {
					labels = append(labels, p.Label())
				}
				return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(labels, " -> "))
			}
		}

		onPath[n.ID()] = false
		return nil
	}

	for _, r := range roots {
		if h := r.Handle(); !visited[h.ID()] {
			if err := dfs(h, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reachable returns every node reachable from roots once, ordered so that
// each node comes after all of its producers. Ties are broken by node id.
func Reachable(roots ...GenericNode) ([]*AnyNode, error) {
	if err := Validate(roots...); err != nil {
		return nil, err
	}

	nodes := make(map[kid.ID]*AnyNode)
	var collect func(*AnyNode)
	collect = func(n *AnyNode) {
		if _, ok := nodes[n.ID()]; ok {
			return
		}
		nodes[n.ID()] = n
		for _, child := range successors(n) {
			collect(child)
		}
	}
	for _, r := range roots {
		collect(r.Handle())
	}

	inDegree := make(map[kid.ID]int, len(nodes))
	for _, n := range nodes {
		for _, child := range successors(n) {
			inDegree[child.ID()]++
		}
	}

	var ready []*AnyNode
	for id, n := range nodes {
		if inDegree[id] == 0 {
			ready = append(ready, n)
		}
	}
	byID := func(a, b *AnyNode) int { return cmp.Compare(a.ID(), b.ID()) }
	slices.SortFunc(ready, byID)

	order := make([]*AnyNode, 0, len(nodes))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		for _, child := range successors(n) {
			inDegree[child.ID()]--
			if inDegree[child.ID()] == 0 {
				idx, _ := slices.BinarySearchFunc(ready, child, byID)
				ready = slices.Insert(ready, idx, child)
			}
		}
	}
	return order, nil
}

// successors returns the distinct owners of the inlets n feeds, in
// traversal order.
func successors(n *AnyNode) []*AnyNode {
	var out []*AnyNode
	seen := make(map[kid.ID]bool)
	n.Node().EachOut(func(p Port) {
		for peer := range p.Peers() {
			owner := peer.Owner()
			if owner == nil || seen[owner.ID()] {
				continue
			}
			seen[owner.ID()] = true
			out = append(out, owner)
		}
	})
	return out
}
