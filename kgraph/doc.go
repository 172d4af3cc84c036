// Package kgraph is a typed dataflow graph of nodes and ports.
//
// A node owns a fixed collection of inlets and a fixed collection of
// outlets. An Outlet[T] connects to any number of Inlet[T]; pushing a value
// into an outlet delivers it synchronously, depth first, to every connected
// inlet and its observers before Update returns. Connecting ports of
// different payload types does not compile.
//
//	src := kgraph.NewSourceNode(func() int { return 42 })
//	sink := kgraph.NewSinkNode(func(v int) { fmt.Println(v) })
//	kgraph.Pipe[int](src, sink)
//	src.Update() // prints 42
//
// # Identity
//
// Nodes and ports get ids from a kid.Allocator when constructed, the node
// first and then its ports in declaration order. Ports and nodes are
// compared and keyed by id.
//
// # Traversal
//
// Concrete node types embed a node kind (Node, IONode, SourceNode,
// SinkNode) and call Bind on themselves. Accept then walks everything
// downstream of a node and dispatches each reached node to the visitor by
// its concrete type:
//
//	root.Accept(kgraph.Visitors(
//		kgraph.On(func(n *Blur) { ... }),
//		kgraph.On(func(n kgraph.GenericNode) { ... }),
//	))
//
// Nothing in this package is safe for concurrent use.
package kgraph
