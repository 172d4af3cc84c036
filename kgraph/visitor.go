package kgraph

// Visitor is anything passed to Accept. A visitor is matched against each
// reached node by type: it handles a node of concrete type N if it
// implements VisitorOf[N], and handles every node it has no specific case
// for if it implements VisitorOf[GenericNode].
type Visitor any

// VisitorOf handles nodes of type T.
type VisitorOf[T any] interface {
	Visit(node T)
}

type visitFunc[T any] func(T)

func (f visitFunc[T]) Visit(node T) {
	f(node)
}

// On returns a visitor calling fn for nodes of type T. Combine several with
// Visitors:
//
//	root.Accept(kgraph.Visitors(
//		kgraph.On(func(n *knodes.Scale) { ... }),
//		kgraph.On(func(n kgraph.GenericNode) { ... }),
//	))
func On[T any](fn func(T)) Visitor {
	return visitFunc[T](fn)
}

type multiVisitor []Visitor

// Visitors combines visitors into one. For every node the first member with
// a case for the node's concrete type wins; only if there is none, the first
// member with a GenericNode case is used.
func Visitors(vs ...Visitor) Visitor {
	var m multiVisitor
	for _, v := range vs {
		if inner, ok := v.(multiVisitor); ok {
			m = append(m, inner...)
			continue
		}
		m = append(m, v)
	}
	return m
}

func dispatch[N GenericNode](node N, v Visitor) bool {
	members, ok := v.(multiVisitor)
	if !ok {
		members = multiVisitor{v}
	}
	for _, m := range members {
		if vv, ok := m.(VisitorOf[N]); ok {
			vv.Visit(node)
			return true
		}
	}
	for _, m := range members {
		if vv, ok := m.(VisitorOf[GenericNode]); ok {
			vv.Visit(node)
			return true
		}
	}
	return false
}
