package kgraph

// Connect links out to in. Both ends must carry the same payload type,
// anything else does not compile. It returns false if they were already
// connected.
func Connect[T any](out *Outlet[T], in *Inlet[T]) bool {
	return out.Connect(in)
}

// Disconnect removes the link between out and in, on both ends.
func Disconnect[T any](out *Outlet[T], in *Inlet[T]) bool {
	return out.Disconnect(in)
}

// Emitter is a node whose first outlet carries T.
type Emitter[T any] interface {
	Out0() *Outlet[T]
}

// Receiver is a node whose first inlet carries T.
type Receiver[T any] interface {
	In0() *Inlet[T]
}

// Pipe connects output 0 of src to input 0 of dst and returns dst, so chains
// read left to right:
//
//	kgraph.Pipe[int](kgraph.Pipe[int](a, b), c)
func Pipe[T any, R Receiver[T]](src Emitter[T], dst R) R {
	Connect(src.Out0(), dst.In0())
	return dst
}
