// Package knodes provides ready-made kgraph nodes: generic value
// transforms, parameter holders and image sources, filters and sinks.
//
//	src := knodes.NewImageSource(img)
//	scale := knodes.NewScale(640, 360)
//	out := knodes.NewCapture()
//	kgraph.Pipe[image.Image](kgraph.Pipe[image.Image](src, scale), out)
//	src.Update()
package knodes
