package component

import "mistery/internal/geom"

type Position struct {
	geom.Point
}

// WantsToMove is a one-tick request to step onto To.
type WantsToMove struct {
	To geom.Point
}
