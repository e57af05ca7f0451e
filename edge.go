package curb

import (
	"math"

	"github.com/paulmach/orb"
)

// Edge is the shorter great-circle arc between two vertices of a path.
type Edge struct {
	P0 orb.Point
	P1 orb.Point
}

// Edges returns the edges of a path in order.
func Edges(path orb.LineString) []Edge {
	if len(path) < 2 {
		return nil
	}
	out := make([]Edge, len(path)-1)
	for i := range out {
		out[i] = Edge{path[i], path[i+1]}
	}
	return out
}

func (e Edge) Start() orb.Point { return e.P0 }
func (e Edge) End() orb.Point   { return e.P1 }

// Length returns the length of the edge.
func (e Edge) Length(s Sphere) float64 {
	return s.Distance(e.P0, e.P1)
}

// At returns the point at distance dist from the start of the edge.
func (e Edge) At(s Sphere, dist float64) orb.Point {
	if dist <= 0 {
		return e.P0
	}
	return s.Destination(e.P0, s.Bearing(e.P0, e.P1), dist)
}

// Nearest returns the distance from pt to the closest point of the edge, and
// how far along the edge that point lies.
//
// The closest point is found by splitting the distance from the start of the
// edge to pt into its cross-track and along-track components, and clamping the
// latter to the edge.
func (e Edge) Nearest(s Sphere, pt orb.Point) (dist, along float64) {
	length := e.Length(s)
	d13 := s.Distance(e.P0, pt)
	if length == 0 || d13 == 0 {
		return d13, 0
	}

	delta13 := d13 / s.Radius
	dTheta := deg2rad(s.Bearing(e.P0, pt) - s.Bearing(e.P0, e.P1))
	if math.Cos(dTheta) <= 0 {
		// pt lies behind the start of the edge.
		return d13, 0
	}

	// tan(at) = tan(δ13)·cos(Δθ), which stays accurate close to the start.
	at := math.Atan2(math.Sin(delta13)*math.Cos(dTheta), math.Cos(delta13)) * s.Radius
	if at >= length {
		return s.Distance(e.P1, pt), length
	}
	return s.Distance(e.At(s, at), pt), at
}
