package curb

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var errShortPath = errors.New("path needs at least two vertices")

// Along returns the point at distance dist from the start of path, measured
// along the path.
//
// Distances within Epsilon of either end of the path return the respective
// end vertex. Inside an edge, the point is found by traveling along the great
// circle through the edge's vertices, not by interpolating coordinates.
func (s Sphere) Along(path orb.LineString, dist float64) (orb.Point, error) {
	if len(path) < 2 {
		return orb.Point{}, errShortPath
	}
	if !isFinite(dist) {
		return orb.Point{}, fmt.Errorf("distance %g along path", dist)
	}
	if dist <= s.Epsilon {
		return path[0], nil
	}
	if dist >= s.Length(path)-s.Epsilon {
		return path[len(path)-1], nil
	}

	pt, _ := geo.PointAtDistanceAlongLine(path, dist/s.scale())
	pt[0] = normalizeLon(pt[0])
	if !isFinitePoint(pt) {
		return orb.Point{}, fmt.Errorf("point %g along path is %v", dist, pt)
	}
	return pt, nil
}

// Slice returns the part of path between the points start and end.
//
// Both points are located on the path by finding the nearest point of the
// nearest edge. The result begins with start, continues with the path's
// vertices that lie strictly between the two points, and ends with end. If
// end comes before start, the vertices are visited backwards. A point within
// Epsilon of a vertex is replaced by that vertex.
func (s Sphere) Slice(path orb.LineString, start, end orb.Point) (orb.LineString, error) {
	if len(path) < 2 {
		return nil, errShortPath
	}
	cum := s.cumulative(path)

	start, startPos, err := s.locate(path, cum, start)
	if err != nil {
		return nil, fmt.Errorf("locating start: %w", err)
	}
	end, endPos, err := s.locate(path, cum, end)
	if err != nil {
		return nil, fmt.Errorf("locating end: %w", err)
	}

	out := orb.LineString{start}
	if startPos <= endPos {
		for i, pos := range cum {
			if pos > startPos+s.Epsilon && pos < endPos-s.Epsilon {
				out = append(out, path[i])
			}
		}
	} else {
		for i := len(cum) - 1; i >= 0; i-- {
			if pos := cum[i]; pos < startPos-s.Epsilon && pos > endPos+s.Epsilon {
				out = append(out, path[i])
			}
		}
	}
	out = append(out, end)

	if len(out) == 2 && s.Distance(start, end) <= s.Epsilon {
		return nil, errors.New("start and end coincide")
	}
	return out, nil
}

// cumulative returns the distance of each vertex from the start of the path.
func (s Sphere) cumulative(path orb.LineString) []float64 {
	out := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		out[i] = out[i-1] + s.Distance(path[i-1], path[i])
	}
	return out
}

// locate finds the position along path of the point closest to pt. If that
// point is within Epsilon of a vertex, the vertex is returned instead of pt.
func (s Sphere) locate(path orb.LineString, cum []float64, pt orb.Point) (orb.Point, float64, error) {
	if !isFinitePoint(pt) {
		return orb.Point{}, 0, fmt.Errorf("unresolvable point %v", pt)
	}
	for i, v := range path {
		if s.Distance(v, pt) <= s.Epsilon {
			return v, cum[i], nil
		}
	}

	var best option[[2]float64]
	for i, e := range Edges(path) {
		dist, along := e.Nearest(s, pt)
		if !isFinite(dist) || !isFinite(along) {
			continue
		}
		if !best.isSet || dist < best.value[0] {
			best.set([2]float64{dist, cum[i] + along})
		}
	}
	if !best.isSet {
		return orb.Point{}, 0, fmt.Errorf("no edge near %v", pt)
	}
	return pt, best.value[1], nil
}
