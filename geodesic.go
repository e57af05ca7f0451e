package curb

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// MeanEarthRadius is the IUGG mean radius of the Earth, in meters.
const MeanEarthRadius = 6371008.8

// DefaultEpsilon is the distance, in meters, below which two positions on a
// path are considered the same.
const DefaultEpsilon = 1e-6

// Sphere performs geodesic computations on a sphere. Distances are in the
// unit of Radius.
type Sphere struct {
	Radius float64
	// Epsilon is the distance below which positions are considered equal.
	Epsilon float64
}

// Earth is a sphere with the Earth's mean radius, measuring in meters.
var Earth = Sphere{Radius: MeanEarthRadius, Epsilon: DefaultEpsilon}

// Distance returns the great-circle distance between two points, using the
// haversine formula.
func (s Sphere) Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) * s.scale()
}

// Length returns the length of a path, the sum of the distances between its
// consecutive vertices.
func (s Sphere) Length(path orb.LineString) float64 {
	return geo.LengthHaversine(path) * s.scale()
}

// Destination returns the point reached by traveling dist along a great
// circle from p, starting with the given bearing (in degrees clockwise from
// north).
func (s Sphere) Destination(p orb.Point, bearing, dist float64) orb.Point {
	q := geo.PointAtBearingAndDistance(p, bearing, dist/s.scale())
	q[0] = normalizeLon(q[0])
	return q
}

// Bearing returns the initial bearing from a to b in degrees.
func (s Sphere) Bearing(a, b orb.Point) float64 {
	return geo.Bearing(a, b)
}

// scale converts orb's distances, which are measured on a sphere of radius
// orb.EarthRadius, to distances on s.
func (s Sphere) scale() float64 { return s.Radius / orb.EarthRadius }

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// normalizeLon maps a longitude to [-180, 180).
func normalizeLon(lon float64) float64 {
	if lon >= -180 && lon < 180 {
		return lon
	}
	return math.Mod(math.Mod(lon+180, 360)+360, 360) - 180
}

func isFinitePoint(p orb.Point) bool {
	return isFinite(p[0]) && isFinite(p[1])
}
