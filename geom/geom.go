/*package geom provides the small set of geometric primitives shared by the
simulation core: position/velocity vectors in unit-box coordinates and the
periodic-distance helpers that go with them.
*/
package geom

import (
	"math"
)

// Vec is a three component vector. Positions are stored in unit-box
// coordinates, [0, 1)^3, with the physical box width carried separately.
type Vec [3]float64

// Bound wraps x into [0, 1). The wrap is periodic, so -0.25 maps to 0.75
// and 1.25 maps to 0.25.
func Bound(x float64) float64 {
	x -= math.Floor(x)
	// Floor can round x - Floor(x) up to exactly 1 for tiny negative x.
	if x >= 1 {
		x -= 1
	}
	return x
}

// BoundSelf wraps every component of v into [0, 1).
func (v *Vec) BoundSelf() {
	v[0] = Bound(v[0])
	v[1] = Bound(v[1])
	v[2] = Bound(v[2])
}

// wrapDist returns the minimum-image separation of two unit-box
// coordinates along a single axis.
func wrapDist(x1, x2 float64) float64 {
	d := x1 - x2
	if d < 0 {
		d = -d
	}
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// Distance returns the minimum-image distance between two unit-box
// positions.
func Distance(v1, v2 *Vec) float64 {
	dx := wrapDist(v1[0], v2[0])
	dy := wrapDist(v1[1], v2[1])
	dz := wrapDist(v1[2], v2[2])

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
