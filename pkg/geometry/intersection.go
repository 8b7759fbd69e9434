package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// Intersection pairs a ray parameter with the shape struck at it
type Intersection struct {
	T      float64
	Object Shape
}

// Intersect runs the shape's intersection test and wraps each t value
// with the shape reference, so callers can recover the struck object
// from a hit later
func Intersect(shape Shape, ray core.Ray) []Intersection {
	ts := shape.Intersect(ray)
	if len(ts) == 0 {
		return nil
	}
	intersections := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		intersections = append(intersections, Intersection{T: t, Object: shape})
	}
	return intersections
}

// Hit selects the visually significant intersection: the lowest t
// strictly greater than zero. Intersections behind the ray origin, or
// exactly at it, never produce a hit. A miss reports ok=false; that is
// an ordinary outcome, not an error.
func Hit(intersections []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, i := range intersections {
		if i.T <= 0 {
			continue
		}
		if !found || i.T < hit.T {
			hit = i
			found = true
		}
	}
	return hit, found
}
