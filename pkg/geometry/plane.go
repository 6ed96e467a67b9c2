package geometry

import (
	"fmt"
	"math"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

// parallelEpsilon is the |D·N| cutoff below which a ray counts as
// parallel to the plane. Coplanar rays are treated the same way.
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point        core.Vec3 // A point on the plane
	Normal       core.Vec3 // Unit normal, fixed (never flipped toward the ray)
	SurfaceColor core.Vec3 // Channels in [0,255]
	Reflect      float64   // Mirror blend weight in [0,1]
}

// NewPlane creates a new plane, normalizing the normal and rejecting a
// zero-length one
func NewPlane(point, normal core.Vec3, color core.Vec3, reflectivity float64) (*Plane, error) {
	if normal.Length() == 0 {
		return nil, fmt.Errorf("plane normal must have non-zero length")
	}
	return &Plane{
		Point:        point,
		Normal:       normal.Normalize(),
		SurfaceColor: color,
		Reflect:      reflectivity,
	}, nil
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (*Intersection, bool) {
	denom := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denom) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return nil, false
	}

	return &Intersection{
		Point:    ray.At(t),
		Normal:   p.Normal,
		Distance: t,
		Object:   p,
	}, true
}

// Color returns the plane's base color
func (p *Plane) Color() core.Vec3 {
	return p.SurfaceColor
}

// Reflectivity returns the plane's mirror blend weight
func (p *Plane) Reflectivity() float64 {
	return p.Reflect
}
