package geometry

import (
	"fmt"
	"math"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

// Sphere represents a sphere primitive with a flat surface color
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	SurfaceColor core.Vec3 // Channels in [0,255]
	Reflect      float64   // Mirror blend weight in [0,1]
}

// NewSphere creates a new sphere, rejecting degenerate geometry
func NewSphere(center core.Vec3, radius float64, color core.Vec3, reflectivity float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Center:       center,
		Radius:       radius,
		SurfaceColor: color,
		Reflect:      reflectivity,
	}, nil
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root; fall back to the farther one when the
	// origin is inside the sphere. Both behind the origin means no hit.
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		return nil, false
	}

	point := ray.At(t)
	return &Intersection{
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Distance: t,
		Object:   s,
	}, true
}

// Color returns the sphere's base color
func (s *Sphere) Color() core.Vec3 {
	return s.SurfaceColor
}

// Reflectivity returns the sphere's mirror blend weight
func (s *Sphere) Reflectivity() float64 {
	return s.Reflect
}
