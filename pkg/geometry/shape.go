package geometry

import "github.com/mcastro/go-simple-raytracer/pkg/core"

// Intersection contains information about a ray-object intersection.
// Records are created per intersection test and discarded after shading;
// Object is a non-owning reference into the scene's object list.
type Intersection struct {
	Point    core.Vec3     // Point of intersection
	Normal   core.Vec3     // Surface normal at intersection (unit length)
	Distance float64       // Parameter t along the ray, always >= 0
	Object   Intersectable // The primitive that was hit
}

// Intersectable is the contract every primitive satisfies so the tracer
// can treat heterogeneous shapes uniformly.
type Intersectable interface {
	// Intersect returns the nearest forward intersection (t >= 0) of the
	// ray with this primitive, or false if there is none. Intersections
	// behind the ray origin are never returned.
	Intersect(ray core.Ray) (*Intersection, bool)

	// Color returns the primitive's base color, channels in [0,255]
	Color() core.Vec3

	// Reflectivity returns the mirror blend weight in [0,1]
	Reflectivity() float64
}
