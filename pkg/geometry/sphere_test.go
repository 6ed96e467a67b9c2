package geometry

import (
	"math"
	"testing"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, core.NewVec3(200, 200, 200), 0)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return s
}

func TestNewSphere_RejectsInvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius, core.NewVec3(255, 0, 0), 0); err == nil {
			t.Errorf("Expected error for radius %g, got nil", radius)
		}
	}
}

func TestSphere_IntersectRoundTrip(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected intersection, got none")
	}

	// Ray enters the sphere at the known surface point (0, 0, -4)
	expected := core.NewVec3(0, 0, -4)
	if hit.Point.Subtract(expected).Length() > 1e-4 {
		t.Errorf("Expected hit point %v, got %v", expected, hit.Point)
	}
	if math.Abs(hit.Distance-4) > 1e-4 {
		t.Errorf("Expected distance 4, got %v", hit.Distance)
	}

	// Normal must be unit length and point away from the center
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %v", hit.Normal.Length())
	}
	outward := hit.Point.Subtract(sphere.Center)
	if hit.Normal.Dot(outward) <= 0 {
		t.Errorf("Normal %v does not point away from center", hit.Normal)
	}
	if hit.Object != sphere {
		t.Error("Hit record does not reference the intersected sphere")
	}
}

func TestSphere_IntersectMiss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected no intersection for a ray missing the sphere")
	}
}

func TestSphere_IntersectBehindOrigin(t *testing.T) {
	// Sphere entirely behind the ray origin: both roots negative
	sphere := mustSphere(t, core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected no intersection for a sphere behind the ray")
	}
}

func TestSphere_IntersectFromInside(t *testing.T) {
	// Origin inside the sphere: the nearer root is behind, so the
	// farther one must be returned
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 2.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected intersection from inside the sphere")
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("Expected distance 2, got %v", hit.Distance)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -2)).Length() > 1e-9 {
		t.Errorf("Expected hit point (0,0,-2), got %v", hit.Point)
	}
}

func TestSphere_GrazingRayHits(t *testing.T) {
	// Tangent ray: zero discriminant counts as a hit
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected tangent ray to intersect")
	}
	if hit.Point.Subtract(core.NewVec3(1, 0, -5)).Length() > 1e-6 {
		t.Errorf("Expected tangent point (1,0,-5), got %v", hit.Point)
	}
}
