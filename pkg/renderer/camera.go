package renderer

import (
	"fmt"
	"math"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Origin   core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // Up direction hint
	Distance float64   // Distance from origin to the image plane
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
	VFov     float64   // Vertical field of view in degrees
}

// Camera generates one primary ray per pixel from an orthonormal view
// basis. Immutable after construction.
type Camera struct {
	origin     core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	distance   float64
	width      int
	height     int
	halfWidth  float64 // Half the image plane width in world units
	halfHeight float64 // Half the image plane height in world units
}

// NewCamera creates a camera from the config, deriving the view basis:
// forward toward the look-at point, right = forward x up, up re-derived
// to make the basis orthonormal. Fails when the configuration cannot
// produce a sane basis.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.Distance <= 0 {
		return nil, fmt.Errorf("camera image plane distance must be positive, got %g", config.Distance)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0, 180) degrees, got %g", config.VFov)
	}

	toTarget := config.LookAt.Subtract(config.Origin)
	if toTarget.Length() == 0 {
		return nil, fmt.Errorf("camera look-at point coincides with origin")
	}
	forward := toTarget.Normalize()

	rightCross := forward.Cross(config.Up)
	if rightCross.Length() == 0 {
		return nil, fmt.Errorf("camera up hint is parallel to the view direction")
	}
	right := rightCross.Normalize()
	up := right.Cross(forward).Normalize()

	fovRad := config.VFov * math.Pi / 180
	planeHeight := 2 * math.Tan(fovRad/2) * config.Distance
	planeWidth := planeHeight * float64(config.Width) / float64(config.Height)

	return &Camera{
		origin:     config.Origin,
		forward:    forward,
		right:      right,
		up:         up,
		distance:   config.Distance,
		width:      config.Width,
		height:     config.Height,
		halfWidth:  planeWidth / 2,
		halfHeight: planeHeight / 2,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Forward returns the camera's unit view direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// RayAt generates the primary ray through the center of pixel (i, j),
// with i growing left to right and j growing top to bottom. Stateless:
// the same pixel always yields the same ray.
func (c *Camera) RayAt(i, j int) core.Ray {
	pixelX := (float64(i) + 0.5) / float64(c.width)
	pixelY := (float64(j) + 0.5) / float64(c.height)

	// Map [0,1] pixel coordinates to signed screen-space offsets:
	// +x to the right, +y toward the top row
	screenX := (2*pixelX - 1) * c.halfWidth
	screenY := (1 - 2*pixelY) * c.halfHeight

	pixelPos := c.origin.
		Add(c.forward.Multiply(c.distance)).
		Add(c.right.Multiply(screenX)).
		Add(c.up.Multiply(screenY))

	return core.NewRay(c.origin, pixelPos.Subtract(c.origin))
}

// GenerateRays returns all width*height primary rays in raster order
// (top-to-bottom rows, left-to-right within a row)
func (c *Camera) GenerateRays() []core.Ray {
	rays := make([]core.Ray, 0, c.width*c.height)
	for j := 0; j < c.height; j++ {
		for i := 0; i < c.width; i++ {
			rays = append(rays, c.RayAt(i, j))
		}
	}
	return rays
}
