package scene

import (
	"github.com/mcastro/go-simple-raytracer/pkg/core"
	"github.com/mcastro/go-simple-raytracer/pkg/geometry"
	"github.com/mcastro/go-simple-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the camera,
// the object list and the single point light. The scene owns its
// primitives; intersection records reference them without owning.
type Scene struct {
	Camera  *renderer.Camera
	Objects []geometry.Intersectable
	Light   core.Light
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetObjects returns the ordered object list
func (s *Scene) GetObjects() []geometry.Intersectable {
	return s.Objects
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() core.Light {
	return s.Light
}
