package scene

import (
	"fmt"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
	"github.com/mcastro/go-simple-raytracer/pkg/geometry"
	"github.com/mcastro/go-simple-raytracer/pkg/renderer"
)

// NewDefaultScene creates the reference scene: a mirror sphere flanked
// by two matte spheres above a blue ground plane, lit by a single
// magenta-tinted point light.
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		Origin:   core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Distance: 1.0,
		Width:    width,
		Height:   height,
		VFov:     90,
	})
	if err != nil {
		return nil, fmt.Errorf("building camera: %w", err)
	}

	mirrorSphere, err := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, core.NewVec3(200, 200, 200), 1.0)
	if err != nil {
		return nil, err
	}
	yellowSphere, err := geometry.NewSphere(core.NewVec3(-2, -0.5, 1), 0.5, core.NewVec3(255, 255, 0), 0)
	if err != nil {
		return nil, err
	}
	redSphere, err := geometry.NewSphere(core.NewVec3(2, 0.75, 2), 1.5, core.NewVec3(255, 0, 0), 0)
	if err != nil {
		return nil, err
	}
	ground, err := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 255), 0)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Camera: camera,
		Objects: []geometry.Intersectable{
			mirrorSphere,
			yellowSphere,
			redSphere,
			ground,
		},
		Light: core.NewLight(
			core.NewVec3(-5, 5, 5),
			core.NewVec3(255, 255, 255),
			core.NewVec3(255, 0, 100),
		),
	}, nil
}

// NewMirrorScene is the default scene with a partially reflective
// ground plane, useful for exercising deeper reflection bounces
func NewMirrorScene(width, height int) (*Scene, error) {
	s, err := NewDefaultScene(width, height)
	if err != nil {
		return nil, err
	}

	ground, err := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 255), 0.4)
	if err != nil {
		return nil, err
	}
	s.Objects[len(s.Objects)-1] = ground
	return s, nil
}
