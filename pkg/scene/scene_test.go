package scene

import (
	"testing"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
	"github.com/mcastro/go-simple-raytracer/pkg/geometry"
)

func TestNewDefaultScene(t *testing.T) {
	s, err := NewDefaultScene(800, 600)
	if err != nil {
		t.Fatalf("NewDefaultScene failed: %v", err)
	}

	if s.GetCamera() == nil {
		t.Fatal("Expected a camera")
	}
	if got := s.GetCamera().Width(); got != 800 {
		t.Errorf("Expected width 800, got %d", got)
	}
	if got := len(s.GetObjects()); got != 4 {
		t.Errorf("Expected 4 objects, got %d", got)
	}

	light := s.GetLight()
	if light.Origin != core.NewVec3(-5, 5, 5) {
		t.Errorf("Expected light at (-5,5,5), got %v", light.Origin)
	}
	if light.Color != core.NewVec3(255, 0, 100) {
		t.Errorf("Expected light color (255,0,100), got %v", light.Color)
	}

	// First object is the mirror sphere, last is the matte ground
	if got := s.GetObjects()[0].Reflectivity(); got != 1.0 {
		t.Errorf("Expected fully reflective first sphere, got %v", got)
	}
	ground, ok := s.GetObjects()[3].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected a plane as last object, got %T", s.GetObjects()[3])
	}
	if ground.Reflectivity() != 0 {
		t.Errorf("Expected matte ground, got reflectivity %v", ground.Reflectivity())
	}
}

func TestNewMirrorScene(t *testing.T) {
	s, err := NewMirrorScene(100, 100)
	if err != nil {
		t.Fatalf("NewMirrorScene failed: %v", err)
	}

	ground := s.GetObjects()[len(s.GetObjects())-1]
	if got := ground.Reflectivity(); got != 0.4 {
		t.Errorf("Expected reflective ground 0.4, got %v", got)
	}
}

func TestNewDefaultScene_InvalidDimensions(t *testing.T) {
	if _, err := NewDefaultScene(0, 100); err == nil {
		t.Error("Expected error for zero width, got nil")
	}
}
