package renderer

import (
	"math"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
	"github.com/mcastro/go-simple-raytracer/pkg/geometry"
)

// shadowEpsilon offsets secondary ray origins along the surface normal
// to avoid immediate self-intersection
const shadowEpsilon = 1e-3

// Config contains rendering configuration
type Config struct {
	MaxDepth   int // Maximum recursion depth for reflections
	NumWorkers int // Render workers; 1 renders on the calling goroutine, 0 means one per CPU
}

// DefaultConfig returns the reference rendering configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth:   3,
		NumWorkers: 1,
	}
}

// Scene interface to avoid a dependency on the scene package
type Scene interface {
	GetCamera() *Camera
	GetObjects() []geometry.Intersectable
	GetLight() core.Light
}

// Raytracer renders a scene by tracing one ray per pixel with diffuse
// lighting, hard shadows and recursive specular reflection
type Raytracer struct {
	scene  Scene
	config Config
}

// NewRaytracer creates a new raytracer with the default configuration
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: DefaultConfig(),
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// closestIntersection scans all objects and keeps the nearest forward
// hit. Ties go to the object seen first (strict < comparison).
func (rt *Raytracer) closestIntersection(ray core.Ray) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection
	minDist := math.MaxFloat64

	for _, obj := range rt.scene.GetObjects() {
		if hit, ok := obj.Intersect(ray); ok && hit.Distance < minDist {
			minDist = hit.Distance
			closest = hit
		}
	}

	return closest, closest != nil
}

// inShadow reports whether any object occludes the segment from the
// (already offset) shadow ray origin toward the light. A single
// occluder blocks all light; distance is not attenuated.
func (rt *Raytracer) inShadow(shadowRay core.Ray) bool {
	for _, obj := range rt.scene.GetObjects() {
		if hit, ok := obj.Intersect(shadowRay); ok && hit.Distance > shadowEpsilon {
			return true
		}
	}
	return false
}

// TraceRay returns the 8-bit color seen along the ray. Recursion is
// bounded by depth; depth 0 and rays that miss everything are black.
func (rt *Raytracer) TraceRay(ray core.Ray, depth int) core.RGB {
	if depth == 0 {
		return core.Black
	}

	hit, ok := rt.closestIntersection(ray)
	if !ok {
		return core.Black
	}

	light := rt.scene.GetLight()
	lightDir := light.Origin.Subtract(hit.Point).Normalize()
	diffuse := math.Max(0, hit.Normal.Dot(lightDir))

	intensity := light.Intensity.Multiply(1.0 / 255).Multiply(diffuse).Clamp(0, 1)
	lightColor := light.Color.Multiply(1.0 / 255).Clamp(0, 1)

	shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(shadowEpsilon)), lightDir)
	if rt.inShadow(shadowRay) {
		intensity = core.Vec3{}
	}

	// Base color scaled by the diffuse intensity, then by the light's
	// own color; both multiplications are part of the shading model
	local := hit.Object.Color().Multiply(1.0 / 255).MultiplyVec(intensity).Clamp(0, 1)
	shaded := local.Clamp(0, 1).MultiplyVec(lightColor.Clamp(0, 1)).Multiply(255)
	localColor := core.NewRGB(shaded.X, shaded.Y, shaded.Z)

	reflectivity := hit.Object.Reflectivity()
	if reflectivity > 0 {
		reflectedDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflectedRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(shadowEpsilon)), reflectedDir)
		reflectedColor := rt.TraceRay(reflectedRay, depth-1)
		return localColor.Lerp(reflectedColor, reflectivity)
	}

	return localColor
}

// Render traces every camera ray and returns the raster: width*height
// RGB triples in raster order (top-to-bottom, left-to-right). With
// NumWorkers > 1 rows are traced in parallel; the output order is the
// same either way.
func (rt *Raytracer) Render() []core.RGB {
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()
	pixels := make([]core.RGB, width*height)

	if rt.config.NumWorkers != 1 {
		pool := newWorkerPool(rt, rt.config.NumWorkers)
		pool.renderRows(pixels)
		return pixels
	}

	for j := 0; j < height; j++ {
		rt.renderRow(j, pixels[j*width:(j+1)*width])
	}
	return pixels
}

// renderRow traces all pixels of row j into the given row slice
func (rt *Raytracer) renderRow(j int, row []core.RGB) {
	camera := rt.scene.GetCamera()
	for i := 0; i < camera.Width(); i++ {
		row[i] = rt.TraceRay(camera.RayAt(i, j), rt.config.MaxDepth)
	}
}

// lightScene wires a camera, an object list and a light into the Scene
// interface for the standalone Render entry point
type lightScene struct {
	camera  *Camera
	objects []geometry.Intersectable
	light   core.Light
}

func (s *lightScene) GetCamera() *Camera { return s.camera }

func (s *lightScene) GetObjects() []geometry.Intersectable { return s.objects }

func (s *lightScene) GetLight() core.Light { return s.light }

// Render traces every ray of the camera against the object list and
// returns the raster in raster order. Convenience wrapper over
// Raytracer for callers that do not carry a Scene value.
func Render(camera *Camera, objects []geometry.Intersectable, light core.Light, maxDepth int) []core.RGB {
	rt := NewRaytracer(&lightScene{camera: camera, objects: objects, light: light})
	rt.SetConfig(Config{MaxDepth: maxDepth, NumWorkers: 1})
	return rt.Render()
}
