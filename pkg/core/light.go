package core

// Light is a point light source. Intensity and Color channels are in
// [0,255]; the tracer scales both into [0,1] when shading.
type Light struct {
	Origin    Vec3
	Intensity Vec3
	Color     Vec3
}

// NewLight creates a point light
func NewLight(origin, intensity, color Vec3) Light {
	return Light{Origin: origin, Intensity: intensity, Color: color}
}
