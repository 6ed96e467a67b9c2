package core

// RGB is an 8-bit color triple in raster output range.
// Tracing works in float space and quantizes to RGB at each shading
// step; the truncating conversion is part of the output contract.
type RGB struct {
	R, G, B uint8
}

// Black is the background and recursion-limit color
var Black = RGB{0, 0, 0}

// NewRGB truncates float channel values in [0,255] to an 8-bit triple
func NewRGB(r, g, b float64) RGB {
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Vec3 returns the color channels as a float vector in [0,255]
func (c RGB) Vec3() Vec3 {
	return Vec3{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}

// Lerp blends two quantized colors channel by channel: c*(1-t) + other*t,
// truncated back to 8 bits
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(c.R)*(1-t) + float64(other.R)*t),
		G: uint8(float64(c.G)*(1-t) + float64(other.G)*t),
		B: uint8(float64(c.B)*(1-t) + float64(other.B)*t),
	}
}
