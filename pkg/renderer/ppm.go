package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

// WritePPM writes the raster as a plain-text PPM (P3) image: header,
// dimensions, max channel value, then one "r g b" triple per line in
// raster order.
func WritePPM(w io.Writer, width, height int, pixels []core.RGB) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel count %d does not match %dx%d raster", len(pixels), width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "P3")
	fmt.Fprintf(bw, "%d %d\n", width, height)
	fmt.Fprintln(bw, "255")

	for _, p := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
	}

	return bw.Flush()
}

// RasterImage assembles the raster into an RGBA image
func RasterImage(width, height int, pixels []core.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			p := pixels[j*width+i]
			img.SetRGBA(i, j, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// WritePNG writes the raster as a PNG image
func WritePNG(w io.Writer, width, height int, pixels []core.RGB) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel count %d does not match %dx%d raster", len(pixels), width, height)
	}
	return png.Encode(w, RasterImage(width, height, pixels))
}
