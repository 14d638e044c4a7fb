// Command g2ddemo renders one frame exercising every blend mode and the
// stencil clip modes, then writes the result as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/g2d"
)

func main() {
	var (
		width  = flag.Uint("width", 800, "image width")
		height = flag.Uint("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	device, queue, release, err := g2d.OpenDevice()
	if err != nil {
		log.Fatalf("Failed to open GPU device: %v", err)
	}
	defer release()

	r, err := g2d.NewRenderer(device, queue)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Destroy()

	target, err := r.CreateTarget(uint32(*width), uint32(*height))
	if err != nil {
		log.Fatalf("Failed to create target: %v", err)
	}
	defer target.Destroy()

	err = r.WithFrame(target, g2d.Viewport{}, func(f *g2d.Frame) error {
		if err := f.ClearColor(g2d.RGB(0.9, 0.9, 0.85)); err != nil {
			return err
		}
		if err := f.ClearStencil(0); err != nil {
			return err
		}
		if err := drawBlendRow(f); err != nil {
			return err
		}
		return drawClippedBadge(f)
	})
	if err != nil {
		log.Fatalf("Failed to render frame: %v", err)
	}

	img, err := r.ReadPixels(target)
	if err != nil {
		log.Fatalf("Failed to read pixels: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// quad covers a rectangle with two triangles in clip space.
func quad(x0, y0, x1, y1 float32) []float32 {
	return []float32{
		x0, y0, x1, y0, x1, y1,
		x0, y0, x1, y1, x0, y1,
	}
}

// drawBlendRow draws one overlapping pair of quads per blend mode across
// the top half of the target.
func drawBlendRow(f *g2d.Frame) error {
	modes := []g2d.BlendMode{
		g2d.BlendNone,
		g2d.BlendAlpha,
		g2d.BlendAdd,
		g2d.BlendMultiply,
		g2d.BlendInvert,
	}

	cell := 2.0 / float32(len(modes))
	for i, mode := range modes {
		x := -1 + float32(i)*cell

		base, err := f.ColoredTriangles(g2d.DrawState{}, g2d.RGB(0.2, 0.4, 0.8))
		if err != nil {
			return err
		}
		if err := base.Submit(quad(x+cell*0.1, 0.15, x+cell*0.7, 0.85)); err != nil {
			return err
		}

		over, err := f.ColoredTriangles(g2d.DrawState{Blend: mode},
			g2d.Color{R: 1, G: 0.5, A: 0.6})
		if err != nil {
			return err
		}
		if err := over.Submit(quad(x+cell*0.3, 0.05, x+cell*0.9, 0.75)); err != nil {
			return err
		}
	}
	return nil
}

// drawClippedBadge masks a triangle in the bottom half and fills inside
// and outside it with different colors.
func drawClippedBadge(f *g2d.Frame) error {
	mask, err := f.ColoredTriangles(g2d.DrawState{
		Clip: g2d.Clip{Mode: g2d.ClipMask, Ref: 255},
	}, g2d.Black)
	if err != nil {
		return err
	}
	if err := mask.Submit([]float32{
		-0.5, -0.9,
		0.5, -0.9,
		0, -0.1,
	}); err != nil {
		return err
	}

	inside, err := f.ColoredTriangles(g2d.DrawState{
		Clip: g2d.Clip{Mode: g2d.ClipInside, Ref: 255},
	}, g2d.RGB(0.9, 0.3, 0.1))
	if err != nil {
		return err
	}
	if err := inside.Submit(quad(-1, -1, 1, 0)); err != nil {
		return err
	}

	outside, err := f.ColoredTriangles(g2d.DrawState{
		Clip:    g2d.Clip{Mode: g2d.ClipOutside, Ref: 255},
		Blend:   g2d.BlendMultiply,
		Scissor: &g2d.ScissorRect{X: 0, Y: 0, W: 65535, H: 65535},
	}, g2d.RGB(0.7, 0.7, 0.9))
	if err != nil {
		return err
	}
	return outside.Submit(quad(-1, -1, 1, 0))
}
