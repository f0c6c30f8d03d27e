// Command longshadow renders a shape with a long shadow to a PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/longshadow"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		angle    = flag.Float64("angle", longshadow.DefaultAngleDegrees, "shadow angle in degrees, counter-clockwise from +X")
		distance = flag.Float64("distance", -1, "throw distance in pixels (negative: image diagonal, inf: until off-image)")
		quality  = flag.Float64("quality", 1, "mask resolution in (0, 1]")
		fill     = flag.String("fill", "#00000026", "shadow color")
		fade     = flag.Bool("fade", false, "fade the shadow out along its length")
		bg       = flag.String("bg", "#195A72", "background color")
		shape    = flag.String("shape", "square", "shape to draw: square, circle or star")
		label    = flag.String("text", "", "draw this text instead of a shape")
		size     = flag.Float64("size", 120, "font size for -text")
		output   = flag.String("o", "longshadow.png", "output file")
		verbose  = flag.Bool("v", false, "log render details")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		longshadow.SetLogger(logger)
		gg.SetLogger(logger)
	}

	painter, ok := shapes[*shape]
	if !ok {
		log.Fatalf("Unknown shape %q", *shape)
	}
	if *label != "" {
		src, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		painter = longshadow.TextShape(src, *size, *label)
	}

	r, err := longshadow.NewRenderer(*width, *height, longshadow.WithQuality(*quality))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	opts := []longshadow.RenderOption{
		longshadow.WithAngleDegrees(*angle),
		longshadow.WithFillHex(*fill),
	}
	if *distance >= 0 {
		opts = append(opts, longshadow.WithThrowDistance(*distance))
	}
	if *fade {
		length := math.Hypot(float64(*width), float64(*height)) / 2
		if *distance >= 0 && !math.IsInf(*distance, 1) {
			length = *distance
		}
		opts = append(opts, longshadow.WithFillPainter(fadeFill(gg.Hex(*fill), length)))
	}

	dc := gg.NewContext(*width, *height)
	dc.SetHexColor(*bg)
	dc.Clear()

	dc.Translate(float64(*width)/2, float64(*height)/2)
	if err := r.Render(dc, painter, opts...); err != nil {
		log.Fatalf("Failed to render shadow: %v", err)
	}

	// The shadow leaves the shape itself transparent; paint it on top.
	dc.SetHexColor("#33B5E5")
	if err := painter(dc); err != nil {
		log.Fatalf("Failed to draw shape: %v", err)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Shadow saved to %s (%dx%d)\n", *output, *width, *height)
}

var shapes = map[string]longshadow.ShapePainter{
	"square": func(dc *gg.Context) error {
		dc.Push()
		defer dc.Pop()
		dc.Rotate(0.15)
		dc.DrawRectangle(-100, -100, 200, 200)
		return dc.Fill()
	},
	"circle": func(dc *gg.Context) error {
		dc.DrawCircle(0, 0, 100)
		return dc.Fill()
	},
	"star": func(dc *gg.Context) error {
		points := 5
		outerR := 120.0
		innerR := 55.0

		for i := 0; i < points*2; i++ {
			angle := float64(i) * math.Pi / float64(points)
			r := outerR
			if i%2 == 1 {
				r = innerR
			}
			x := r * math.Cos(angle-math.Pi/2)
			y := r * math.Sin(angle-math.Pi/2)

			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		return dc.Fill()
	},
}

// fadeFill returns a fill painter with a gradient from c to transparent,
// aligned with the shadow direction.
func fadeFill(c gg.RGBA, length float64) longshadow.FillPainter {
	return func(dc *gg.Context, angle float64) error {
		dc.Rotate(-angle)
		dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, length, 0).
			AddColorStop(0, c).
			AddColorStop(1, gg.RGBA2(c.R, c.G, c.B, 0)))
		return nil
	}
}
