package longshadow

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/longshadow/internal/composite"
)

// rasterizeShape paints the opaque silhouette of the shape into the shape
// surface at mask resolution, with the painter's origin at p's origin.
func (r *Renderer) rasterizeShape(shape ShapePainter, p renderParams) error {
	s := r.shape
	s.reset()

	dc := s.dc
	dc.Push()
	defer dc.Pop()

	dc.SetFillBrush(gg.Solid(gg.Black))
	dc.Scale(r.maskScale, r.maskScale)
	dc.Translate(p.originX, p.originY)
	if err := shape(dc); err != nil {
		return err
	}
	// A registered GPU accelerator may still hold batched fills.
	return dc.FlushGPU()
}

// extrudeMask stretches the shape surface along the shadow angle into the
// mask surface and returns the number of copies drawn.
func (r *Renderer) extrudeMask(p renderParams) int {
	r.mask.reset()
	return extrude(r.mask.buffer(), r.shape.buffer(), p.angle, p.throwDistance*r.maskScale)
}

// extrude clears dst, draws src source-over at i*(cos a, -sin a) for
// i = 1, 2, ... while i < distance, then erases the footprint of src at
// offset zero with destination-out. The loop stops once the painted area
// of src has left dst; the early exit never skips a visible copy.
func extrude(dst, src *composite.Buffer, angle, distance float64) int {
	dst.Clear()

	strideX := math.Cos(angle)
	strideY := -math.Sin(angle)

	bounds := composite.Bounds(src)
	if bounds.Empty() {
		return 0
	}

	n := 0
	for i := 1; float64(i) < distance; i++ {
		x := float64(i) * strideX
		y := float64(i) * strideY
		if !overlaps(bounds, x, y, dst.Width, dst.Height) {
			break
		}
		composite.DrawRegion(dst, src, bounds, x, y, composite.SourceOver)
		n++
	}

	composite.DrawRegion(dst, src, bounds, 0, 0, composite.DestinationOut)
	return n
}

// overlaps reports whether b shifted by (x, y) can touch a w x h surface.
// One pixel of slack covers the spread of fractional offsets.
func overlaps(b image.Rectangle, x, y float64, w, h int) bool {
	return float64(b.Max.X)+x+1 > 0 &&
		float64(b.Min.X)+x-1 < float64(w) &&
		float64(b.Max.Y)+y+1 > 0 &&
		float64(b.Min.Y)+y-1 < float64(h)
}

// compositeFill paints the output surface with the resolved fill and keeps
// it only where the mask is opaque.
func (r *Renderer) compositeFill(p renderParams) error {
	s := r.output
	s.reset()

	dc := s.dc
	dc.Push()
	dc.SetFillBrush(gg.Solid(DefaultFill))
	dc.Translate(p.originX, p.originY)
	err := p.fill(dc, p.angle)
	brush := dc.FillBrush()
	inv := dc.GetTransform().Invert()
	dc.Pop()
	if err != nil {
		return err
	}

	out := s.buffer()
	paintBrush(out, brush, inv)

	composite.ExtractAlpha(r.maskAlpha, r.mask.buffer())
	composite.ScaleAlpha(r.fullAlpha, r.maskAlpha)
	composite.MaskIn(out, r.fullAlpha)
	return nil
}

// paintBrush fills every pixel of dst with brush, sampled at pixel centers
// mapped through inv into the brush's user space.
func paintBrush(dst *composite.Buffer, brush gg.Brush, inv gg.Matrix) {
	if sb, ok := brush.(gg.SolidBrush); ok {
		dst.Fill(rgba8(sb.Color))
		return
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			pt := inv.TransformPoint(gg.Pt(float64(x)+0.5, float64(y)+0.5))
			cr, cg, cb, ca := rgba8(brush.ColorAt(pt.X, pt.Y))
			dst.Set(x, y, cr, cg, cb, ca)
		}
	}
}

// blit draws the output surface onto dst at (-originX, -originY) in dst's
// user space, under dst's full transform.
func (r *Renderer) blit(dst *gg.Context, p renderParams) error {
	if err := dst.FlushGPU(); err != nil {
		return err
	}
	m := dst.GetTransform().Multiply(gg.Translate(-p.originX, -p.originY))
	target := pixmapBuffer(dst.ResizeTarget())

	if m.IsTranslation() {
		composite.Draw(target, r.output.buffer(), m.C, m.F, composite.SourceOver)
		return nil
	}
	// A singular transform collapses the shadow to zero area.
	if math.Abs(m.A*m.E-m.B*m.D) < 1e-10 {
		return nil
	}
	composite.DrawTransformed(target, r.output.buffer(), f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F})
	return nil
}

// rgba8 converts a gg color to straight 8-bit channels.
func rgba8(c gg.RGBA) (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
