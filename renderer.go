package longshadow

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Renderer synthesizes long shadows for shapes of a fixed maximum size.
//
// A Renderer owns three offscreen surfaces, allocated once by NewRenderer
// and reused by every call: the rasterized shape and the extruded mask at
// mask resolution, and the colored shadow at full resolution. Each call
// clears them before drawing, so no state carries over between calls.
//
// A Renderer is not safe for concurrent use. Serialize calls to one
// instance, or create one Renderer per goroutine.
type Renderer struct {
	width, height int
	maskScale     float64
	maskW, maskH  int

	shape  *surface // mask resolution
	mask   *surface // mask resolution
	output *surface // full resolution

	maskAlpha *image.Alpha // mask alpha at mask resolution
	fullAlpha *image.Alpha // mask alpha scaled to full resolution
}

// NewRenderer creates a renderer for shadows of at most width x height
// pixels. It returns a *ConfigError if a dimension is not positive or the
// mask scale lies outside (0, 1].
//
// Example:
//
//	r, err := longshadow.NewRenderer(500, 500, longshadow.WithMaskScale(0.5))
//	if err != nil {
//	    return err
//	}
//	err = r.Render(dc, func(dc *gg.Context) error {
//	    dc.DrawCircle(0, 0, 80)
//	    return dc.Fill()
//	}, longshadow.WithAngleDegrees(-30))
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Value: float64(width), Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "height", Value: float64(height), Reason: "must be positive"}
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	switch {
	case !finite(o.maskScale) || o.maskScale <= 0:
		return nil, &ConfigError{Field: "mask scale", Value: o.maskScale, Reason: "must be in (0, 1]"}
	case o.maskScale > 1:
		return nil, &ConfigError{Field: "mask scale", Value: o.maskScale, Reason: "supersampling the mask is not supported"}
	}

	maskW := maskDim(width, o.maskScale)
	maskH := maskDim(height, o.maskScale)

	r := &Renderer{
		width:     width,
		height:    height,
		maskScale: o.maskScale,
		maskW:     maskW,
		maskH:     maskH,
		shape:     newSurface(maskW, maskH),
		mask:      newSurface(maskW, maskH),
		output:    newSurface(width, height),
		maskAlpha: image.NewAlpha(image.Rect(0, 0, maskW, maskH)),
		fullAlpha: image.NewAlpha(image.Rect(0, 0, width, height)),
	}

	Logger().Debug("longshadow: renderer created",
		"width", width, "height", height,
		"maskScale", o.maskScale, "maskWidth", maskW, "maskHeight", maskH)
	return r, nil
}

// MustNewRenderer is like NewRenderer but panics on error.
func MustNewRenderer(width, height int, opts ...Option) *Renderer {
	r, err := NewRenderer(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// maskDim returns ceil(n*scale), at least 1. The epsilon keeps products
// such as 10*0.3 from rounding up past the exact value.
func maskDim(n int, scale float64) int {
	d := int(math.Ceil(float64(n)*scale - 1e-9))
	if d < 1 {
		return 1
	}
	return d
}

// Width returns the output width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the output height in pixels.
func (r *Renderer) Height() int { return r.height }

// MaskScale returns the mask resolution relative to the output.
func (r *Renderer) MaskScale() float64 { return r.maskScale }

// MaskSize returns the dimensions of the mask surfaces.
func (r *Renderer) MaskSize() (width, height int) { return r.maskW, r.maskH }

// Render draws the long shadow of the shape painted by shape onto dst.
//
// The shadow is placed so that the shape would sit exactly where shape
// draws it when called on dst directly, under dst's current transform.
// Rotated, mirrored and scaled transforms resample the shadow bilinearly;
// a pure translation copies it pixel for pixel.
// Render does not draw the shape itself; callers usually paint it on top
// afterwards.
//
// Errors returned by shape or by a FillPainter are passed through
// unchanged. Invalid arguments yield an *OptionError before any drawing.
func (r *Renderer) Render(dst *gg.Context, shape ShapePainter, opts ...RenderOption) error {
	if dst == nil {
		return &OptionError{Option: "target", Reason: "nil context"}
	}
	if shape == nil {
		return &OptionError{Option: "shape painter", Reason: "missing"}
	}
	p, err := resolve(r.width, r.height, opts)
	if err != nil {
		return err
	}

	if err := r.rasterizeShape(shape, p); err != nil {
		return err
	}
	n := r.extrudeMask(p)
	if err := r.compositeFill(p); err != nil {
		return err
	}
	if err := r.blit(dst, p); err != nil {
		return err
	}

	Logger().Debug("longshadow: render",
		"angle", p.angle, "throwDistance", p.throwDistance,
		"originX", p.originX, "originY", p.originY, "iterations", n)
	return nil
}

// RenderToImage renders into a fresh width x height context and returns it.
// The context has an identity transform, so the painter's (0, 0) maps to
// the image's top-left corner.
func (r *Renderer) RenderToImage(shape ShapePainter, opts ...RenderOption) (*gg.Context, error) {
	dc := gg.NewContext(r.width, r.height)
	if err := r.Render(dc, shape, opts...); err != nil {
		return nil, err
	}
	return dc, nil
}

// RenderImage is like RenderToImage but returns a standard library image.
func (r *Renderer) RenderImage(shape ShapePainter, opts ...RenderOption) (*image.NRGBA, error) {
	dc, err := r.RenderToImage(shape, opts...)
	if err != nil {
		return nil, err
	}
	pm := dc.ResizeTarget()
	img := image.NewNRGBA(image.Rect(0, 0, pm.Width(), pm.Height()))
	copy(img.Pix, pm.Data())
	return img, nil
}
