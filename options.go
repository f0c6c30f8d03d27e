package longshadow

import (
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Full resolution mask
//	r, err := longshadow.NewRenderer(500, 500)
//
//	// Mask extruded at half resolution
//	r, err := longshadow.NewRenderer(500, 500, longshadow.WithMaskScale(0.5))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	maskScale float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		maskScale: 1,
	}
}

// WithMaskScale sets the resolution of the two mask surfaces relative to the
// output. The scale must lie in (0, 1]; lower values trade edge quality for
// fewer pixels per extrusion step.
func WithMaskScale(scale float64) Option {
	return func(o *options) {
		o.maskScale = scale
	}
}

// WithQuality is an alias for WithMaskScale.
func WithQuality(quality float64) Option {
	return WithMaskScale(quality)
}

// ShapePainter paints the silhouette that casts the shadow.
//
// The context is already scaled to mask resolution and translated so that
// (0, 0) is the shadow origin; the fill color is opaque black. The painter
// issues ordinary path and fill calls:
//
//	func(dc *gg.Context) error {
//	    dc.Rotate(0.15)
//	    dc.DrawRectangle(-100, -100, 200, 200)
//	    return dc.Fill()
//	}
type ShapePainter func(dc *gg.Context) error

// FillPainter sets the paint used for the shadow body. It runs with the
// context translated to the shadow origin and receives the resolved shadow
// angle in radians. Any brush set with SetColor or SetFillBrush is used;
// transform changes are discarded after the call.
//
//	func(dc *gg.Context, angle float64) error {
//	    dc.Rotate(-angle)
//	    dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, 300, 0).
//	        AddColorStop(0, gg.RGBA2(0, 0, 0, 0.4)).
//	        AddColorStop(1, gg.Transparent))
//	    return nil
//	}
type FillPainter func(dc *gg.Context, angle float64) error

// DefaultFill is the shadow color used when no fill option is given.
var DefaultFill = gg.RGBA2(0, 0, 0, 0.15)

// DefaultAngleDegrees is the shadow direction used when no angle option is
// given: the shadow falls towards the lower right.
const DefaultAngleDegrees = -45.0

// RenderOption configures a single Render call.
type RenderOption func(*renderOptions)

// renderOptions collects raw per-call options before validation.
type renderOptions struct {
	angleRad, angleDeg       float64
	hasAngleRad, hasAngleDeg bool

	throwDistance    float64
	hasThrowDistance bool

	originX, originY float64
	hasOrigin        bool
	offsetX, offsetY float64

	fill FillPainter
	err  error
}

// WithAngle sets the shadow direction in radians. 0 points along +X and
// angles grow counter-clockwise on screen, so Pi/2 casts the shadow
// upwards. WithAngle takes precedence over WithAngleDegrees regardless of
// option order.
func WithAngle(rad float64) RenderOption {
	return func(o *renderOptions) {
		o.angleRad = rad
		o.hasAngleRad = true
	}
}

// WithAngleDegrees sets the shadow direction in degrees.
func WithAngleDegrees(deg float64) RenderOption {
	return func(o *renderOptions) {
		o.angleDeg = deg
		o.hasAngleDeg = true
	}
}

// WithThrowDistance sets how far, in output pixels, the shadow extends from
// the shape. +Inf extends it until it leaves the surface. The default is
// the surface diagonal.
func WithThrowDistance(d float64) RenderOption {
	return func(o *renderOptions) {
		o.throwDistance = d
		o.hasThrowDistance = true
	}
}

// WithOrigin sets where, inside the renderer's surfaces, the painter's
// (0, 0) lands. The rendered shadow is blitted at (-x, -y) so the shape
// ends up where the painter would draw it on the target directly. The
// default is the surface center. WithOrigin overrides WithOffset.
func WithOrigin(x, y float64) RenderOption {
	return func(o *renderOptions) {
		o.originX, o.originY = x, y
		o.hasOrigin = true
	}
}

// WithOffset shifts the default origin by (-dx, -dy), so that a positive
// offset gives the shadow more room to the right and bottom.
func WithOffset(dx, dy float64) RenderOption {
	return func(o *renderOptions) {
		o.offsetX, o.offsetY = dx, dy
	}
}

// WithFillColor fills the shadow with a flat color.
func WithFillColor(c gg.RGBA) RenderOption {
	return func(o *renderOptions) {
		o.fill = solidFill(c)
	}
}

// WithFillHex fills the shadow with a flat color given as "#RGB", "#RGBA",
// "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func WithFillHex(hex string) RenderOption {
	return func(o *renderOptions) {
		if !validHex(hex) {
			o.err = &OptionError{Option: "fill color", Reason: "malformed hex color " + `"` + hex + `"`}
			return
		}
		o.fill = solidFill(gg.Hex(hex))
	}
}

// WithFillPainter lets the caller set arbitrary paint for the shadow body,
// such as a gradient aligned with the shadow angle.
func WithFillPainter(p FillPainter) RenderOption {
	return func(o *renderOptions) {
		o.fill = p
	}
}

// renderParams are validated, resolved per-call parameters.
type renderParams struct {
	angle            float64 // radians
	throwDistance    float64 // output pixels
	originX, originY float64
	fill             FillPainter
}

// resolve applies opts and validates the result for a renderer of the
// given size.
func resolve(width, height int, opts []RenderOption) (renderParams, error) {
	var o renderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return renderParams{}, o.err
	}

	p := renderParams{
		angle:         DefaultAngleDegrees * math.Pi / 180,
		throwDistance: math.Hypot(float64(width), float64(height)),
		originX:       float64(width)/2 - o.offsetX,
		originY:       float64(height)/2 - o.offsetY,
		fill:          o.fill,
	}

	switch {
	case o.hasAngleRad:
		if !finite(o.angleRad) {
			return renderParams{}, &OptionError{Option: "angle", Reason: "not a finite number"}
		}
		p.angle = o.angleRad
	case o.hasAngleDeg:
		if !finite(o.angleDeg) {
			return renderParams{}, &OptionError{Option: "angle", Reason: "not a finite number"}
		}
		p.angle = o.angleDeg * math.Pi / 180
	}

	if o.hasThrowDistance {
		if math.IsNaN(o.throwDistance) || o.throwDistance < 0 {
			return renderParams{}, &OptionError{Option: "throw distance", Reason: "must be a number >= 0"}
		}
		p.throwDistance = o.throwDistance
	}

	if o.hasOrigin {
		p.originX, p.originY = o.originX, o.originY
	}
	if !finite(p.originX) || !finite(p.originY) {
		return renderParams{}, &OptionError{Option: "origin", Reason: "not a finite number"}
	}

	if p.fill == nil {
		p.fill = solidFill(DefaultFill)
	}
	return p, nil
}

func solidFill(c gg.RGBA) FillPainter {
	return func(dc *gg.Context, _ float64) error {
		dc.SetFillBrush(gg.Solid(c))
		return nil
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validHex(hex string) bool {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
