package longshadow

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// TextShape returns a ShapePainter that draws s centered on (0, 0) using a
// face of the given size from src.
//
// Glyphs are rasterized at device resolution: the face size follows the
// scale of the painter's transform, so the mask resolution set with
// WithMaskScale applies to text like it does to paths. Rotation and shear
// are ignored. The text uses the context's current color, so the same
// painter can draw the shape itself on top of its shadow.
func TextShape(src *text.FontSource, size float64, s string) ShapePainter {
	return func(dc *gg.Context) error {
		if src == nil {
			return &OptionError{Option: "font source", Reason: "missing"}
		}
		if !finite(size) || size <= 0 {
			return &OptionError{Option: "font size", Reason: "must be a positive number"}
		}

		m := dc.GetTransform()
		scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
		if scale == 0 {
			return nil
		}
		p := m.TransformPoint(gg.Pt(0, 0))

		dc.Push()
		defer dc.Pop()
		dc.Identity()
		dc.SetFont(src.Face(size * scale))
		dc.DrawStringAnchored(s, p.X, p.Y, 0.5, 0.5)
		return nil
	}
}
