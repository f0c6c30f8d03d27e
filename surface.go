package longshadow

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/longshadow/internal/composite"
)

// surface is an offscreen drawing surface owned by a Renderer: a gg context
// drawing into a pixmap whose pixels the pipeline also composites directly.
//
// The pixmap and the rasterizer are allocated once. The context is replaced
// on every reset, since Push/Pop does not restore paint state (brush, fill
// rule, stroke style, dash, font) and painters may change any of it.
type surface struct {
	pm   *gg.Pixmap
	rend *gg.SoftwareRenderer
	dc   *gg.Context
}

// newSurface allocates a transparent surface.
func newSurface(width, height int) *surface {
	s := &surface{
		pm:   gg.NewPixmap(width, height),
		rend: gg.NewSoftwareRenderer(width, height),
	}
	s.dc = s.newContext()
	return s
}

func (s *surface) newContext() *gg.Context {
	return gg.NewContext(s.pm.Width(), s.pm.Height(),
		gg.WithPixmap(s.pm), gg.WithRenderer(s.rend))
}

// reset clears all pixels and starts a context with default state.
func (s *surface) reset() {
	_ = s.dc.Close()
	s.pm.Clear(gg.Transparent)
	s.dc = s.newContext()
}

// buffer exposes the surface pixels to the compositing operators.
// The buffer aliases the pixmap data.
func (s *surface) buffer() *composite.Buffer {
	return pixmapBuffer(s.pm)
}

func pixmapBuffer(pm *gg.Pixmap) *composite.Buffer {
	return &composite.Buffer{
		Pix:    pm.Data(),
		Width:  pm.Width(),
		Height: pm.Height(),
	}
}
