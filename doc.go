// Package longshadow renders "long shadows": flat, stretched directional
// shadows cast by arbitrary 2D shapes, in the style popularized by flat UI
// design.
//
// # Overview
//
// A Renderer takes a ShapePainter, a callback that paints a silhouette with
// the gg drawing API, and produces its shadow in four raster passes over
// offscreen surfaces that the Renderer allocates once and reuses:
//
//  1. Rasterize: the shape is painted opaque into the shape surface.
//  2. Extrude: the shape surface is composited source-over at growing
//     offsets along the shadow angle, then its own footprint is erased
//     with destination-out.
//  3. Composite: the output surface is filled with the shadow paint and
//     cut to the mask with destination-in.
//  4. Blit: the output surface is drawn onto the caller's context.
//
// # Quick Start
//
//	dc := gg.NewContext(500, 500)
//	dc.ClearWithColor(gg.Hex("#195A72"))
//	dc.Translate(250, 250)
//
//	square := func(dc *gg.Context) error {
//	    dc.Rotate(0.15)
//	    dc.DrawRectangle(-100, -100, 200, 200)
//	    return dc.Fill()
//	}
//
//	r := longshadow.MustNewRenderer(500, 500)
//	if err := r.Render(dc, square); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Paint the shape itself on top of its shadow.
//	dc.SetHexColor("#33B5E5")
//	dc.Push()
//	if err := square(dc); err != nil {
//	    log.Fatal(err)
//	}
//	dc.Pop()
//
// # Coordinates and Angles
//
// Angles are in radians (see WithAngleDegrees for degrees). 0 casts the
// shadow towards +X and angles grow counter-clockwise as seen on screen, so
// Pi/2 casts it upwards. The default is -45 degrees, towards the lower
// right.
//
// The painter's (0, 0) is the shadow origin. By default it sits at the
// center of the renderer's surfaces, which leaves room for shadows in every
// direction; WithOrigin and WithOffset move it.
//
// # Text
//
// TextShape turns a string into a ShapePainter, so text casts a shadow like
// any other silhouette:
//
//	src, _ := text.NewFontSource(gobold.TTF)
//	err := r.Render(dc, longshadow.TextShape(src, 96, "Hello"))
//
// # Concurrency
//
// A Renderer mutates its cached surfaces on every call and must not be used
// from several goroutines at once. Independent Renderers share nothing.
package longshadow
