// Package composite implements the Porter-Duff operators used by the shadow
// pipeline on gg pixmap data.
//
// Buffers hold straight (non-premultiplied) RGBA8 pixels, the layout of
// gg.Pixmap. Operators convert to premultiplied alpha internally, as in
// the W3C Compositing and Blending Level 1 model.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package composite

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	// SourceOver paints the source over the destination.
	// Formula: S + D*(1-Sa)
	SourceOver Op = iota

	// DestinationIn keeps the destination where the source is opaque.
	// Formula: D*Sa
	DestinationIn

	// DestinationOut keeps the destination where the source is transparent.
	// Formula: D*(1-Sa)
	DestinationOut
)

// String returns the canvas name of the operator.
func (op Op) String() string {
	switch op {
	case SourceOver:
		return "source-over"
	case DestinationIn:
		return "destination-in"
	case DestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Buffer is a straight-alpha RGBA8 pixel buffer, 4 bytes per pixel,
// rows packed without padding.
type Buffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewBuffer allocates a transparent buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Clear sets every pixel to transparent black.
func (b *Buffer) Clear() {
	clear(b.Pix)
}

// Fill sets every pixel to the given straight-alpha color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	if a == 0 {
		b.Clear()
		return
	}
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
		b.Pix[i+3] = a
	}
}

// Set stores a straight-alpha pixel at (x, y). Out of range coordinates
// are ignored.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 4
	if a == 0 {
		r, g, bl = 0, 0, 0
	}
	b.Pix[i+0] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}

// AlphaAt returns the alpha of the pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[(y*b.Width+x)*4+3]
}

// premulAt returns the premultiplied pixel at (x, y), or transparent black
// outside the buffer.
func (b *Buffer) premulAt(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, 0, 0, 0
	}
	i := (y*b.Width + x) * 4
	a = b.Pix[i+3]
	if a == 255 {
		return b.Pix[i+0], b.Pix[i+1], b.Pix[i+2], a
	}
	return mulDiv255(b.Pix[i+0], a), mulDiv255(b.Pix[i+1], a), mulDiv255(b.Pix[i+2], a), a
}

// setPremul stores a premultiplied pixel at (x, y). The caller guarantees
// that (x, y) lies inside the buffer.
func (b *Buffer) setPremul(x, y int, r, g, bl, a uint8) {
	i := (y*b.Width + x) * 4
	b.Pix[i+0] = unpremul(r, a)
	b.Pix[i+1] = unpremul(g, a)
	b.Pix[i+2] = unpremul(bl, a)
	b.Pix[i+3] = a
}

// scaleAlpha multiplies the alpha of the pixel at (x, y) by f/255.
// Straight color channels are unaffected by destination-in and
// destination-out, so only alpha is rewritten.
func (b *Buffer) scaleAlpha(x, y int, f uint8) {
	i := (y*b.Width + x) * 4
	a := mulDiv255(b.Pix[i+3], f)
	if a == 0 {
		b.Pix[i+0], b.Pix[i+1], b.Pix[i+2] = 0, 0, 0
	}
	b.Pix[i+3] = a
}

// sourceOver composites a premultiplied source over a premultiplied
// destination.
func sourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}
