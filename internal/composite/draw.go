package composite

import (
	"image"
	"math"
)

// snapEpsilon is the distance below which a fractional offset is treated
// as pixel aligned.
const snapEpsilon = 1.0 / 1024

// Draw composites src onto dst with the top-left corner of src placed at
// (x, y) in dst pixel coordinates.
//
// Fractional offsets are resampled with a box filter, so a source pixel is
// spread over the (up to four) destination pixels it overlaps. Pixels of dst
// outside the footprint of src are left untouched by SourceOver and
// DestinationOut, and cleared by DestinationIn.
func Draw(dst, src *Buffer, x, y float64, op Op) {
	if src == nil {
		return
	}
	DrawRegion(dst, src, image.Rect(0, 0, src.Width, src.Height), x, y, op)
}

// DrawRegion is like Draw but only reads the pixels of src inside sr;
// everything outside sr is treated as transparent. Restricting sr to the
// painted area of src avoids visiting empty pixels.
func DrawRegion(dst, src *Buffer, sr image.Rectangle, x, y float64, op Op) {
	if dst == nil || src == nil {
		return
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}

	s := newSampler(src, sr.Intersect(image.Rect(0, 0, src.Width, src.Height)), x, y)

	if op == DestinationIn {
		for dy := 0; dy < dst.Height; dy++ {
			for dx := 0; dx < dst.Width; dx++ {
				_, _, _, sa := s.at(dx, dy)
				if sa != 255 {
					dst.scaleAlpha(dx, dy, sa)
				}
			}
		}
		return
	}

	fp := s.footprint().Intersect(image.Rect(0, 0, dst.Width, dst.Height))
	for dy := fp.Min.Y; dy < fp.Max.Y; dy++ {
		for dx := fp.Min.X; dx < fp.Max.X; dx++ {
			pr, pg, pb, pa := s.at(dx, dy)
			if pa == 0 {
				continue
			}
			switch op {
			case DestinationOut:
				dst.scaleAlpha(dx, dy, 255-pa)
			default:
				dr, dg, db, da := dst.premulAt(dx, dy)
				r, g, b, a := sourceOver(pr, pg, pb, pa, dr, dg, db, da)
				dst.setPremul(dx, dy, r, g, b, a)
			}
		}
	}
}

// sampler reads a source buffer placed at a (possibly fractional) offset.
type sampler struct {
	src    *Buffer
	sr     image.Rectangle
	ix, iy int
	tx, ty float64
}

func newSampler(src *Buffer, sr image.Rectangle, x, y float64) sampler {
	ix, tx := splitOffset(x)
	iy, ty := splitOffset(y)
	return sampler{src: src, sr: sr, ix: ix, iy: iy, tx: tx, ty: ty}
}

// splitOffset splits v into an integer part and a fraction in [0, 1),
// snapping fractions within snapEpsilon of a whole pixel.
func splitOffset(v float64) (int, float64) {
	f := math.Floor(v)
	t := v - f
	switch {
	case t < snapEpsilon:
		return int(f), 0
	case t > 1-snapEpsilon:
		return int(f) + 1, 0
	}
	return int(f), t
}

// footprint returns the destination rectangle touched by the source.
func (s sampler) footprint() image.Rectangle {
	r := s.sr.Add(image.Pt(s.ix, s.iy))
	if s.tx > 0 {
		r.Max.X++
	}
	if s.ty > 0 {
		r.Max.Y++
	}
	return r
}

// at returns the premultiplied source value covering destination pixel
// (dx, dy).
func (s sampler) at(dx, dy int) (r, g, b, a uint8) {
	sx := dx - s.ix
	sy := dy - s.iy
	if s.tx == 0 && s.ty == 0 {
		return s.pixel(sx, sy)
	}

	var acc [4]float64
	add := func(x, y int, w float64) {
		if w == 0 {
			return
		}
		pr, pg, pb, pa := s.pixel(x, y)
		acc[0] += w * float64(pr)
		acc[1] += w * float64(pg)
		acc[2] += w * float64(pb)
		acc[3] += w * float64(pa)
	}
	add(sx, sy, (1-s.tx)*(1-s.ty))
	add(sx-1, sy, s.tx*(1-s.ty))
	add(sx, sy-1, (1-s.tx)*s.ty)
	add(sx-1, sy-1, s.tx*s.ty)

	a = toByte(acc[3])
	r, g, b = toByte(acc[0]), toByte(acc[1]), toByte(acc[2])
	// Rounding can leave a color channel above alpha.
	if r > a {
		r = a
	}
	if g > a {
		g = a
	}
	if b > a {
		b = a
	}
	return r, g, b, a
}

// pixel returns the premultiplied source pixel at (x, y), transparent
// outside the sampled region.
func (s sampler) pixel(x, y int) (r, g, b, a uint8) {
	if !image.Pt(x, y).In(s.sr) {
		return 0, 0, 0, 0
	}
	return s.src.premulAt(x, y)
}

// Bounds returns the smallest rectangle containing every pixel of b with
// non-zero alpha. It returns the empty rectangle for a fully transparent
// buffer.
func Bounds(b *Buffer) image.Rectangle {
	minX, minY := b.Width, b.Height
	maxX, maxY := -1, -1
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Width*4 : (y+1)*b.Width*4]
		for x := 0; x < b.Width; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
