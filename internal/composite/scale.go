package composite

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ExtractAlpha copies the alpha channel of b into dst. dst must have the
// same dimensions as b.
func ExtractAlpha(dst *image.Alpha, b *Buffer) {
	for y := 0; y < b.Height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Width]
		src := b.Pix[y*b.Width*4 : (y+1)*b.Width*4]
		for x := range row {
			row[x] = src[x*4+3]
		}
	}
}

// ScaleAlpha resamples src to the bounds of dst with bilinear filtering.
// Equal sizes are copied verbatim.
func ScaleAlpha(dst, src *image.Alpha) {
	if dst.Bounds().Size() == src.Bounds().Size() {
		xdraw.Copy(dst, dst.Bounds().Min, src, src.Bounds(), xdraw.Src, nil)
		return
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// MaskIn applies mask to dst with destination-in semantics: the alpha of
// every dst pixel is multiplied by the mask alpha at the same position.
// mask must have the same dimensions as dst.
func MaskIn(dst *Buffer, mask *image.Alpha) {
	for y := 0; y < dst.Height; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+dst.Width]
		for x, m := range row {
			if m != 255 {
				dst.scaleAlpha(x, y, m)
			}
		}
	}
}

// DrawTransformed composites src source-over onto dst through m, which
// maps src pixel coordinates to dst pixel coordinates. Pixels are sampled
// bilinearly. m must be invertible.
func DrawTransformed(dst, src *Buffer, m f64.Aff3) {
	if dst == nil || src == nil || src.Width == 0 || src.Height == 0 {
		return
	}
	in := src.nrgba()
	xdraw.BiLinear.Transform(dst.nrgba(), m, in, in.Bounds(), xdraw.Over, nil)
}

// nrgba views the buffer as an image without copying.
func (b *Buffer) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
