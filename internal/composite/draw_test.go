package composite

import (
	"image"
	"math"
	"testing"
)

// dot returns a size x size buffer with a single opaque black pixel at (x, y).
func dot(size, x, y int) *Buffer {
	b := NewBuffer(size, size)
	b.Pix[(y*size+x)*4+3] = 255
	return b
}

func TestDrawSourceOverAligned(t *testing.T) {
	dst := NewBuffer(8, 8)
	src := dot(8, 2, 2)

	Draw(dst, src, 3, 1, SourceOver)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if x == 5 && y == 3 {
				want = 255
			}
			if got := dst.AlphaAt(x, y); got != want {
				t.Errorf("AlphaAt(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawSourceOverNegativeOffset(t *testing.T) {
	dst := NewBuffer(8, 8)
	src := dot(8, 4, 4)

	Draw(dst, src, -3, -4, SourceOver)

	if got := dst.AlphaAt(1, 0); got != 255 {
		t.Errorf("AlphaAt(1, 0) = %d, want 255", got)
	}
}

func TestDrawSourceOverFractional(t *testing.T) {
	dst := NewBuffer(8, 8)
	src := dot(8, 2, 2)

	Draw(dst, src, 0.5, 0, SourceOver)

	left, right := dst.AlphaAt(2, 2), dst.AlphaAt(3, 2)
	if left < 126 || left > 129 || right < 126 || right > 129 {
		t.Errorf("half-pixel shift produced alphas %d, %d, want about 128 each", left, right)
	}
	if got := dst.AlphaAt(4, 2); got != 0 {
		t.Errorf("AlphaAt(4, 2) = %d, want 0", got)
	}
}

func TestDrawSnapsTinyFractions(t *testing.T) {
	dst := NewBuffer(8, 8)
	src := dot(8, 2, 2)

	// cos(pi/2) is not exactly zero; the residue must not leak.
	Draw(dst, src, 6.123233995736766e-17, -1, SourceOver)

	if got := dst.AlphaAt(2, 1); got != 255 {
		t.Errorf("AlphaAt(2, 1) = %d, want 255", got)
	}
	if b := Bounds(dst); b != image.Rect(2, 1, 3, 2) {
		t.Errorf("Bounds = %v, want (2,1)-(3,2)", b)
	}
}

func TestDrawDestinationOut(t *testing.T) {
	dst := NewBuffer(4, 1)
	dst.Fill(10, 20, 30, 255)
	src := dot(4, 1, 0)
	src.Pix[2*4+3] = 128

	Draw(dst, src, 0, 0, DestinationOut)

	want := []uint8{255, 0, 127, 255}
	for x, w := range want {
		if got := dst.AlphaAt(x, 0); got != w {
			t.Errorf("AlphaAt(%d, 0) = %d, want %d", x, got, w)
		}
	}
	// Straight color survives partial erasure.
	if dst.Pix[2*4] != 10 {
		t.Errorf("red channel = %d, want 10", dst.Pix[2*4])
	}
	// Fully erased pixels are normalized to transparent black.
	if dst.Pix[4] != 0 {
		t.Errorf("red channel of erased pixel = %d, want 0", dst.Pix[4])
	}
}

func TestDrawDestinationInClearsOutsideFootprint(t *testing.T) {
	dst := NewBuffer(4, 4)
	dst.Fill(0, 0, 0, 200)
	src := NewBuffer(2, 2)
	src.Fill(0, 0, 0, 255)

	Draw(dst, src, 1, 1, DestinationIn)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 200
			}
			if got := dst.AlphaAt(x, y); got != want {
				t.Errorf("AlphaAt(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawIgnoresNonFiniteOffsets(t *testing.T) {
	dst := NewBuffer(2, 2)
	src := dot(2, 0, 0)
	Draw(dst, src, math.Inf(1), 0, SourceOver)
	Draw(dst, src, 0, math.NaN(), SourceOver)
	if b := Bounds(dst); !b.Empty() {
		t.Errorf("Bounds = %v after non-finite draw, want empty", b)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		pixels []image.Point
		want   image.Rectangle
	}{
		{"empty", nil, image.Rectangle{}},
		{"single", []image.Point{{3, 2}}, image.Rect(3, 2, 4, 3)},
		{"spread", []image.Point{{1, 4}, {5, 0}, {2, 2}}, image.Rect(1, 0, 6, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(8, 8)
			for _, p := range tt.pixels {
				b.Pix[(p.Y*8+p.X)*4+3] = 1
			}
			if got := Bounds(b); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawRegion(t *testing.T) {
	dst := NewBuffer(8, 8)
	src := NewBuffer(8, 8)
	src.Fill(0, 0, 0, 255)

	DrawRegion(dst, src, image.Rect(2, 2, 4, 3), 1, 1, SourceOver)

	if got, want := Bounds(dst), image.Rect(3, 3, 5, 4); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestDrawRegionMatchesDraw(t *testing.T) {
	src := NewBuffer(10, 10)
	for _, p := range []image.Point{{3, 3}, {4, 3}, {4, 5}} {
		src.Set(p.X, p.Y, 200, 100, 50, 180)
	}
	full := NewBuffer(10, 10)
	region := NewBuffer(10, 10)

	Draw(full, src, 1.25, -0.75, SourceOver)
	DrawRegion(region, src, Bounds(src), 1.25, -0.75, SourceOver)

	for i := range full.Pix {
		if full.Pix[i] != region.Pix[i] {
			t.Fatalf("byte %d: Draw = %d, DrawRegion = %d", i, full.Pix[i], region.Pix[i])
		}
	}
}

func TestBufferSet(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(1, 1, 9, 8, 7, 6)
	b.Set(5, 5, 1, 1, 1, 1)
	b.Set(0, 0, 9, 9, 9, 0)

	if got := b.Pix[12:16]; got[0] != 9 || got[3] != 6 {
		t.Errorf("pixel (1, 1) = %v, want [9 8 7 6]", got)
	}
	if got := b.Pix[0:4]; got[0] != 0 {
		t.Errorf("transparent pixel color = %v, want zeros", got)
	}
}
