package render

import "math"

// Pixel is one framebuffer cell: the color the rasterizer settled on and
// the view-space depth that color was written at, so later draw calls can
// be depth/span-tested against it (spec §4.7 "rasterize with a depth (or
// span-occlusion) test so later polygons cannot overwrite earlier ones").
type Pixel struct {
	Color RGB
	Depth float64 // view-space distance; +Inf for an untouched pixel
}

// Framebuffer is the W x H pixel grid the whole render package exists to
// produce (spec §4.7's "framebuffer"). Mirrors the teacher's
// RenderBuffer/CompositorCell shape (single backing slice, exponential
// Clear) but carries a per-pixel depth instead of terminal runes/attrs,
// since this package paints pixels, not glyphs.
type Framebuffer struct {
	pixels        []Pixel
	Width, Height int
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{Width: width, Height: height, pixels: make([]Pixel, width*height)}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Resize(width, height int) {
	size := width * height
	if cap(fb.pixels) < size {
		fb.pixels = make([]Pixel, size)
	} else {
		fb.pixels = fb.pixels[:size]
	}
	fb.Width, fb.Height = width, height
	fb.Clear()
}

// Clear resets every pixel to SkyColor with +Inf depth, via the same
// exponential doubling-copy the teacher's RenderBuffer.Clear uses to avoid
// a per-cell loop.
func (fb *Framebuffer) Clear() {
	if len(fb.pixels) == 0 {
		return
	}
	fb.pixels[0] = Pixel{Color: SkyColor, Depth: math.Inf(1)}
	for filled := 1; filled < len(fb.pixels); filled *= 2 {
		copy(fb.pixels[filled:], fb.pixels[:filled])
	}
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// TestAndSet writes color at (x,y) only if depth is nearer than whatever
// is already there, implementing the depth-test half of spec §4.7's
// rasterization requirement. Returns whether the write happened.
func (fb *Framebuffer) TestAndSet(x, y int, color RGB, depth float64) bool {
	if !fb.inBounds(x, y) {
		return false
	}
	idx := y*fb.Width + x
	if depth >= fb.pixels[idx].Depth {
		return false
	}
	fb.pixels[idx] = Pixel{Color: color, Depth: depth}
	return true
}

func (fb *Framebuffer) At(x, y int) Pixel {
	if !fb.inBounds(x, y) {
		return Pixel{Color: Black, Depth: math.Inf(1)}
	}
	return fb.pixels[y*fb.Width+x]
}
