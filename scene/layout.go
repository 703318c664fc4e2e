package scene

// Page geometry in logical pixels.
const (
	ViewportSize = 350.0
	ViewportGap  = 40.0

	TitleText     = "#AkuBalatro"
	TitleX        = 20.0
	TitleY        = 20.0
	TitleFontSize = 32.0
)

// Viewport is a region of the window in logical pixels, top-left origin.
type Viewport struct {
	X, Y, W, H float64
}

func (v Viewport) Aspect() float32 {
	if v.H == 0 {
		return 1
	}
	return float32(v.W / v.H)
}

// Scaled converts the viewport to framebuffer pixels with a bottom-left
// origin, as gl.Viewport and gl.Scissor expect. scale is framebuffer pixels
// per logical pixel and fbHeight is the framebuffer height.
func (v Viewport) Scaled(scale float64, fbHeight int) (x, y, w, h int32) {
	x = int32(v.X * scale)
	w = int32(v.W * scale)
	h = int32(v.H * scale)
	y = int32(fbHeight) - int32((v.Y+v.H)*scale)
	return
}

// SideBySide centers count square viewports of ViewportSize in a window,
// separated by ViewportGap.
func SideBySide(windowWidth, windowHeight float64, count int) []Viewport {
	if count <= 0 {
		return nil
	}
	total := float64(count)*ViewportSize + float64(count-1)*ViewportGap
	x := (windowWidth - total) / 2
	y := (windowHeight - ViewportSize) / 2

	vps := make([]Viewport, count)
	for i := range vps {
		vps[i] = Viewport{
			X: x + float64(i)*(ViewportSize+ViewportGap),
			Y: y,
			W: ViewportSize,
			H: ViewportSize,
		}
	}
	return vps
}
