package effect

import "github.com/go-gl/mathgl/mgl32"

// Uniform names as declared by the flame shader pair. These are the wire
// format between the instance and the GPU program and must match
// shader/flame.frag exactly.
const (
	UniformTime           = "time"
	UniformAmount         = "amount"
	UniformTextureDetails = "texture_details"
	UniformImageDetails   = "image_details"
	UniformColour1        = "colour_1"
	UniformColour2        = "colour_2"
	UniformID             = "id"
)

// UniformNames lists every per-instance uniform in declaration order.
var UniformNames = []string{
	UniformTime,
	UniformAmount,
	UniformTextureDetails,
	UniformImageDetails,
	UniformColour1,
	UniformColour2,
	UniformID,
}

// Uniforms is the live state handed to the flame shader. Only Time and
// Amount change after construction.
type Uniforms struct {
	Time           float32
	Amount         float32
	TextureDetails mgl32.Vec4
	ImageDetails   mgl32.Vec2
	Colour1        mgl32.Vec4
	Colour2        mgl32.Vec4
	ID             float32
}

func newUniforms(color1, color2 mgl32.Vec4, amount float64) Uniforms {
	return Uniforms{
		Time:           0,
		Amount:         float32(amount),
		TextureDetails: mgl32.Vec4{1, 1, 1, 1},
		ImageDetails:   mgl32.Vec2{1, 1},
		Colour1:        color1,
		Colour2:        color2,
		ID:             1,
	}
}
