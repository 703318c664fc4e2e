// Package effect implements a single flame effect: one unit quad, the
// uniform set feeding the flame shader, and the numeric label drawn under
// the quad.
package effect

import (
	"image/color"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAmount is used when an instance is built without WithAmount.
const DefaultAmount = 10.0

// LabelOffset is where the label sits relative to the quad's center, in
// world units.
var LabelOffset = mgl32.Vec3{0, -0.31, 0}

// Label footprint in logical pixels. Height is 64px of content plus 8px of
// padding above and below.
const (
	LabelWidth    = 178
	LabelHeight   = 80
	LabelFontSize = 48
	LabelRadius   = 4
)

// QuadVertices is a 1x1 plane centered on the origin, as interleaved
// position (xyz) and uv pairs for two triangles.
var QuadVertices = []float32{
	-0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0, 0, 0,
	0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0, 1, 1,
}

// QuadStride is the number of floats per vertex in QuadVertices.
const QuadStride = 5

// Parameters describes an instance at construction time.
type Parameters struct {
	Position mgl32.Vec3
	Color1   mgl32.Vec4
	Color2   mgl32.Vec4
	Amount   float64
}

type Option func(*Parameters)

// WithAmount sets the initial amount. Without it DefaultAmount applies.
func WithAmount(amount float64) Option {
	return func(p *Parameters) {
		p.Amount = amount
	}
}

// Instance owns the uniform set and label for one flame.
type Instance struct {
	position mgl32.Vec3
	color1   mgl32.Vec4
	uniforms Uniforms
	amount   float64
	label    int
}

func New(position mgl32.Vec3, color1, color2 mgl32.Vec4, opts ...Option) *Instance {
	p := Parameters{
		Position: position,
		Color1:   color1,
		Color2:   color2,
		Amount:   DefaultAmount,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return NewFromParameters(p)
}

func NewFromParameters(p Parameters) *Instance {
	i := &Instance{
		position: p.Position,
		color1:   p.Color1,
		uniforms: newUniforms(p.Color1, p.Color2, p.Amount),
	}
	i.setAmount(p.Amount)
	return i
}

// Update is called once per rendered frame. elapsed is the number of
// seconds since the rendering context started; an elapsed value lower than
// the current time uniform leaves time unchanged.
func (i *Instance) Update(elapsed, amount float64) {
	if t := float32(elapsed); t > i.uniforms.Time {
		i.uniforms.Time = t
	}
	i.setAmount(amount)
}

// the label and the amount uniform are always written together
func (i *Instance) setAmount(amount float64) {
	i.amount = amount
	i.uniforms.Amount = float32(amount)
	i.label = LabelFor(amount)
}

// LabelFor returns the integer displayed for amount.
func LabelFor(amount float64) int {
	return int(math.Floor(amount * 1000))
}

func (i *Instance) Uniforms() Uniforms {
	return i.uniforms
}

func (i *Instance) Amount() float64 {
	return i.amount
}

func (i *Instance) Label() int {
	return i.label
}

func (i *Instance) LabelText() string {
	return strconv.Itoa(i.label)
}

// LabelBackground is Color1 scaled to 8-bit channels, fully opaque.
func (i *Instance) LabelBackground() color.RGBA {
	return color.RGBA{
		R: channel(i.color1[0]),
		G: channel(i.color1[1]),
		B: channel(i.color1[2]),
		A: 255,
	}
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(mgl32.Clamp(v, 0, 1)) * 255))
}

func (i *Instance) Position() mgl32.Vec3 {
	return i.position
}

// Model places the unit quad at the instance position, rotated half a turn
// about its normal so the flame points up on screen.
func (i *Instance) Model() mgl32.Mat4 {
	return mgl32.Translate3D(i.position.X(), i.position.Y(), i.position.Z()).
		Mul4(mgl32.HomogRotate3DZ(math.Pi))
}

// LabelAnchor is the world position the label is centered on.
func (i *Instance) LabelAnchor() mgl32.Vec3 {
	return i.position.Add(LabelOffset)
}
