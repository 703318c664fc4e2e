// Package scene composes the two flame instances, their viewports and the
// shared amount coming from the control panel.
package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goflame/effect"
	"github.com/richinsley/goflame/panel"
)

// Colour pairs of the two instances.
var (
	ColorsA = [2]mgl32.Vec4{{0, 0, 1, 1}, {0.5, 0.5, 1, 1}}
	ColorsB = [2]mgl32.Vec4{{1, 0, 0, 1}, {1, 1, 0, 1}}
)

// View is one effect instance rendered into its own viewport with its own
// camera.
type View struct {
	Name     string
	Instance *effect.Instance
	Camera   Camera
	Viewport Viewport
}

// LabelRect returns the label footprint centered on the projected label
// anchor, in logical window pixels.
func (v *View) LabelRect() panel.Rect {
	cx, cy := v.Camera.Project(v.Instance.LabelAnchor(), v.Viewport)
	return panel.Rect{
		X: cx - effect.LabelWidth/2,
		Y: cy - effect.LabelHeight/2,
		W: effect.LabelWidth,
		H: effect.LabelHeight,
	}
}

type Composition struct {
	Panel *panel.Panel
	Views []*View

	elapsed float64
}

func New(p *panel.Panel) *Composition {
	amount := p.Amount.Value()
	c := &Composition{
		Panel: p,
		Views: []*View{
			newView("A", ColorsA, amount),
			newView("B", ColorsB, amount),
		},
	}

	p.Amount.OnChange(func(float64) {
		c.Frame(c.elapsed)
	})

	c.Arrange(0, 0)
	log.Printf("Scene composed: %d views, amount %s", len(c.Views), p.Amount)
	return c
}

func newView(name string, colors [2]mgl32.Vec4, amount float64) *View {
	return &View{
		Name:     name,
		Instance: effect.New(mgl32.Vec3{0, 0, 0}, colors[0], colors[1], effect.WithAmount(amount)),
		Camera:   DefaultCamera(),
	}
}

// Arrange lays the views out for a window of the given logical size.
func (c *Composition) Arrange(windowWidth, windowHeight float64) {
	vps := SideBySide(windowWidth, windowHeight, len(c.Views))
	for i, v := range c.Views {
		v.Viewport = vps[i]
	}
	c.Panel.Arrange(windowWidth)
}

// Frame reads the panel value once and hands it, with the elapsed time,
// to every instance.
func (c *Composition) Frame(elapsed float64) {
	if elapsed > c.elapsed {
		c.elapsed = elapsed
	}
	amount := c.Panel.Amount.Value()
	for _, v := range c.Views {
		v.Instance.Update(c.elapsed, amount)
	}
}

func (c *Composition) Elapsed() float64 {
	return c.elapsed
}
