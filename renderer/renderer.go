package renderer

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goflame/effect"
	"github.com/richinsley/goflame/graphics"
	"github.com/richinsley/goflame/hud"
	"github.com/richinsley/goflame/options"
	"github.com/richinsley/goflame/panel"
	"github.com/richinsley/goflame/scene"
	"github.com/richinsley/goflame/shader"
)

var glInitOnce sync.Once

// Page and control panel colours.
var (
	pageColor        = color.RGBA{255, 255, 255, 255}
	titleColor       = color.RGBA{0, 0, 0, 255}
	panelColor       = color.RGBA{40, 41, 46, 240}
	panelTitleColor  = color.RGBA{56, 57, 64, 255}
	panelTextColor   = color.RGBA{187, 188, 196, 255}
	trackColor       = color.RGBA{78, 80, 88, 255}
	trackFillColor   = color.RGBA{120, 160, 255, 255}
	handleColor      = color.RGBA{220, 221, 228, 255}
	valueBoxColor    = color.RGBA{29, 30, 34, 255}
	statsColor       = color.RGBA{0, 0, 34, 220}
	statsTextColor   = color.RGBA{0, 255, 255, 255}
	labelTextColor   = color.RGBA{255, 255, 255, 255}
	panelTextSize    = 12.0
	statsTextSize    = 11.0
	statsPadding     = 4.0
	fullscreenVertex = []float32{
		-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
		-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
	}
)

type Renderer struct {
	context     graphics.Context
	comp        *scene.Composition
	flame       *FlamePass
	overlay     *Overlay
	offscreen   *OffscreenRenderer
	text        *hud.Rasterizer
	stats       *hud.Stats
	showStats   bool
	blitProgram uint32
	quadVAO     uint32
	quadVBO     uint32
	width       int
	height      int
	recordMode  bool
}

func NewRenderer(ctx graphics.Context, comp *scene.Composition, opts *options.Options) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		comp:       comp,
		stats:      hud.NewStats(),
		showStats:  opts.Stats,
		width:      opts.Width,
		height:     opts.Height,
		recordMode: opts.Mode == options.ModeRecord,
	}

	// Make the context current on this thread.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var err error
	r.flame, err = NewFlamePass()
	if err != nil {
		return nil, err
	}
	r.overlay, err = NewOverlay()
	if err != nil {
		return nil, err
	}

	r.blitProgram, err = newProgram(shader.BlitVertexShader(), shader.BlitFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(fullscreenVertex)*4, gl.Ptr(fullscreenVertex), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	fbWidth, fbHeight, _, _, scale := r.surface()
	r.offscreen, err = NewOffscreenRenderer(fbWidth, fbHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	r.text, err = hud.NewRasterizer(scale)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) Shutdown() {
	r.flame.Destroy()
	r.overlay.Destroy()
	r.offscreen.Destroy()
	gl.DeleteProgram(r.blitProgram)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}

func (r *Renderer) ToggleStats() {
	r.showStats = !r.showStats
}

// surface returns the framebuffer size, the logical window size and the
// framebuffer pixels per logical pixel. Record mode renders at the
// configured size regardless of the hidden window.
func (r *Renderer) surface() (fbWidth, fbHeight int, winWidth, winHeight, scale float64) {
	if r.recordMode {
		return r.width, r.height, float64(r.width), float64(r.height), 1
	}
	fbWidth, fbHeight = r.context.GetFramebufferSize()
	w, h := r.context.GetWindowSize()
	if w <= 0 || h <= 0 {
		return fbWidth, fbHeight, float64(fbWidth), float64(fbHeight), 1
	}
	return fbWidth, fbHeight, float64(w), float64(h), float64(fbWidth) / float64(w)
}

// RenderFrame advances the scene to elapsed seconds and draws it into the
// offscreen target.
func (r *Renderer) RenderFrame(elapsed float64) {
	fbWidth, fbHeight, winWidth, winHeight, scale := r.surface()
	if fbWidth == 0 || fbHeight == 0 {
		return
	}
	r.offscreen.Resize(fbWidth, fbHeight)
	if scale != r.text.Scale() {
		if text, err := hud.NewRasterizer(scale); err == nil {
			r.text = text
			r.overlay.Reset()
		}
	}

	r.comp.Arrange(winWidth, winHeight)
	r.comp.Frame(elapsed)

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.offscreen.fbo)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(float32(pageColor.R)/255, float32(pageColor.G)/255, float32(pageColor.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// transparent quads seen from both sides
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	for _, v := range r.comp.Views {
		x, y, w, h := v.Viewport.Scaled(scale, fbHeight)
		gl.Viewport(x, y, w, h)
		r.flame.Draw(v)
	}

	r.overlay.Begin(fbWidth, fbHeight, scale)
	if err := r.drawOverlay(winHeight); err != nil {
		log.Printf("Error drawing overlay: %v", err)
	}
	r.overlay.End()

	if r.stats.Tick(elapsed) && r.showStats && r.recordMode {
		log.Printf("Stats: %s", r.stats)
	}

	gl.Disable(gl.BLEND)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (r *Renderer) drawOverlay(winHeight float64) error {
	for _, v := range r.comp.Views {
		if err := r.drawLabel(v); err != nil {
			return err
		}
	}

	_, _, err := r.overlay.Prepare("title", scene.TitleText, func() (*image.RGBA, error) {
		return r.text.Text(scene.TitleText, hud.Bold, scene.TitleFontSize, titleColor)
	})
	if err != nil {
		return err
	}
	r.overlay.Image("title", scene.TitleX, scene.TitleY)

	if err := r.drawPanel(r.comp.Panel); err != nil {
		return err
	}

	if r.showStats {
		return r.drawStats(winHeight)
	}
	return nil
}

func (r *Renderer) drawLabel(v *scene.View) error {
	inst := v.Instance
	text := inst.LabelText()
	bg := inst.LabelBackground()
	slot := "label-" + v.Name
	key := fmt.Sprintf("%s/%v", text, bg)

	_, _, err := r.overlay.Prepare(slot, key, func() (*image.RGBA, error) {
		return r.text.Box(text, hud.Bold, effect.LabelFontSize, labelTextColor, bg,
			effect.LabelWidth, effect.LabelHeight, effect.LabelRadius)
	})
	if err != nil {
		return err
	}
	rect := v.LabelRect()
	r.overlay.Image(slot, rect.X, rect.Y)
	return nil
}

func (r *Renderer) drawPanel(p *panel.Panel) error {
	r.overlay.Fill(p.Bounds, panelColor)
	r.overlay.Fill(p.TitleBar, panelTitleColor)

	if err := r.drawText("panel-title", p.Title, p.TitleBar, true); err != nil {
		return err
	}
	if err := r.drawText("panel-label", p.Amount.Label, p.LabelBox, false); err != nil {
		return err
	}

	r.overlay.Fill(p.Track, trackColor)
	r.overlay.Fill(p.Fill(), trackFillColor)
	r.overlay.Fill(p.Handle(), handleColor)

	r.overlay.Fill(p.ValueBox, valueBoxColor)
	return r.drawText("panel-value", p.Amount.String(), p.ValueBox, true)
}

// drawText draws s vertically centered in box, horizontally centered or
// left aligned.
func (r *Renderer) drawText(slot, s string, box panel.Rect, center bool) error {
	w, h, err := r.overlay.Prepare(slot, s, func() (*image.RGBA, error) {
		return r.text.Text(s, hud.Regular, panelTextSize, panelTextColor)
	})
	if err != nil {
		return err
	}
	x := box.X
	if center {
		x = box.X + (box.W-w)/2
	}
	r.overlay.Image(slot, x, box.Y+(box.H-h)/2)
	return nil
}

func (r *Renderer) drawStats(winHeight float64) error {
	s := r.stats.String()
	w, h, err := r.overlay.Prepare("stats", s, func() (*image.RGBA, error) {
		return r.text.Text(s, hud.Bold, statsTextSize, statsTextColor)
	})
	if err != nil {
		return err
	}
	box := panel.Rect{X: 0, Y: winHeight - h - 2*statsPadding, W: w + 2*statsPadding, H: h + 2*statsPadding}
	r.overlay.Fill(box, statsColor)
	r.overlay.Image("stats", box.X+statsPadding, box.Y+statsPadding)
	return nil
}

// blit copies the offscreen target to the window.
func (r *Renderer) blit() {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.blitProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.offscreen.textureID)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// Run is the interactive frame loop. It returns when the window is closed.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		pointer := r.context.GetPointer()
		r.comp.Panel.Pointer(pointer.X, pointer.Y, pointer.Down)

		r.RenderFrame(r.context.Time())
		r.blit()
		r.context.EndFrame()
	}
}
