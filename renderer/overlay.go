package renderer

import (
	"fmt"
	"image"
	"image/color"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goflame/panel"
	"github.com/richinsley/goflame/shader"
)

// unit quad, top-left origin
var overlayVertices = []float32{
	0, 0, 0, 1, 1, 1,
	0, 0, 1, 1, 1, 0,
}

type overlayTexture struct {
	id   uint32
	key  string
	w, h int
}

// Overlay draws rectangles and rasterized images in window pixels on top
// of the flames. Images are uploaded into named slots and only re-uploaded
// when the slot's key changes.
type Overlay struct {
	program     uint32
	vao         uint32
	vbo         uint32
	rectLoc     int32
	viewportLoc int32
	colorLoc    int32
	texturedLoc int32
	textureLoc  int32

	scale    float64
	textures map[string]*overlayTexture
}

func NewOverlay() (*Overlay, error) {
	o := &Overlay{
		scale:    1,
		textures: make(map[string]*overlayTexture),
	}

	var err error
	o.program, err = newProgram(shader.OverlayVertexShader(), shader.OverlayFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay program: %w", err)
	}
	o.rectLoc = uniformLocation(o.program, "u_rect")
	o.viewportLoc = uniformLocation(o.program, "u_viewport")
	o.colorLoc = uniformLocation(o.program, "u_color")
	o.texturedLoc = uniformLocation(o.program, "u_textured")
	o.textureLoc = uniformLocation(o.program, "u_texture")

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(overlayVertices)*4, gl.Ptr(overlayVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return o, nil
}

// Begin prepares state for a batch of overlay draws into a framebuffer of
// fbWidth×fbHeight pixels, with scale framebuffer pixels per logical pixel.
func (o *Overlay) Begin(fbWidth, fbHeight int, scale float64) {
	o.scale = scale
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(o.program)
	gl.Uniform2f(o.viewportLoc, float32(fbWidth), float32(fbHeight))
	gl.Uniform1i(o.textureLoc, 0)
	gl.BindVertexArray(o.vao)
}

func (o *Overlay) End() {
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Fill draws a solid rectangle given in logical pixels.
func (o *Overlay) Fill(r panel.Rect, c color.RGBA) {
	o.setRect(r)
	gl.Uniform4f(o.colorLoc, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Uniform1i(o.texturedLoc, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Prepare makes sure slot holds the image identified by key, building and
// uploading it when the key changed. It returns the image size in logical
// pixels.
func (o *Overlay) Prepare(slot, key string, build func() (*image.RGBA, error)) (w, h float64, err error) {
	tex, ok := o.textures[slot]
	if !ok {
		tex = &overlayTexture{}
		gl.GenTextures(1, &tex.id)
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		o.textures[slot] = tex
	}

	if !ok || tex.key != key {
		img, err := build()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to build overlay image %s: %w", slot, err)
		}
		b := img.Bounds()
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		tex.key = key
		tex.w = b.Dx()
		tex.h = b.Dy()
	}

	return float64(tex.w) / o.scale, float64(tex.h) / o.scale, nil
}

// Image draws a prepared slot with its top-left corner at x, y logical
// pixels.
func (o *Overlay) Image(slot string, x, y float64) {
	tex, ok := o.textures[slot]
	if !ok {
		return
	}
	o.setRect(panel.Rect{X: x, Y: y, W: float64(tex.w) / o.scale, H: float64(tex.h) / o.scale})
	gl.Uniform4f(o.colorLoc, 1, 1, 1, 1)
	gl.Uniform1i(o.texturedLoc, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (o *Overlay) setRect(r panel.Rect) {
	s := o.scale
	gl.Uniform4f(o.rectLoc, float32(r.X*s), float32(r.Y*s), float32(r.W*s), float32(r.H*s))
}

// Reset drops every uploaded image, forcing a rebuild on next use.
func (o *Overlay) Reset() {
	for slot, tex := range o.textures {
		gl.DeleteTextures(1, &tex.id)
		delete(o.textures, slot)
	}
}

func (o *Overlay) Destroy() {
	o.Reset()
	gl.DeleteProgram(o.program)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
}
