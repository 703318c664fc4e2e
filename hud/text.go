// Package hud rasterizes the 2D overlay drawn on top of the GL scene: the
// flame labels, the page title, control panel text and the stats meter.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type Weight int

const (
	Regular Weight = iota
	Bold
)

type faceKey struct {
	weight Weight
	size   float64
}

// Rasterizer turns strings into RGBA images. Faces are parsed once and
// cached per weight and size.
type Rasterizer struct {
	fonts map[Weight]*opentype.Font
	faces map[faceKey]font.Face
	scale float64
}

// NewRasterizer creates a rasterizer drawing at scale device pixels per
// logical pixel.
func NewRasterizer(scale float64) (*Rasterizer, error) {
	if scale <= 0 {
		scale = 1
	}
	r := &Rasterizer{
		fonts: make(map[Weight]*opentype.Font),
		faces: make(map[faceKey]font.Face),
		scale: scale,
	}

	var err error
	if r.fonts[Regular], err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	if r.fonts[Bold], err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return r, nil
}

func (r *Rasterizer) Scale() float64 {
	return r.scale
}

func (r *Rasterizer) face(weight Weight, size float64) (font.Face, error) {
	key := faceKey{weight: weight, size: size * r.scale}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.fonts[weight], &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %vpx face: %w", size, err)
	}
	r.faces[key] = f
	return f, nil
}

// Text draws s on a transparent image sized to the text's advance and line
// height.
func (r *Rasterizer) Text(s string, weight Weight, size float64, fg color.Color) (*image.RGBA, error) {
	face, err := r.face(weight, size)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w == 0 {
		w = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)
	return img, nil
}

// Box draws s centered in a w×h logical-pixel rounded rectangle filled
// with bg.
func (r *Rasterizer) Box(s string, weight Weight, size float64, fg, bg color.Color, w, h, radius float64) (*image.RGBA, error) {
	face, err := r.face(weight, size)
	if err != nil {
		return nil, err
	}

	pw := int(math.Round(w * r.scale))
	ph := int(math.Round(h * r.scale))
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	RoundedRect(img, img.Bounds(), radius*r.scale, bg)

	m := face.Metrics()
	adv := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(pw) - adv) / 2,
			Y: (fixed.I(ph) + m.Ascent - m.Descent) / 2,
		},
	}
	d.DrawString(s)
	return img, nil
}

// RoundedRect fills rect in dst with c, rounding the corners by radius
// pixels.
func RoundedRect(dst draw.Image, rect image.Rectangle, radius float64, c color.Color) {
	w, h := float32(rect.Dx()), float32(rect.Dy())
	rad := float32(math.Min(radius, math.Min(float64(w), float64(h))/2))

	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	z.MoveTo(rad, 0)
	z.LineTo(w-rad, 0)
	z.QuadTo(w, 0, w, rad)
	z.LineTo(w, h-rad)
	z.QuadTo(w, h, w-rad, h)
	z.LineTo(rad, h)
	z.QuadTo(0, h, 0, h-rad)
	z.LineTo(0, rad)
	z.QuadTo(0, 0, rad, 0)
	z.ClosePath()
	z.Draw(dst, rect, image.NewUniform(c), image.Point{})
}
