package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goflame/encoder"
	"github.com/richinsley/goflame/options"
)

// OffscreenRenderer is the colour target every frame is drawn into. The
// window blits it to the screen, record mode reads it back.
type OffscreenRenderer struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	or.Resize(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("main offscreen fbo is not complete")
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return or, nil
}

// Resize reallocates the colour texture when the size changed.
func (or *OffscreenRenderer) Resize(width, height int) {
	if width == or.width && height == or.height {
		return
	}
	or.width = width
	or.height = height
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// ReadPixels returns the RGBA contents, bottom row first.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
}

// RunOffscreen renders Duration seconds at a fixed time step and pipes the
// frames into ffmpeg.
func (r *Renderer) RunOffscreen(opts *options.Options) error {
	log.Println("Starting in record mode...")
	enc, err := encoder.Start(encoder.Config{
		Width:      opts.Width,
		Height:     opts.Height,
		FPS:        opts.FPS,
		OutputFile: opts.OutputFile,
		FFMPEGPath: opts.FFMPEGPath,
		Codec:      opts.Codec,
	})
	if err != nil {
		return fmt.Errorf("failed to start encoder: %w", err)
	}

	totalFrames := int(opts.Duration * float64(opts.FPS))
	timeStep := 1.0 / float64(opts.FPS)
	slider := r.comp.Panel.Amount

	for i := 0; i < totalFrames; i++ {
		currentTime := float64(i) * timeStep
		if opts.Sweep && totalFrames > 1 {
			slider.SetFraction(float64(i) / float64(totalFrames-1))
		}

		r.RenderFrame(currentTime)
		enc.Submit(&encoder.Frame{Pixels: r.offscreen.ReadPixels(), PTS: int64(i)})

		if i%opts.FPS == 0 {
			log.Printf("Recorded %d/%d frames (amount %s)", i, totalFrames, slider)
		}
	}

	return enc.Close()
}
