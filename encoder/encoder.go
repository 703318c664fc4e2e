package encoder

import (
	"fmt"
	"io"
	"log"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// QueueSize is the number of frames that may wait for the encoder before
// the renderer blocks.
const QueueSize = 3

// Frame is a bottom-up RGBA image read back from the GL framebuffer.
type Frame struct {
	Pixels []byte
	PTS    int64
}

type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
	Codec      string // h264 or hevc
}

// InputArgs describes the raw frames written to ffmpeg's stdin.
func InputArgs(cfg Config) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"r":       cfg.FPS,
	}
}

func OutputArgs(cfg Config) ffmpeg.KwArgs {
	args := ffmpeg.KwArgs{
		// glReadPixels rows start at the bottom
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
		"crf":     18,
	}
	if cfg.Codec == "hevc" {
		args["c:v"] = "libx265"
		if strings.HasSuffix(cfg.OutputFile, ".mp4") {
			args["tag:v"] = "hvc1"
		}
	} else {
		args["c:v"] = "libx264"
	}
	return args
}

// Encoder pipes frames into an ffmpeg process. Submit is called from the
// render thread; a single goroutine writes to ffmpeg.
type Encoder struct {
	cfg       Config
	frameSize int
	frames    chan *Frame
	done      chan error
}

func Start(cfg Config) (*Encoder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid encoder config %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := ffmpeg.Input("pipe:", InputArgs(cfg)).
		Output(cfg.OutputFile, OutputArgs(cfg)).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if cfg.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(cfg.FFMPEGPath)
	}

	e := &Encoder{
		cfg:       cfg,
		frameSize: cfg.Width * cfg.Height * 4,
		frames:    make(chan *Frame, QueueSize),
		done:      make(chan error, 1),
	}

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		// unblock the writer if ffmpeg exits early
		pipeReader.Close()
		errc <- err
	}()
	go e.consume(pipeWriter, errc)

	log.Printf("Encoder started: %dx%d@%d -> %s (%s)", cfg.Width, cfg.Height, cfg.FPS, cfg.OutputFile, cfg.Codec)
	return e, nil
}

func (e *Encoder) consume(w *io.PipeWriter, errc <-chan error) {
	var writeErr error
	for frame := range e.frames {
		if writeErr != nil {
			continue
		}
		if len(frame.Pixels) != e.frameSize {
			writeErr = fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), e.frameSize)
			continue
		}
		if _, err := w.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
			log.Println(writeErr)
		}
	}
	w.Close()

	runErr := <-errc
	if writeErr != nil {
		e.done <- writeErr
		return
	}
	if runErr != nil {
		e.done <- fmt.Errorf("ffmpeg failed: %w", runErr)
		return
	}
	e.done <- nil
}

// Submit queues a frame, blocking while the queue is full.
func (e *Encoder) Submit(frame *Frame) {
	e.frames <- frame
}

// Close flushes queued frames and waits for ffmpeg to exit.
func (e *Encoder) Close() error {
	close(e.frames)
	return <-e.done
}

func (e *Encoder) FrameSize() int {
	return e.frameSize
}
