package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goflame/glfwcontext"
	"github.com/richinsley/goflame/graphics"
	"github.com/richinsley/goflame/headless"
	"github.com/richinsley/goflame/options"
	"github.com/richinsley/goflame/panel"
	renderer "github.com/richinsley/goflame/renderer"
	"github.com/richinsley/goflame/scene"
)

const windowTitle = "goflame"

// keyBindings maps keyboard keys to slider keys.
var keyBindings = map[glfw.Key]panel.Key{
	glfw.KeyLeft:     panel.KeyLeft,
	glfw.KeyRight:    panel.KeyRight,
	glfw.KeyDown:     panel.KeyDown,
	glfw.KeyUp:       panel.KeyUp,
	glfw.KeyPageDown: panel.KeyPageDown,
	glfw.KeyPageUp:   panel.KeyPageUp,
	glfw.KeyHome:     panel.KeyHome,
	glfw.KeyEnd:      panel.KeyEnd,
}

func runFlames(opts *options.Options) {
	record := opts.Mode == options.ModeRecord

	var ctx graphics.Context
	var win *glfwcontext.Context
	if opts.Headless {
		h, err := headless.NewHeadless(opts.Width, opts.Height)
		if err != nil {
			log.Fatalf("Failed to create headless context: %v", err)
		}
		ctx = h
	} else {
		// If recording, the window stays hidden.
		w, err := glfwcontext.New(opts.Width, opts.Height, windowTitle, !record, opts.VSync && !record)
		if err != nil {
			log.Fatalf("Failed to create window: %v", err)
		}
		ctx, win = w, w
	}
	defer ctx.Shutdown()

	p := panel.New(opts.Amount)
	comp := scene.New(p)

	r, err := renderer.NewRenderer(ctx, comp, opts)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if record {
		log.Println("Starting offscreen render loop...")
		if err := r.RunOffscreen(opts); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", opts.OutputFile)
		return
	}

	for key, k := range keyBindings {
		k := k
		win.RegisterKeyCallback(key, func() { p.Key(k) })
	}
	win.RegisterKeyCallback(glfw.KeyS, r.ToggleStats)

	log.Println("Starting interactive render loop...")
	r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if opts.Help {
		return
	}

	if !opts.Headless {
		if err := glfwcontext.InitGraphics(); err != nil {
			log.Fatalf("Failed to initialize graphics: %v", err)
		}
		defer glfwcontext.TerminateGraphics()
	}

	runFlames(opts)
}
