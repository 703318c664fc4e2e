package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ModeWindow = "window"
	ModeRecord = "record"
)

var (
	ErrInvalidMode  = errors.New("invalid mode")
	ErrInvalidValue = errors.New("invalid value")
)

// Options configures a run. Every field can be set from the command line
// or from a YAML file passed with -config; flags given explicitly on the
// command line win over the file.
type Options struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Mode       string  `yaml:"mode"`
	Duration   float64 `yaml:"duration"`
	FPS        int     `yaml:"fps"`
	OutputFile string  `yaml:"output"`
	FFMPEGPath string  `yaml:"ffmpeg"`
	Codec      string  `yaml:"codec"`
	Amount     float64 `yaml:"amount"` // initial slider value
	Sweep      bool    `yaml:"sweep"`  // record mode: drive the slider 0 -> 10
	Stats      bool    `yaml:"stats"`
	VSync      bool    `yaml:"vsync"`
	Headless   bool    `yaml:"headless"` // record mode: EGL pbuffer instead of a hidden window

	ConfigFile string `yaml:"-"`
	Help       bool   `yaml:"-"`
}

func Default() *Options {
	return &Options{
		Width:      1280,
		Height:     720,
		Mode:       ModeWindow,
		Duration:   10,
		FPS:        60,
		OutputFile: "flames.mp4",
		Codec:      "h264",
		Amount:     10,
		Stats:      true,
		VSync:      true,
	}
}

func (o *Options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "Window (or recording) width")
	fs.IntVar(&o.Height, "height", o.Height, "Window (or recording) height")
	fs.StringVar(&o.Mode, "mode", o.Mode, "Run mode: window or record")
	fs.Float64Var(&o.Duration, "duration", o.Duration, "Duration to record in seconds")
	fs.IntVar(&o.FPS, "fps", o.FPS, "Frames per second for recording")
	fs.StringVar(&o.OutputFile, "output", o.OutputFile, "Output file name for recording")
	fs.StringVar(&o.FFMPEGPath, "ffmpeg", o.FFMPEGPath, "Path to ffmpeg executable")
	fs.StringVar(&o.Codec, "codec", o.Codec, "Recording codec: h264 or hevc")
	fs.Float64Var(&o.Amount, "amount", o.Amount, "Initial Amount slider value (0-10)")
	fs.BoolVar(&o.Sweep, "sweep", o.Sweep, "Sweep Amount from 0 to 10 while recording")
	fs.BoolVar(&o.Stats, "stats", o.Stats, "Show the frame rate meter")
	fs.BoolVar(&o.VSync, "vsync", o.VSync, "Synchronize buffer swaps with the display")
	fs.BoolVar(&o.Headless, "headless", o.Headless, "Record without a window through EGL (Linux only)")
	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with option values")
	fs.BoolVar(&o.Help, "help", false, "Show help message")
}

// Parse builds Options from defaults, the optional -config file and the
// command line, in that order of precedence.
func Parse(name string, args []string, output io.Writer) (*Options, error) {
	o := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	o.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.Help {
		fmt.Fprintln(output, "Flame effect viewer/recorder")
		fs.PrintDefaults()
		return o, nil
	}

	if o.ConfigFile != "" {
		fromFile := Default()
		if err := fromFile.Load(o.ConfigFile); err != nil {
			return nil, err
		}
		fromFile.ConfigFile = o.ConfigFile

		// re-apply only the flags the user actually typed
		explicit := flag.NewFlagSet(name, flag.ContinueOnError)
		explicit.SetOutput(io.Discard)
		fromFile.bind(explicit)
		fs.Visit(func(f *flag.Flag) {
			explicit.Set(f.Name, f.Value.String())
		})
		o = fromFile
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Load overlays the values found in a YAML file.
func (o *Options) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (o *Options) Validate() error {
	switch o.Mode {
	case ModeWindow, ModeRecord:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidMode, o.Mode, ModeWindow, ModeRecord)
	}
	switch o.Codec {
	case "h264", "hevc":
	default:
		return fmt.Errorf("%w: codec %q", ErrInvalidValue, o.Codec)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidValue, o.Width, o.Height)
	}
	if o.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidValue, o.FPS)
	}
	if o.Mode == ModeRecord && o.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidValue, o.Duration)
	}
	if o.Headless && o.Mode != ModeRecord {
		return fmt.Errorf("%w: -headless needs -mode %s", ErrInvalidValue, ModeRecord)
	}
	if o.Amount < 0 || o.Amount > 10 {
		return fmt.Errorf("%w: amount %v outside [0, 10]", ErrInvalidValue, o.Amount)
	}
	return nil
}
