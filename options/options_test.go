package options

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	o, err := Parse("goflame", nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if o.Mode != ModeWindow || o.Width != 1280 || o.Height != 720 || o.Amount != 10 {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestParseFlags(t *testing.T) {
	o, err := Parse("goflame", []string{"-mode", "record", "-duration", "3", "-fps", "30", "-amount", "2.5", "-sweep"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if o.Mode != ModeRecord || o.Duration != 3 || o.FPS != 30 || o.Amount != 2.5 || !o.Sweep {
		t.Errorf("flags not applied: %+v", o)
	}
}

func TestParseConfigFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flame.yaml")
	config := "mode: record\nwidth: 800\nheight: 600\nfps: 24\nduration: 4\ncodec: hevc\namount: 7\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := Parse("goflame", []string{"-config", path, "-fps", "50"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if o.Mode != ModeRecord || o.Width != 800 || o.Height != 600 || o.Codec != "hevc" || o.Amount != 7 {
		t.Errorf("config values not applied: %+v", o)
	}
	if o.FPS != 50 {
		t.Errorf("FPS = %d, want command line value 50", o.FPS)
	}
	if o.Duration != 4 {
		t.Errorf("Duration = %v, want 4", o.Duration)
	}
	if o.ConfigFile != path {
		t.Errorf("ConfigFile = %q", o.ConfigFile)
	}
}

func TestParseMissingConfig(t *testing.T) {
	_, err := Parse("goflame", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		want   error
	}{
		{"defaults", func(*Options) {}, nil},
		{"bad mode", func(o *Options) { o.Mode = "stream" }, ErrInvalidMode},
		{"bad codec", func(o *Options) { o.Codec = "vp9" }, ErrInvalidValue},
		{"zero width", func(o *Options) { o.Width = 0 }, ErrInvalidValue},
		{"zero fps", func(o *Options) { o.FPS = 0 }, ErrInvalidValue},
		{"amount too high", func(o *Options) { o.Amount = 10.5 }, ErrInvalidValue},
		{"amount negative", func(o *Options) { o.Amount = -1 }, ErrInvalidValue},
		{"record without duration", func(o *Options) { o.Mode = ModeRecord; o.Duration = 0 }, ErrInvalidValue},
		{"window ignores duration", func(o *Options) { o.Duration = 0 }, nil},
		{"headless window", func(o *Options) { o.Headless = true }, ErrInvalidValue},
		{"headless record", func(o *Options) { o.Mode = ModeRecord; o.Headless = true }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.modify(o)
			err := o.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
