package hud

import (
	"fmt"
	"math"
)

// Stats is a frame rate meter. The rate is recomputed once per Window of
// frame time, with the lowest and highest rates seen so far.
type Stats struct {
	Window float64 // seconds

	begin  float64
	last   float64
	frames int
	fps    float64
	ms     float64
	min    float64
	max    float64
	primed bool
}

func NewStats() *Stats {
	return &Stats{
		Window: 1,
		min:    math.Inf(1),
		max:    0,
	}
}

// Tick records a frame finished at now seconds. It reports whether the
// displayed numbers changed.
func (s *Stats) Tick(now float64) bool {
	if !s.primed {
		s.primed = true
		s.begin = now
		s.last = now
		return false
	}

	s.ms = (now - s.last) * 1000
	s.last = now
	s.frames++

	if now-s.begin < s.Window {
		return false
	}

	s.fps = math.Round(float64(s.frames) / (now - s.begin))
	s.min = math.Min(s.min, s.fps)
	s.max = math.Max(s.max, s.fps)
	s.begin = now
	s.frames = 0
	return true
}

func (s *Stats) FPS() float64 {
	return s.fps
}

// FrameTime is the duration of the last frame in milliseconds.
func (s *Stats) FrameTime() float64 {
	return s.ms
}

func (s *Stats) String() string {
	if s.max == 0 {
		return "-- FPS"
	}
	return fmt.Sprintf("%.0f FPS (%.0f-%.0f)", s.fps, s.min, s.max)
}
