package panel

import (
	"fmt"
	"math"
)

// Slider is a bounded, quantized scalar input.
type Slider struct {
	Label  string
	Min    float64
	Max    float64
	Step   float64
	Format func(float64) string

	value    float64
	onChange []func(float64)
}

func NewSlider(label string, min, max, step, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Format: func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
	}
	s.value = s.quantize(value)
	return s
}

// OnChange registers fn to receive the value after every interaction,
// including ones that leave the value unchanged.
func (s *Slider) OnChange(fn func(float64)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Slider) Value() float64 {
	return s.value
}

// Set clamps and quantizes v, stores it and notifies subscribers. It
// returns the stored value.
func (s *Slider) Set(v float64) float64 {
	s.value = s.quantize(v)
	for _, fn := range s.onChange {
		fn(s.value)
	}
	return s.value
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) float64 {
	return s.Set(s.value + float64(n)*s.Step)
}

// SetFraction sets the value from a position along the track, 0 at Min and
// 1 at Max.
func (s *Slider) SetFraction(f float64) float64 {
	return s.Set(s.Min + f*(s.Max-s.Min))
}

func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) String() string {
	return s.Format(s.value)
}

func (s *Slider) quantize(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Min
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step <= 0 {
		return v
	}
	// dividing by the inverse step keeps decimal steps like 0.1 on the
	// nearest representable value
	n := math.Round((v - s.Min) / s.Step)
	q := s.Min + n/(1/s.Step)
	return math.Min(s.Max, q)
}
