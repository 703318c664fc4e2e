// Package panel owns the process-wide control panel and its single
// "Amount" slider.
package panel

import "math"

const (
	Title       = "Scene Settings"
	AmountLabel = "Amount"

	AmountMin  = 0.0
	AmountMax  = 10.0
	AmountStep = 0.1
)

// Geometry in logical pixels.
const (
	Width       = 260.0
	Margin      = 12.0
	TitleHeight = 26.0
	RowHeight   = 34.0
	LabelColumn = 78.0
	ValueColumn = 52.0
	Padding     = 8.0
	TrackHeight = 4.0
	HandleSize  = 14.0
)

type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyUp
	KeyPageDown
	KeyPageUp
	KeyHome
	KeyEnd
)

// Rect is an axis aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Panel struct {
	Title  string
	Amount *Slider

	Bounds   Rect
	TitleBar Rect
	Row      Rect
	LabelBox Rect
	Track    Rect
	ValueBox Rect

	dragging bool
	wasDown  bool
	lastX    float64
}

func New(initial float64) *Panel {
	p := &Panel{
		Title:  Title,
		Amount: NewSlider(AmountLabel, AmountMin, AmountMax, AmountStep, initial),
	}
	p.Arrange(0)
	return p
}

// Arrange anchors the panel to the top-right corner of a window of the
// given logical width.
func (p *Panel) Arrange(windowWidth float64) {
	x := math.Max(Margin, windowWidth-Width-Margin)
	y := Margin

	p.TitleBar = Rect{X: x, Y: y, W: Width, H: TitleHeight}
	p.Row = Rect{X: x, Y: y + TitleHeight, W: Width, H: RowHeight}
	p.Bounds = Rect{X: x, Y: y, W: Width, H: TitleHeight + RowHeight}

	p.LabelBox = Rect{X: x + Padding, Y: p.Row.Y, W: LabelColumn - Padding, H: RowHeight}
	trackX := x + LabelColumn + HandleSize/2
	trackW := Width - LabelColumn - ValueColumn - HandleSize - Padding
	p.Track = Rect{X: trackX, Y: p.Row.Y + (RowHeight-TrackHeight)/2, W: trackW, H: TrackHeight}
	p.ValueBox = Rect{X: x + Width - ValueColumn - Padding/2, Y: p.Row.Y + 5, W: ValueColumn, H: RowHeight - 10}
}

// Handle returns the slider handle rectangle for the current value.
func (p *Panel) Handle() Rect {
	cx := p.Track.X + p.Amount.Fraction()*p.Track.W
	cy := p.Track.Y + p.Track.H/2
	return Rect{X: cx - HandleSize/2, Y: cy - HandleSize/2, W: HandleSize, H: HandleSize}
}

// Fill returns the part of the track left of the handle.
func (p *Panel) Fill() Rect {
	r := p.Track
	r.W = p.Amount.Fraction() * p.Track.W
	return r
}

// trackHitArea is the full row height around the track plus the handle
// overhang at both ends.
func (p *Panel) trackHitArea() Rect {
	return Rect{
		X: p.Track.X - HandleSize/2,
		Y: p.Row.Y,
		W: p.Track.W + HandleSize,
		H: p.Row.H,
	}
}

// Pointer feeds the pointer state in logical window coordinates. It
// reports whether the panel captured the pointer.
func (p *Panel) Pointer(x, y float64, down bool) bool {
	pressed := down && !p.wasDown
	p.wasDown = down

	if !down {
		p.dragging = false
		return p.Bounds.Contains(x, y)
	}

	if pressed && p.trackHitArea().Contains(x, y) {
		p.dragging = true
		p.lastX = math.NaN()
	}

	if !p.dragging {
		return pressed && p.Bounds.Contains(x, y)
	}

	if x != p.lastX {
		p.lastX = x
		f := (x - p.Track.X) / p.Track.W
		p.Amount.SetFraction(math.Max(0, math.Min(1, f)))
	}
	return true
}

func (p *Panel) Dragging() bool {
	return p.dragging
}

func (p *Panel) Key(k Key) {
	switch k {
	case KeyLeft, KeyDown:
		p.Amount.Nudge(-1)
	case KeyRight, KeyUp:
		p.Amount.Nudge(1)
	case KeyPageDown:
		p.Amount.Nudge(-10)
	case KeyPageUp:
		p.Amount.Nudge(10)
	case KeyHome:
		p.Amount.Set(p.Amount.Min)
	case KeyEnd:
		p.Amount.Set(p.Amount.Max)
	}
}
