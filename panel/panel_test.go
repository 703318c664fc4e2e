package panel

import (
	"testing"
)

func TestSliderQuantizes(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 5, 5},
		{"round down", 4.34, 4.3},
		{"round up", 4.36, 4.4},
		{"decimal step", 0.7, 0.7},
		{"below range", -3, 0},
		{"above range", 12.5, 10},
		{"top", 9.96, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(AmountLabel, AmountMin, AmountMax, AmountStep, 0)
			if got := s.Set(tt.in); got != tt.want {
				t.Errorf("Set(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got := s.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSliderEveryStepIsNearestTenth(t *testing.T) {
	s := NewSlider(AmountLabel, AmountMin, AmountMax, AmountStep, 0)
	for n := 0; n <= 100; n++ {
		want := float64(n) / 10
		if got := s.Set(want); got != want {
			t.Fatalf("Set(%v) = %v", want, got)
		}
	}
}

func TestSliderFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10.0"},
		{0, "0.0"},
		{2.5, "2.5"},
		{7.26, "7.3"},
	}

	for _, tt := range tests {
		s := NewSlider(AmountLabel, AmountMin, AmountMax, AmountStep, tt.in)
		if got := s.String(); got != tt.want {
			t.Errorf("String() for %v = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSliderNotifiesEveryInteraction(t *testing.T) {
	s := NewSlider(AmountLabel, AmountMin, AmountMax, AmountStep, 5)

	var got []float64
	s.OnChange(func(v float64) {
		got = append(got, v)
	})

	s.Set(5)
	s.Nudge(1)
	s.Nudge(-2)
	s.SetFraction(1)

	want := []float64{5, 5.1, 4.9, 10}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPanelDefaults(t *testing.T) {
	p := New(10)
	if p.Title != "Scene Settings" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Amount.Label != "Amount" {
		t.Errorf("slider label = %q", p.Amount.Label)
	}
	if p.Amount.Min != 0 || p.Amount.Max != 10 || p.Amount.Step != 0.1 {
		t.Errorf("slider range = [%v, %v] step %v", p.Amount.Min, p.Amount.Max, p.Amount.Step)
	}
	if p.Amount.Value() != 10 {
		t.Errorf("initial value = %v, want 10", p.Amount.Value())
	}
}

func TestPanelArrangeTopRight(t *testing.T) {
	p := New(10)
	p.Arrange(1280)

	if right := p.Bounds.X + p.Bounds.W; right != 1280-Margin {
		t.Errorf("panel right edge = %v, want %v", right, 1280-Margin)
	}
	if p.Bounds.Y != Margin {
		t.Errorf("panel top = %v, want %v", p.Bounds.Y, Margin)
	}
	if !p.Row.Contains(p.Track.X+p.Track.W/2, p.Track.Y) {
		t.Errorf("track %+v not inside row %+v", p.Track, p.Row)
	}
}

func TestPanelDragSetsValue(t *testing.T) {
	p := New(10)
	p.Arrange(1280)

	y := p.Track.Y + p.Track.H/2
	if !p.Pointer(p.Track.X+p.Track.W/2, y, true) {
		t.Fatal("press on track was not captured")
	}
	if got := p.Amount.Value(); got != 5 {
		t.Errorf("after press at middle: value = %v, want 5", got)
	}

	// dragging keeps working outside the row
	p.Pointer(p.Track.X-100, y+200, true)
	if got := p.Amount.Value(); got != 0 {
		t.Errorf("after drag left: value = %v, want 0", got)
	}

	p.Pointer(p.Track.X+p.Track.W, y+200, true)
	if got := p.Amount.Value(); got != 10 {
		t.Errorf("after drag to end: value = %v, want 10", got)
	}

	p.Pointer(p.Track.X+p.Track.W, y+200, false)
	if p.Dragging() {
		t.Error("still dragging after release")
	}

	// moving without a press leaves the value alone
	p.Pointer(p.Track.X, y, false)
	if got := p.Amount.Value(); got != 10 {
		t.Errorf("hover changed value to %v", got)
	}
}

func TestPanelPressOutsideIgnored(t *testing.T) {
	p := New(3)
	p.Arrange(1280)

	if p.Pointer(10, 10, true) {
		t.Error("press outside panel was captured")
	}
	// sliding onto the track while held does not start a drag
	p.Pointer(p.Track.X, p.Track.Y, true)
	if got := p.Amount.Value(); got != 3 {
		t.Errorf("value = %v, want 3", got)
	}
}

func TestPanelKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want float64
	}{
		{KeyLeft, 4.9},
		{KeyDown, 4.9},
		{KeyRight, 5.1},
		{KeyUp, 5.1},
		{KeyPageDown, 4},
		{KeyPageUp, 6},
		{KeyHome, 0},
		{KeyEnd, 10},
	}

	for _, tt := range tests {
		p := New(5)
		p.Key(tt.key)
		if got := p.Amount.Value(); got != tt.want {
			t.Errorf("key %d: value = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHandleFollowsValue(t *testing.T) {
	p := New(0)
	p.Arrange(800)

	h := p.Handle()
	if cx := h.X + h.W/2; cx != p.Track.X {
		t.Errorf("handle at min: center %v, want %v", cx, p.Track.X)
	}

	p.Amount.Set(10)
	h = p.Handle()
	if cx := h.X + h.W/2; cx != p.Track.X+p.Track.W {
		t.Errorf("handle at max: center %v, want %v", cx, p.Track.X+p.Track.W)
	}
	if p.Fill().W != p.Track.W {
		t.Errorf("fill width = %v, want %v", p.Fill().W, p.Track.W)
	}
}
