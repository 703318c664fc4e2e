package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goflame/panel"
)

func TestCompositionHasTwoFixedColourPairs(t *testing.T) {
	c := New(panel.New(10))
	if len(c.Views) != 2 {
		t.Fatalf("len(Views) = %d, want 2", len(c.Views))
	}

	want := [][2]mgl32.Vec4{
		{{0, 0, 1, 1}, {0.5, 0.5, 1, 1}},
		{{1, 0, 0, 1}, {1, 1, 0, 1}},
	}

	for _, amount := range []float64{10, 0, 3.3, 7.7} {
		c.Panel.Amount.Set(amount)
		c.Frame(float64(amount))
		for i, v := range c.Views {
			u := v.Instance.Uniforms()
			if u.Colour1 != want[i][0] || u.Colour2 != want[i][1] {
				t.Errorf("amount %v, view %s: colours %v/%v, want %v/%v",
					amount, v.Name, u.Colour1, u.Colour2, want[i][0], want[i][1])
			}
			if v.Instance.Position() != (mgl32.Vec3{}) {
				t.Errorf("view %s: position %v, want origin", v.Name, v.Instance.Position())
			}
		}
	}
}

func TestSharedAmountScenarios(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		label  string
	}{
		{"five", 5.0, "5000"},
		{"zero", 0.0, "0"},
		{"ten", 10.0, "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(panel.New(2))
			c.Frame(0.1)

			// a slider change alone updates both labels
			c.Panel.Amount.Set(tt.amount)
			for _, v := range c.Views {
				if got := v.Instance.LabelText(); got != tt.label {
					t.Errorf("view %s: label %q, want %q", v.Name, got, tt.label)
				}
			}
		})
	}
}

func TestLabelSwatches(t *testing.T) {
	c := New(panel.New(5))
	c.Frame(1)

	want := []color.RGBA{{0, 0, 255, 255}, {255, 0, 0, 255}}
	for i, v := range c.Views {
		if got := v.Instance.LabelBackground(); got != want[i] {
			t.Errorf("view %s: swatch %v, want %v", v.Name, got, want[i])
		}
		if got := v.Instance.LabelText(); got != "5000" {
			t.Errorf("view %s: label %q, want 5000", v.Name, got)
		}
	}
}

func TestFrameUsesLatestPanelValue(t *testing.T) {
	c := New(panel.New(10))

	elapsed := 0.0
	for step := 0; step <= 100; step++ {
		amount := float64(step) / 10
		c.Panel.Amount.Set(amount)
		elapsed += 1.0 / 60
		c.Frame(elapsed)

		for _, v := range c.Views {
			u := v.Instance.Uniforms()
			if u.Amount != float32(amount) {
				t.Fatalf("step %d view %s: amount uniform %v, want %v", step, v.Name, u.Amount, amount)
			}
			if want := int(math.Floor(amount * 1000)); v.Instance.Label() != want {
				t.Fatalf("step %d view %s: label %d, want %d", step, v.Name, v.Instance.Label(), want)
			}
			if u.Time != float32(elapsed) {
				t.Fatalf("step %d view %s: time %v, want %v", step, v.Name, u.Time, float32(elapsed))
			}
		}
	}
}

func TestFrameTimeNeverGoesBack(t *testing.T) {
	c := New(panel.New(10))
	c.Frame(2)
	c.Frame(1)
	if c.Elapsed() != 2 {
		t.Errorf("Elapsed() = %v, want 2", c.Elapsed())
	}
	for _, v := range c.Views {
		if got := v.Instance.Uniforms().Time; got != 2 {
			t.Errorf("view %s: time %v, want 2", v.Name, got)
		}
	}
}

func TestSideBySide(t *testing.T) {
	vps := SideBySide(1280, 720, 2)
	want := []Viewport{
		{X: 270, Y: 185, W: 350, H: 350},
		{X: 660, Y: 185, W: 350, H: 350},
	}
	if len(vps) != len(want) {
		t.Fatalf("got %d viewports", len(vps))
	}
	for i := range want {
		if vps[i] != want[i] {
			t.Errorf("viewport %d = %+v, want %+v", i, vps[i], want[i])
		}
	}
	if gap := vps[1].X - (vps[0].X + vps[0].W); gap != ViewportGap {
		t.Errorf("gap = %v, want %v", gap, ViewportGap)
	}
}

func TestViewportScaled(t *testing.T) {
	vp := Viewport{X: 270, Y: 185, W: 350, H: 350}

	x, y, w, h := vp.Scaled(2, 1440)
	if x != 540 || y != 370 || w != 700 || h != 700 {
		t.Errorf("Scaled(2) = %d,%d %dx%d", x, y, w, h)
	}
}

func TestCameraProject(t *testing.T) {
	cam := DefaultCamera()
	vp := Viewport{X: 100, Y: 50, W: 350, H: 350}

	x, y := cam.Project(mgl32.Vec3{}, vp)
	if math.Abs(x-275) > 0.01 || math.Abs(y-225) > 0.01 {
		t.Errorf("origin projects to %v,%v, want 275,225", x, y)
	}

	// 0.31 below the origin at distance 2 with a 45 degree field of view
	halfHeight := 2 * math.Tan(math.Pi/8)
	wantY := 225 + 0.31/halfHeight*175
	_, y = cam.Project(mgl32.Vec3{0, -0.31, 0}, vp)
	if math.Abs(y-wantY) > 0.01 {
		t.Errorf("label anchor projects to y=%v, want %v", y, wantY)
	}
}

func TestLabelRectCenteredUnderFlame(t *testing.T) {
	c := New(panel.New(10))
	c.Arrange(1280, 720)

	for _, v := range c.Views {
		r := v.LabelRect()
		cx := r.X + r.W/2
		if want := v.Viewport.X + v.Viewport.W/2; math.Abs(cx-want) > 0.01 {
			t.Errorf("view %s: label center x %v, want %v", v.Name, cx, want)
		}
		if cy := r.Y + r.H/2; cy <= v.Viewport.Y+v.Viewport.H/2 {
			t.Errorf("view %s: label center y %v is not below the viewport center", v.Name, cy)
		}
		if r.W != 178 || r.H != 80 {
			t.Errorf("view %s: label size %vx%v", v.Name, r.W, r.H)
		}
	}
}
