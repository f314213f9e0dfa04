package livecharts

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultTooltip(t *testing.T) {
	tip := NewDefaultTooltip()

	if tip.SelectionMode() != SelectionSharedX {
		t.Errorf("default selection = %v, want SelectionSharedX", tip.SelectionMode())
	}
	if tip.Timeout() != DefaultTooltipTimeout {
		t.Errorf("default timeout = %v, want %v", tip.Timeout(), DefaultTooltipTimeout)
	}

	tip.SetTimeout(2 * time.Second)
	if tip.Timeout() != 2*time.Second {
		t.Errorf("timeout = %v after SetTimeout", tip.Timeout())
	}
}

func TestDefaultLegendSeries(t *testing.T) {
	legend := NewDefaultLegend()
	if len(legend.Series()) != 0 {
		t.Fatalf("fresh legend has %d series", len(legend.Series()))
	}

	s := SeriesCollection{{Title: "a"}, {Title: "b"}}
	legend.SetSeries(s)
	if got := legend.Series(); len(got) != 2 || got[0].Title != "a" {
		t.Errorf("Series() = %v", got)
	}
}

func TestTooltipPopupFadeIn(t *testing.T) {
	p := newTooltipPopup()
	if p.Visible() {
		t.Fatal("fresh popup is visible")
	}

	p.MoveTo(100, 40)
	if x, y := p.node.X, p.node.Y; x != 100+p.OffsetX || y != 40+p.OffsetY {
		t.Errorf("popup at (%v, %v), want pointer plus offset", x, y)
	}

	// A single tick mid-fade gives partial opacity.
	p.update(p.fadeDuration.Seconds() / 2)
	if a := p.node.Alpha; a <= 0 || a >= 1 {
		t.Errorf("mid-fade alpha = %v, want within (0, 1)", a)
	}

	p.update(p.fadeDuration.Seconds())
	if p.node.Alpha != 1 {
		t.Errorf("post-fade alpha = %v, want 1", p.node.Alpha)
	}
}

func TestTooltipPopupCountdownHides(t *testing.T) {
	p := newTooltipPopup()
	p.MoveTo(10, 10)
	p.update(p.fadeDuration.Seconds())
	if !p.Visible() {
		t.Fatal("popup not visible after fade-in")
	}

	// No movement for longer than the hide delay starts the fade-out.
	p.update(p.hideDelay.Seconds() + 0.001)
	p.update(p.fadeDuration.Seconds())
	if p.Visible() {
		t.Errorf("popup still visible after countdown, alpha = %v", p.node.Alpha)
	}
}

func TestTooltipPopupMoveRestartsCountdown(t *testing.T) {
	p := newTooltipPopup()
	p.MoveTo(10, 10)
	p.update(p.fadeDuration.Seconds())

	// Keep moving just inside the delay; the popup must stay up.
	step := p.hideDelay.Seconds() * 0.8
	for i := 0; i < 5; i++ {
		p.update(step)
		p.MoveTo(float64(10+i), 10)
	}
	if !p.Visible() {
		t.Error("popup hid despite continuous movement")
	}
}

func TestTooltipPopupHide(t *testing.T) {
	p := newTooltipPopup()
	p.MoveTo(10, 10)
	p.update(p.fadeDuration.Seconds())

	p.Hide()
	p.update(p.fadeDuration.Seconds())
	if p.Visible() {
		t.Errorf("alpha = %v after explicit Hide", p.node.Alpha)
	}
}

func TestTooltipPopupMoveRetargetsFadeOut(t *testing.T) {
	p := newTooltipPopup()
	p.hideDelay = time.Second
	p.MoveTo(10, 10)
	p.update(p.fadeDuration.Seconds())

	// Halfway through a fade-out the popup is partially visible.
	p.Hide()
	p.update(p.fadeDuration.Seconds() / 2)
	if a := p.node.Alpha; a <= 0 || a >= 1 {
		t.Fatalf("mid-fade-out alpha = %v, want within (0, 1)", a)
	}

	// Movement during the fade-out must bring the popup back up, not wait
	// for the fade-out to finish.
	p.MoveTo(20, 20)
	p.update(p.fadeDuration.Seconds())
	if p.node.Alpha != 1 {
		t.Errorf("alpha = %v after move during fade-out, want 1", p.node.Alpha)
	}
}

func TestTooltipPopupDrawCanvas(t *testing.T) {
	p := newTooltipPopup()
	dst := ebiten.NewImage(200, 100)
	tip := NewDefaultTooltip()

	// Hidden popup draws nothing and allocates nothing.
	p.draw(dst, tip)
	if p.canvas != nil {
		t.Fatal("hidden popup allocated a canvas")
	}

	p.MoveTo(10, 10)
	p.update(p.fadeDuration.Seconds())
	p.draw(dst, tip)
	if p.canvas == nil {
		t.Fatal("visible popup did not allocate a canvas")
	}
	if w, h := p.canvas.Bounds().Dx(), p.canvas.Bounds().Dy(); w != int(p.Width) || h != int(p.Height) {
		t.Errorf("canvas %dx%d, want %vx%v", w, h, p.Width, p.Height)
	}

	// Resizing the content panel replaces the canvas.
	old := p.canvas
	p.Width = 200
	p.draw(dst, tip)
	if p.canvas == old {
		t.Error("canvas not reallocated after resize")
	}
	if w := p.canvas.Bounds().Dx(); w != 200 {
		t.Errorf("canvas width = %d, want 200", w)
	}
}

func TestTooltipPopupFollowsSlots(t *testing.T) {
	v := NewChartView(nil)

	v.SetAnimationsSpeed(500 * time.Millisecond)
	if v.Tooltip().fadeDuration != 500*time.Millisecond {
		t.Errorf("fade duration = %v, want slot value", v.Tooltip().fadeDuration)
	}

	v.SetTooltipTimeout(time.Second)
	if v.Tooltip().hideDelay != time.Second {
		t.Errorf("hide delay = %v, want slot value", v.Tooltip().hideDelay)
	}
}
