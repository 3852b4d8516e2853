package frame

import (
	"testing"

	"snake/internal/domain"
)

func collect(c *Canvas) []Rect {
	var out []Rect
	c.Each(func(r Rect) { out = append(out, r) })
	return out
}

func TestNothingVisibleBeforePresent(t *testing.T) {
	c := NewCanvas()
	c.SetFillColor(domain.ColorSnake)
	c.FillRect(0, 0, 10, 10)

	if got := collect(c); len(got) != 0 {
		t.Errorf("front buffer = %v before PresentFrame", got)
	}
	if c.Frames() != 0 {
		t.Errorf("Frames = %d, want 0", c.Frames())
	}
}

func TestPresentSwapsBuffers(t *testing.T) {
	c := NewCanvas()

	c.SetFillColor(domain.ColorBackground)
	c.FillRect(0, 0, 400, 400)
	c.SetFillColor(domain.ColorApple)
	c.FillRect(50, 60, 10, 10)
	c.PresentFrame()

	got := collect(c)
	want := []Rect{
		{0, 0, 400, 400, domain.ColorBackground},
		{50, 60, 10, 10, domain.ColorApple},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	c.FillRect(1, 1, 1, 1)
	c.PresentFrame()
	if got := collect(c); len(got) != 1 || got[0].Color != domain.ColorApple {
		t.Errorf("second frame = %v, want one apple-colored rect", got)
	}
	if c.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", c.Frames())
	}
}
