package frame

import (
	"sync"

	"snake/internal/domain"
)

type Rect struct {
	X, Y, W, H int
	Color      domain.Color
}

// Canvas records fill calls made during a tick into a back buffer and
// publishes them on PresentFrame. The render loop reads the front buffer
// from another goroutine.
type Canvas struct {
	back  []Rect
	color domain.Color

	mu     sync.RWMutex
	front  []Rect
	frames uint64
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetFillColor(col domain.Color) {
	c.color = col
}

func (c *Canvas) FillRect(x, y, w, h int) {
	c.back = append(c.back, Rect{X: x, Y: y, W: w, H: h, Color: c.color})
}

func (c *Canvas) PresentFrame() {
	c.mu.Lock()
	c.front, c.back = c.back, c.front[:0]
	c.frames++
	c.mu.Unlock()
}

// Each calls fn for every rectangle of the last presented frame, in order.
func (c *Canvas) Each(fn func(r Rect)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.front {
		fn(r)
	}
}

func (c *Canvas) Frames() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frames
}
