package domain

import "fmt"

// Body is the snake's segment store: two parallel coordinate arrays sized to
// the field capacity up front and never reallocated.
//
// Slots 0..length-1 form a ring in body order. head is the newest segment and
// the slot after it (wrapping at length) holds the tail, so a plain move
// overwrites the tail with the new head and shifts nothing.
type Body struct {
	xs     []int
	ys     []int
	length int
	head   int
}

func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{
		xs: make([]int, capacity),
		ys: make([]int, capacity),
	}
}

// Reset lays cells out tail first. The last cell becomes the head.
func (b *Body) Reset(cells []Coord) error {
	if len(cells) == 0 {
		return ErrEmptyBody
	}
	if len(cells) > len(b.xs) {
		return fmt.Errorf("reset with %d cells, capacity %d: %w", len(cells), len(b.xs), ErrBodyFull)
	}
	for i, c := range cells {
		b.xs[i] = c.X
		b.ys[i] = c.Y
	}
	b.length = len(cells)
	b.head = b.length - 1
	return nil
}

func (b *Body) Head() Coord {
	return Coord{X: b.xs[b.head], Y: b.ys[b.head]}
}

func (b *Body) NextHead(d Direction) Coord {
	return b.Head().Add(d.Delta())
}

func (b *Body) Len() int {
	return b.length
}

func (b *Body) Cap() int {
	return len(b.xs)
}

func (b *Body) Full() bool {
	return b.length == len(b.xs)
}

// Advance moves the head one cell in d. Length is unchanged.
func (b *Body) Advance(d Direction) {
	next := b.NextHead(d)
	if b.head == b.length-1 {
		b.head = 0
	} else {
		b.head++
	}
	b.xs[b.head] = next.X
	b.ys[b.head] = next.Y
}

// Grow adds a new head one cell in d and keeps the tail in place.
// Slots after the current head are shifted up by one to make room.
func (b *Body) Grow(d Direction) error {
	if b.Full() {
		return ErrBodyFull
	}
	next := b.NextHead(d)
	for i := b.length; i > b.head+1; i-- {
		b.xs[i] = b.xs[i-1]
		b.ys[i] = b.ys[i-1]
	}
	b.head++
	b.xs[b.head] = next.X
	b.ys[b.head] = next.Y
	b.length++
	return nil
}

// IsSelfIntersecting reports whether the head shares a cell with any other
// live segment. Only the head is compared.
func (b *Body) IsSelfIntersecting() bool {
	hx, hy := b.xs[b.head], b.ys[b.head]
	for i := 0; i < b.length; i++ {
		if i == b.head {
			continue
		}
		if b.xs[i] == hx && b.ys[i] == hy {
			return true
		}
	}
	return false
}

func (b *Body) IsOutOfBounds(width, height int) bool {
	x, y := b.xs[b.head], b.ys[b.head]
	return x < 0 || x >= width || y < 0 || y >= height
}

// Segments calls fn for every live segment in storage order.
func (b *Body) Segments(fn func(c Coord)) {
	for i := 0; i < b.length; i++ {
		fn(Coord{X: b.xs[i], Y: b.ys[i]})
	}
}

// Cells returns the live segments in body order, tail first and head last.
func (b *Body) Cells() []Coord {
	cells := make([]Coord, 0, b.length)
	for n := 1; n <= b.length; n++ {
		i := (b.head + n) % b.length
		cells = append(cells, Coord{X: b.xs[i], Y: b.ys[i]})
	}
	return cells
}
