package domain

type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Capacity is the most segments a snake can ever have on this field.
func (f *Field) Capacity() int {
	return f.Width * f.Height
}
