package domain

import "fmt"

// KeyCode is the host-facing input code. Values match the host key table.
type KeyCode int

const (
	KeyUp KeyCode = iota
	KeyDown
	KeyLeft
	KeyRight
)

func (k KeyCode) Direction() (Direction, error) {
	switch k {
	case KeyUp:
		return DirectionUp, nil
	case KeyDown:
		return DirectionDown, nil
	case KeyLeft:
		return DirectionLeft, nil
	case KeyRight:
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("key code %d: %w", int(k), ErrUnknownKey)
}
