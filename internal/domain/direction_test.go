package domain

import (
	"errors"
	"testing"
)

func TestDirectionOpposites(t *testing.T) {
	pairs := map[Direction]Direction{
		DirectionUp:    DirectionDown,
		DirectionDown:  DirectionUp,
		DirectionLeft:  DirectionRight,
		DirectionRight: DirectionLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, want %v", d, d.Opposite(), opp)
		}
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) = false", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(itself) = true", d)
		}
		if sum := d.Delta().Add(opp.Delta()); !sum.Equals(Coord{}) {
			t.Errorf("%v and %v deltas do not cancel: %v", d, opp, sum)
		}
	}
}

func TestKeyCodeDirection(t *testing.T) {
	tests := []struct {
		code KeyCode
		want Direction
	}{
		{KeyUp, DirectionUp},
		{KeyDown, DirectionDown},
		{KeyLeft, DirectionLeft},
		{KeyRight, DirectionRight},
	}
	for _, tt := range tests {
		got, err := tt.code.Direction()
		if err != nil || got != tt.want {
			t.Errorf("KeyCode(%d).Direction() = %v, %v; want %v", tt.code, got, err, tt.want)
		}
	}

	if _, err := KeyCode(-1).Direction(); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("KeyCode(-1) error = %v, want ErrUnknownKey", err)
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color(0x12ab34).RGBA()
	if c.R != 0x12 || c.G != 0xab || c.B != 0x34 || c.A != 0xff {
		t.Errorf("RGBA = %+v", c)
	}
}
