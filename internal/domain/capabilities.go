package domain

type Canvas interface {
	SetFillColor(c Color)
	FillRect(x, y, w, h int)
	PresentFrame()
}

type Random interface {
	// RandomBelow returns an integer in [0, bound).
	RandomBelow(bound int) int
}

type EventSink interface {
	NotifyScore(score int)
	NotifyPeriod(period int)
	NotifyGameOver(cause Cause)
}

// Collaborators must not call back into the Game that owns them.
type Collaborators struct {
	Canvas Canvas
	Random Random
	Events EventSink
}
