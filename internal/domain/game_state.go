package domain

import (
	"errors"
	"fmt"
)

type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	}
	return "none"
}

// Win reports whether the run ended by filling the board.
func (c Cause) Win() bool {
	return c == CauseBoardFull
}

// Game holds the whole simulation state of one run. It is not safe for
// concurrent use; the host calls it from a single loop.
type Game struct {
	config *GameConfig
	field  *Field
	body   *Body

	apple      Coord
	direction  Direction
	period     int
	score      int
	nextReward int

	status      Status
	cause       Cause
	initialized bool
	busy        bool

	canvas Canvas
	random Random
	events EventSink
}

type Snapshot struct {
	Cells      []Coord
	Apple      Coord
	Direction  Direction
	Period     int
	Score      int
	NextReward int
	Status     Status
	Cause      Cause
}

func NewGame(config *GameConfig, c Collaborators) (*Game, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Canvas == nil || c.Random == nil || c.Events == nil {
		return nil, errors.New("canvas, random and event sink are all required")
	}

	field := NewField(config.Width, config.Height)
	return &Game{
		config: config.Copy(),
		field:  field,
		body:   NewBody(field.Capacity()),
		canvas: c.Canvas,
		random: c.Random,
		events: c.Events,
	}, nil
}

func (g *Game) Config() *GameConfig {
	return g.config.Copy()
}

func (g *Game) Field() *Field {
	return g.field
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Cause() Cause {
	return g.cause
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) NextReward() int {
	return g.nextReward
}

func (g *Game) Period() int {
	return g.period
}

func (g *Game) Apple() Coord {
	return g.apple
}

func (g *Game) Direction() Direction {
	return g.direction
}

func (g *Game) Len() int {
	return g.body.Len()
}

func (g *Game) Head() Coord {
	return g.body.Head()
}

func (g *Game) Initialized() bool {
	return g.initialized
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:      g.body.Cells(),
		Apple:      g.apple,
		Direction:  g.direction,
		Period:     g.period,
		Score:      g.score,
		NextReward: g.nextReward,
		Status:     g.status,
		Cause:      g.cause,
	}
}

func (g *Game) enter() error {
	if g.busy {
		return ErrReentrant
	}
	g.busy = true
	return nil
}

func (g *Game) leave() {
	g.busy = false
}
