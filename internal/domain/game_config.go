package domain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type GameConfig struct {
	Width    int
	Height   int
	CellSize int

	InitialPeriod int
	PeriodStep    int
	PeriodFloor   int

	InitialReward int
	RewardStep    int

	InitialLength    int
	InitialDirection Direction
	StartRow         int

	Background Color
	Snake      Color
	Apple      Color
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:            40,
		Height:           40,
		CellSize:         10,
		InitialPeriod:    300,
		PeriodStep:       25,
		PeriodFloor:      50,
		InitialReward:    10,
		RewardStep:       10,
		InitialLength:    4,
		InitialDirection: DirectionRight,
		StartRow:         0,
		Background:       ColorBackground,
		Snake:            ColorSnake,
		Apple:            ColorApple,
	}
}

func (c *GameConfig) Validate() error {
	var merr *multierror.Error

	if c.Width < 1 || c.Height < 1 {
		merr = multierror.Append(merr, fmt.Errorf("field %dx%d must be at least 1x1", c.Width, c.Height))
	}
	if c.CellSize < 1 {
		merr = multierror.Append(merr, fmt.Errorf("cell size %d must be positive", c.CellSize))
	}
	if c.InitialPeriod < 1 {
		merr = multierror.Append(merr, fmt.Errorf("initial period %d must be positive", c.InitialPeriod))
	}
	if c.PeriodStep < 0 || c.PeriodFloor < 0 {
		merr = multierror.Append(merr, fmt.Errorf("period step %d and floor %d must not be negative", c.PeriodStep, c.PeriodFloor))
	}
	if c.InitialReward < 0 || c.RewardStep < 0 {
		merr = multierror.Append(merr, fmt.Errorf("reward %d and reward step %d must not be negative", c.InitialReward, c.RewardStep))
	}
	if c.InitialLength < 1 || c.InitialLength > c.Width {
		merr = multierror.Append(merr, fmt.Errorf("initial length %d must fit in width %d", c.InitialLength, c.Width))
	} else if c.InitialLength >= c.Width*c.Height {
		merr = multierror.Append(merr, fmt.Errorf("initial length %d leaves no free cell", c.InitialLength))
	}
	if !c.InitialDirection.Valid() {
		merr = multierror.Append(merr, fmt.Errorf("initial direction %d is not a direction", int(c.InitialDirection)))
	} else if c.InitialLength > 1 && c.InitialDirection == DirectionLeft {
		merr = multierror.Append(merr, fmt.Errorf("initial direction left runs into the body"))
	}
	if c.StartRow < 0 || c.StartRow >= c.Height {
		merr = multierror.Append(merr, fmt.Errorf("start row %d outside height %d", c.StartRow, c.Height))
	}

	return merr.ErrorOrNil()
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
