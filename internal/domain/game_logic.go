package domain

import "fmt"

func (g *Game) Initialize() error {
	if err := g.enter(); err != nil {
		return err
	}
	defer g.leave()

	if g.initialized {
		return ErrAlreadyInitialized
	}

	g.period = g.config.InitialPeriod
	g.nextReward = g.config.InitialReward
	g.teleportApple()

	cells := make([]Coord, g.config.InitialLength)
	for i := range cells {
		cells[i] = Coord{X: i, Y: g.config.StartRow}
	}
	if err := g.body.Reset(cells); err != nil {
		return fmt.Errorf("place initial snake: %w", err)
	}
	g.direction = g.config.InitialDirection
	g.status = StatusRunning
	g.cause = CauseNone
	g.initialized = true

	g.repaint()
	g.events.NotifyScore(0)
	return nil
}

// Tick advances the run by one step. The timestamp is reserved for the host.
// Ticks after game over change nothing.
func (g *Game) Tick(timestamp int64) error {
	if err := g.enter(); err != nil {
		return err
	}
	defer g.leave()

	if !g.initialized {
		return ErrNotInitialized
	}
	if g.status == StatusGameOver {
		return nil
	}

	if g.willEatApple() {
		if err := g.body.Grow(g.direction); err != nil {
			return fmt.Errorf("grow at tick %d: %w", timestamp, err)
		}
		g.teleportApple()
		g.speedUp()
		g.updateScore()
		g.events.NotifyScore(g.score)
	} else {
		g.body.Advance(g.direction)
	}

	switch {
	case g.body.IsOutOfBounds(g.field.Width, g.field.Height):
		g.gameOver(CauseWall)
	case g.body.IsSelfIntersecting():
		g.gameOver(CauseSelf)
	case g.body.Full():
		g.gameOver(CauseBoardFull)
	}

	g.repaint()
	return nil
}

func (g *Game) HandleInput(code KeyCode) error {
	if err := g.enter(); err != nil {
		return err
	}
	defer g.leave()

	dir, err := code.Direction()
	if err != nil {
		return err
	}
	if !g.initialized {
		return ErrNotInitialized
	}
	if g.status == StatusGameOver {
		return nil
	}
	g.changeDirection(dir)
	return nil
}

func (g *Game) changeDirection(d Direction) {
	if g.direction.IsOpposite(d) {
		return
	}
	g.direction = d
}

func (g *Game) willEatApple() bool {
	return g.body.NextHead(g.direction).Equals(g.apple)
}

func (g *Game) teleportApple() {
	x := g.random.RandomBelow(g.field.Width)
	y := g.random.RandomBelow(g.field.Height)
	g.apple = Coord{X: x, Y: y}
}

func (g *Game) speedUp() {
	if g.period > g.config.PeriodFloor {
		g.period -= g.config.PeriodStep
		g.events.NotifyPeriod(g.period)
	}
}

func (g *Game) updateScore() {
	g.score += g.nextReward
	g.nextReward += g.config.RewardStep
}

func (g *Game) gameOver(cause Cause) {
	g.status = StatusGameOver
	g.cause = cause
	g.events.NotifyGameOver(cause)
}

func (g *Game) repaint() {
	cell := g.config.CellSize

	g.canvas.SetFillColor(g.config.Background)
	g.canvas.FillRect(0, 0, g.field.Width*cell, g.field.Height*cell)

	g.canvas.SetFillColor(g.config.Snake)
	g.body.Segments(func(c Coord) {
		g.canvas.FillRect(c.X*cell, c.Y*cell, cell, cell)
	})

	g.canvas.SetFillColor(g.config.Apple)
	g.canvas.FillRect(g.apple.X*cell, g.apple.Y*cell, cell, cell)

	g.canvas.PresentFrame()
}
