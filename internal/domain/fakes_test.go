package domain

import "fmt"

type canvasOp struct {
	kind  string
	color Color
	x, y  int
	w, h  int
}

func (op canvasOp) String() string {
	switch op.kind {
	case "fill":
		return fmt.Sprintf("fill(%d,%d,%d,%d)", op.x, op.y, op.w, op.h)
	case "color":
		return fmt.Sprintf("color(%06x)", uint32(op.color))
	}
	return op.kind
}

type recordingCanvas struct {
	ops    []canvasOp
	frames int
}

func (c *recordingCanvas) SetFillColor(col Color) {
	c.ops = append(c.ops, canvasOp{kind: "color", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h int) {
	c.ops = append(c.ops, canvasOp{kind: "fill", x: x, y: y, w: w, h: h})
}

func (c *recordingCanvas) PresentFrame() {
	c.ops = append(c.ops, canvasOp{kind: "present"})
	c.frames++
}

func (c *recordingCanvas) reset() {
	c.ops = nil
}

// scriptedRandom replays values in order and returns 0 once they run out.
type scriptedRandom struct {
	values []int
	bounds []int
}

func (r *scriptedRandom) RandomBelow(bound int) int {
	r.bounds = append(r.bounds, bound)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type recordingSink struct {
	scores    []int
	periods   []int
	gameOvers []Cause

	onScore func(score int)
}

func (s *recordingSink) NotifyScore(score int) {
	s.scores = append(s.scores, score)
	if s.onScore != nil {
		s.onScore(score)
	}
}

func (s *recordingSink) NotifyPeriod(period int) {
	s.periods = append(s.periods, period)
}

func (s *recordingSink) NotifyGameOver(cause Cause) {
	s.gameOvers = append(s.gameOvers, cause)
}

type harness struct {
	game   *Game
	canvas *recordingCanvas
	random *scriptedRandom
	sink   *recordingSink
}

func newHarness(cfg *GameConfig, randomValues ...int) (*harness, error) {
	h := &harness{
		canvas: &recordingCanvas{},
		random: &scriptedRandom{values: randomValues},
		sink:   &recordingSink{},
	}
	game, err := NewGame(cfg, Collaborators{Canvas: h.canvas, Random: h.random, Events: h.sink})
	if err != nil {
		return nil, err
	}
	h.game = game
	return h, nil
}
