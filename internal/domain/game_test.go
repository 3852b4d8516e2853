package domain

import (
	"errors"
	"testing"
)

func newStartedGame(t *testing.T, cfg *GameConfig, randomValues ...int) *harness {
	t.Helper()
	h, err := newHarness(cfg, randomValues...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := h.game.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return h
}

func TestInitializeCanonicalState(t *testing.T) {
	h := newStartedGame(t, nil, 20, 30)
	g := h.game

	if got := g.Snapshot().Cells; !sameCells(got, row(0, 1, 2, 3)) {
		t.Errorf("Cells = %v, want (0..3,0)", got)
	}
	if g.Direction() != DirectionRight {
		t.Errorf("Direction = %v, want right", g.Direction())
	}
	if g.Period() != 300 || g.NextReward() != 10 || g.Score() != 0 {
		t.Errorf("period/reward/score = %d/%d/%d, want 300/10/0", g.Period(), g.NextReward(), g.Score())
	}
	if got := g.Apple(); !got.Equals(Coord{20, 30}) {
		t.Errorf("Apple = %v, want (20,30)", got)
	}
	if g.Status() != StatusRunning {
		t.Errorf("Status = %v, want running", g.Status())
	}
	if len(h.sink.scores) != 1 || h.sink.scores[0] != 0 {
		t.Errorf("scores = %v, want [0]", h.sink.scores)
	}
	if h.canvas.frames != 1 {
		t.Errorf("frames = %d, want 1", h.canvas.frames)
	}
}

func TestInitializeTwice(t *testing.T) {
	h := newStartedGame(t, nil)
	if err := h.game.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize = %v, want ErrAlreadyInitialized", err)
	}
}

func TestTickBeforeInitialize(t *testing.T) {
	h, err := newHarness(nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := h.game.Tick(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Tick = %v, want ErrNotInitialized", err)
	}
	if err := h.game.HandleInput(KeyUp); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("HandleInput = %v, want ErrNotInitialized", err)
	}
}

func TestRepaintOrder(t *testing.T) {
	h := newStartedGame(t, nil, 7, 9)

	want := []string{
		"color(000000)", "fill(0,0,400,400)",
		"color(00ff00)", "fill(0,0,10,10)", "fill(10,0,10,10)", "fill(20,0,10,10)", "fill(30,0,10,10)",
		"color(ff0000)", "fill(70,90,10,10)",
		"present",
	}
	if len(h.canvas.ops) != len(want) {
		t.Fatalf("got %d ops %v, want %d", len(h.canvas.ops), h.canvas.ops, len(want))
	}
	for i, op := range h.canvas.ops {
		if op.String() != want[i] {
			t.Errorf("op %d = %s, want %s", i, op, want[i])
		}
	}
}

func TestEatAppleScenario(t *testing.T) {
	h := newStartedGame(t, nil, 4, 0, 20, 20)
	h.canvas.reset()

	if err := h.game.Tick(1); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	g := h.game

	if g.Len() != 5 {
		t.Errorf("Len = %d, want 5", g.Len())
	}
	if g.Score() != 10 || g.NextReward() != 20 || g.Period() != 275 {
		t.Errorf("score/reward/period = %d/%d/%d, want 10/20/275", g.Score(), g.NextReward(), g.Period())
	}
	if len(h.sink.scores) != 2 || h.sink.scores[1] != 10 {
		t.Errorf("scores = %v, want [0 10]", h.sink.scores)
	}
	if len(h.sink.periods) != 1 || h.sink.periods[0] != 275 {
		t.Errorf("periods = %v, want [275]", h.sink.periods)
	}
	if len(h.random.bounds) != 4 {
		t.Errorf("random called %d times, want 4", len(h.random.bounds))
	}
	if got := g.Apple(); !got.Equals(Coord{20, 20}) {
		t.Errorf("Apple = %v, want (20,20)", got)
	}
	if got := g.Head(); !got.Equals(Coord{4, 0}) {
		t.Errorf("Head = %v, want (4,0)", got)
	}
	if g.Status() != StatusRunning {
		t.Errorf("Status = %v, want running", g.Status())
	}
	if h.canvas.frames != 2 {
		t.Errorf("frames = %d, want 2", h.canvas.frames)
	}
}

func TestPeriodFloor(t *testing.T) {
	h := newStartedGame(t, nil)
	g := h.game

	for i := 0; i < 20; i++ {
		g.speedUp()
	}
	if g.Period() != 50 {
		t.Errorf("Period = %d, want 50", g.Period())
	}
	if len(h.sink.periods) != 10 {
		t.Errorf("period notifications = %d, want 10", len(h.sink.periods))
	}
}

func TestRewardEscalates(t *testing.T) {
	h := newStartedGame(t, nil)
	g := h.game

	g.updateScore()
	g.updateScore()
	g.updateScore()
	if g.Score() != 60 || g.NextReward() != 40 {
		t.Errorf("score/reward = %d/%d, want 60/40", g.Score(), g.NextReward())
	}
}

func TestRunIntoWall(t *testing.T) {
	h := newStartedGame(t, nil, 0, 39)
	g := h.game
	width := g.Field().Width

	ticks := 0
	for g.Status() == StatusRunning {
		ticks++
		if ticks > width {
			t.Fatal("snake never left the field")
		}
		if err := g.Tick(int64(ticks)); err != nil {
			t.Fatalf("Tick %d: %v", ticks, err)
		}
		if g.Status() == StatusRunning && len(h.sink.gameOvers) != 0 {
			t.Fatalf("game over notified while running at tick %d", ticks)
		}
	}

	if ticks != width-3 {
		t.Errorf("game over at tick %d, want %d", ticks, width-3)
	}
	if got := g.Head(); got.X != width {
		t.Errorf("Head = %v, want x=%d", got, width)
	}
	if len(h.sink.gameOvers) != 1 || h.sink.gameOvers[0] != CauseWall {
		t.Errorf("gameOvers = %v, want [wall]", h.sink.gameOvers)
	}
	if h.canvas.frames != ticks+1 {
		t.Errorf("frames = %d, want %d", h.canvas.frames, ticks+1)
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	h := newStartedGame(t, nil, 0, 39)
	g := h.game
	for g.Status() == StatusRunning {
		if err := g.Tick(0); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	before := g.Snapshot()
	frames := h.canvas.frames

	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick after game over: %v", err)
	}
	if err := g.HandleInput(KeyDown); err != nil {
		t.Fatalf("HandleInput after game over: %v", err)
	}

	after := g.Snapshot()
	if !sameCells(before.Cells, after.Cells) || before.Direction != after.Direction {
		t.Error("state changed after game over")
	}
	if h.canvas.frames != frames {
		t.Errorf("frames = %d, want %d", h.canvas.frames, frames)
	}
	if len(h.sink.gameOvers) != 1 {
		t.Errorf("gameOvers = %v, want one", h.sink.gameOvers)
	}
}

func TestSelfCollision(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.StartRow = 5
	h := newStartedGame(t, cfg, 4, 5, 39, 39)
	g := h.game

	if err := g.Tick(1); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if g.Len() != 5 {
		t.Fatalf("Len = %d, want 5", g.Len())
	}

	for _, key := range []KeyCode{KeyUp, KeyLeft, KeyDown} {
		if err := g.HandleInput(key); err != nil {
			t.Fatalf("HandleInput(%d): %v", key, err)
		}
		if err := g.Tick(0); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	if g.Status() != StatusGameOver || g.Cause() != CauseSelf {
		t.Errorf("status/cause = %v/%v, want game_over/self", g.Status(), g.Cause())
	}
	if len(h.sink.gameOvers) != 1 || h.sink.gameOvers[0] != CauseSelf {
		t.Errorf("gameOvers = %v, want [self]", h.sink.gameOvers)
	}
}

func TestChasingTailIsNotCollision(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.StartRow = 5
	h := newStartedGame(t, cfg, 39, 39)
	g := h.game

	for _, key := range []KeyCode{KeyUp, KeyLeft, KeyDown} {
		if err := g.HandleInput(key); err != nil {
			t.Fatalf("HandleInput: %v", err)
		}
		if err := g.Tick(0); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	if g.Status() != StatusRunning {
		t.Errorf("moving into the vacated tail cell ended the game: %v", g.Cause())
	}
}

func TestBoardFullIsWin(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Width = 3
	cfg.Height = 1
	cfg.InitialLength = 2
	h := newStartedGame(t, cfg, 2, 0)
	g := h.game

	if err := g.Tick(1); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if g.Status() != StatusGameOver || g.Cause() != CauseBoardFull {
		t.Fatalf("status/cause = %v/%v, want game_over/board_full", g.Status(), g.Cause())
	}
	if !g.Cause().Win() {
		t.Error("board full should count as a win")
	}
	if g.Score() != 10 {
		t.Errorf("Score = %d, want 10", g.Score())
	}
}

func TestReversalRejected(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		t.Run(d.String(), func(t *testing.T) {
			h := newStartedGame(t, nil)
			g := h.game
			g.direction = d

			if err := g.HandleInput(KeyCode(d.Opposite())); err != nil {
				t.Fatalf("HandleInput: %v", err)
			}
			if g.Direction() != d {
				t.Errorf("Direction = %v, want %v", g.Direction(), d)
			}
		})
	}
}

func TestTurnAccepted(t *testing.T) {
	h := newStartedGame(t, nil)
	if err := h.game.HandleInput(KeyDown); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	if h.game.Direction() != DirectionDown {
		t.Errorf("Direction = %v, want down", h.game.Direction())
	}
}

func TestUnknownKey(t *testing.T) {
	h := newStartedGame(t, nil)

	err := h.game.HandleInput(KeyCode(42))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("HandleInput(42) = %v, want ErrUnknownKey", err)
	}
	if h.game.Direction() != DirectionRight {
		t.Errorf("Direction changed to %v", h.game.Direction())
	}
}

func TestReentrantTickRejected(t *testing.T) {
	h, err := newHarness(nil, 4, 0, 20, 20)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	var inner []error
	h.sink.onScore = func(int) {
		inner = append(inner, h.game.Tick(0), h.game.HandleInput(KeyUp))
	}
	if err := h.game.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := h.game.Tick(1); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if len(inner) != 4 {
		t.Fatalf("inner calls = %d, want 4", len(inner))
	}
	for i, err := range inner {
		if !errors.Is(err, ErrReentrant) {
			t.Errorf("inner call %d = %v, want ErrReentrant", i, err)
		}
	}
	if h.game.Len() != 5 || h.game.Direction() != DirectionRight {
		t.Error("re-entrant calls changed the game")
	}
}

func TestNewGameRejectsBadInput(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Width = 0
	if _, err := NewGame(cfg, Collaborators{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewGame(bad config) = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewGame(nil, Collaborators{}); err == nil {
		t.Error("NewGame without collaborators should fail")
	}
}
