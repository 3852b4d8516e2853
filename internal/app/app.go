package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snake/internal/domain"
)

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventScore AppEventType = iota
	AppEventPeriod
	AppEventGameOver
	AppEventRestarted
	AppEventError
)

func (t AppEventType) String() string {
	switch t {
	case AppEventScore:
		return "score"
	case AppEventPeriod:
		return "period"
	case AppEventGameOver:
		return "game_over"
	case AppEventRestarted:
		return "restarted"
	case AppEventError:
		return "error"
	}
	return "unknown"
}

// RunAware sinks are told when a new run starts.
type RunAware interface {
	StartRun(id uuid.UUID)
}

type HUD struct {
	RunID  uuid.UUID
	Score  int
	Period int
	Status domain.Status
	Cause  domain.Cause
	Paused bool
}

type Options struct {
	Config *domain.GameConfig
	Canvas domain.Canvas
	Random domain.Random
	Sinks  []domain.EventSink
	Logger zerolog.Logger
}

// App owns the single live game and is the only caller into it.
type App struct {
	config *domain.GameConfig
	canvas domain.Canvas
	random domain.Random
	sinks  []domain.EventSink
	logger zerolog.Logger
	runLog zerolog.Logger

	game  *domain.Game
	sched *Scheduler

	hudMu sync.RWMutex
	hud   HUD

	eventCh   chan AppEvent
	inputCh   chan domain.KeyCode
	restartCh chan struct{}
	pauseCh   chan bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = domain.DefaultGameConfig()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if opts.Canvas == nil || opts.Random == nil {
		return nil, errors.New("app needs a canvas and a random source")
	}

	return &App{
		config:    opts.Config.Copy(),
		canvas:    opts.Canvas,
		random:    opts.Random,
		sinks:     opts.Sinks,
		logger:    opts.Logger.With().Str("component", "app").Logger(),
		runLog:    opts.Logger.With().Str("component", "app").Logger(),
		eventCh:   make(chan AppEvent, 100),
		inputCh:   make(chan domain.KeyCode, 16),
		restartCh: make(chan struct{}, 1),
		pauseCh:   make(chan bool, 4),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.sched = NewScheduler(a.config.InitialPeriod)

	if err := a.newRun(); err != nil {
		a.sched.Stop()
		a.cancel()
		return err
	}

	a.wg.Add(1)
	go a.loop()

	a.logger.Info().Int("width", a.config.Width).Int("height", a.config.Height).Msg("app started")
	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input(code domain.KeyCode) {
	select {
	case a.inputCh <- code:
	default:
		a.logger.Warn().Int("code", int(code)).Msg("input queue full, key dropped")
	}
}

func (a *App) Restart() {
	select {
	case a.restartCh <- struct{}{}:
	default:
	}
}

// Pause holds the tick clock until Resume. Input is still applied.
func (a *App) Pause() {
	a.sendPause(true)
}

// Resume restarts the tick clock of a paused run. A finished run stays still.
func (a *App) Resume() {
	a.sendPause(false)
}

func (a *App) sendPause(pause bool) {
	select {
	case a.pauseCh <- pause:
	default:
		a.logger.Warn().Bool("pause", pause).Msg("pause queue full, request dropped")
	}
}

func (a *App) HUD() HUD {
	a.hudMu.RLock()
	defer a.hudMu.RUnlock()
	return a.hud
}

func (a *App) Config() *domain.GameConfig {
	return a.config.Copy()
}

func (a *App) loop() {
	defer a.wg.Done()
	defer a.sched.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return

		case code := <-a.inputCh:
			a.handleInput(code)

		case <-a.restartCh:
			if err := a.newRun(); err != nil {
				a.logger.Error().Err(err).Msg("failed to restart")
				a.publish(AppEvent{Type: AppEventError, Payload: err})
			}

		case pause := <-a.pauseCh:
			a.setPaused(pause)

		case t := <-a.sched.C():
			a.tick(t)
		}
	}
}

func (a *App) newRun() error {
	game, err := domain.NewGame(a.config, domain.Collaborators{
		Canvas: a.canvas,
		Random: a.random,
		Events: a,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	runID := uuid.New()
	a.runLog = a.logger.With().Str("run_id", runID.String()).Logger()
	a.hudMu.Lock()
	a.hud = HUD{RunID: runID, Period: a.config.InitialPeriod, Status: domain.StatusRunning}
	a.hudMu.Unlock()

	for _, sink := range a.sinks {
		if ra, ok := sink.(RunAware); ok {
			ra.StartRun(runID)
		}
	}

	a.game = game
	if err := game.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	a.sched.Resume(game.Period())

	a.runLog.Info().Msg("new run")
	a.publish(AppEvent{Type: AppEventRestarted, Payload: runID})
	return nil
}

func (a *App) setPaused(pause bool) {
	switch {
	case pause:
		a.sched.Pause()
	case a.game.Status() == domain.StatusRunning:
		a.sched.Resume(a.game.Period())
	}

	a.hudMu.Lock()
	a.hud.Paused = pause && a.sched.Paused()
	a.hudMu.Unlock()
	a.runLog.Debug().Bool("paused", pause).Msg("clock")
}

func (a *App) tick(t time.Time) {
	if err := a.game.Tick(t.UnixMilli()); err != nil {
		a.runLog.Error().Err(err).Msg("tick failed")
		a.publish(AppEvent{Type: AppEventError, Payload: err})
	}
}

func (a *App) handleInput(code domain.KeyCode) {
	if err := a.game.HandleInput(code); err != nil {
		a.runLog.Error().Err(err).Int("code", int(code)).Msg("rejected input")
		a.publish(AppEvent{Type: AppEventError, Payload: err})
	}
}

func (a *App) publish(ev AppEvent) {
	select {
	case a.eventCh <- ev:
	default:
		a.logger.Debug().Stringer("type", ev.Type).Msg("event queue full, dropping")
	}
}
