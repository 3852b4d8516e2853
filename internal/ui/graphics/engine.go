package graphics

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"snake/internal/app"
	"snake/internal/ui/types"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 600
)

type HUDSource interface {
	HUD() app.HUD
}

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	hudSource  HUDSource
	pendingErr string
	hudMu      sync.RWMutex

	quit    atomic.Bool
	eventCh chan types.UIEvent
	logger  zerolog.Logger
}

func NewEngine(logger zerolog.Logger) *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
		logger:        logger.With().Str("component", "engine").Logger(),
	}
}

func (e *Engine) RegisterScreens(menu types.Screen, game types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if e.quit.Load() {
		return ebiten.Termination
	}

	e.width, e.height = ebiten.WindowSize()
	e.flushError()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.handleEvent(screen.Update())

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if current := e.screenMap[e.currentScreen]; current != nil {
		current.Draw(screen)
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) SetHUDSource(src HUDSource) {
	e.hudMu.Lock()
	e.hudSource = src
	e.hudMu.Unlock()
}

func (e *Engine) HUD() app.HUD {
	e.hudMu.RLock()
	defer e.hudMu.RUnlock()
	if e.hudSource == nil {
		return app.HUD{}
	}
	return e.hudSource.HUD()
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// Quit ends the window loop on the next update.
func (e *Engine) Quit() {
	e.quit.Store(true)
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

// SetError may be called from any goroutine; the message reaches the
// current screen on the next update.
func (e *Engine) SetError(err string) {
	e.hudMu.Lock()
	e.pendingErr = err
	e.hudMu.Unlock()
}

func (e *Engine) flushError() {
	e.hudMu.Lock()
	err := e.pendingErr
	e.pendingErr = ""
	e.hudMu.Unlock()

	if err == "" {
		return
	}
	if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
		s.SetError(err)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventStartGame, types.UIEventRestart:
		e.SetScreen(types.ScreenGame)

	case types.UIEventExitGame:
		e.SetScreen(types.ScreenMenu)
	}

	select {
	case e.eventCh <- event:
	default:
		e.logger.Warn().Int("type", int(event.Type)).Msg("event channel full, dropping event")
	}
}

type ErrorSetter interface {
	SetError(err string)
}
