package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake/internal/app"
	"snake/internal/domain"
)

type Controller interface {
	Input(code domain.KeyCode)
	Restart()
	Events() <-chan app.AppEvent
	HUD() app.HUD
}

// Run pumps terminal keys into ctrl and keeps the HUD row current until the
// user quits or ctx is done.
func Run(ctx context.Context, screen tcell.Screen, ctrl Controller, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "terminal").Logger()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	drawHUD(screen, ctrl.HUD())

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					logger.Info().Msg("quit requested")
					return nil
				}
				if isRestart(ev) {
					ctrl.Restart()
					continue
				}
				if code, ok := KeyCode(ev); ok {
					ctrl.Input(code)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return nil
			}

		case ev := <-ctrl.Events():
			if ev.Type == app.AppEventError {
				logger.Error().Interface("err", ev.Payload).Msg("game error")
			}
			drawHUD(screen, ctrl.HUD())
		}
	}
}

func drawHUD(screen tcell.Screen, hud app.HUD) {
	line := fmt.Sprintf("score %d  period %dms", hud.Score, hud.Period)
	if hud.Status == domain.StatusGameOver {
		if hud.Cause.Win() {
			line += "  BOARD FULL! r to restart, q to quit"
		} else {
			line += fmt.Sprintf("  GAME OVER (%s) r to restart, q to quit", hud.Cause)
		}
	}

	w, _ := screen.Size()
	style := tcell.StyleDefault.Bold(true)
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
	for x, r := range []rune(line) {
		if x >= w {
			break
		}
		screen.SetContent(x, 0, r, nil, style)
	}
	screen.Show()
}
