package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay *components.Button
	btnQuit *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:     ctx,
		btnPlay: components.NewButton(0, 0, 250, 50, "Play"),
		btnQuit: components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-50)
	s.btnQuit.SetPosition(centerX-125, centerY+10)

	if s.btnPlay.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorTextHighlight)
		}
	}
	text.Draw(screen, title, fonts.Normal, x, 100, types.ColorTextHighlight)

	if hud := s.ctx.HUD(); hud.Score > 0 || hud.Paused {
		last := fmt.Sprintf("Last score: %d", hud.Score)
		if hud.Paused {
			last = fmt.Sprintf("Paused at %d, play to continue", hud.Score)
		}
		bounds = text.BoundString(fonts.Normal, last)
		text.Draw(screen, last, fonts.Normal, (w-bounds.Dx())/2, 130, types.ColorTextDim)
	}

	s.btnPlay.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "ENTER to play  |  ESC to quit"
	bounds = text.BoundString(fonts.Small, hint)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, hint, fonts.Small, x, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
