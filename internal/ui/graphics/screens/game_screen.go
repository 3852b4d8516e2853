package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake/internal/domain"
	"snake/internal/ui/frame"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"
)

type GameScreen struct {
	ctx    types.ScreenContext
	canvas *frame.Canvas

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	btnRestart *components.Button
	btnMenu    *components.Button

	errorMsg string
}

// NewGameScreen draws the frames the game presents on canvas. fieldW and
// fieldH are the field size in game pixels.
func NewGameScreen(ctx types.ScreenContext, canvas *frame.Canvas, fieldW, fieldH int) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		canvas:        canvas,
		fieldRenderer: components.NewFieldRenderer(fieldW, fieldH),
		scoreboard:    components.NewScoreboard(0, 0, 230, 400),
		keyboard:      input.NewKeyboardHandler(),
		btnRestart:    components.NewButton(0, 0, 200, 44, "Restart (R)").WithHotkey(ebiten.KeyR),
		btnMenu:       components.NewButton(0, 0, 200, 44, "Menu (Esc)"),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventExitGame}
	}

	if s.ctx.HUD().Status == domain.StatusGameOver {
		w, h := s.ctx.Size()
		s.btnRestart.SetPosition(w/2-100, h/2)
		s.btnMenu.SetPosition(w/2-100, h/2+56)

		if s.btnRestart.Update() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		if s.btnMenu.Update() {
			return types.UIEvent{Type: types.UIEventExitGame}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if code, ok := s.keyboard.Update(); ok {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Key: code},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	hud := s.ctx.HUD()

	s.fieldRenderer.CalculateLayout(w, h)
	s.fieldRenderer.Draw(screen, s.canvas)

	s.scoreboard.X = w - 250
	s.scoreboard.Y = 60
	s.scoreboard.Height = h - 120
	s.scoreboard.Draw(screen, hud)

	s.drawHeader(screen, w, hud.Score)
	s.drawFooter(screen, w, h)

	if hud.Status == domain.StatusGameOver {
		s.drawGameOver(screen, w, h, hud.Cause)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w, score int) {
	fonts := types.GetFonts()

	text.Draw(screen, "SNAKE", fonts.Normal, 20, 30, types.ColorTextHighlight)

	scoreText := fmt.Sprintf("Score: %d", score)
	bounds := text.BoundString(fonts.Normal, scoreText)
	text.Draw(screen, scoreText, fonts.Normal, w-bounds.Dx()-20, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  ESC to exit"
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorError)
	}
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image, w, h int, cause domain.Cause) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)

	fonts := types.GetFonts()
	title, titleColor := "GAME OVER", types.ColorError
	if cause.Win() {
		title, titleColor = "BOARD FULL - YOU WIN", types.ColorSuccess
	}
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, h/2-40, titleColor)

	detail := fmt.Sprintf("hit: %s  |  best: %d", cause, s.scoreboard.Best())
	bounds = text.BoundString(fonts.Small, detail)
	text.Draw(screen, detail, fonts.Small, (w-bounds.Dx())/2, h/2-18, types.ColorTextDim)

	s.btnRestart.Draw(screen)
	s.btnMenu.Draw(screen)
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}
