package components

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int

	best int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Best is the highest score seen in this session.
func (sb *Scoreboard) Best() int {
	return sb.best
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, hud app.HUD) {
	if hud.Score > sb.best {
		sb.best = hud.Score
	}

	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorPanel, 0.8), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorFieldBorder, false)

	fonts := types.GetFonts()
	x := sb.X + 10
	y := sb.Y + 20

	text.Draw(screen, "SCORE", fonts.Normal, x, y, types.ColorTextHighlight)
	y += fonts.LineHeight
	text.Draw(screen, fmt.Sprintf("%d", hud.Score), fonts.Normal, x, y, types.ColorText)

	y += fonts.LineHeight * 2
	text.Draw(screen, "BEST", fonts.Normal, x, y, types.ColorTextHighlight)
	y += fonts.LineHeight
	text.Draw(screen, fmt.Sprintf("%d", sb.best), fonts.Normal, x, y, types.ColorText)

	y += fonts.LineHeight * 2
	text.Draw(screen, "SPEED", fonts.Normal, x, y, types.ColorTextHighlight)
	y += fonts.LineHeight
	text.Draw(screen, fmt.Sprintf("%d ms / step", hud.Period), fonts.Normal, x, y, types.ColorText)

	y += fonts.LineHeight * 2
	status, statusColor := "RUNNING", types.ColorSuccess
	if hud.Status == domain.StatusGameOver {
		status, statusColor = "GAME OVER", types.ColorError
		if hud.Cause.Win() {
			status, statusColor = "BOARD FULL", types.ColorTextHighlight
		}
	}
	text.Draw(screen, status, fonts.Normal, x, y, statusColor)

	if id := hud.RunID.String(); len(id) >= 8 {
		text.Draw(screen, "run "+id[:8], fonts.Small, x, sb.Y+sb.Height-10, types.ColorTextDim)
	}
}
