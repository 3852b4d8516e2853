package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
)

const (
	colsPerCell = 2
	hudRows     = 1
)

// Canvas draws the game's pixel rectangles as terminal cells. One grid cell
// is two columns wide so the field looks square; the top row holds the HUD.
// Cells outside the field are clipped.
type Canvas struct {
	screen   tcell.Screen
	field    *domain.Field
	cellSize int
	style    tcell.Style
}

func NewCanvas(screen tcell.Screen, field *domain.Field, cellSize int) *Canvas {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Canvas{
		screen:   screen,
		field:    field,
		cellSize: cellSize,
		style:    tcell.StyleDefault,
	}
}

func (c *Canvas) SetFillColor(col domain.Color) {
	rgba := col.RGBA()
	c.style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

func (c *Canvas) FillRect(x, y, w, h int) {
	x0, y0 := floorDiv(x, c.cellSize), floorDiv(y, c.cellSize)
	x1, y1 := floorDiv(x+w+c.cellSize-1, c.cellSize), floorDiv(y+h+c.cellSize-1, c.cellSize)

	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			if !c.field.Contains(domain.Coord{X: col, Y: row}) {
				continue
			}
			for k := 0; k < colsPerCell; k++ {
				c.screen.SetContent(col*colsPerCell+k, row+hudRows, ' ', nil, c.style)
			}
		}
	}
}

func (c *Canvas) PresentFrame() {
	c.screen.Show()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
