package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake/internal/ui/frame"
	"snake/internal/ui/types"
)

// FieldRenderer scales the game's pixel frame into the window and clips it to
// the field so an out-of-bounds head is not drawn over the panel.
type FieldRenderer struct {
	Scale   float32
	OffsetX int
	OffsetY int

	fieldW int
	fieldH int
}

func NewFieldRenderer(fieldW, fieldH int) *FieldRenderer {
	return &FieldRenderer{
		Scale:   1,
		OffsetX: 20,
		OffsetY: 60,
		fieldW:  fieldW,
		fieldH:  fieldH,
	}
}

func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int) {
	availableWidth := screenWidth - 280
	availableHeight := screenHeight - 100

	scaleW := float32(availableWidth) / float32(fr.fieldW)
	scaleH := float32(availableHeight) / float32(fr.fieldH)

	fr.Scale = scaleW
	if scaleH < scaleW {
		fr.Scale = scaleH
	}
	if fr.Scale < 0.5 {
		fr.Scale = 0.5
	}
	if fr.Scale > 3 {
		fr.Scale = 3
	}

	w, h := fr.size()
	fr.OffsetX = (availableWidth-w)/2 + 20
	fr.OffsetY = (availableHeight-h)/2 + 60
}

func (fr *FieldRenderer) Bounds() image.Rectangle {
	w, h := fr.size()
	return image.Rect(fr.OffsetX, fr.OffsetY, fr.OffsetX+w, fr.OffsetY+h)
}

func (fr *FieldRenderer) Draw(screen *ebiten.Image, canvas *frame.Canvas) {
	bounds := fr.Bounds()
	field, ok := screen.SubImage(bounds).(*ebiten.Image)
	if !ok {
		return
	}

	ox, oy := float32(fr.OffsetX), float32(fr.OffsetY)
	canvas.Each(func(r frame.Rect) {
		vector.DrawFilledRect(field,
			ox+float32(r.X)*fr.Scale, oy+float32(r.Y)*fr.Scale,
			float32(r.W)*fr.Scale, float32(r.H)*fr.Scale,
			r.Color.RGBA(), false)
	})

	vector.StrokeRect(screen,
		float32(bounds.Min.X)-1, float32(bounds.Min.Y)-1,
		float32(bounds.Dx())+2, float32(bounds.Dy())+2,
		1, types.ColorFieldBorder, false)
}

func (fr *FieldRenderer) size() (int, int) {
	return int(float32(fr.fieldW) * fr.Scale), int(float32(fr.fieldH) * fr.Scale)
}
