package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snake/internal/domain"
)

type binding struct {
	keys []ebiten.Key
	code domain.KeyCode
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, domain.KeyUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, domain.KeyDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, domain.KeyLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, domain.KeyRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the key code of the first steering key pressed this frame.
func (kh *KeyboardHandler) Update() (domain.KeyCode, bool) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				return b.code, true
			}
		}
	}
	return 0, false
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
