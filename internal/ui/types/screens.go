package types

import (
	"github.com/hajimehoshi/ebiten/v2"

	"snake/internal/app"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenGame
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	HUD() app.HUD
}
