package types

import "snake/internal/domain"

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventSteer
	UIEventRestart
	UIEventExitGame
	UIEventQuit
)

type SteerData struct {
	Key domain.KeyCode
}
