package network

import (
	"time"

	"github.com/google/uuid"
)

type EventType int32

const (
	EventRunStarted EventType = 1
	EventScore      EventType = 2
	EventPeriod     EventType = 3
	EventGameOver   EventType = 4
)

func (t EventType) String() string {
	switch t {
	case EventRunStarted:
		return "run_started"
	case EventScore:
		return "score"
	case EventPeriod:
		return "period"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is one game notification on the wire. Value carries the score, the
// period in milliseconds or the game-over cause depending on Type.
type Event struct {
	Seq   int64
	Type  EventType
	Value int64
	RunID uuid.UUID
	Time  time.Time
}

// Wire field numbers.
const (
	fieldSeq   = 1
	fieldType  = 2
	fieldValue = 3
	fieldRunID = 4
	fieldTime  = 5
)
