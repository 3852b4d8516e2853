package network

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"snake/internal/domain"
)

func BuildRunStartedMsg(seq int64, runID uuid.UUID) *Event {
	return buildMsg(seq, EventRunStarted, 0, runID)
}

func BuildScoreMsg(seq int64, runID uuid.UUID, score int) *Event {
	return buildMsg(seq, EventScore, int64(score), runID)
}

func BuildPeriodMsg(seq int64, runID uuid.UUID, period int) *Event {
	return buildMsg(seq, EventPeriod, int64(period), runID)
}

func BuildGameOverMsg(seq int64, runID uuid.UUID, cause domain.Cause) *Event {
	return buildMsg(seq, EventGameOver, int64(cause), runID)
}

func buildMsg(seq int64, t EventType, value int64, runID uuid.UUID) *Event {
	return &Event{
		Seq:   seq,
		Type:  t,
		Value: value,
		RunID: runID,
		Time:  time.Now(),
	}
}

func Marshal(ev *Event) ([]byte, error) {
	b := make([]byte, 0, 64)

	b = protowire.AppendTag(b, fieldSeq, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(ev.Seq))

	b = protowire.AppendTag(b, fieldType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(ev.Type))

	b = protowire.AppendTag(b, fieldValue, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(ev.Value))

	if ev.RunID != uuid.Nil {
		b = protowire.AppendTag(b, fieldRunID, protowire.BytesType)
		b = protowire.AppendBytes(b, ev.RunID[:])
	}

	if !ev.Time.IsZero() {
		ts, err := proto.Marshal(timestamppb.New(ev.Time))
		if err != nil {
			return nil, fmt.Errorf("marshal timestamp: %w", err)
		}
		b = protowire.AppendTag(b, fieldTime, protowire.BytesType)
		b = protowire.AppendBytes(b, ts)
	}

	return b, nil
}
