package network

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snake/internal/domain"
)

// Sink publishes game notifications as UDP datagrams. Send failures are
// logged and never reach the game.
type Sink struct {
	socket *Socket
	target *net.UDPAddr
	runID  uuid.UUID
	logger zerolog.Logger
}

func NewSink(socket *Socket, target string, logger zerolog.Logger) (*Sink, error) {
	addr, err := net.ResolveUDPAddr("udp", target)
	if err != nil {
		return nil, fmt.Errorf("resolve event target %q: %w", target, err)
	}

	return &Sink{
		socket: socket,
		target: addr,
		logger: logger.With().Str("component", "event-sink").Str("target", addr.String()).Logger(),
	}, nil
}

func (s *Sink) StartRun(id uuid.UUID) {
	s.runID = id
	s.send(BuildRunStartedMsg(s.socket.NextSeq(), id))
}

func (s *Sink) NotifyScore(score int) {
	s.send(BuildScoreMsg(s.socket.NextSeq(), s.runID, score))
}

func (s *Sink) NotifyPeriod(period int) {
	s.send(BuildPeriodMsg(s.socket.NextSeq(), s.runID, period))
}

func (s *Sink) NotifyGameOver(cause domain.Cause) {
	s.send(BuildGameOverMsg(s.socket.NextSeq(), s.runID, cause))
}

func (s *Sink) send(ev *Event) {
	if err := s.socket.Send(ev, s.target); err != nil {
		s.logger.Warn().Err(err).Stringer("type", ev.Type).Int64("seq", ev.Seq).Msg("failed to send event")
	}
}
