package network

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
)

const pollInterval = 250 * time.Millisecond

type Listener struct {
	socket *Socket
	logger zerolog.Logger
}

func NewListener(socket *Socket, logger zerolog.Logger) *Listener {
	return &Listener{
		socket: socket,
		logger: logger.With().Str("component", "listener").Logger(),
	}
}

// Run hands every decoded event to fn until ctx is done. Malformed datagrams
// are logged and skipped.
func (l *Listener) Run(ctx context.Context, fn func(ev *Event, from *net.UDPAddr)) error {
	l.logger.Info().Stringer("addr", l.socket.LocalAddr()).Msg("listening for events")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ev, from, err := l.socket.ReceiveWithTimeout(pollInterval)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if errors.Is(err, ErrMalformed) {
				l.logger.Warn().Err(err).Stringer("from", from).Msg("dropping datagram")
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		fn(ev, from)
	}
}
