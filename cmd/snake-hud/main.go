package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"snake/internal/domain"
	"snake/internal/logging"
	"snake/internal/network"
)

type received struct {
	ev   *network.Event
	from *net.UDPAddr
}

type runStats struct {
	score  int64
	period int64
	events int
}

func main() {
	listen := flag.String("listen", "127.0.0.1:9192", "UDP address to receive game events on")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	flag.Parse()

	logger, err := logging.Setup(*logLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}

	socket, err := network.NewSocket(*listen)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen")
	}
	defer socket.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runs := make(map[uuid.UUID]*runStats)
	tracker := network.NewSeqTracker()
	events := make(chan received, 64)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		return network.NewListener(socket, logger).Run(gctx, func(ev *network.Event, from *net.UDPAddr) {
			select {
			case events <- received{ev: ev, from: from}:
			case <-gctx.Done():
			}
		})
	})
	g.Go(func() error {
		for r := range events {
			ev := r.ev
			switch tracker.Observe(r.from, ev.Seq) {
			case network.SeqGap:
				st := tracker.Stats(r.from)
				logger.Warn().Stringer("from", r.from).Int64("lost", st.Lost).Msg("events lost")
			case network.SeqStale:
				logger.Debug().Stringer("from", r.from).Int64("seq", ev.Seq).Msg("stale event dropped")
				continue
			}

			stats, ok := runs[ev.RunID]
			if !ok {
				stats = &runStats{}
				runs[ev.RunID] = stats
			}
			stats.events++

			l := logger.With().Str("run_id", ev.RunID.String()).Int64("seq", ev.Seq).Logger()
			switch ev.Type {
			case network.EventRunStarted:
				l.Info().Msg("run started")
			case network.EventScore:
				stats.score = ev.Value
				l.Info().Int64("score", ev.Value).Msg("score")
			case network.EventPeriod:
				stats.period = ev.Value
				l.Info().Int64("period_ms", ev.Value).Msg("speed up")
			case network.EventGameOver:
				cause := domain.Cause(ev.Value)
				l.Info().Stringer("cause", cause).Int64("score", stats.score).Int64("period_ms", stats.period).Int("events", stats.events).Msg("game over")
			default:
				l.Warn().Int32("type", int32(ev.Type)).Msg("unknown event type")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("listener stopped")
		os.Exit(1)
	}
}
