package network

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snake/internal/domain"
)

func newLoopback(t *testing.T) *Socket {
	t.Helper()
	s, err := NewSocket("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewSocket: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSinkDeliversToListener(t *testing.T) {
	recv := newLoopback(t)
	send := newLoopback(t)

	sink, err := NewSink(send, recv.LocalAddr().String(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Event, 8)
	done := make(chan error, 1)
	go func() {
		done <- NewListener(recv, zerolog.Nop()).Run(ctx, func(ev *Event, _ *net.UDPAddr) {
			got <- ev
		})
	}()

	runID := uuid.New()
	sink.StartRun(runID)
	sink.NotifyScore(10)
	sink.NotifyPeriod(275)
	sink.NotifyGameOver(domain.CauseWall)

	want := []struct {
		typ   EventType
		value int64
	}{
		{EventRunStarted, 0},
		{EventScore, 10},
		{EventPeriod, 275},
		{EventGameOver, int64(domain.CauseWall)},
	}
	for i, w := range want {
		select {
		case ev := <-got:
			if ev.Type != w.typ || ev.Value != w.value {
				t.Errorf("event %d = %v/%d, want %v/%d", i, ev.Type, ev.Value, w.typ, w.value)
			}
			if ev.RunID != runID {
				t.Errorf("event %d run id = %v", i, ev.RunID)
			}
			if ev.Seq != int64(i+1) {
				t.Errorf("event %d seq = %d", i, ev.Seq)
			}
		case <-time.After(3 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestListenerSkipsGarbage(t *testing.T) {
	recv := newLoopback(t)
	send := newLoopback(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Event, 1)
	go NewListener(recv, zerolog.Nop()).Run(ctx, func(ev *Event, _ *net.UDPAddr) {
		got <- ev
	})

	if _, err := send.conn.WriteToUDP([]byte{0xff, 0xff}, recv.LocalAddr()); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if err := send.Send(BuildScoreMsg(1, uuid.Nil, 20), recv.LocalAddr()); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case ev := <-got:
		if ev.Type != EventScore || ev.Value != 20 {
			t.Errorf("got %+v", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("valid event after garbage never arrived")
	}
}
