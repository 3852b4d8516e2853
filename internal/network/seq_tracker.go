package network

import (
	"net"
	"sync"
)

type SeqStatus int

const (
	SeqInOrder SeqStatus = iota
	SeqGap
	SeqStale
)

type senderState struct {
	lastSeq  int64
	received int
	lost     int64
	stale    int
}

type SenderStats struct {
	Received int
	Lost     int64
	Stale    int
}

// SeqTracker follows the sequence numbers of each sender. UDP gives no
// delivery guarantee, so gaps count as lost and late arrivals as stale.
type SeqTracker struct {
	senders map[string]*senderState
	mu      sync.Mutex
}

func NewSeqTracker() *SeqTracker {
	return &SeqTracker{
		senders: make(map[string]*senderState),
	}
}

func (t *SeqTracker) Observe(addr *net.UDPAddr, seq int64) SeqStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := AddrKey(addr)
	st, ok := t.senders[key]
	if !ok {
		t.senders[key] = &senderState{lastSeq: seq, received: 1}
		return SeqInOrder
	}

	st.received++
	switch {
	case seq <= st.lastSeq:
		st.stale++
		return SeqStale
	case seq > st.lastSeq+1:
		st.lost += seq - st.lastSeq - 1
		st.lastSeq = seq
		return SeqGap
	}
	st.lastSeq = seq
	return SeqInOrder
}

func (t *SeqTracker) Stats(addr *net.UDPAddr) SenderStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.senders[AddrKey(addr)]
	if !ok {
		return SenderStats{}
	}
	return SenderStats{Received: st.received, Lost: st.lost, Stale: st.stale}
}

func (t *SeqTracker) Forget(addr *net.UDPAddr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.senders, AddrKey(addr))
}

func AddrKey(addr *net.UDPAddr) string {
	if addr == nil {
		return ""
	}
	return addr.String()
}
