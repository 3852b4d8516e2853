package network

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

const maxDatagram = 65535

type Socket struct {
	conn      *net.UDPConn
	localAddr *net.UDPAddr
	msgSeq    int64
}

// NewSocket binds a UDP socket on bind, for example "127.0.0.1:0".
func NewSocket(bind string) (*Socket, error) {
	addr, err := net.ResolveUDPAddr("udp", bind)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", bind, err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}

	return &Socket{
		conn:      conn,
		localAddr: conn.LocalAddr().(*net.UDPAddr),
	}, nil
}

func (s *Socket) Send(ev *Event, addr *net.UDPAddr) error {
	data, err := Marshal(ev)
	if err != nil {
		return err
	}

	_, err = s.conn.WriteToUDP(data, addr)
	return err
}

func (s *Socket) Receive() (*Event, *net.UDPAddr, error) {
	buf := make([]byte, maxDatagram)

	n, addr, err := s.conn.ReadFromUDP(buf)
	if err != nil {
		return nil, nil, err
	}

	ev, err := Unmarshal(buf[:n])
	if err != nil {
		return nil, addr, err
	}

	return ev, addr, nil
}

func (s *Socket) ReceiveWithTimeout(timeout time.Duration) (*Event, *net.UDPAddr, error) {
	s.conn.SetReadDeadline(time.Now().Add(timeout))
	defer s.conn.SetReadDeadline(time.Time{})

	return s.Receive()
}

func (s *Socket) NextSeq() int64 {
	return atomic.AddInt64(&s.msgSeq, 1)
}

func (s *Socket) LocalAddr() *net.UDPAddr {
	return s.localAddr
}

func (s *Socket) LocalPort() int {
	return s.localAddr.Port
}

func (s *Socket) Close() error {
	return s.conn.Close()
}
