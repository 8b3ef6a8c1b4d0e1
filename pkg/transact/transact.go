// Package transact implements the single-owner request/reply
// transaction over a shared serial port: write one framed request, read
// one framed reply, no retransmission or reordering. A mutex serializes
// transactions one at a time against the single long-lived port owned
// for the process lifetime.
package transact

import (
	"sync"
	"time"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
	"github.com/openautomato/automato/pkg/frame"
	"github.com/openautomato/automato/pkg/serialport"
)

// Session owns one serial port for the lifetime of the process. All
// transactions against it are fully serialized in arrival order at mtx:
// no reordering, no pipelining, at most one outstanding request at a
// time.
type Session struct {
	mtx  sync.Mutex
	port serialport.Port
}

// New wraps port in a Session. The Session becomes the port's sole owner;
// callers must not read from or write to port directly afterward.
func New(port serialport.Port) *Session {
	return &Session{port: port}
}

// Close releases the underlying port.
func (s *Session) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.port.Close()
}

// Transact sends req to toID and waits up to timeout for one reply
// frame. It takes exclusive use of the underlying port for its duration.
//
// On NoLeader, Transact returns that error directly rather than retrying
// the read; the port is left at an indeterminate stream position and the
// next call's leader search absorbs any stray bytes. On a read timeout,
// it returns automatoerr.ReplyTimeout(). No retransmission is attempted
// in either case.
func (s *Session) Transact(toID byte, req automato.Payload, timeout time.Duration) (fromID byte, reply automato.Payload, err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.port.SetReadTimeout(timeout); err != nil {
		return 0, nil, automatoerr.FromIO(err)
	}

	if err := frame.WriteFrame(s.port, toID, req); err != nil {
		return 0, nil, err
	}

	fromID, reply, err = frame.ReadFrame(s.port)
	if err != nil {
		if ae, ok := err.(*automatoerr.Error); ok && ae.Kind == automatoerr.KindIO && ae.IOSubKind == automatoerr.IOSubTimedOut {
			return 0, nil, automatoerr.ReplyTimeout()
		}
		return 0, nil, err
	}

	return fromID, reply, nil
}
