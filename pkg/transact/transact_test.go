package transact

import (
	"bytes"
	"testing"
	"time"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
	"github.com/openautomato/automato/pkg/frame"
)

// fakePort serves preloaded reply bytes and records the written request;
// once the reply bytes are exhausted it reports a timeout rather than
// EOF, mimicking a serial port's read-deadline behavior.
type fakePort struct {
	out     bytes.Buffer
	in      *bytes.Reader
	timeout bool
}

type fakeTimeoutErr struct{}

func (fakeTimeoutErr) Error() string   { return "i/o timeout" }
func (fakeTimeoutErr) Timeout() bool   { return true }
func (fakeTimeoutErr) Temporary() bool { return true }

func newFakePort(reply []byte) *fakePort {
	return &fakePort{in: bytes.NewReader(reply)}
}

func (p *fakePort) Write(b []byte) (int, error) { return p.out.Write(b) }

func (p *fakePort) Read(b []byte) (int, error) {
	n, err := p.in.Read(b)
	if n == 0 {
		return 0, fakeTimeoutErr{}
	}
	return n, err
}

func (p *fakePort) SetReadTimeout(d time.Duration) error { return nil }
func (p *fakePort) Close() error                         { return nil }

func frameBytes(t *testing.T, fromID byte, p automato.Payload) []byte {
	t.Helper()
	port := newFakePort(nil)
	if err := frame.WriteFrame(port, fromID, p); err != nil {
		t.Fatal(err)
	}
	return port.out.Bytes()
}

func TestTransactHappyPath(t *testing.T) {
	reply := frameBytes(t, 9, automato.ReadPinReply{Pin: 26, State: 1})
	port := newFakePort(reply)
	s := New(port)

	fromID, got, err := s.Transact(9, automato.ReadPin{Pin: 26}, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if fromID != 9 {
		t.Errorf("fromID = %d, want 9", fromID)
	}
	r, ok := got.(automato.ReadPinReply)
	if !ok || r.Pin != 26 || r.State != 1 {
		t.Errorf("got %+v", got)
	}

	wantReq := []byte{'m', 9, byte(automato.PayloadSize(automato.ReadPin{})), byte(automato.KindReadPin), 26, 0}
	if !bytes.Equal(port.out.Bytes(), wantReq) {
		t.Errorf("request = % x, want % x", port.out.Bytes(), wantReq)
	}
}

func TestTransactNoLeader(t *testing.T) {
	port := newFakePort([]byte{'z', 1, 2, 3})
	s := New(port)

	_, _, err := s.Transact(1, automato.Ack{}, time.Second)
	ae, ok := err.(*automatoerr.Error)
	if !ok || ae.Kind != automatoerr.KindNoLeader {
		t.Fatalf("got %v, want NoLeader", err)
	}
}

func TestTransactTimeout(t *testing.T) {
	port := newFakePort(nil)
	s := New(port)

	_, _, err := s.Transact(1, automato.ReadInfo{}, time.Millisecond)
	ae, ok := err.(*automatoerr.Error)
	if !ok || ae.Kind != automatoerr.KindReplyTimeout {
		t.Fatalf("got %v, want ReplyTimeout", err)
	}
}

func TestTransactRemoteFail(t *testing.T) {
	reply := frameBytes(t, 3, automato.Fail{FailCode: automato.ResultInvalidPinNumber})
	port := newFakePort(reply)
	s := New(port)

	fromID, got, err := s.Transact(3, automato.WritePin{Pin: 200, State: 1}, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if fromID != 3 {
		t.Errorf("fromID = %d, want 3", fromID)
	}
	f, ok := got.(automato.Fail)
	if !ok || f.FailCode != automato.ResultInvalidPinNumber {
		t.Errorf("got %+v", got)
	}
}

// TestTransactSerializesOneAtATime is a lightweight guard against
// concurrent access: a second Transact call on the same Session must
// block until the first one's critical section releases the mutex. We
// exercise this by simply confirming two sequential calls each see the
// port left in a consistent state (no interleaved writes).
func TestTransactSerializesOneAtATime(t *testing.T) {
	reply := frameBytes(t, 1, automato.Ack{})
	port := newFakePort(reply)
	s := New(port)

	if _, _, err := s.Transact(1, automato.Ack{}, time.Second); err != nil {
		t.Fatal(err)
	}

	// The port's read side is now exhausted; a second call must time out
	// rather than silently reuse the first reply.
	_, _, err := s.Transact(1, automato.Ack{}, time.Millisecond)
	ae, ok := err.(*automatoerr.Error)
	if !ok || ae.Kind != automatoerr.KindReplyTimeout {
		t.Fatalf("got %v, want ReplyTimeout on the exhausted port", err)
	}
}
