// Package serialport wraps go.bug.st/serial behind the minimal
// byte-oriented abstraction the frame and transaction layers need:
// read-exact, write-all, and a configurable read timeout. It is the
// concrete port implementation; pkg/frame and pkg/transact only depend
// on the Port interface, so tests can substitute an in-memory pipe.
package serialport

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// Port is the abstract byte-oriented serial port the frame layer and
// transaction engine are built against.
type Port interface {
	io.Reader
	io.Writer
	// SetReadTimeout configures how long a Read may block before
	// returning a timeout error. A timeout of zero disables the limit.
	SetReadTimeout(d time.Duration) error
	Close() error
}

// Config holds the parameters needed to open a physical serial port.
type Config struct {
	Device   string
	BaudRate int
}

// Open opens the named serial device at the given baud rate, 8 data
// bits, no parity, one stop bit — the framing automato firmware expects.
func Open(cfg Config) (Port, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", cfg.Device)
	}
	return &goBugStPort{Port: p}, nil
}

type goBugStPort struct {
	serial.Port
}

func (p *goBugStPort) SetReadTimeout(d time.Duration) error {
	return p.Port.SetReadTimeout(d)
}
