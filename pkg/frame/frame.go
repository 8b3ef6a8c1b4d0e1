// Package frame adds and strips the 3-byte serial frame header
// ('m' | id | size) around an encoded automato payload, and performs
// leader resync after a malformed byte. It uses a byte-at-a-time state
// machine (sync search, header, body) with a simple 3-field header and
// no CRC.
package frame

import (
	"io"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
	"github.com/openautomato/automato/pkg/serialport"
	"github.com/openautomato/automato/pkg/wire"
)

// Leader is the first byte of every frame.
const Leader = 'm'

// WriteFrame emits a frame addressed to toID carrying p.
//
// The size byte holds payload_size(p), but the body written after the
// header is one byte longer than the encoded payload. Firmware on the
// other end of the link expects exactly this framing, so the extra byte
// is written deliberately rather than trimmed.
func WriteFrame(port serialport.Port, toID byte, p automato.Payload) error {
	encoded, err := wire.Encode(p)
	if err != nil {
		return err
	}
	size := automato.PayloadSize(p)

	out := make([]byte, 0, 3+len(encoded)+1)
	out = append(out, Leader, toID, byte(size))
	out = append(out, encoded...)
	out = append(out, 0) // the observed trailing extra byte, see doc comment

	if _, err := port.Write(out); err != nil {
		return automatoerr.FromIO(err)
	}
	return nil
}

// ReadFrame reads one frame and decodes its payload.
//
// If the first byte is not the leader, ReadFrame returns a NoLeader
// error: a soft, resumable parse outcome distinct from an IO error. The
// caller may resync by repeatedly calling ReadFrame (or otherwise
// discarding bytes) until a leader is found; no bytes beyond the one
// that was read are consumed on this path.
func ReadFrame(port serialport.Port) (fromID byte, p automato.Payload, err error) {
	var hdr [3]byte
	if err := readExact(port, hdr[:1]); err != nil {
		return 0, nil, err
	}
	if hdr[0] != Leader {
		return 0, nil, automatoerr.NoLeader()
	}
	if err := readExact(port, hdr[1:3]); err != nil {
		return 0, nil, err
	}
	fromID = hdr[1]
	size := int(hdr[2])

	body := make([]byte, size)
	if size > 0 {
		if err := readExact(port, body); err != nil {
			return 0, nil, err
		}
	}

	p, derr := wire.Decode(body)
	if derr != nil {
		return fromID, nil, derr
	}
	return fromID, p, nil
}

func readExact(port serialport.Port, buf []byte) error {
	if _, err := io.ReadFull(port, buf); err != nil {
		return automatoerr.FromIO(err)
	}
	return nil
}
