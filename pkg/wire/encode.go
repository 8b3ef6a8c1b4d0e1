// Package wire implements the bit-exact binary codec between automato
// payload values and byte buffers: the kind tag followed by the variant's
// fields in declaration order, little-endian, with no alignment padding —
// equivalent to a packed C layout, but produced by per-variant
// serializers rather than a raw memory reinterpretation.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/openautomato/automato/pkg/automato"
)

// Encode writes p's kind tag followed by its variant data in wire order.
// The returned slice is exactly automato.PayloadSize(p) bytes long.
func Encode(p automato.Payload) ([]byte, error) {
	buf := make([]byte, 0, automato.PayloadSize(p))
	buf = append(buf, byte(p.Kind()))

	switch v := p.(type) {
	case automato.Ack:
	case automato.Fail:
		buf = append(buf, byte(v.FailCode))
	case automato.Pinmode:
		buf = append(buf, v.Pin, v.Mode)
	case automato.ReadPin:
		buf = append(buf, v.Pin)
	case automato.ReadPinReply:
		buf = append(buf, v.Pin, v.State)
	case automato.WritePin:
		buf = append(buf, v.Pin, v.State)
	case automato.ReadMem:
		buf = appendU16(buf, v.Address)
		buf = append(buf, v.Length)
	case automato.ReadMemReply:
		if len(v.Data) > automato.MaxReadMemLength {
			return nil, fmt.Errorf("wire: ReadMemReply data length %d exceeds %d", len(v.Data), automato.MaxReadMemLength)
		}
		buf = append(buf, byte(len(v.Data)))
		buf = append(buf, v.Data...)
	case automato.WriteMem:
		if len(v.Data) > automato.MaxWriteMemLength {
			return nil, fmt.Errorf("wire: WriteMem data length %d exceeds %d", len(v.Data), automato.MaxWriteMemLength)
		}
		buf = appendU16(buf, v.Address)
		buf = append(buf, byte(len(v.Data)))
		buf = append(buf, v.Data...)
	case automato.ReadInfo:
	case automato.ReadInfoReply:
		buf = appendF32(buf, v.ProtoVersion)
		buf = appendU64(buf, v.MACAddress)
		buf = appendU16(buf, v.DataLen)
		buf = appendU16(buf, v.FieldCount)
	case automato.ReadHumidity:
	case automato.ReadHumidityReply:
		buf = appendF32(buf, v.Humidity)
	case automato.ReadTemperature:
	case automato.ReadTemperatureReply:
		buf = appendF32(buf, v.Temperature)
	case automato.ReadAnalog:
		buf = append(buf, v.Pin)
	case automato.ReadAnalogReply:
		buf = append(buf, v.Pin)
		buf = appendU16(buf, v.State)
	case automato.ReadField:
		buf = appendU16(buf, v.Index)
	case automato.ReadFieldReply:
		buf = appendU16(buf, v.Index)
		buf = appendU16(buf, v.Offset)
		buf = append(buf, v.Length, byte(v.Format))
		buf = append(buf, v.Name[:]...)
	default:
		return nil, fmt.Errorf("wire: unsupported payload type %T", p)
	}
	return buf, nil
}

func appendU16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func appendU64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendF32(buf []byte, v float32) []byte {
	return appendU32(buf, float32bits(v))
}

func appendU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}
