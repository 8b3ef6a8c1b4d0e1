package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
)

// Decode reads one payload value from data, which must contain at least
// the tag byte and that variant's full footprint. For the two
// variable-length variants, data must contain exactly the bytes the
// length byte declares — no more, no less.
func Decode(data []byte) (automato.Payload, error) {
	if len(data) == 0 {
		return nil, automatoerr.InvalidMessageType(0)
	}
	kind := automato.Kind(data[0])
	body := data[1:]

	switch kind {
	case automato.KindAck:
		return automato.Ack{}, nil
	case automato.KindFail:
		if err := need(body, 1); err != nil {
			return nil, err
		}
		return automato.Fail{FailCode: automato.ResultCode(body[0])}, nil
	case automato.KindPinmode:
		if err := need(body, 2); err != nil {
			return nil, err
		}
		return automato.Pinmode{Pin: body[0], Mode: body[1]}, nil
	case automato.KindReadPin:
		if err := need(body, 1); err != nil {
			return nil, err
		}
		return automato.ReadPin{Pin: body[0]}, nil
	case automato.KindReadPinReply:
		if err := need(body, 2); err != nil {
			return nil, err
		}
		return automato.ReadPinReply{Pin: body[0], State: body[1]}, nil
	case automato.KindWritePin:
		if err := need(body, 2); err != nil {
			return nil, err
		}
		return automato.WritePin{Pin: body[0], State: body[1]}, nil
	case automato.KindReadMem:
		if err := need(body, 3); err != nil {
			return nil, err
		}
		return automato.ReadMem{Address: readU16(body), Length: body[2]}, nil
	case automato.KindReadMemReply:
		if err := need(body, 1); err != nil {
			return nil, err
		}
		length := int(body[0])
		if length > automato.MaxReadMemLength {
			return nil, automatoerr.InvalidMemLength(length, automato.MaxReadMemLength)
		}
		if err := need(body[1:], length); err != nil {
			return nil, err
		}
		data := make(automato.ByteList, length)
		copy(data, body[1:1+length])
		return automato.ReadMemReply{Data: data}, nil
	case automato.KindWriteMem:
		if err := need(body, 3); err != nil {
			return nil, err
		}
		address := readU16(body)
		length := int(body[2])
		if length > automato.MaxWriteMemLength {
			return nil, automatoerr.InvalidMemLength(length, automato.MaxWriteMemLength)
		}
		if err := need(body[3:], length); err != nil {
			return nil, err
		}
		data := make(automato.ByteList, length)
		copy(data, body[3:3+length])
		return automato.WriteMem{Address: address, Data: data}, nil
	case automato.KindReadInfo:
		return automato.ReadInfo{}, nil
	case automato.KindReadInfoReply:
		if err := need(body, 16); err != nil {
			return nil, err
		}
		return automato.ReadInfoReply{
			ProtoVersion: readF32(body),
			MACAddress:   binary.LittleEndian.Uint64(body[4:12]),
			DataLen:      binary.LittleEndian.Uint16(body[12:14]),
			FieldCount:   binary.LittleEndian.Uint16(body[14:16]),
		}, nil
	case automato.KindReadHumidity:
		return automato.ReadHumidity{}, nil
	case automato.KindReadHumidityReply:
		if err := need(body, 4); err != nil {
			return nil, err
		}
		return automato.ReadHumidityReply{Humidity: readF32(body)}, nil
	case automato.KindReadTemperature:
		return automato.ReadTemperature{}, nil
	case automato.KindReadTemperatureReply:
		if err := need(body, 4); err != nil {
			return nil, err
		}
		return automato.ReadTemperatureReply{Temperature: readF32(body)}, nil
	case automato.KindReadAnalog:
		if err := need(body, 1); err != nil {
			return nil, err
		}
		return automato.ReadAnalog{Pin: body[0]}, nil
	case automato.KindReadAnalogReply:
		if err := need(body, 3); err != nil {
			return nil, err
		}
		return automato.ReadAnalogReply{Pin: body[0], State: binary.LittleEndian.Uint16(body[1:3])}, nil
	case automato.KindReadField:
		if err := need(body, 2); err != nil {
			return nil, err
		}
		return automato.ReadField{Index: readU16(body)}, nil
	case automato.KindReadFieldReply:
		if err := need(body, 31); err != nil {
			return nil, err
		}
		var name automato.Name25
		copy(name[:], body[6:31])
		return automato.ReadFieldReply{
			Index:  binary.LittleEndian.Uint16(body[0:2]),
			Offset: binary.LittleEndian.Uint16(body[2:4]),
			Length: body[4],
			Format: automato.FieldFormat(body[5]),
			Name:   name,
		}, nil
	default:
		return nil, automatoerr.InvalidMessageType(byte(kind))
	}
}

func need(body []byte, n int) error {
	if len(body) < n {
		return fmt.Errorf("wire: short payload: need %d bytes, have %d", n, len(body))
	}
	return nil
}

func readU16(body []byte) uint16 { return binary.LittleEndian.Uint16(body[0:2]) }
func readF32(body []byte) float32 { return float32frombits(binary.LittleEndian.Uint32(body[0:4])) }
