package automato

// Payload is a value of one of the 19 closed message variants exchanged
// with a remote automato. Implementations are value types with no
// aliasing; they are constructed, transmitted, and dropped within a
// single transaction.
//
// This interface and its implementing structs ARE the packed source of
// truth: there is no separate raw-memory representation. pkg/wire
// encodes and decodes directly against these types, and jsonKey/struct
// tags give the same types their external JSON projection.
type Payload interface {
	Kind() Kind
	jsonKey() string
}

// Ack acknowledges a request with no further data.
type Ack struct{}

func (Ack) Kind() Kind      { return KindAck }
func (Ack) jsonKey() string { return "PeAck" }

// Fail reports a remote-side error.
type Fail struct {
	FailCode ResultCode `json:"failcode"`
}

func (Fail) Kind() Kind      { return KindFail }
func (Fail) jsonKey() string { return "PeFail" }

// Pinmode requests that a digital pin be placed into input or output mode.
type Pinmode struct {
	Pin  uint8 `json:"pin"`
	Mode uint8 `json:"mode"`
}

func (Pinmode) Kind() Kind      { return KindPinmode }
func (Pinmode) jsonKey() string { return "PePinmode" }

// ReadPin requests the digital state of a pin.
type ReadPin struct {
	Pin uint8 `json:"pin"`
}

func (ReadPin) Kind() Kind      { return KindReadPin }
func (ReadPin) jsonKey() string { return "PeReadpin" }

// ReadPinReply carries the digital state of a pin.
type ReadPinReply struct {
	Pin   uint8 `json:"pin"`
	State uint8 `json:"state"`
}

func (ReadPinReply) Kind() Kind      { return KindReadPinReply }
func (ReadPinReply) jsonKey() string { return "PeReadpinreply" }

// WritePin requests that a digital pin be set to a state.
type WritePin struct {
	Pin   uint8 `json:"pin"`
	State uint8 `json:"state"`
}

func (WritePin) Kind() Kind      { return KindWritePin }
func (WritePin) jsonKey() string { return "PeWritepin" }

// ReadMem requests a byte range of the remote's memory.
type ReadMem struct {
	Address uint16 `json:"address"`
	Length  uint8  `json:"length"`
}

func (ReadMem) Kind() Kind      { return KindReadMem }
func (ReadMem) jsonKey() string { return "PeReadmem" }

// ReadMemReply carries up to MaxReadMemLength bytes read from memory.
// Data is exactly Length bytes long; there is no address field on the
// wire, even though WriteMem carries one — this asymmetry is intentional
// and preserved from the original protocol.
type ReadMemReply struct {
	Data ByteList `json:"data"`
}

func (ReadMemReply) Kind() Kind      { return KindReadMemReply }
func (ReadMemReply) jsonKey() string { return "PeReadmemreply" }

// NewReadMemReply validates mem against MaxReadMemLength.
func NewReadMemReply(mem []byte) (ReadMemReply, ResultCode) {
	if len(mem) > MaxReadMemLength {
		return ReadMemReply{}, ResultInvalidMemLength
	}
	data := make(ByteList, len(mem))
	copy(data, mem)
	return ReadMemReply{Data: data}, ResultOk
}

// WriteMem requests that up to MaxWriteMemLength bytes be written to
// memory starting at Address.
type WriteMem struct {
	Address uint16   `json:"address"`
	Data    ByteList `json:"data"`
}

func (WriteMem) Kind() Kind      { return KindWriteMem }
func (WriteMem) jsonKey() string { return "PeWritemem" }

// NewWriteMem validates mem against MaxWriteMemLength.
func NewWriteMem(address uint16, mem []byte) (WriteMem, ResultCode) {
	if len(mem) > MaxWriteMemLength {
		return WriteMem{}, ResultInvalidMemLength
	}
	data := make(ByteList, len(mem))
	copy(data, mem)
	return WriteMem{Address: address, Data: data}, ResultOk
}

// ReadInfo requests the remote's general info block.
type ReadInfo struct{}

func (ReadInfo) Kind() Kind      { return KindReadInfo }
func (ReadInfo) jsonKey() string { return "PeReadinfo" }

// ReadInfoReply carries the remote's general info block.
type ReadInfoReply struct {
	ProtoVersion float32 `json:"protoversion"`
	MACAddress   uint64  `json:"mac_address"`
	DataLen      uint16  `json:"datalen"`
	FieldCount   uint16  `json:"fieldcount"`
}

func (ReadInfoReply) Kind() Kind      { return KindReadInfoReply }
func (ReadInfoReply) jsonKey() string { return "PeReadinforeply" }

// ReadHumidity requests the remote's humidity sensor reading.
type ReadHumidity struct{}

func (ReadHumidity) Kind() Kind      { return KindReadHumidity }
func (ReadHumidity) jsonKey() string { return "PeReadhumidity" }

// ReadHumidityReply carries a relative-humidity reading.
type ReadHumidityReply struct {
	Humidity float32 `json:"humidity"`
}

func (ReadHumidityReply) Kind() Kind      { return KindReadHumidityReply }
func (ReadHumidityReply) jsonKey() string { return "PeReadhumidityreply" }

// ReadTemperature requests the remote's temperature sensor reading.
type ReadTemperature struct{}

func (ReadTemperature) Kind() Kind      { return KindReadTemperature }
func (ReadTemperature) jsonKey() string { return "PeReadtemperature" }

// ReadTemperatureReply carries a temperature reading.
type ReadTemperatureReply struct {
	Temperature float32 `json:"temperature"`
}

func (ReadTemperatureReply) Kind() Kind      { return KindReadTemperatureReply }
func (ReadTemperatureReply) jsonKey() string { return "PeReadtemperaturereply" }

// ReadAnalog requests the analog state of a pin.
type ReadAnalog struct {
	Pin uint8 `json:"pin"`
}

func (ReadAnalog) Kind() Kind      { return KindReadAnalog }
func (ReadAnalog) jsonKey() string { return "PeReadanalog" }

// ReadAnalogReply carries the analog state of a pin.
type ReadAnalogReply struct {
	Pin   uint8  `json:"pin"`
	State uint16 `json:"state"`
}

func (ReadAnalogReply) Kind() Kind      { return KindReadAnalogReply }
func (ReadAnalogReply) jsonKey() string { return "PeReadanalogreply" }

// ReadField requests the descriptor of a named field by index.
type ReadField struct {
	Index uint16 `json:"index"`
}

func (ReadField) Kind() Kind      { return KindReadField }
func (ReadField) jsonKey() string { return "PeReadfield" }

// ReadFieldReply describes a named field in the remote's memory map.
type ReadFieldReply struct {
	Index  uint16      `json:"index"`
	Offset uint16      `json:"offset"`
	Length uint8       `json:"length"`
	Format FieldFormat `json:"format"`
	Name   Name25      `json:"name"`
}

func (ReadFieldReply) Kind() Kind      { return KindReadFieldReply }
func (ReadFieldReply) jsonKey() string { return "PeReadfieldreply" }

// PayloadSize returns the exact on-wire byte count of p: 1 (kind tag) plus
// the variant's fixed data, or 1 + header + dynamic length for the two
// variable-length variants.
func PayloadSize(p Payload) int {
	const tag = 1
	switch v := p.(type) {
	case Ack:
		return tag
	case Fail:
		return tag + 1
	case Pinmode:
		return tag + 2
	case ReadPin:
		return tag + 1
	case ReadPinReply:
		return tag + 2
	case WritePin:
		return tag + 2
	case ReadMem:
		return tag + 3 // address:u16 + length:u8
	case ReadMemReply:
		return tag + 1 + len(v.Data) // length:u8 + data
	case WriteMem:
		return tag + 3 + len(v.Data) // address:u16 + length:u8 + data
	case ReadInfo:
		return tag
	case ReadInfoReply:
		return tag + 4 + 8 + 2 + 2 // protoversion + mac + datalen + fieldcount
	case ReadHumidity:
		return tag
	case ReadHumidityReply:
		return tag + 4
	case ReadTemperature:
		return tag
	case ReadTemperatureReply:
		return tag + 4
	case ReadAnalog:
		return tag + 1
	case ReadAnalogReply:
		return tag + 3 // pin:u8 + state:u16
	case ReadField:
		return tag + 2
	case ReadFieldReply:
		return tag + 2 + 2 + 1 + 1 + 25 // index + offset + length + format + name
	default:
		panic("automato: unknown payload type")
	}
}
