// Package automato defines the automato message model: the closed set of
// payload variants exchanged with a remote LoRa node, and their projection
// to and from JSON for the HTTP bridge and UI tooling.
package automato

// Kind is the 1-byte tag distinguishing a payload variant on the wire.
// The integer value of each Kind is part of the wire contract and must
// not be reordered.
type Kind uint8

const (
	KindAck Kind = iota
	KindFail
	KindPinmode
	KindReadPin
	KindReadPinReply
	KindWritePin
	KindReadMem
	KindReadMemReply
	KindWriteMem
	KindReadInfo
	KindReadInfoReply
	KindReadHumidity
	KindReadHumidityReply
	KindReadTemperature
	KindReadTemperatureReply
	KindReadAnalog
	KindReadAnalogReply
	KindReadField
	KindReadFieldReply
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	"Ack",
	"Fail",
	"Pinmode",
	"ReadPin",
	"ReadPinReply",
	"WritePin",
	"ReadMem",
	"ReadMemReply",
	"WriteMem",
	"ReadInfo",
	"ReadInfoReply",
	"ReadHumidity",
	"ReadHumidityReply",
	"ReadTemperature",
	"ReadTemperatureReply",
	"ReadAnalog",
	"ReadAnalogReply",
	"ReadField",
	"ReadFieldReply",
}
