// Package corpus is the deterministic test oracle (C6): a literal payload
// per variant, written to a file and read back, asserting field-level
// equality. The same files cmd/automato-corpus produces are the ones the
// package's own tests read back, exercising bit-compatibility across
// separate host and firmware tooling invocations.
package corpus

import "github.com/openautomato/automato/pkg/automato"

// Case is one named literal value in the corpus, keyed by the variant
// file name it is written under.
type Case struct {
	Name    string
	Payload automato.Payload
}

// Literals holds one canonical value per wire variant.
var Literals = []Case{
	{"ack", automato.Ack{}},
	{"fail", automato.Fail{FailCode: automato.ResultInvalidRhRouterError}},
	{"pinmode", automato.Pinmode{Pin: 26, Mode: 2}},
	{"readpin", automato.ReadPin{Pin: 26}},
	{"readpinreply", automato.ReadPinReply{Pin: 26, State: 1}},
	{"writepin", automato.WritePin{Pin: 15, State: 1}},
	{"readmem", automato.ReadMem{Address: 5678, Length: 5}},
	{"readmemreply", mustReadMemReply([]byte{1, 2, 3, 4, 5})},
	{"writemem", mustWriteMem(5678, []byte{5, 4, 3, 2, 1})},
	{"readinfo", automato.ReadInfo{}},
	{"readinforeply", automato.ReadInfoReply{ProtoVersion: 1.1, MACAddress: 5678, DataLen: 5000, FieldCount: 5}},
	{"readhumidity", automato.ReadHumidity{}},
	{"readhumidityreply", automato.ReadHumidityReply{Humidity: 47.5}},
	{"readtemperature", automato.ReadTemperature{}},
	{"readtemperaturereply", automato.ReadTemperatureReply{Temperature: 21.25}},
	{"readanalog", automato.ReadAnalog{Pin: 3}},
	{"readanalogreply", automato.ReadAnalogReply{Pin: 3, State: 512}},
	{"readfield", automato.ReadField{Index: 7}},
	{"readfieldreply", automato.ReadFieldReply{Index: 7, Offset: 77, Length: 20, Format: automato.FieldFormatUint32, Name: automato.NewName25("wat")}},
}

func mustReadMemReply(data []byte) automato.ReadMemReply {
	p, code := automato.NewReadMemReply(data)
	if code != automato.ResultOk {
		panic("corpus: literal ReadMemReply rejected: " + code.String())
	}
	return p
}

func mustWriteMem(address uint16, data []byte) automato.WriteMem {
	p, code := automato.NewWriteMem(address, data)
	if code != automato.ResultOk {
		panic("corpus: literal WriteMem rejected: " + code.String())
	}
	return p
}
