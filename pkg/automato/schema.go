package automato

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// FieldDescriptor names one field of a variant for consumption by a
// cross-compiled UI-binding emitter.
type FieldDescriptor struct {
	Name   string `json:"name" cbor:"name"`
	GoType string `json:"goType" cbor:"goType"`
}

// VariantDescriptor names one payload variant and its ordered fields, the
// type metadata an emitter needs to generate a front-end binding without
// depending on this package directly.
type VariantDescriptor struct {
	Kind   Kind              `json:"kind" cbor:"kind"`
	Name   string            `json:"name" cbor:"name"`
	Fields []FieldDescriptor `json:"fields" cbor:"fields"`
}

var schemaSamples = []Payload{
	Ack{}, Fail{}, Pinmode{}, ReadPin{}, ReadPinReply{}, WritePin{},
	ReadMem{}, ReadMemReply{}, WriteMem{}, ReadInfo{}, ReadInfoReply{},
	ReadHumidity{}, ReadHumidityReply{}, ReadTemperature{}, ReadTemperatureReply{},
	ReadAnalog{}, ReadAnalogReply{}, ReadField{}, ReadFieldReply{},
}

// DescribeVariants returns, for each of the 19 closed variants, its kind,
// Go type name, and ordered field list — enough metadata to drive a UI
// binding generator without hand-maintaining a parallel schema.
func DescribeVariants() []VariantDescriptor {
	out := make([]VariantDescriptor, 0, len(schemaSamples))
	for _, p := range schemaSamples {
		t := reflect.TypeOf(p)
		desc := VariantDescriptor{Kind: p.Kind(), Name: t.Name()}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			desc.Fields = append(desc.Fields, FieldDescriptor{
				Name:   f.Name,
				GoType: f.Type.String(),
			})
		}
		out = append(out, desc)
	}
	return out
}

// MarshalSchemaCBOR CBOR-encodes DescribeVariants' output, a compact form
// suitable for shipping schema metadata to consumers for which parsing
// JSON is comparatively expensive (e.g. an embedded config loader).
func MarshalSchemaCBOR() ([]byte, error) {
	return cbor.Marshal(DescribeVariants())
}
