package automato

import (
	"encoding/json"
	"fmt"
)

// EncodeJSON renders p as the external single-key JSON object mandated by
// the HTTP bridge contract, e.g. {"PeWritemem":{"address":5678,"data":[...]}}.
func EncodeJSON(p Payload) ([]byte, error) {
	inner, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	obj := map[string]json.RawMessage{p.jsonKey(): inner}
	return json.Marshal(obj)
}

// DecodeJSON parses the external single-key JSON object form back into a
// concrete Payload.
func DecodeJSON(data []byte) (Payload, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("automato: payload object must have exactly one key, got %d", len(obj))
	}
	var key string
	var raw json.RawMessage
	for key, raw = range obj {
	}

	ctor, ok := jsonConstructors[key]
	if !ok {
		return nil, fmt.Errorf("automato: unknown payload variant %q", key)
	}
	return ctor(raw)
}

type jsonConstructor func(json.RawMessage) (Payload, error)

func decodeInto[T any](raw json.RawMessage, wrap func(T) Payload) (Payload, error) {
	var v T
	// Empty-object variants (Ack, ReadInfo, ...) may arrive as {} or null.
	if len(raw) == 0 || string(raw) == "null" {
		return wrap(v), nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return wrap(v), nil
}

var jsonConstructors = map[string]jsonConstructor{
	"PeAck": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v struct{}) Payload { return Ack{} })
	},
	"PeFail": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v Fail) Payload { return v })
	},
	"PePinmode": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v Pinmode) Payload { return v })
	},
	"PeReadpin": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadPin) Payload { return v })
	},
	"PeReadpinreply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadPinReply) Payload { return v })
	},
	"PeWritepin": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v WritePin) Payload { return v })
	},
	"PeReadmem": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadMem) Payload { return v })
	},
	"PeReadmemreply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadMemReply) Payload { return v })
	},
	"PeWritemem": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v WriteMem) Payload { return v })
	},
	"PeReadinfo": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v struct{}) Payload { return ReadInfo{} })
	},
	"PeReadinforeply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadInfoReply) Payload { return v })
	},
	"PeReadhumidity": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v struct{}) Payload { return ReadHumidity{} })
	},
	"PeReadhumidityreply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadHumidityReply) Payload { return v })
	},
	"PeReadtemperature": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v struct{}) Payload { return ReadTemperature{} })
	},
	"PeReadtemperaturereply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadTemperatureReply) Payload { return v })
	},
	"PeReadanalog": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadAnalog) Payload { return v })
	},
	"PeReadanalogreply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadAnalogReply) Payload { return v })
	},
	"PeReadfield": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadField) Payload { return v })
	},
	"PeReadfieldreply": func(raw json.RawMessage) (Payload, error) {
		return decodeInto(raw, func(v ReadFieldReply) Payload { return v })
	},
}
