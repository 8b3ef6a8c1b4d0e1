package automato

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnknownEnumNameError reports a JSON enum name with no matching variant.
type UnknownEnumNameError struct {
	Type string
	Name string
}

func (e *UnknownEnumNameError) Error() string {
	return fmt.Sprintf("automato: unknown %s variant %q", e.Type, e.Name)
}

func marshalQuoted(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}

func unmarshalQuoted(b []byte) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return s, nil
}

// unmarshalUintFallback recognizes a bare JSON number, the acceptance-only
// fallback form for enums whose canonical JSON is a quoted name.
func unmarshalUintFallback(b []byte) (uint64, bool, error) {
	if len(b) == 0 || (b[0] != '-' && (b[0] < '0' || b[0] > '9')) {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(string(b), 10, 8)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
