package automato

// FieldFormat identifies the in-memory layout of a named field in a
// remote node's memory map, as reported by a ReadFieldReply.
type FieldFormat uint8

const (
	FieldFormatString FieldFormat = iota
	FieldFormatFloat
	FieldFormatUint8
	FieldFormatUint16
	FieldFormatUint32
	FieldFormatInt8
	FieldFormatInt16
	FieldFormatInt32
	FieldFormatOther
)

func (f FieldFormat) String() string {
	if int(f) < len(fieldFormatNames) {
		return fieldFormatNames[f]
	}
	return "Unknown"
}

var fieldFormatNames = [...]string{
	"String",
	"Float",
	"Uint8",
	"Uint16",
	"Uint32",
	"Int8",
	"Int16",
	"Int32",
	"Other",
}

// MarshalJSON emits the named variant, e.g. "Uint16". The named form is
// canonical; see UnmarshalJSON for the raw-integer acceptance fallback
// the source occasionally emits instead.
func (f FieldFormat) MarshalJSON() ([]byte, error) {
	return marshalQuoted(f.String()), nil
}

// UnmarshalJSON accepts either the named variant or a raw u8, since some
// producers emit FieldFormat as a bare integer.
func (f *FieldFormat) UnmarshalJSON(b []byte) error {
	if n, ok, err := unmarshalUintFallback(b); err != nil {
		return err
	} else if ok {
		*f = FieldFormat(n)
		return nil
	}
	s, err := unmarshalQuoted(b)
	if err != nil {
		return err
	}
	for i, name := range fieldFormatNames {
		if name == s {
			*f = FieldFormat(i)
			return nil
		}
	}
	return &UnknownEnumNameError{Type: "FieldFormat", Name: s}
}
