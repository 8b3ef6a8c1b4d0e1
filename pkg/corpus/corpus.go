package corpus

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/wire"
)

// floatTolerance is the absolute tolerance applied when comparing the
// three float32 fields (ReadInfoReply.ProtoVersion, ReadHumidityReply.Humidity,
// ReadTemperatureReply.Temperature).
const floatTolerance = 1e-6

// Write encodes p and writes it to <dir>/<name>.bin.
func Write(dir, name string, p automato.Payload) error {
	encoded, err := wire.Encode(p)
	if err != nil {
		return err
	}
	if len(encoded) != automato.PayloadSize(p) {
		return fmt.Errorf("corpus: encode(%s) produced %d bytes, want %d", name, len(encoded), automato.PayloadSize(p))
	}
	return os.WriteFile(filepath.Join(dir, name+".bin"), encoded, 0o644)
}

// Read reads <dir>/<name>.bin and decodes it.
func Read(dir, name string) (automato.Payload, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".bin"))
	if err != nil {
		return nil, err
	}
	return wire.Decode(data)
}

// WriteAll writes every literal in Literals under dir.
func WriteAll(dir string) error {
	for _, c := range Literals {
		if err := Write(dir, c.Name, c.Payload); err != nil {
			return fmt.Errorf("corpus: write %s: %w", c.Name, err)
		}
	}
	return nil
}

// VerifyAll reads every literal back from dir and reports a field-level
// mismatch, if any, for each.
func VerifyAll(dir string) []error {
	var errs []error
	for _, c := range Literals {
		got, err := Read(dir, c.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("corpus: read %s: %w", c.Name, err))
			continue
		}
		if err := Equal(c.Payload, got); err != nil {
			errs = append(errs, fmt.Errorf("corpus: %s: %w", c.Name, err))
		}
	}
	return errs
}

// Equal compares two payloads field-by-field, applying floatTolerance to
// float32 fields. It returns a descriptive error on the first mismatch.
func Equal(want, got automato.Payload) error {
	if want.Kind() != got.Kind() {
		return fmt.Errorf("kind mismatch: want %s, got %s", want.Kind(), got.Kind())
	}

	wv := reflect.ValueOf(want)
	gv := reflect.ValueOf(got)
	wt := wv.Type()

	for i := 0; i < wt.NumField(); i++ {
		field := wt.Field(i)
		wf := wv.Field(i)
		gf := gv.Field(i)

		if wf.Kind() == reflect.Float32 {
			wantF := float32(wf.Float())
			gotF := float32(gf.Float())
			if math.Abs(float64(wantF-gotF)) > floatTolerance {
				return fmt.Errorf("field %s: want %v, got %v", field.Name, wantF, gotF)
			}
			continue
		}

		if !reflect.DeepEqual(wf.Interface(), gf.Interface()) {
			return fmt.Errorf("field %s: want %v, got %v", field.Name, wf.Interface(), gf.Interface())
		}
	}
	return nil
}
