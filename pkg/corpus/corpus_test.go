package corpus

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/openautomato/automato/pkg/automato"
)

// TestWriteAllVerifyAll exercises the oracle end to end: every literal is
// written to a file and read back, with field-level equality.
func TestWriteAllVerifyAll(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir); err != nil {
		t.Fatal(err)
	}
	if errs := VerifyAll(dir); len(errs) != 0 {
		t.Fatalf("unexpected mismatches: %v", errs)
	}
}

// TestLiteralByteLength checks that each corpus file's byte length
// equals payload_size(p).
func TestLiteralByteLength(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir); err != nil {
		t.Fatal(err)
	}
	for _, c := range Literals {
		data, err := readRaw(dir, c.Name)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != automato.PayloadSize(c.Payload) {
			t.Errorf("%s: file is %d bytes, want PayloadSize = %d", c.Name, len(data), automato.PayloadSize(c.Payload))
		}
	}
}

// TestScenarioBytes spot-checks a handful of the literal corpus entries
// against their expected encoded hex.
func TestScenarioBytes(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir); err != nil {
		t.Fatal(err)
	}

	cases := map[string]string{
		"ack":      "00",
		"fail":     "010e",
		"pinmode":  "021a02",
		"writepin": "050f01",
	}
	for name, wantHex := range cases {
		data, err := readRaw(dir, name)
		if err != nil {
			t.Fatal(err)
		}
		want, err := hex.DecodeString(wantHex)
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(data) != hex.EncodeToString(want) {
			t.Errorf("%s: got % x, want % x", name, data, want)
		}
	}
}

func readRaw(dir, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(dir, name+".bin"))
}

func TestEqualAppliesFloatTolerance(t *testing.T) {
	a := automato.ReadHumidityReply{Humidity: 47.5}
	b := automato.ReadHumidityReply{Humidity: 47.5 + 1e-7}
	if err := Equal(a, b); err != nil {
		t.Fatalf("values within tolerance should compare equal: %v", err)
	}

	c := automato.ReadHumidityReply{Humidity: 47.6}
	if err := Equal(a, c); err == nil {
		t.Fatal("values outside tolerance should not compare equal")
	}
}

func TestEqualKindMismatch(t *testing.T) {
	if err := Equal(automato.Ack{}, automato.ReadInfo{}); err == nil {
		t.Fatal("want kind mismatch error")
	}
}
