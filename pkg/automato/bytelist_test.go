package automato

import (
	"encoding/json"
	"testing"
)

func TestByteListMarshalsAsIntegerArray(t *testing.T) {
	b := ByteList{5, 4, 3, 2, 1}
	encoded, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != "[5,4,3,2,1]" {
		t.Fatalf("got %s, want a plain integer array, not base64", encoded)
	}

	var decoded ByteList
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(b) {
		t.Fatalf("got %v, want %v", decoded, b)
	}
	for i := range b {
		if decoded[i] != b[i] {
			t.Errorf("byte %d: got %d, want %d", i, decoded[i], b[i])
		}
	}
}

func TestByteListEmpty(t *testing.T) {
	encoded, err := json.Marshal(ByteList{})
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != "[]" {
		t.Fatalf("got %s", encoded)
	}
}

func TestName25TruncatesAtFirstNUL(t *testing.T) {
	n := NewName25("wat")
	if n.String() != "wat" {
		t.Fatalf("got %q", n.String())
	}
	if n[3] != 0 {
		t.Fatalf("expected NUL padding at index 3")
	}

	encoded, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `"wat"` {
		t.Fatalf("got %s", encoded)
	}
}

func TestName25NeverWritesPastIndex24(t *testing.T) {
	n := NewName25("this name is definitely longer than twenty five bytes")
	if len(n) != 25 {
		t.Fatalf("Name25 must stay 25 bytes, got %d", len(n))
	}
}

func TestName25FullWithoutNUL(t *testing.T) {
	var n Name25
	for i := range n {
		n[i] = 'x'
	}
	if n.String() != "xxxxxxxxxxxxxxxxxxxxxxxxx" {
		t.Fatalf("got %q", n.String())
	}
}
