package automato

import "testing"

func TestPayloadSize(t *testing.T) {
	mem, code := NewReadMemReply([]byte{1, 2, 3, 4, 5})
	if code != ResultOk {
		t.Fatalf("NewReadMemReply rejected: %s", code)
	}
	wmem, code := NewWriteMem(5678, []byte{5, 4, 3, 2, 1})
	if code != ResultOk {
		t.Fatalf("NewWriteMem rejected: %s", code)
	}

	cases := []struct {
		name string
		p    Payload
		want int
	}{
		{"Ack", Ack{}, 1},
		{"Fail", Fail{FailCode: ResultInvalidRhRouterError}, 2},
		{"Pinmode", Pinmode{Pin: 26, Mode: 2}, 3},
		{"ReadPin", ReadPin{Pin: 1}, 2},
		{"ReadPinReply", ReadPinReply{Pin: 1, State: 1}, 3},
		{"WritePin", WritePin{Pin: 15, State: 1}, 3},
		{"ReadMem", ReadMem{Address: 5678, Length: 5}, 4},
		{"ReadMemReply", mem, 1 + 1 + 5},
		{"WriteMem", wmem, 1 + 3 + 5},
		{"ReadInfo", ReadInfo{}, 1},
		{"ReadInfoReply", ReadInfoReply{}, 1 + 16},
		{"ReadHumidity", ReadHumidity{}, 1},
		{"ReadHumidityReply", ReadHumidityReply{}, 1 + 4},
		{"ReadTemperature", ReadTemperature{}, 1},
		{"ReadTemperatureReply", ReadTemperatureReply{}, 1 + 4},
		{"ReadAnalog", ReadAnalog{Pin: 3}, 2},
		{"ReadAnalogReply", ReadAnalogReply{Pin: 3, State: 512}, 4},
		{"ReadField", ReadField{Index: 7}, 3},
		{"ReadFieldReply", ReadFieldReply{}, 1 + 2 + 2 + 1 + 1 + 25},
	}

	for _, c := range cases {
		if got := PayloadSize(c.p); got != c.want {
			t.Errorf("PayloadSize(%s) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestNewReadMemReplyRejectsOverlong(t *testing.T) {
	_, code := NewReadMemReply(make([]byte, MaxReadMemLength+1))
	if code != ResultInvalidMemLength {
		t.Fatalf("want ResultInvalidMemLength, got %s", code)
	}
}

func TestNewWriteMemRejectsOverlong(t *testing.T) {
	_, code := NewWriteMem(0, make([]byte, MaxWriteMemLength+1))
	if code != ResultInvalidMemLength {
		t.Fatalf("want ResultInvalidMemLength, got %s", code)
	}
}

func TestKindString(t *testing.T) {
	if KindReadFieldReply.String() != "ReadFieldReply" {
		t.Fatalf("got %q", KindReadFieldReply.String())
	}
	if Kind(255).String() != "Unknown" {
		t.Fatalf("want Unknown for out-of-range kind")
	}
}
