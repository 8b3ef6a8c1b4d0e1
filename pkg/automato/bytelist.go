package automato

import (
	"bytes"
	"encoding/json"
)

// ByteList is a dynamic byte sequence that marshals to a JSON array of
// integers, not the base64 string Go's encoding/json gives a plain
// []byte by default.
type ByteList []byte

func (b ByteList) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

func (b *ByteList) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make(ByteList, len(ints))
	for i, v := range ints {
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// MaxReadMemLength and MaxWriteMemLength bound the two variable-length
// variants' data, derived from RH_RF95_MAX_MESSAGE_LEN (251) minus each
// variant's fixed header.
const (
	RHRF95MaxMessageLen = 251
	MaxReadMemLength    = 249 // RHRF95MaxMessageLen - sizeof(u8) - sizeof(u8)
	MaxWriteMemLength   = 247 // RHRF95MaxMessageLen - sizeof(u16) - sizeof(u8) - sizeof(u8)
)

// Name25 is the fixed 25-byte field-name slot carried by ReadFieldReply.
// The wire form is always 25 raw bytes (undefined padding past the NUL);
// the JSON form is the NUL-terminated prefix string.
type Name25 [25]byte

// NewName25 truncates or NUL-pads s to fit the 25-byte slot. It never
// writes past index 24.
func NewName25(s string) Name25 {
	var n Name25
	copy(n[:], s)
	return n
}

// String returns the prefix up to the first NUL, or the full 25 bytes if
// no NUL is present.
func (n Name25) String() string {
	if i := bytes.IndexByte(n[:], 0); i >= 0 {
		return string(n[:i])
	}
	return string(n[:])
}

func (n Name25) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Name25) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = NewName25(s)
	return nil
}
