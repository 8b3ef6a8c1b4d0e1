package automato

// ResultCode is the single-byte error enumeration carried inside a Fail
// payload. Ordinal assignment is part of the wire contract and must match
// the remote firmware's enumeration exactly.
type ResultCode uint8

const (
	ResultOk ResultCode = iota
	ResultNoMessageReceived
	ResultInvalidMessageType
	ResultInvalidPinNumber
	ResultInvalidMemAddress
	ResultInvalidMemLength
	ResultInvalidReplyMessage
	ResultOperationForbidden
	ResultReplyTimeout
	ResultRhRouterErrorInvalidLength
	ResultRhRouterErrorNoRoute
	ResultRhRouterErrorTimeout
	ResultRhRouterErrorNoReply
	ResultRhRouterErrorUnableToDeliver
	ResultInvalidRhRouterError
	ResultCount
)

func (r ResultCode) String() string {
	if int(r) < len(resultCodeNames) {
		return resultCodeNames[r]
	}
	return "Unknown"
}

var resultCodeNames = [...]string{
	"Ok",
	"NoMessageReceived",
	"InvalidMessageType",
	"InvalidPinNumber",
	"InvalidMemAddress",
	"InvalidMemLength",
	"InvalidReplyMessage",
	"OperationForbidden",
	"ReplyTimeout",
	"RhRouterErrorInvalidLength",
	"RhRouterErrorNoRoute",
	"RhRouterErrorTimeout",
	"RhRouterErrorNoReply",
	"RhRouterErrorUnableToDeliver",
	"InvalidRhRouterError",
	"Count",
}

// MarshalJSON emits the named variant, e.g. "InvalidMemLength".
func (r ResultCode) MarshalJSON() ([]byte, error) {
	return marshalQuoted(r.String()), nil
}

// UnmarshalJSON accepts either the named variant or the raw numeric code,
// the same acceptance-only fallback FieldFormat uses.
func (r *ResultCode) UnmarshalJSON(b []byte) error {
	if n, ok, err := unmarshalUintFallback(b); err != nil {
		return err
	} else if ok {
		*r = ResultCode(n)
		return nil
	}
	s, err := unmarshalQuoted(b)
	if err != nil {
		return err
	}
	for i, name := range resultCodeNames {
		if name == s {
			*r = ResultCode(i)
			return nil
		}
	}
	return &UnknownEnumNameError{Type: "ResultCode", Name: s}
}
