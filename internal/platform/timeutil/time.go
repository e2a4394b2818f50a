package timeutil

import (
	"time"

	"github.com/fxamacker/cbor/v2"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, used for
// timestamps in API responses.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for
// log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time serializes as a fixed-precision RFC 3339 UTC string in both JSON and
// CBOR, e.g. "2024-01-15T10:30:00.000Z".
//
// Decoding null leaves the existing value untouched.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current time.
func Now() Time {
	return Time{Time: time.Now()}
}

// String formats t with millisecond precision.
func (t Time) String() string {
	return t.UTC().Format(RFC3339Millis)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return t.parse(s)
}

// MarshalCBOR encodes t as a text string. Without it the embedded
// time.Time would be encoded through its binary marshaler.
func (t Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.String())
}

func (t *Time) UnmarshalCBOR(data []byte) error {
	var s *string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	return t.parse(*s)
}

func (t *Time) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
