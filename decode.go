package dexscreener

import (
	"bytes"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var nullLiteral = []byte("null")

// FloatValue is a float64 that decodes from either a JSON number or a JSON
// string holding a float literal. The API emits both shapes for the same
// fields interchangeably. A value that is neither fails decoding with
// MalformedNumberError; fields of this type are mandatory, so null is not
// tolerated either.
type FloatValue float64

// Float64 returns the value as a plain float64.
func (f FloatValue) Float64() float64 { return float64(f) }

func (f *FloatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return &MalformedNumberError{Raw: string(data)}
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &MalformedNumberError{Raw: string(data)}
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &MalformedNumberError{Raw: s}
		}
		*f = FloatValue(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return &MalformedNumberError{Raw: string(data)}
	}
	*f = FloatValue(v)
	return nil
}

func (f FloatValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// OptionalFloat is a float64 that may legitimately be missing. On top of the
// number-or-string tolerance of FloatValue, absent fields, null and the empty
// string all decode to "no value" rather than an error.
type OptionalFloat struct {
	value float64
	set   bool
}

// Float64 returns the value and whether one was present on the wire.
func (f OptionalFloat) Float64() (float64, bool) { return f.value, f.set }

// Or returns the value when present, otherwise def.
func (f OptionalFloat) Or(def float64) float64 {
	if !f.set {
		return def
	}
	return f.value
}

func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	f.value, f.set = 0, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &MalformedNumberError{Raw: string(data)}
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &MalformedNumberError{Raw: s}
		}
		f.value, f.set = v, true
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return &MalformedNumberError{Raw: string(data)}
	}
	f.value, f.set = v, true
	return nil
}

func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// OptionalTime is an instant that may legitimately be missing. The wire
// encodes it either as an integer count of milliseconds since the Unix epoch
// or as a string; a string is parsed as RFC 3339 first and as a millisecond
// count when that fails. Absent fields, null and the empty string decode to
// "no value". Decoded instants are in UTC.
type OptionalTime struct {
	t   time.Time
	set bool
}

// Time returns the instant and whether one was present on the wire.
func (o OptionalTime) Time() (time.Time, bool) { return o.t, o.set }

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.t, o.set = time.Time{}, false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &MalformedTimestampError{Raw: string(data)}
		}
		if s == "" {
			return nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			o.t, o.set = t.UTC(), true
			return nil
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &MalformedTimestampError{Raw: s}
		}
		o.t, o.set = time.UnixMilli(ms).UTC(), true
		return nil
	}
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &MalformedTimestampError{Raw: string(data)}
	}
	o.t, o.set = time.UnixMilli(ms).UTC(), true
	return nil
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.t.UTC().Format(time.RFC3339))
}
