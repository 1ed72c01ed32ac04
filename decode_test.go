package dexscreener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "number", input: `3000.5`, want: 3000.5},
		{name: "quoted number", input: `"3000.5"`, want: 3000.5},
		{name: "integer", input: `42`, want: 42},
		{name: "quoted integer", input: `"42"`, want: 42},
		{name: "negative", input: `-0.25`, want: -0.25},
		{name: "quoted negative", input: `"-0.25"`, want: -0.25},
		{name: "exponent", input: `6.25e3`, want: 6250},
		{name: "quoted exponent", input: `"6.25e3"`, want: 6250},
		{name: "zero", input: `0`, want: 0},
		{name: "quoted zero", input: `"0"`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FloatValue
			require.NoError(t, v.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, v.Float64())
		})
	}
}

// Number and quoted-number renderings of the same value must decode
// identically.
func TestFloatValueWireShapeEquivalence(t *testing.T) {
	for _, raw := range []string{"3000.5", "0", "-1.75", "12345", "1e-7"} {
		t.Run(raw, func(t *testing.T) {
			var asNumber, asString FloatValue
			require.NoError(t, asNumber.UnmarshalJSON([]byte(raw)))
			require.NoError(t, asString.UnmarshalJSON([]byte(`"`+raw+`"`)))
			assert.Equal(t, asNumber, asString)
		})
	}
}

func TestFloatValueUnmarshalJSONMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRaw string
	}{
		{name: "non-numeric string", input: `"abc"`, wantRaw: "abc"},
		{name: "empty string", input: `""`, wantRaw: ""},
		{name: "null", input: `null`, wantRaw: "null"},
		{name: "bool", input: `true`, wantRaw: "true"},
		{name: "comma decimal", input: `"12,5"`, wantRaw: "12,5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FloatValue
			err := v.UnmarshalJSON([]byte(tt.input))
			var malformed *MalformedNumberError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantRaw, malformed.Raw)
		})
	}
}

func TestOptionalFloatUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "number", input: `3000.5`, want: 3000.5},
		{name: "quoted number", input: `"3000.5"`, want: 3000.5},
		{name: "zero", input: `0`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v OptionalFloat
			require.NoError(t, v.UnmarshalJSON([]byte(tt.input)))
			got, ok := v.Float64()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalFloatUnmarshalJSONNoValue(t *testing.T) {
	for _, input := range []string{`null`, `""`} {
		t.Run(input, func(t *testing.T) {
			var v OptionalFloat
			require.NoError(t, v.UnmarshalJSON([]byte(input)))
			_, ok := v.Float64()
			assert.False(t, ok)
		})
	}
}

// An absent field and an empty-string field must be indistinguishable to the
// caller.
func TestOptionalFloatAbsentEqualsEmptyString(t *testing.T) {
	type doc struct {
		Price OptionalFloat `json:"price"`
	}

	var absent, blank doc
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"price":""}`), &blank))

	_, absentOK := absent.Price.Float64()
	_, blankOK := blank.Price.Float64()
	assert.False(t, absentOK)
	assert.False(t, blankOK)
	assert.Equal(t, absent.Price, blank.Price)
}

func TestOptionalFloatUnmarshalJSONMalformed(t *testing.T) {
	var v OptionalFloat
	err := v.UnmarshalJSON([]byte(`"not-a-price"`))
	var malformed *MalformedNumberError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "not-a-price", malformed.Raw)
}

func TestOptionalFloatOr(t *testing.T) {
	var unset OptionalFloat
	assert.Equal(t, 1.5, unset.Or(1.5))

	var set OptionalFloat
	require.NoError(t, set.UnmarshalJSON([]byte(`2.5`)))
	assert.Equal(t, 2.5, set.Or(1.5))
}

func TestOptionalTimeUnmarshalJSONMilliseconds(t *testing.T) {
	var v OptionalTime
	require.NoError(t, v.UnmarshalJSON([]byte(`1620250931000`)))

	got, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, int64(1620250931), got.Unix())
	assert.Equal(t, time.Date(2021, 5, 5, 12, 22, 11, 0, time.UTC), got)
}

func TestOptionalTimeUnmarshalJSONKeepsSubSecondRemainder(t *testing.T) {
	var v OptionalTime
	require.NoError(t, v.UnmarshalJSON([]byte(`1620250931123`)))

	got, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, int64(1620250931123), got.UnixMilli())
	assert.Equal(t, 123*int(time.Millisecond), got.Nanosecond())
}

// The RFC 3339 rendering and the millisecond rendering of the same moment
// must decode to the same instant.
func TestOptionalTimeWireShapeEquivalence(t *testing.T) {
	var fromRFC3339, fromMillisString, fromMillis OptionalTime
	require.NoError(t, fromRFC3339.UnmarshalJSON([]byte(`"2021-05-05T12:22:11Z"`)))
	require.NoError(t, fromMillisString.UnmarshalJSON([]byte(`"1620250931000"`)))
	require.NoError(t, fromMillis.UnmarshalJSON([]byte(`1620250931000`)))

	a, ok := fromRFC3339.Time()
	require.True(t, ok)
	b, ok := fromMillisString.Time()
	require.True(t, ok)
	c, ok := fromMillis.Time()
	require.True(t, ok)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
}

func TestOptionalTimeUnmarshalJSONNormalizesToUTC(t *testing.T) {
	var v OptionalTime
	require.NoError(t, v.UnmarshalJSON([]byte(`"2021-05-05T14:22:11+02:00"`)))

	got, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2021, 5, 5, 12, 22, 11, 0, time.UTC), got)
}

func TestOptionalTimeUnmarshalJSONNoValue(t *testing.T) {
	for _, input := range []string{`null`, `""`} {
		t.Run(input, func(t *testing.T) {
			var v OptionalTime
			require.NoError(t, v.UnmarshalJSON([]byte(input)))
			_, ok := v.Time()
			assert.False(t, ok)
		})
	}
}

func TestOptionalTimeUnmarshalJSONMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRaw string
	}{
		{name: "free text", input: `"not-a-timestamp"`, wantRaw: "not-a-timestamp"},
		{name: "broken rfc3339", input: `"2021-13-45T99:99:99Z"`, wantRaw: "2021-13-45T99:99:99Z"},
		{name: "fractional millis", input: `1620250931000.5`, wantRaw: "1620250931000.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v OptionalTime
			err := v.UnmarshalJSON([]byte(tt.input))
			var malformed *MalformedTimestampError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantRaw, malformed.Raw)
		})
	}
}

func TestMarshalJSONWireShapes(t *testing.T) {
	var price FloatValue
	require.NoError(t, price.UnmarshalJSON([]byte(`"3000.5"`)))
	out, err := json.Marshal(price)
	require.NoError(t, err)
	assert.Equal(t, `3000.5`, string(out))

	var unsetFloat OptionalFloat
	out, err = json.Marshal(unsetFloat)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))

	var createdAt OptionalTime
	require.NoError(t, createdAt.UnmarshalJSON([]byte(`1620250931000`)))
	out, err = json.Marshal(createdAt)
	require.NoError(t, err)
	assert.Equal(t, `"2021-05-05T12:22:11Z"`, string(out))

	var unsetTime OptionalTime
	out, err = json.Marshal(unsetTime)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
