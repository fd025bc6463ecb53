package histdate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
)

func TestSerialize(t *testing.T) {
	require.Equal(t, "2021-06-15T00:00:00Z", MustNew(2021, 6, 15, 0, 0, 0, 0, nil).Serialize())
	require.Equal(t, "0001-01-01T01:01:27.0985Z", mustBCE(t, 1500).Serialize())

	loc := time.FixedZone("", -7*3600)
	require.Equal(t, "1969-07-20T00:00:00-07:00", MustNew(1969, 7, 20, 0, 0, 0, 0, loc).Serialize())
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		year      int
		precision Precision
	}{
		{"rfc3339", "2021-06-15T00:00:00Z", 2021, PrecisionDay},
		{"with offset", "2021-06-15T00:00:00+02:00", 2021, PrecisionDay},
		{"no zone", "2021-06-15T00:00:00", 2021, PrecisionDay},
		{"no seconds", "2021-06-15T00:00", 2021, PrecisionDay},
		{"date only", "1815-06-18", 1815, PrecisionDay},
		{"year encoded", "1815-01-01T01:01:01Z", 1815, PrecisionYear},
		{"bce", "0001-01-01T01:01:27.0985Z", 1, PrecisionYear},
		{"bce python style", "0001-01-01T01:01:26.095000+00:00", 1, PrecisionYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := ParseISO(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.year, dt.Year())
			require.Equal(t, tt.precision, dt.Precision())
		})
	}

	dt, err := ParseISO("0001-01-01T01:01:26.095000+00:00")
	require.NoError(t, err)
	require.Equal(t, "c. 52,000 YBP", dt.YearString())
}

func TestParseISOErrors(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2021-13-01", "2021/06/15", "15 Jun 2021"} {
		_, err := ParseISO(input)
		require.ErrorIs(t, err, errs.ErrParse, input)
	}

	_, err := ParseISO("0000-01-01T00:00:00Z")
	require.ErrorIs(t, err, errs.ErrInvalidDate)
}

func TestSerializeRoundTrip(t *testing.T) {
	dates := []DateTime{
		MustNew(2021, 6, 15, 0, 0, 0, 0, nil),
		MustNew(1492, 10, 1, 0, 0, 1, 0, nil),
		MustNew(1000, 1, 1, 1, 1, 1, 0, nil),
		MustNew(1969, 7, 20, 20, 17, 0, 0, time.FixedZone("", -4*3600)),
		mustBCE(t, 1500),
		mustBCE(t, 13_800_000_000),
	}
	for _, want := range dates {
		t.Run(want.String(), func(t *testing.T) {
			got, err := ParseISO(want.Serialize())
			require.NoError(t, err)
			require.True(t, want.Equal(got))
			require.Equal(t, want.Precision(), got.Precision())
			require.Equal(t, want.IsBCE(), got.IsBCE())
			require.Equal(t, want.String(), got.String())
		})
	}
}

func TestJSON(t *testing.T) {
	type occurrence struct {
		Name string    `json:"name"`
		Date DateTime  `json:"date"`
		End  *DateTime `json:"end,omitempty"`
	}

	in := occurrence{Name: "Lascaux paintings", Date: mustBCE(t, 17000)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Lascaux paintings","date":"0001-01-01T01:01:26.0983Z"}`, string(data))

	var out occurrence
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, in.Date.Equal(out.Date))
	require.Equal(t, "c. 17,000 BCE", out.Date.String())

	var withNull occurrence
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","date":null}`), &withNull))
	require.True(t, withNull.Date.IsZero())

	err = json.Unmarshal([]byte(`{"date":12}`), &withNull)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestText(t *testing.T) {
	dt := MustNew(2021, 6, 1, 0, 0, 1, 0, nil)
	text, err := dt.MarshalText()
	require.NoError(t, err)

	var got DateTime
	require.NoError(t, got.UnmarshalText(text))
	require.Equal(t, "June 2021", got.String())

	require.ErrorIs(t, got.UnmarshalText([]byte("nope")), errs.ErrParse)
}

func TestBinary(t *testing.T) {
	dates := []DateTime{
		MustNew(2021, 6, 15, 0, 0, 0, 0, nil),
		MustNew(9999, 12, 31, 23, 59, 59, 999999, nil),
		MustNew(1969, 7, 20, 20, 17, 0, 0, time.FixedZone("", -4*3600)),
		MustNew(1947, 8, 15, 0, 0, 0, 0, time.FixedZone("", 5*3600+30*60)),
		mustBCE(t, 44),
		mustBCE(t, 13_800_000_000),
	}
	for _, want := range dates {
		t.Run(want.Serialize(), func(t *testing.T) {
			data, err := want.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, BinarySize)

			var got DateTime
			require.NoError(t, got.UnmarshalBinary(data))
			require.True(t, want.Equal(got))
			require.Equal(t, want.Serialize(), got.Serialize())

			big := want.AppendBinary(nil, endian.GetBigEndianEngine())
			fromBig, err := DecodeBinary(big, endian.GetBigEndianEngine())
			require.NoError(t, err)
			require.True(t, want.Equal(fromBig))
		})
	}
}

func TestBinaryErrors(t *testing.T) {
	var dt DateTime
	require.ErrorIs(t, dt.UnmarshalBinary(make([]byte, BinarySize-1)), errs.ErrInvalidBinarySize)

	// month 13
	data, err := MustNew(2021, 6, 15, 0, 0, 0, 0, nil).MarshalBinary()
	require.NoError(t, err)
	data[2] = 13
	require.ErrorIs(t, dt.UnmarshalBinary(data), errs.ErrInvalidDate)

	// reserved byte
	data, err = MustNew(2021, 6, 15, 0, 0, 0, 0, nil).MarshalBinary()
	require.NoError(t, err)
	data[7] = 1
	require.ErrorIs(t, dt.UnmarshalBinary(data), errs.ErrInvalidDate)
}
