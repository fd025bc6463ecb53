package histdate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
)

// BinarySize is the size in bytes of the binary form of a DateTime.
//
// Layout (byte order chosen by the caller, little-endian for MarshalBinary):
//
//	0-1   year
//	2     month
//	3     day
//	4     hour
//	5     minute
//	6     second
//	7     reserved, must be 0
//	8-11  microsecond
//	12-13 zone offset in minutes east of UTC (signed)
const BinarySize = 14

// serializeLayout is ISO-8601 with up to six fractional digits, enough for the
// microsecond field that carries the BCE mantissa.
const serializeLayout = "2006-01-02T15:04:05.999999Z07:00"

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Serialize returns the ISO-8601 form of the underlying calendar time.
//
// The sentinel fields are kept verbatim, so ParseISO(d.Serialize()) reproduces d,
// including the BCE magnitude and precision.
func (d DateTime) Serialize() string {
	return d.t.Format(serializeLayout)
}

// ParseISO parses an ISO-8601 date/time and decodes it like FromTime.
//
// Accepted forms are RFC 3339 with optional fractional seconds, the same without a zone
// (read as UTC) and a bare date.
//
// Returns errs.ErrParse for malformed input and errs.ErrInvalidDate for well-formed input
// outside the supported calendar range.
func ParseISO(s string) (DateTime, error) {
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FromTime(t)
		}
	}

	return DateTime{}, fmt.Errorf("%w: %q", errs.ErrParse, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.Serialize()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(data []byte) error {
	dt, err := ParseISO(string(data))
	if err != nil {
		return err
	}
	*d = dt

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves d unchanged.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrParse, err)
	}

	return d.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler using little-endian byte order.
func (d DateTime) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, BinarySize), endian.GetLittleEndianEngine()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for data written by MarshalBinary.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	dt, err := DecodeBinary(data, endian.GetLittleEndianEngine())
	if err != nil {
		return err
	}
	*d = dt

	return nil
}

// AppendBinary appends the BinarySize-byte form of d to buf using the given byte order.
func (d DateTime) AppendBinary(buf []byte, engine endian.EndianEngine) []byte {
	_, offset := d.t.Zone()

	buf = engine.AppendUint16(buf, uint16(d.t.Year())) //nolint: gosec
	buf = append(buf,
		byte(d.t.Month()),
		byte(d.t.Day()),
		byte(d.t.Hour()),
		byte(d.t.Minute()),
		byte(d.t.Second()),
		0,
	)
	buf = engine.AppendUint32(buf, uint32(microsecondOf(d.t))) //nolint: gosec
	buf = engine.AppendUint16(buf, uint16(int16(offset/60)))   //nolint: gosec

	return buf
}

// DecodeBinary decodes the first BinarySize bytes of data written by AppendBinary with the
// same byte order.
//
// Returns errs.ErrInvalidBinarySize if data is too short, errs.ErrInvalidDate for
// out-of-range fields or a non-zero reserved byte.
func DecodeBinary(data []byte, engine endian.EndianEngine) (DateTime, error) {
	if len(data) < BinarySize {
		return DateTime{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidBinarySize, len(data), BinarySize)
	}
	if data[7] != 0 {
		return DateTime{}, fmt.Errorf("%w: reserved byte is 0x%02x", errs.ErrInvalidDate, data[7])
	}

	offsetMinutes := int(int16(engine.Uint16(data[12:14]))) //nolint: gosec
	loc := time.UTC
	if offsetMinutes != 0 {
		loc = time.FixedZone("", offsetMinutes*60)
	}

	return New(
		int(engine.Uint16(data[0:2])),
		int(data[2]),
		int(data[3]),
		int(data[4]),
		int(data[5]),
		int(data[6]),
		int(engine.Uint32(data[8:12])),
		loc,
	)
}
