package histdate

import (
	"cmp"
	"time"
)

// monthsPerYear and daysPerPositionYear scale the fractional part of a timeline position.
// 366 is used for every year so leap years never push a date into the next year.
const (
	monthsPerYear       = 12
	daysPerPositionYear = 366
)

// YearBP returns the number of years before present.
//
// BCE dates add BCEToYBPOffset to their magnitude; common era dates subtract their year
// from refYear. The result is rounded to SignificantFigures significant figures and, between
// 10,000 and 1,000,000, snapped to a multiple of YBPBucketSize.
//
// The two eras use different anchors, so the scale is not continuous at the era boundary:
// with refYear 2026, 1 BCE is 2001 YBP while 1 CE is 2025 YBP.
func (d DateTime) YearBP(refYear int) int64 {
	var years int64
	if d.IsBCE() {
		years = d.yearBCE + BCEToYBPOffset
	} else {
		years = int64(refYear - d.t.Year())
	}

	years = roundSignificant(years, SignificantFigures)
	if years > 10000 && years < 1000000 {
		years = roundToMultiple(years, YBPBucketSize)
	}

	return years
}

// TimelinePosition returns a continuous chronological coordinate for sorting and plotting.
//
// The integer part is the negated YearBP so that later dates have larger positions. A known
// day adds (dayOfYear-1)/366; otherwise a known month adds (month-1)/12. The fraction
// always stays below 1, so a date never overtakes the following year.
func (d DateTime) TimelinePosition(refYear int) float64 {
	pos := -float64(d.YearBP(refYear))

	switch {
	case d.DayIsKnown():
		pos += float64(d.t.YearDay()-1) / daysPerPositionYear
	case d.MonthIsKnown():
		pos += float64(d.t.Month()-time.January) / monthsPerYear
	}

	return pos
}

// Compare returns -1, 0 or +1 depending on whether d is before, at the same position as,
// or after other on the timeline anchored at refYear. Equal positions are ordered by the
// underlying calendar time.
func (d DateTime) Compare(other DateTime, refYear int) int {
	if c := cmp.Compare(d.TimelinePosition(refYear), other.TimelinePosition(refYear)); c != 0 {
		return c
	}

	return d.t.Compare(other.t)
}

// Equal reports whether d and other carry the same calendar fields and zone offset.
func (d DateTime) Equal(other DateTime) bool {
	_, offset := d.t.Zone()
	_, otherOffset := other.t.Zone()

	return offset == otherOffset && d.t.Equal(other.t)
}
