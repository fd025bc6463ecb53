// Package histdate provides a date/time value able to represent any instant from the
// Big Bang to the present, with explicit precision and human-readable rendering.
//
// A DateTime is stored as an ordinary calendar time.Time so that it sorts, stores and
// serializes like any other timestamp. Dates before the common era do not fit the calendar
// range of time.Time, so their magnitude is packed into fields that carry no meaning for
// such dates:
//
//   - year is pinned to 1 for BCE dates
//   - hour == 1 means the season is unknown
//   - minute == 1 means the month is unknown
//   - second == 0 means the day is known; for BCE dates it holds the inverse exponent
//   - microsecond holds the inverse 4-significant-figure mantissa of BCE dates (0 for CE)
//
// On top of that encoding every DateTime exposes a tagged view (Era, Precision and the
// decoded BCE magnitude) computed once at construction.
//
// # Basic Usage
//
// Common era dates:
//
//	dt, _ := histdate.NewCE(2021, histdate.WithDay(time.June, 15))
//	fmt.Println(dt) // 15 Jun 2021
//
// Prehistoric dates:
//
//	dt, _ := histdate.NewBCE(50000)
//	fmt.Println(dt.YearString()) // c. 52,000 YBP
//
// Values read from storage:
//
//	dt, err := histdate.ParseISO("0001-01-01T01:01:27.0985Z")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dt.YearString()) // 1,500 BCE
//
// # Reference Year
//
// Years before present for common era dates depend on what "present" is. Methods that
// need it take the reference year explicitly; use CurrentYear for wall-clock behaviour.
package histdate

import "time"

const (
	// BCEThreshold is the largest calendar year that can carry a BCE encoding.
	BCEThreshold = 1

	// BCECircaFloor is the BCE magnitude from which years are displayed as approximate.
	BCECircaFloor = 10000

	// BCEPrehistoryFloor is the BCE magnitude above which decoded years are rounded to
	// the nearest hundred.
	BCEPrehistoryFloor = 10000

	// BCEPrettifyFloor is the BCE magnitude from which thousands separators are used.
	BCEPrettifyFloor = 1000

	// YBPLowerLimit is the smallest years-before-present value displayed in YBP notation.
	YBPLowerLimit = 29999

	// YBPPresent is the baseline year of the years-before-present scale.
	YBPPresent = 1950

	// BCEYBPCrossover is the BCE magnitude above which dates are rendered as YBP.
	BCEYBPCrossover = YBPLowerLimit - YBPPresent

	// BCEToYBPOffset converts a BCE magnitude to years before present.
	BCEToYBPOffset = 2000

	// SignificantFigures is the precision kept for BCE magnitudes and YBP values.
	SignificantFigures = 4

	// YBPBucketSize is the step YBP values between 10,000 and 1,000,000 are snapped to.
	YBPBucketSize = 500
)

const (
	exponentInversionBasis = 30
	decimalInversionBasis  = 100000

	minYear = 1
	maxYear = 9999

	// sentinel field values
	unknownSeasonHour  = 1
	unknownMonthMinute = 1
	unknownDaySecond   = 1
)

// CurrentYear returns the wall-clock year, for callers that want years before present
// relative to today.
func CurrentYear() int {
	return time.Now().Year()
}
