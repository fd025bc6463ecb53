package histdate

import "time"

// Time returns the underlying calendar time, sentinel fields included.
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero value.
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Era returns CommonEra or BeforeCommonEra.
func (d DateTime) Era() Era {
	return d.era
}

// Precision returns the finest unit of the date that is known.
func (d DateTime) Precision() Precision {
	return d.precision
}

// Year returns the calendar year. It is BCEThreshold for BCE dates; use YearBCE for the
// magnitude of those.
func (d DateTime) Year() int {
	return d.t.Year()
}

// Month returns the calendar month, meaningful only when MonthIsKnown.
func (d DateTime) Month() time.Month {
	return d.t.Month()
}

// Day returns the day of the month, meaningful only when DayIsKnown.
func (d DateTime) Day() int {
	return d.t.Day()
}

// IsBCE reports whether d lies before the common era.
func (d DateTime) IsBCE() bool {
	return d.era == BeforeCommonEra
}

// IsCirca reports whether d is a BCE date old enough to be displayed as approximate.
func (d DateTime) IsCirca() bool {
	return d.IsBCE() && d.yearBCE >= BCECircaFloor
}

// SeasonIsKnown reports whether the season of d can be displayed.
func (d DateTime) SeasonIsKnown() bool {
	return d.t.Hour() != unknownSeasonHour
}

// MonthIsKnown reports whether the month of d can be displayed.
func (d DateTime) MonthIsKnown() bool {
	return d.t.Minute() != unknownMonthMinute
}

// DayIsKnown reports whether the day of the month of d can be displayed.
func (d DateTime) DayIsKnown() bool {
	return d.t.Second() == 0
}

// YearBCE returns the number of years before the common era and true, or 0 and false
// for common era dates.
func (d DateTime) YearBCE() (int64, bool) {
	if !d.IsBCE() {
		return 0, false
	}

	return d.yearBCE, true
}

// UseYBP reports whether d is old enough to be displayed in years before present.
func (d DateTime) UseYBP() bool {
	return d.IsBCE() && d.yearBCE > BCEYBPCrossover
}

// Season returns the season derived from the month, or SeasonUnknown.
func (d DateTime) Season() Season {
	if !d.SeasonIsKnown() {
		return SeasonUnknown
	}

	return seasonOf(d.t.Month())
}
