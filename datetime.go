package histdate

import (
	"fmt"
	"time"

	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/internal/options"
)

// DateTime is an immutable historic date/time value.
//
// The zero value reports IsZero and is not a meaningful date; use one of the
// constructors.
type DateTime struct {
	t         time.Time
	era       Era
	precision Precision
	yearBCE   int64
}

// New creates a DateTime from raw calendar fields, decoding any precision or BCE
// encoding they carry.
//
// No consistency check is made between the sentinel fields; only calendar ranges are
// validated. A nil loc means UTC.
//
// Returns errs.ErrInvalidDate if any field is outside its calendar range.
func New(year, month, day, hour, minute, second, microsecond int, loc *time.Location) (DateTime, error) {
	if err := validateFields(year, month, day, hour, minute, second, microsecond); err != nil {
		return DateTime{}, err
	}

	if loc == nil {
		loc = time.UTC
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, microsecond*1000, loc)

	return fromCalendar(t), nil
}

// FromTime creates a DateTime from a calendar time, copying every field.
//
// Sub-microsecond precision is dropped. The clock fields are read as sentinels, so a time
// at 01:xx is season-unknown and a time with non-zero seconds is day-unknown; callers
// with full-precision common era dates should pass midnight.
func FromTime(t time.Time) (DateTime, error) {
	return New(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000, t.Location())
}

// MustNew is like New but panics on error. It is intended for tests and
// package-level variables.
func MustNew(year, month, day, hour, minute, second, microsecond int, loc *time.Location) DateTime {
	dt, err := New(year, month, day, hour, minute, second, microsecond, loc)
	if err != nil {
		panic(err)
	}

	return dt
}

// NewCE creates a common era DateTime for the given year.
//
// Without options the value has year precision. Use WithDay, WithMonth or WithSeason
// to record a finer precision.
//
// Returns errs.ErrInvalidDate if the year or the chosen month/day are out of range.
func NewCE(year int, opts ...Option) (DateTime, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return DateTime{}, err
	}

	var month, day, hour, minute, second int
	switch cfg.precision {
	case PrecisionDay:
		month, day = int(cfg.month), cfg.day
	case PrecisionMonth:
		month, day, second = int(cfg.month), 1, unknownDaySecond
	case PrecisionSeason:
		month, day, minute, second = int(cfg.month), 1, unknownMonthMinute, unknownDaySecond
	default:
		month, day, hour, minute, second = 1, 1, unknownSeasonHour, unknownMonthMinute, unknownDaySecond
	}

	return New(year, month, day, hour, minute, second, 0, cfg.loc)
}

// NewBCE creates a DateTime the given number of years before the common era.
//
// The magnitude is kept to SignificantFigures significant figures, and decoded values
// above BCEPrehistoryFloor are rounded to the nearest hundred. Day precision cannot be
// represented for BCE dates.
//
// Every positive int64 magnitude is encodable; math.MaxInt64 keeps its four leading digits.
//
// Returns errs.ErrInvalidMagnitude for non-positive magnitudes, and
// errs.ErrInvalidPrecision when WithDay is used.
func NewBCE(yearsBCE int64, opts ...Option) (DateTime, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return DateTime{}, err
	}

	second, microsecond, err := encodeMagnitude(yearsBCE)
	if err != nil {
		return DateTime{}, err
	}

	var month, hour, minute int
	switch cfg.precision {
	case PrecisionDay:
		return DateTime{}, fmt.Errorf("%w: BCE dates cannot carry a day", errs.ErrInvalidPrecision)
	case PrecisionMonth:
		month = int(cfg.month)
	case PrecisionSeason:
		month, minute = int(cfg.month), unknownMonthMinute
	default:
		month, hour, minute = 1, unknownSeasonHour, unknownMonthMinute
	}

	return New(BCEThreshold, month, 1, hour, minute, second, microsecond, cfg.loc)
}

// fromCalendar derives the tagged view of an already validated calendar time.
func fromCalendar(t time.Time) DateTime {
	dt := DateTime{t: t}

	if t.Year() <= BCEThreshold && microsecondOf(t) != 0 {
		dt.era = BeforeCommonEra
		dt.yearBCE = decodeMagnitude(t.Second(), microsecondOf(t))
	}

	switch {
	case dt.DayIsKnown() && dt.MonthIsKnown():
		dt.precision = PrecisionDay
	case dt.MonthIsKnown():
		dt.precision = PrecisionMonth
	case dt.SeasonIsKnown():
		dt.precision = PrecisionSeason
	default:
		dt.precision = PrecisionYear
	}

	return dt
}

func validateFields(year, month, day, hour, minute, second, microsecond int) error {
	switch {
	case year < minYear || year > maxYear:
		return fmt.Errorf("%w: year %d out of range [%d, %d]", errs.ErrInvalidDate, year, minYear, maxYear)
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month %d out of range [1, 12]", errs.ErrInvalidDate, month)
	case day < 1 || day > daysIn(time.Month(month), year):
		return fmt.Errorf("%w: day %d out of range for %s %d", errs.ErrInvalidDate, day, time.Month(month), year)
	case hour < 0 || hour > 23:
		return fmt.Errorf("%w: hour %d out of range [0, 23]", errs.ErrInvalidDate, hour)
	case minute < 0 || minute > 59:
		return fmt.Errorf("%w: minute %d out of range [0, 59]", errs.ErrInvalidDate, minute)
	case second < 0 || second > 59:
		return fmt.Errorf("%w: second %d out of range [0, 59]", errs.ErrInvalidDate, second)
	case microsecond < 0 || microsecond > 999999:
		return fmt.Errorf("%w: microsecond %d out of range [0, 999999]", errs.ErrInvalidDate, microsecond)
	}

	return nil
}

func daysIn(m time.Month, year int) int {
	if m == time.February && isLeap(year) {
		return 29
	}

	return daysInMonth[m]
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

func microsecondOf(t time.Time) int {
	return t.Nanosecond() / 1000
}

// config collects the options of NewCE and NewBCE.
type config struct {
	precision Precision
	month     time.Month
	day       int
	loc       *time.Location
}

// Option configures NewCE and NewBCE.
type Option = options.Option[*config]

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{precision: PrecisionYear, loc: time.UTC}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDay records a full calendar date. The day is validated against the month when the
// value is constructed.
func WithDay(month time.Month, day int) Option {
	return options.New(func(c *config) error {
		if month < time.January || month > time.December {
			return fmt.Errorf("%w: month %d out of range [1, 12]", errs.ErrInvalidDate, month)
		}
		c.precision, c.month, c.day = PrecisionDay, month, day

		return nil
	})
}

// WithMonth records the month but not the day.
func WithMonth(month time.Month) Option {
	return options.New(func(c *config) error {
		if month < time.January || month > time.December {
			return fmt.Errorf("%w: month %d out of range [1, 12]", errs.ErrInvalidDate, month)
		}
		c.precision, c.month, c.day = PrecisionMonth, month, 1

		return nil
	})
}

// WithSeason records the season but neither month nor day.
func WithSeason(season Season) Option {
	return options.New(func(c *config) error {
		if season.FirstMonth() == 0 {
			return fmt.Errorf("%w: unknown season %d", errs.ErrInvalidPrecision, season)
		}
		c.precision, c.month, c.day = PrecisionSeason, season.FirstMonth(), 1

		return nil
	})
}

// WithLocation sets the time zone of the stored calendar time. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return options.NoError(func(c *config) {
		if loc != nil {
			c.loc = loc
		}
	})
}
