package histdate

import "time"

type (
	Era       uint8
	Precision uint8
	Season    uint8
)

const (
	CommonEra       Era = 0x0 // CommonEra covers calendar years 1 through 9999.
	BeforeCommonEra Era = 0x1 // BeforeCommonEra covers dates before year 1, down to the Big Bang.
)

const (
	PrecisionYear   Precision = 0x0 // PrecisionYear means only the year is known.
	PrecisionSeason Precision = 0x1 // PrecisionSeason means the season and year are known.
	PrecisionMonth  Precision = 0x2 // PrecisionMonth means the month and year are known.
	PrecisionDay    Precision = 0x3 // PrecisionDay means the full calendar date is known.
)

const (
	SeasonUnknown Season = 0x0
	Winter        Season = 0x1
	Spring        Season = 0x2
	Summer        Season = 0x3
	Fall          Season = 0x4
)

func (e Era) String() string {
	switch e {
	case CommonEra:
		return "CE"
	case BeforeCommonEra:
		return "BCE"
	default:
		return "Unknown"
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "Year"
	case PrecisionSeason:
		return "Season"
	case PrecisionMonth:
		return "Month"
	case PrecisionDay:
		return "Day"
	default:
		return "Unknown"
	}
}

func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Fall:
		return "fall"
	default:
		return ""
	}
}

// FirstMonth returns the month a season starts in, or 0 for SeasonUnknown.
func (s Season) FirstMonth() time.Month {
	if s < Winter || s > Fall {
		return 0
	}

	return time.Month(int(s-Winter)*3 + 1)
}

// ParseSeason returns the season named by s, or SeasonUnknown.
func ParseSeason(s string) Season {
	switch s {
	case "winter", "Winter":
		return Winter
	case "spring", "Spring":
		return Spring
	case "summer", "Summer":
		return Summer
	case "fall", "Fall", "autumn", "Autumn":
		return Fall
	default:
		return SeasonUnknown
	}
}

// seasonOf maps calendar quarters to seasons.
func seasonOf(m time.Month) Season {
	if m < time.January || m > time.December {
		return SeasonUnknown
	}

	return Winter + Season((m-1)/3)
}
