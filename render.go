package histdate

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	circaPrefix = "c. "

	// YBP values above these are abbreviated or given thousands separators.
	ybpWordsFloor = 1000000
	ybpCommaFloor = 10000
)

var largeNumberWords = []struct {
	size float64
	word string
}{
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
}

// String returns the human-readable label of d, e.g. "15 Jun 2021", "June 2021",
// "Spring 2021", "1,500 BCE" or "c. 52,000 YBP".
func (d DateTime) String() string {
	year := d.YearString()

	switch d.precision {
	case PrecisionDay:
		return fmt.Sprintf("%d %s %s", d.t.Day(), d.t.Month().String()[:3], year)
	case PrecisionMonth:
		return d.t.Month().String() + " " + year
	case PrecisionSeason:
		return cases.Title(language.English).String(d.Season().String()) + " " + year
	default:
		return year
	}
}

// YearString returns the year part of the label.
func (d DateTime) YearString() string {
	if !d.IsBCE() {
		return strconv.Itoa(d.t.Year())
	}

	if d.UseYBP() {
		// the reference year only affects common era dates
		return circaPrefix + humanizeYBP(d.YearBP(0)) + " YBP"
	}

	var year string
	if d.yearBCE >= BCEPrettifyFloor {
		year = humanize.Comma(d.yearBCE)
	} else {
		year = strconv.FormatInt(d.yearBCE, 10)
	}

	if d.IsCirca() {
		year = circaPrefix + year
	}

	return year + " BCE"
}

// humanizeYBP abbreviates very large values to "13.8 billion" style words and separates
// thousands in large ones.
func humanizeYBP(years int64) string {
	switch {
	case years > ybpWordsFloor:
		return intWord(years)
	case years > ybpCommaFloor:
		return humanize.Comma(years)
	default:
		return strconv.FormatInt(years, 10)
	}
}

func intWord(v int64) string {
	f := float64(v)
	for _, unit := range largeNumberWords {
		if f >= unit.size {
			return humanize.FtoaWithDigits(f/unit.size, 1) + " " + unit.word
		}
	}

	return humanize.Comma(v)
}
