package main

import (
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/modularhistory/histdate"
)

// dateInput describes a date the way users write it in timeline files and flags.
// Exactly one of Date, Year and BCE must be set.
type dateInput struct {
	Key    string `yaml:"key"`
	Date   string `yaml:"date"`
	Year   int    `yaml:"year"`
	BCE    int64  `yaml:"bce"`
	Month  int    `yaml:"month"`
	Day    int    `yaml:"day"`
	Season string `yaml:"season"`
}

// DateTime builds the DateTime described by s.
func (s dateInput) DateTime() (histdate.DateTime, error) {
	set := 0
	for _, ok := range []bool{s.Date != "", s.Year != 0, s.BCE != 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return histdate.DateTime{}, eris.New("exactly one of date, year and bce must be set")
	}

	if s.Date != "" {
		if s.Month != 0 || s.Day != 0 || s.Season != "" {
			return histdate.DateTime{}, eris.New("month, day and season cannot be combined with date")
		}

		dt, err := histdate.ParseISO(s.Date)
		if err != nil {
			return histdate.DateTime{}, eris.Wrap(err, "parse date")
		}

		return dt, nil
	}

	opts, err := s.options()
	if err != nil {
		return histdate.DateTime{}, err
	}

	var dt histdate.DateTime
	if s.BCE != 0 {
		dt, err = histdate.NewBCE(s.BCE, opts...)
	} else {
		dt, err = histdate.NewCE(s.Year, opts...)
	}
	if err != nil {
		return histdate.DateTime{}, eris.Wrap(err, "build date")
	}

	return dt, nil
}

func (s dateInput) options() ([]histdate.Option, error) {
	switch {
	case s.Day != 0:
		if s.Month == 0 {
			return nil, eris.New("day requires month")
		}

		return []histdate.Option{histdate.WithDay(time.Month(s.Month), s.Day)}, nil
	case s.Month != 0:
		return []histdate.Option{histdate.WithMonth(time.Month(s.Month))}, nil
	case s.Season != "":
		season := histdate.ParseSeason(s.Season)
		if season == histdate.SeasonUnknown {
			return nil, eris.Errorf("unknown season %q", s.Season)
		}

		return []histdate.Option{histdate.WithSeason(season)}, nil
	default:
		return nil, nil
	}
}

// parseTimelineFile parses a YAML list of keyed dates.
func parseTimelineFile(data []byte) ([]dateInput, error) {
	var inputs []dateInput
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, eris.Wrap(err, "parse timeline file")
	}

	for i, in := range inputs {
		if in.Key == "" {
			return nil, eris.Errorf("entry %d: key is required", i)
		}
	}

	return inputs, nil
}
