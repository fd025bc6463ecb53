package histdate

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestYearBP(t *testing.T) {
	tests := []struct {
		name string
		dt   DateTime
		want int64
	}{
		{"common era", MustNew(1900, 1, 1, 0, 0, 0, 0, nil), 126},
		{"future", MustNew(2030, 1, 1, 0, 0, 0, 0, nil), -4},
		{"year one", MustNew(1, 1, 1, 0, 0, 0, 0, nil), 2025},
		{"bce", mustBCE(t, 1500), 3500},
		{"bce bucketed", mustBCE(t, 12000), 14000},
		{"bce bucket snap", mustBCE(t, 10300), 12500},
		{"bce above buckets", mustBCE(t, 2_000_000), 2_002_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.dt.YearBP(testRefYear))
		})
	}
}

func TestYearBPReferenceYear(t *testing.T) {
	dt := MustNew(2000, 1, 1, 0, 0, 0, 0, nil)
	require.Equal(t, int64(26), dt.YearBP(2026))
	require.Equal(t, int64(27), dt.YearBP(2027))

	bce := mustBCE(t, 1500)
	require.Equal(t, bce.YearBP(2026), bce.YearBP(3000))
}

func TestRoundingHelpers(t *testing.T) {
	require.Equal(t, int64(12350), roundSignificant(12345, 4))
	require.Equal(t, int64(-12350), roundSignificant(-12345, 4))
	require.Equal(t, int64(999), roundSignificant(999, 4))
	require.Equal(t, int64(12500), roundToMultiple(12300, 500))
	require.Equal(t, int64(12000), roundToMultiple(12200, 500))
	require.Equal(t, int64(124), roundHalfEven(12350, 100))
	require.Equal(t, int64(122), roundHalfEven(12250, 100))
	require.Equal(t, 1, numDigits(0))
	require.Equal(t, 11, numDigits(13_800_000_000))
}

func TestTimelinePosition(t *testing.T) {
	y1900 := MustNew(1900, 1, 1, 0, 0, 0, 0, nil)
	y2000 := MustNew(2000, 1, 1, 0, 0, 0, 0, nil)
	require.Greater(t, y2000.TimelinePosition(testRefYear), y1900.TimelinePosition(testRefYear))
	require.InDelta(t, -126.0, y1900.TimelinePosition(testRefYear), 1e-9)

	june := MustNew(2000, 6, 1, 0, 0, 1, 0, nil)
	require.InDelta(t, -26.0+5.0/12, june.TimelinePosition(testRefYear), 1e-9)

	day := MustNew(2000, 3, 1, 0, 0, 0, 0, nil)
	require.InDelta(t, -26.0+60.0/366, day.TimelinePosition(testRefYear), 1e-9)

	season := MustNew(2000, 7, 1, 0, 1, 1, 0, nil)
	require.InDelta(t, -26.0, season.TimelinePosition(testRefYear), 1e-9)
}

func TestTimelinePositionMonotonic(t *testing.T) {
	var prev DateTime
	start := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 1995; d = d.AddDate(0, 0, 1) {
		dt, err := FromTime(d)
		require.NoError(t, err)
		if !prev.IsZero() {
			require.Less(t, prev.TimelinePosition(testRefYear), dt.TimelinePosition(testRefYear), d.String())
		}
		prev = dt
	}

	var prevBCE DateTime
	for _, years := range []int64{13_800_000_000, 65_000_000, 50000, 12000, 1500, 44, 1} {
		dt := mustBCE(t, years)
		if !prevBCE.IsZero() {
			require.Less(t, prevBCE.TimelinePosition(testRefYear), dt.TimelinePosition(testRefYear))
		}
		prevBCE = dt
	}
}

func TestCompare(t *testing.T) {
	dates := []DateTime{
		MustNew(2021, 6, 15, 0, 0, 0, 0, nil),
		mustBCE(t, 50000),
		MustNew(1066, 10, 14, 0, 0, 0, 0, nil),
		mustBCE(t, 1500),
		MustNew(1066, 1, 1, 1, 1, 1, 0, nil),
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Compare(dates[j], testRefYear) < 0
	})

	got := make([]string, len(dates))
	for i, dt := range dates {
		got[i] = dt.String()
	}
	require.Equal(t, []string{"c. 52,000 YBP", "1,500 BCE", "1066", "14 Oct 1066", "15 Jun 2021"}, got)

	require.Zero(t, dates[0].Compare(dates[0], testRefYear))
}

func TestCompareAcrossEraBoundary(t *testing.T) {
	bce := mustBCE(t, 1)
	ce := MustNew(1, 1, 1, 1, 1, 1, 0, nil)

	// BCE years are offset from 2000 while CE years count back from the reference year
	require.InDelta(t, -2001.0, bce.TimelinePosition(testRefYear), 1e-9)
	require.InDelta(t, -2025.0, ce.TimelinePosition(testRefYear), 1e-9)
	require.Equal(t, 1, bce.Compare(ce, testRefYear))

	require.Equal(t, -1, mustBCE(t, 30).Compare(ce, testRefYear))
}

func TestEqual(t *testing.T) {
	a := MustNew(2021, 6, 15, 0, 0, 0, 0, nil)
	b := MustNew(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	c := MustNew(2021, 6, 15, 0, 0, 0, 0, time.FixedZone("X", 3600))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func mustBCE(t *testing.T, years int64) DateTime {
	t.Helper()
	dt, err := NewBCE(years)
	require.NoError(t, err)

	return dt
}
