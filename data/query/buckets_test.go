package query

import (
	"testing"
	"time"

	"github.com/meetmux/api/internal/testutil"
)

// Wednesday 2024-01-10 15:04 UTC
var midweek = time.Date(2024, 1, 10, 15, 4, 0, 0, time.UTC)

func TestDateBucketToday(t *testing.T) {
	t.Parallel()

	start, end, ok := DateBucketRange(DateBucketToday, midweek)

	testutil.Assert(t, true, ok, "bucket resolves")
	testutil.Assert(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), start, "start of day")
	testutil.Assert(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), end, "end of day")
}

func TestDateBucketTomorrow(t *testing.T) {
	t.Parallel()

	start, end, ok := DateBucketRange(DateBucketTomorrow, midweek)

	testutil.Assert(t, true, ok, "bucket resolves")
	testutil.Assert(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), start, "start")
	testutil.Assert(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), end, "end")
}

func TestDateBucketWeekend(t *testing.T) {
	t.Parallel()

	// from Wednesday: upcoming Saturday through Monday
	start, end, ok := DateBucketRange(DateBucketWeekend, midweek)

	testutil.Assert(t, true, ok, "bucket resolves")
	testutil.Assert(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), start, "saturday")
	testutil.Assert(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), end, "monday")

	// from Saturday: the window covers the ongoing weekend
	sat := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	start, end, _ = DateBucketRange(DateBucketWeekend, sat)
	testutil.Assert(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), start, "saturday start")
	testutil.Assert(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), end, "monday end")
}

func TestDateBucketWeekendOnSunday(t *testing.T) {
	t.Parallel()

	// on Sunday the Saturday offset points a week ahead, so the window is
	// inverted and matches no events
	sun := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	start, end, ok := DateBucketRange(DateBucketWeekend, sun)

	testutil.Assert(t, true, ok, "bucket resolves")
	testutil.Assert(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), start, "next saturday")
	testutil.Assert(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), end, "tomorrow")
	testutil.Assert(t, true, start.After(end), "inverted window")
}

func TestDateBucketNextWeek(t *testing.T) {
	t.Parallel()

	start, end, ok := DateBucketRange(DateBucketNextWeek, midweek)

	testutil.Assert(t, true, ok, "bucket resolves")
	testutil.Assert(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start, "next monday")
	testutil.Assert(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), end, "monday after")

	// from Monday the bucket points at the following week, not today
	mon := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	start, _, _ = DateBucketRange(DateBucketNextWeek, mon)
	testutil.Assert(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), start, "monday resolves a week out")
}

func TestDateBucketUnknown(t *testing.T) {
	t.Parallel()

	_, _, ok := DateBucketRange("someday", midweek)
	testutil.Assert(t, false, ok, "unknown bucket rejected")
}

func TestTimeOfDayHours(t *testing.T) {
	t.Parallel()

	s, e, ok := TimeOfDayHours(TimeBucketMorning)
	testutil.Assert(t, true, ok, "morning resolves")
	testutil.Assert(t, 5, s, "morning start")
	testutil.Assert(t, 12, e, "morning end")

	s, e, ok = TimeOfDayHours(TimeBucketNight)
	testutil.Assert(t, true, ok, "night resolves")
	testutil.Assert(t, 21, s, "night start")
	testutil.Assert(t, 24, e, "night end")

	_, _, ok = TimeOfDayHours("smallhours")
	testutil.Assert(t, false, ok, "hours 0-4 belong to no bucket")
}
