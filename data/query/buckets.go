package query

import (
	"time"
)

// Date buckets accepted by event discovery
const (
	DateBucketToday    = "today"
	DateBucketTomorrow = "tomorrow"
	DateBucketWeekend  = "weekend"
	DateBucketNextWeek = "nextweek"
)

// Time-of-day buckets accepted by event discovery
const (
	TimeBucketMorning   = "morning"
	TimeBucketAfternoon = "afternoon"
	TimeBucketEvening   = "evening"
	TimeBucketNight     = "night"
)

// DateBucketRange resolves a named date bucket into a half-open [start, end)
// window relative to now. Unknown buckets return ok=false.
//
// The weekend window runs Saturday 00:00 through Monday 00:00 of the current
// week. When now is a Sunday the Saturday offset points at next week's
// Saturday while the Sunday offset points at today, producing an inverted
// window that matches nothing.
func DateBucketRange(bucket string, now time.Time) (time.Time, time.Time, bool) {
	sod := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	wd := int(now.Weekday())

	switch bucket {
	case DateBucketToday:
		return sod, sod.AddDate(0, 0, 1), true
	case DateBucketTomorrow:
		start := sod.AddDate(0, 0, 1)
		return start, start.AddDate(0, 0, 1), true
	case DateBucketWeekend:
		toSat := (6 - wd + 7) % 7
		toSun := (7 - wd + 7) % 7

		start := sod.AddDate(0, 0, toSat)
		end := sod.AddDate(0, 0, toSun+1)

		return start, end, true
	case DateBucketNextWeek:
		toMon := (8 - wd) % 7
		if toMon == 0 {
			toMon = 7
		}

		start := sod.AddDate(0, 0, toMon)

		return start, start.AddDate(0, 0, 7), true
	}

	return time.Time{}, time.Time{}, false
}

// TimeOfDayHours resolves a named time-of-day bucket into a half-open
// [startHour, endHour) range. Hours 0-4 belong to no bucket.
func TimeOfDayHours(bucket string) (int, int, bool) {
	switch bucket {
	case TimeBucketMorning:
		return 5, 12, true
	case TimeBucketAfternoon:
		return 12, 17, true
	case TimeBucketEvening:
		return 17, 21, true
	case TimeBucketNight:
		return 21, 24, true
	}

	return 0, 0, false
}
