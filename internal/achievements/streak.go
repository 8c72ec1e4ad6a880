package achievements

import "time"

// CurrentStreak counts consecutive UTC calendar days ending on asOf's day
// that contain at least one of the given session times. Times after asOf's
// day are ignored.
func CurrentStreak(times []time.Time, asOf time.Time) int {
	days := make(map[time.Time]bool, len(times))
	for _, t := range times {
		days[truncateDay(t)] = true
	}

	streak := 0
	for day := truncateDay(asOf); days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
