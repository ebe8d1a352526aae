package gantt

import "time"

// truncateTo returns the start of the unit containing t. Weeks start on
// Monday. Unknown units fall back to the day.
func truncateTo(unit string, t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch unit {
	case "hour":
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case "week":
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case "month":
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// advance moves t forward by step units.
func advance(unit string, t time.Time, step int) time.Time {
	if step < 1 {
		step = 1
	}
	switch unit {
	case "hour":
		return t.Add(time.Duration(step) * time.Hour)
	case "week":
		return t.AddDate(0, 0, 7*step)
	case "month":
		return t.AddDate(0, step, 0)
	case "year":
		return t.AddDate(step, 0, 0)
	default:
		return t.AddDate(0, 0, step)
	}
}
