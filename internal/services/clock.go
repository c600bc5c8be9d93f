package services

import "time"

// timestamp returns the current time in UTC at the precision Postgres stores,
// so records read back from either store match what create returned.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

func orNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
