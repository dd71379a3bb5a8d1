package timezone

import "time"

// Business hours are interpreted as wall-clock time in the configured
// business timezone. UTC is the default when nothing is configured.
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(time.UTC)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
