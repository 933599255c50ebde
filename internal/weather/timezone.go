package weather

import (
	"time"
	// Zone data is embedded so place time zones resolve on hosts without zoneinfo.
	_ "time/tzdata"
)

// LoadZone resolves an IANA zone name. Unknown or empty names fall back to UTC
// and report ok=false.
func LoadZone(name string) (loc *time.Location, ok bool) {
	if name == "" {
		return time.UTC, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}
	return loc, true
}

// LocalNow expresses now in the named zone.
func LocalNow(now time.Time, zone string) time.Time {
	loc, _ := LoadZone(zone)
	return now.In(loc)
}
