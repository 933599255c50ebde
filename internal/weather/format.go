package weather

import (
	"strings"
	"time"

	"github.com/i474232898/weather-lookup/internal/common"
)

var (
	frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	frenchMonths   = [...]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// FilterPostcodes drops CEDEX business codes.
func FilterPostcodes(postcodes []string) []string {
	out := make([]string, 0, len(postcodes))
	for _, pc := range postcodes {
		if common.HasAny(pc, "CEDEX") {
			continue
		}
		out = append(out, pc)
	}
	return out
}

// FormatPostcodes shows the first code, with an ellipsis when there are more.
func FormatPostcodes(postcodes []string) string {
	switch len(postcodes) {
	case 0:
		return ""
	case 1:
		return postcodes[0]
	default:
		return postcodes[0] + "..."
	}
}

// FormatSuggestion builds the "name, postcode, admin2, admin1, country" label,
// skipping empty parts.
func FormatSuggestion(s PlaceSuggestion) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{
		s.Name,
		FormatPostcodes(FilterPostcodes(s.Postcodes)),
		s.Admin2,
		s.Admin1,
		s.Country,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatClock renders t as HH:MM in the named zone.
func FormatClock(t time.Time, zone string) string {
	return LocalNow(t, zone).Format("15:04")
}

// FormatHour renders an hourly forecast timestamp as HH:MM. The timestamp is
// already local to the place, so it is not shifted.
func FormatHour(ts string) string {
	t, err := time.Parse(hourlyLayout, ts)
	if err != nil {
		return ts
	}
	return t.Format("15:04")
}

// FormatDay renders a daily forecast date as e.g. "lundi 3 juin".
func FormatDay(date string) string {
	t, err := time.Parse(dailyLayout, date)
	if err != nil {
		return date
	}
	return frenchWeekdays[t.Weekday()] + " " + t.Format("2") + " " + frenchMonths[t.Month()-1]
}
