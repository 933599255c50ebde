package weather

import (
	"time"
)

const (
	// HourlySpan is the number of hourly entries kept after "now".
	HourlySpan = 24
	// DailySpan is the number of days kept starting from today.
	DailySpan = 5

	hourlyLayout = "2006-01-02T15:04"
	dailyLayout  = "2006-01-02"
)

// Window slices a raw forecast into the next-24-hours and next-days windows.
// nowLocal must already be expressed in the place's time zone; hourly
// timestamps are interpreted in that same zone.
func Window(raw RawForecast, nowLocal time.Time) ForecastWindow {
	var w ForecastWindow

	if raw.Hourly != nil {
		start := HourlyStartIndex(raw.Hourly.Time, nowLocal)
		w.Hourly = &HourlyWindow{
			StartIndex: start,
			HourlySeries: HourlySeries{
				Time:          span(raw.Hourly.Time, start, HourlySpan),
				Temperature:   span(raw.Hourly.Temperature, start, HourlySpan),
				Precipitation: span(raw.Hourly.Precipitation, start, HourlySpan),
				WindSpeed:     span(raw.Hourly.WindSpeed, start, HourlySpan),
				WeatherCode:   span(raw.Hourly.WeatherCode, start, HourlySpan),
			},
		}
	}

	if raw.Daily != nil {
		w.Daily = &DailyWindow{
			DailySeries: DailySeries{
				Time:             span(raw.Daily.Time, 0, DailySpan),
				TemperatureMax:   span(raw.Daily.TemperatureMax, 0, DailySpan),
				TemperatureMin:   span(raw.Daily.TemperatureMin, 0, DailySpan),
				WeatherCode:      span(raw.Daily.WeatherCode, 0, DailySpan),
				PrecipitationSum: span(raw.Daily.PrecipitationSum, 0, DailySpan),
			},
		}
	}

	return w
}

// HourlyStartIndex returns the index right after the first timestamp whose
// hour of day equals nowLocal's, or 0 when no timestamp matches.
func HourlyStartIndex(times []string, nowLocal time.Time) int {
	hour := nowLocal.Hour()
	loc := nowLocal.Location()

	for i, s := range times {
		ts, err := parseLocal(s, loc)
		if err != nil {
			continue
		}
		if ts.Hour() == hour {
			return i + 1
		}
	}
	return 0
}

func parseLocal(s string, loc *time.Location) (time.Time, error) {
	ts, err := time.ParseInLocation(hourlyLayout, s, loc)
	if err == nil {
		return ts, nil
	}
	ts, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return ts.In(loc), nil
}

// span returns a copy of s[start:start+n], truncated to what is available.
func span[T any](s []T, start, n int) []T {
	if start >= len(s) {
		return []T{}
	}
	end := start + n
	if end > len(s) {
		end = len(s)
	}
	out := make([]T, end-start)
	copy(out, s[start:end])
	return out
}
