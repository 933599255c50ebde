package weather

import (
	"fmt"
	"testing"
	"time"
)

func hourlySeries(start time.Time, n int) *HourlySeries {
	h := &HourlySeries{}
	for i := 0; i < n; i++ {
		h.Time = append(h.Time, start.Add(time.Duration(i)*time.Hour).Format(hourlyLayout))
		h.Temperature = append(h.Temperature, float64(i))
		h.Precipitation = append(h.Precipitation, float64(i)/10)
		h.WindSpeed = append(h.WindSpeed, float64(i)*2)
		h.WeatherCode = append(h.WeatherCode, i)
	}
	return h
}

func dailySeries(n int) *DailySeries {
	d := &DailySeries{}
	for i := 0; i < n; i++ {
		d.Time = append(d.Time, fmt.Sprintf("2024-06-%02d", i+1))
		d.TemperatureMax = append(d.TemperatureMax, float64(20+i))
		d.TemperatureMin = append(d.TemperatureMin, float64(10+i))
		d.WeatherCode = append(d.WeatherCode, i)
		d.PrecipitationSum = append(d.PrecipitationSum, float64(i))
	}
	return d
}

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load zone %s: %v", name, err)
	}
	return loc
}

func TestWindowStartsAfterCurrentHour(t *testing.T) {
	paris := mustZone(t, "Europe/Paris")
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, paris)
	raw := RawForecast{Hourly: hourlySeries(start, 48)}

	now := time.Date(2024, 6, 1, 10, 25, 0, 0, paris)
	w := Window(raw, now)

	if w.Hourly == nil {
		t.Fatal("expected an hourly window")
	}
	if w.Hourly.StartIndex != 11 {
		t.Fatalf("expected start index 11, got %d", w.Hourly.StartIndex)
	}
	if len(w.Hourly.Time) != HourlySpan {
		t.Fatalf("expected %d entries, got %d", HourlySpan, len(w.Hourly.Time))
	}
	for i := 0; i < HourlySpan; i++ {
		src := 11 + i
		if w.Hourly.Time[i] != raw.Hourly.Time[src] ||
			w.Hourly.Temperature[i] != raw.Hourly.Temperature[src] ||
			w.Hourly.Precipitation[i] != raw.Hourly.Precipitation[src] ||
			w.Hourly.WindSpeed[i] != raw.Hourly.WindSpeed[src] ||
			w.Hourly.WeatherCode[i] != raw.Hourly.WeatherCode[src] {
			t.Fatalf("entry %d not aligned with source index %d", i, src)
		}
	}
	if w.Hourly.WeatherCode[HourlySpan-1] != 34 {
		t.Fatalf("expected last entry to be index 34, got %d", w.Hourly.WeatherCode[HourlySpan-1])
	}
}

func TestWindowFallsBackToStartWithoutMatch(t *testing.T) {
	utc := time.UTC
	raw := RawForecast{Hourly: hourlySeries(time.Date(2024, 6, 1, 0, 0, 0, 0, utc), 5)}

	w := Window(raw, time.Date(2024, 6, 1, 12, 0, 0, 0, utc))
	if w.Hourly.StartIndex != 0 {
		t.Fatalf("expected start index 0, got %d", w.Hourly.StartIndex)
	}
	if len(w.Hourly.Time) != 5 {
		t.Fatalf("expected all 5 entries, got %d", len(w.Hourly.Time))
	}
}

func TestWindowTruncatesNearEndOfSeries(t *testing.T) {
	utc := time.UTC
	raw := RawForecast{Hourly: hourlySeries(time.Date(2024, 6, 1, 0, 0, 0, 0, utc), 30)}

	// 20:00 matches index 20, leaving indices 21..29.
	w := Window(raw, time.Date(2024, 6, 1, 20, 5, 0, 0, utc))
	if w.Hourly.StartIndex != 21 {
		t.Fatalf("expected start index 21, got %d", w.Hourly.StartIndex)
	}
	if len(w.Hourly.Time) != 9 || len(w.Hourly.Temperature) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(w.Hourly.Time))
	}
}

func TestWindowMatchOnLastEntryIsEmpty(t *testing.T) {
	utc := time.UTC
	raw := RawForecast{Hourly: hourlySeries(time.Date(2024, 6, 1, 0, 0, 0, 0, utc), 4)}

	w := Window(raw, time.Date(2024, 6, 1, 3, 0, 0, 0, utc))
	if w.Hourly.StartIndex != 4 || len(w.Hourly.Time) != 0 {
		t.Fatalf("expected empty window at index 4, got %d entries at %d", len(w.Hourly.Time), w.Hourly.StartIndex)
	}
}

func TestWindowUsesPlaceTimeZone(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	raw := RawForecast{Hourly: hourlySeries(time.Date(2024, 6, 1, 0, 0, 0, 0, tokyo), 48)}

	// 08:30 UTC is 17:30 in Tokyo.
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	w := Window(raw, LocalNow(now, "Asia/Tokyo"))
	if w.Hourly.StartIndex != 18 {
		t.Fatalf("expected start index 18, got %d", w.Hourly.StartIndex)
	}
}

func TestWindowDaily(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{7, 5},
		{5, 5},
		{3, 3},
		{0, 0},
	}

	for _, tt := range tests {
		w := Window(RawForecast{Daily: dailySeries(tt.days)}, time.Now())
		if w.Daily == nil {
			t.Fatalf("%d days: expected a daily window", tt.days)
		}
		if len(w.Daily.Time) != tt.want || len(w.Daily.TemperatureMax) != tt.want ||
			len(w.Daily.TemperatureMin) != tt.want || len(w.Daily.WeatherCode) != tt.want ||
			len(w.Daily.PrecipitationSum) != tt.want {
			t.Fatalf("%d days: expected %d entries, got %d", tt.days, tt.want, len(w.Daily.Time))
		}
		if tt.want > 0 && w.Daily.Time[0] != "2024-06-01" {
			t.Fatalf("%d days: expected window to start today, got %s", tt.days, w.Daily.Time[0])
		}
	}
}

func TestWindowAbsentBlocks(t *testing.T) {
	w := Window(RawForecast{}, time.Now())
	if w.Hourly != nil || w.Daily != nil {
		t.Fatalf("expected no windows, got %+v", w)
	}

	w = Window(RawForecast{Daily: dailySeries(2)}, time.Now())
	if w.Hourly != nil {
		t.Fatal("expected hourly window to be absent")
	}
	if w.Daily == nil {
		t.Fatal("expected daily window")
	}
}

func TestWindowDoesNotAliasSource(t *testing.T) {
	raw := RawForecast{Daily: dailySeries(7)}
	w := Window(raw, time.Now())
	w.Daily.TemperatureMax[0] = -99
	if raw.Daily.TemperatureMax[0] == -99 {
		t.Fatal("window shares backing array with the raw series")
	}
}
