package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeWeather struct {
	raw      RawForecast
	err      error
	timezone string
}

func (f *fakeWeather) Forecast(_ context.Context, _, _ float64, timezone string) (RawForecast, error) {
	f.timezone = timezone
	return f.raw, f.err
}

func TestServiceForecastWindowsInPlaceZone(t *testing.T) {
	paris := mustZone(t, "Europe/Paris")
	fw := &fakeWeather{raw: RawForecast{
		Timezone: "Europe/Paris",
		Current:  &CurrentWeather{Temperature: 21.5, WeatherCode: 61},
		Hourly:   hourlySeries(time.Date(2024, 6, 1, 0, 0, 0, 0, paris), 48),
		Daily:    dailySeries(7),
	}}
	svc := NewService(NewResolver(&fakeGeocoder{}, "fr", ""), fw)

	place := PlaceSuggestion{ID: "Paris-FR", Name: "Paris", Latitude: 48.85, Longitude: 2.35, Timezone: "Europe/Paris"}
	// 08:10 UTC is 10:10 in Paris (CEST).
	now := time.Date(2024, 6, 1, 8, 10, 0, 0, time.UTC)

	report, err := svc.Forecast(context.Background(), place, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.timezone != "Europe/Paris" {
		t.Fatalf("expected timezone forwarded, got %q", fw.timezone)
	}
	if report.Window.Hourly.StartIndex != 11 {
		t.Fatalf("expected start index 11, got %d", report.Window.Hourly.StartIndex)
	}
	if len(report.Window.Daily.Time) != 5 {
		t.Fatalf("expected 5 days, got %d", len(report.Window.Daily.Time))
	}
	if report.Theme != ThemeRain {
		t.Fatalf("expected rain theme, got %s", report.Theme)
	}
	if report.Place.Name != "Paris" || report.Timezone != "Europe/Paris" {
		t.Fatalf("unexpected report header: %+v", report)
	}

	if report.LocalTime != "10:10" {
		t.Fatalf("expected Paris clock 10:10, got %q", report.LocalTime)
	}
	if len(report.HourLabels) != HourlySpan || report.HourLabels[0] != "11:00" || report.HourLabels[23] != "10:00" {
		t.Fatalf("unexpected hour labels: %v", report.HourLabels)
	}
	if len(report.DayLabels) != DailySpan || report.DayLabels[0] != "samedi 1 juin" {
		t.Fatalf("unexpected day labels: %v", report.DayLabels)
	}
}

func TestServiceForecastFallsBackToPayloadZone(t *testing.T) {
	fw := &fakeWeather{raw: RawForecast{Timezone: "Asia/Tokyo"}}
	svc := NewService(NewResolver(&fakeGeocoder{}, "fr", ""), fw)

	report, err := svc.Forecast(context.Background(), PlaceSuggestion{Name: "X"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Timezone != "Asia/Tokyo" {
		t.Fatalf("expected Asia/Tokyo, got %s", report.Timezone)
	}
	if report.Theme != ThemeDefault {
		t.Fatalf("expected default theme without current weather, got %s", report.Theme)
	}
	if report.HourLabels != nil || report.DayLabels != nil {
		t.Fatalf("expected no labels without series, got %v / %v", report.HourLabels, report.DayLabels)
	}
}

func TestServiceForecastPropagatesErrors(t *testing.T) {
	fw := &fakeWeather{err: errors.New("boom")}
	svc := NewService(NewResolver(&fakeGeocoder{}, "fr", ""), fw)

	if _, err := svc.Forecast(context.Background(), PlaceSuggestion{}, time.Now()); err == nil {
		t.Fatal("expected error")
	}
}

func TestServiceSuggest(t *testing.T) {
	geo := &fakeGeocoder{resp: GeocodeResponse{Results: []RawGeocodeResult{
		place("Paris", "France", "FR", 48.85, 2.35),
	}}}
	svc := NewService(NewResolver(geo, "fr", ""), &fakeWeather{})

	list, err := svc.Suggest(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Label != "Paris, France" {
		t.Fatalf("unexpected suggestions: %+v", list)
	}
}
