package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Service binds the resolver and the windower to their clients.
type Service struct {
	resolver *Resolver
	forecast WeatherClient
}

// NewService creates a new Service.
func NewService(resolver *Resolver, forecast WeatherClient) *Service {
	return &Service{
		resolver: resolver,
		forecast: forecast,
	}
}

// Suggest resolves a query into suggestions.
func (s *Service) Suggest(ctx context.Context, query string) (SuggestionList, error) {
	list, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		if !errors.Is(err, ErrEmptyQuery) {
			log.Printf("ERROR: suggestion lookup for %q failed: %v", query, err)
		}
		return nil, err
	}
	log.Printf("DEBUG: %d suggestions for %q", len(list), query)
	return list, nil
}

// Forecast fetches the forecast for a place once and windows it relative to now,
// evaluated in the place's time zone.
func (s *Service) Forecast(ctx context.Context, place PlaceSuggestion, now time.Time) (Report, error) {
	if s.forecast == nil {
		return Report{}, fmt.Errorf("%w: no weather client configured", ErrTransport)
	}

	raw, err := s.forecast.Forecast(ctx, place.Latitude, place.Longitude, place.Timezone)
	if err != nil {
		log.Printf("ERROR: forecast for %s failed: %v", place.ID, err)
		return Report{}, err
	}

	zone := place.Timezone
	if zone == "" {
		zone = raw.Timezone
	}
	if _, ok := LoadZone(zone); !ok {
		log.Printf("INFO: unknown time zone %q for %s, using UTC", zone, place.ID)
		zone = "UTC"
	}

	report := Report{
		Place:        place,
		Timezone:     zone,
		Current:      raw.Current,
		CurrentUnits: raw.CurrentUnits,
		Window:       Window(raw, LocalNow(now, zone)),
		Theme:        ThemeDefault,
		LocalTime:    FormatClock(now, zone),
	}
	if raw.Current != nil {
		report.Theme = ThemeFor(raw.Current.WeatherCode)
	}
	if h := report.Window.Hourly; h != nil {
		report.HourLabels = labels(h.Time, FormatHour)
	}
	if d := report.Window.Daily; d != nil {
		report.DayLabels = labels(d.Time, FormatDay)
	}
	return report, nil
}

func labels(times []string, format func(string) string) []string {
	out := make([]string, len(times))
	for i, ts := range times {
		out[i] = format(ts)
	}
	return out
}
