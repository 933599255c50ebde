package weather

import (
	"context"
)

// GeocodingClient resolves free text to raw place candidates.
type GeocodingClient interface {
	Search(ctx context.Context, name, language string) (GeocodeResponse, error)
}

// WeatherClient fetches the raw forecast for a coordinate in a given time zone.
type WeatherClient interface {
	Forecast(ctx context.Context, latitude, longitude float64, timezone string) (RawForecast, error)
}
