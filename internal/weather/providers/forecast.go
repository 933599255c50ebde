package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

const (
	hourlyFields = "temperature_2m,precipitation,wind_speed_10m,weathercode"
	dailyFields  = "temperature_2m_max,temperature_2m_min,weathercode,precipitation_sum"
)

// OpenMeteoForecast implements weather.WeatherClient for Open-Meteo.
type OpenMeteoForecast struct {
	endpoint
}

func NewOpenMeteoForecast(baseURL string, cfg HTTPClientConfig) *OpenMeteoForecast {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &OpenMeteoForecast{endpoint: newEndpoint("openmeteo-forecast", baseURL, cfg)}
}

func (p *OpenMeteoForecast) Forecast(ctx context.Context, latitude, longitude float64, timezone string) (weather.RawForecast, error) {
	if timezone == "" {
		timezone = "auto"
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
		values.Set("hourly", hourlyFields)
		values.Set("daily", dailyFields)
		values.Set("current_weather", "true")
		values.Set("timezone", timezone)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := p.do(ctx, buildRequest)
	if err != nil {
		return weather.RawForecast{}, err
	}
	defer resp.Body.Close()

	var payload weather.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawForecast{}, fmt.Errorf("%w: decode forecast: %v", weather.ErrMalformedResponse, err)
	}

	if err := checkAligned(payload); err != nil {
		return weather.RawForecast{}, err
	}

	return payload, nil
}

// checkAligned verifies every series has as many entries as its time index.
func checkAligned(f weather.RawForecast) error {
	if h := f.Hourly; h != nil {
		n := len(h.Time)
		if len(h.Temperature) != n || len(h.Precipitation) != n || len(h.WindSpeed) != n || len(h.WeatherCode) != n {
			return fmt.Errorf("%w: hourly series lengths differ from %d timestamps", weather.ErrMalformedResponse, n)
		}
	}
	if d := f.Daily; d != nil {
		n := len(d.Time)
		if len(d.TemperatureMax) != n || len(d.TemperatureMin) != n || len(d.WeatherCode) != n || len(d.PrecipitationSum) != n {
			return fmt.Errorf("%w: daily series lengths differ from %d dates", weather.ErrMalformedResponse, n)
		}
	}
	return nil
}
