package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultGeocodingURL is the Open-Meteo geocoding endpoint.
const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoding implements weather.GeocodingClient for Open-Meteo.
type OpenMeteoGeocoding struct {
	endpoint
}

func NewOpenMeteoGeocoding(baseURL string, cfg HTTPClientConfig) *OpenMeteoGeocoding {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &OpenMeteoGeocoding{endpoint: newEndpoint("openmeteo-geocoding", baseURL, cfg)}
}

func (p *OpenMeteoGeocoding) Search(ctx context.Context, name, language string) (weather.GeocodeResponse, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", name)
		values.Set("language", language)
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := p.do(ctx, buildRequest)
	if err != nil {
		return weather.GeocodeResponse{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.GeocodeResponse{}, fmt.Errorf("%w: decode geocoding: %v", weather.ErrMalformedResponse, err)
	}

	// Absent or null results: leave Results nil and let the resolver decide.
	raw := bytes.TrimSpace(payload.Results)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return weather.GeocodeResponse{}, nil
	}
	if raw[0] != '[' {
		return weather.GeocodeResponse{}, fmt.Errorf("%w: results is not an array", weather.ErrMalformedResponse)
	}

	results := make([]weather.RawGeocodeResult, 0)
	if err := json.Unmarshal(raw, &results); err != nil {
		return weather.GeocodeResponse{}, fmt.Errorf("%w: decode results: %v", weather.ErrMalformedResponse, err)
	}
	return weather.GeocodeResponse{Results: results}, nil
}
