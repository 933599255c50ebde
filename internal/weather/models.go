package weather

// Status is the lifecycle state of one query concern (suggestions or forecast).
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// RawGeocodeResult is one candidate as returned by the geocoding service.
// Name, Latitude and Longitude are pointers so that absent fields can be told
// apart from zero values.
type RawGeocodeResult struct {
	Name        *string  `json:"name"`
	Country     string   `json:"country,omitempty"`
	CountryCode string   `json:"country_code"`
	Admin1      string   `json:"admin1,omitempty"`
	Admin2      string   `json:"admin2,omitempty"`
	Postcodes   []string `json:"postcodes,omitempty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Timezone    string   `json:"timezone"`
}

// GeocodeResponse is the decoded geocoding payload. A nil Results means the
// service did not send a results array at all.
type GeocodeResponse struct {
	Results []RawGeocodeResult `json:"results"`
}

// PlaceSuggestion is a de-duplicated, display-ready place candidate.
type PlaceSuggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country,omitempty"`
	CountryCode string   `json:"countryCode"`
	Admin1      string   `json:"admin1,omitempty"`
	Admin2      string   `json:"admin2,omitempty"`
	Postcodes   []string `json:"postcodes"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Timezone    string   `json:"timezone"`
	Label       string   `json:"label"`
}

// SuggestionList is ordered: preferred country first, then by name.
type SuggestionList []PlaceSuggestion

// HourlySeries holds the hourly parallel arrays sharing the Time index.
type HourlySeries struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Precipitation []float64 `json:"precipitation"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
	WeatherCode   []int     `json:"weathercode"`
}

// DailySeries holds the daily parallel arrays sharing the Time index.
type DailySeries struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weathercode"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// CurrentWeather mirrors the service's current_weather block.
type CurrentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
}

// RawForecast is the forecast payload as received. Hourly and Daily are nil
// when the service omitted the block.
type RawForecast struct {
	Timezone     string            `json:"timezone"`
	Current      *CurrentWeather   `json:"current_weather,omitempty"`
	CurrentUnits map[string]string `json:"current_weather_units,omitempty"`
	Hourly       *HourlySeries     `json:"hourly,omitempty"`
	Daily        *DailySeries      `json:"daily,omitempty"`
}

// HourlyWindow is the next-24-hours slice of an HourlySeries.
type HourlyWindow struct {
	StartIndex int `json:"startIndex"`
	HourlySeries
}

// DailyWindow is the next-days slice of a DailySeries.
type DailyWindow struct {
	DailySeries
}

// ForecastWindow is the windowed view of a RawForecast. Absent blocks stay nil.
type ForecastWindow struct {
	Hourly *HourlyWindow `json:"hourly,omitempty"`
	Daily  *DailyWindow  `json:"daily,omitempty"`
}

// Report is what a successful forecast lookup hands to the display layer.
type Report struct {
	Place        PlaceSuggestion   `json:"place"`
	Timezone     string            `json:"timezone"`
	Current      *CurrentWeather   `json:"current,omitempty"`
	CurrentUnits map[string]string `json:"currentUnits,omitempty"`
	Window       ForecastWindow    `json:"window"`
	Theme        Theme             `json:"theme"`

	// Display strings, rendered in the place's zone.
	LocalTime  string   `json:"localTime"`
	HourLabels []string `json:"hourLabels,omitempty"`
	DayLabels  []string `json:"dayLabels,omitempty"`
}
