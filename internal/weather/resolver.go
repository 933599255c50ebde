package weather

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPreferredCountry is ranked ahead of every other country.
const DefaultPreferredCountry = "France"

// Resolver turns a free-text query into a ranked, de-duplicated SuggestionList.
type Resolver struct {
	client    GeocodingClient
	language  string
	preferred string
	collation language.Tag
}

// NewResolver creates a Resolver querying the client in the given response
// language. Names are compared using that language's collation rules.
func NewResolver(client GeocodingClient, lang, preferredCountry string) *Resolver {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.French
	}
	if preferredCountry == "" {
		preferredCountry = DefaultPreferredCountry
	}
	return &Resolver{
		client:    client,
		language:  lang,
		preferred: preferredCountry,
		collation: tag,
	}
}

// Resolve looks the query up and returns the cleaned suggestion list.
// An empty list is a valid result when the service knows no match.
func (r *Resolver) Resolve(ctx context.Context, query string) (SuggestionList, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := r.client.Search(ctx, query, r.language)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrTransport) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", ErrMalformedResponse)
	}

	list := Deduplicate(resp.Results)
	r.Rank(list)
	return list, nil
}

// SuggestionKey is the identity used for de-duplication.
func SuggestionKey(name, countryCode string) string {
	return name + "-" + countryCode
}

// Deduplicate keeps the first result for every name/country-code pair, in
// source order. Results lacking a name or coordinates are dropped.
func Deduplicate(results []RawGeocodeResult) SuggestionList {
	seen := make(map[string]struct{}, len(results))
	list := make(SuggestionList, 0, len(results))

	for _, raw := range results {
		if raw.Name == nil || *raw.Name == "" || raw.Latitude == nil || raw.Longitude == nil {
			continue
		}

		key := SuggestionKey(*raw.Name, raw.CountryCode)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		s := PlaceSuggestion{
			ID:          key,
			Name:        *raw.Name,
			Country:     raw.Country,
			CountryCode: raw.CountryCode,
			Admin1:      raw.Admin1,
			Admin2:      raw.Admin2,
			Postcodes:   raw.Postcodes,
			Latitude:    *raw.Latitude,
			Longitude:   *raw.Longitude,
			Timezone:    raw.Timezone,
		}
		if s.Postcodes == nil {
			s.Postcodes = []string{}
		}
		s.Label = FormatSuggestion(s)
		list = append(list, s)
	}

	return list
}

// Rank sorts the list in place: preferred country first, then names in
// ascending locale order. Equal entries keep their source order.
func (r *Resolver) Rank(list SuggestionList) {
	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(r.collation)

	sort.SliceStable(list, func(i, j int) bool {
		pi := list[i].Country == r.preferred
		pj := list[j].Country == r.preferred
		if pi != pj {
			return pi
		}
		return col.CompareString(list[i].Name, list[j].Name) < 0
	})
}
