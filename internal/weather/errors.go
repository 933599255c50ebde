package weather

import (
	"errors"
)

var (
	// ErrEmptyQuery is returned when the query is empty or only whitespace.
	ErrEmptyQuery = errors.New("empty query")
	// ErrMalformedResponse is returned when a service answer does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTransport wraps network and server failures from either client.
	ErrTransport = errors.New("transport error")
)

const (
	msgEmptyQuery      = "Veuillez entrer un nom de ville ou un code postal."
	msgSuggestionRetry = "Nous n'avons pas pu récupérer les suggestions. Assurez-vous que votre recherche est correcte et essayez à nouveau."
	msgForecastRetry   = "Une erreur est survenue lors de la récupération des données météo. Veuillez réessayer."
)

// UserMessage maps a suggestion lookup error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return msgEmptyQuery
	default:
		return msgSuggestionRetry
	}
}

// ForecastMessage maps a forecast error to the text shown to the user.
func ForecastMessage(err error) string {
	if err == nil {
		return ""
	}
	return msgForecastRetry
}
