package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/coordinator"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, sessions *store.MemoryStore) {
	v1 := app.Group("/api/v1")

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		sess := sessions.Create()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    sess.ID,
			"state": sess.Coordinator.State(),
		})
	})

	v1.Get("/sessions/:id", func(c *fiber.Ctx) error {
		sess, err := lookupSession(c, sessions)
		if err != nil {
			return err
		}
		return c.JSON(sess.Coordinator.State())
	})

	v1.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		if err := sessions.Delete(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to close session")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Put("/sessions/:id/query", func(c *fiber.Ctx) error {
		sess, err := lookupSession(c, sessions)
		if err != nil {
			return err
		}

		var req queryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if req.Immediate {
			sess.Coordinator.SearchNow(req.Text)
		} else {
			sess.Coordinator.Input(req.Text)
		}
		return c.Status(fiber.StatusAccepted).JSON(sess.Coordinator.State())
	})

	v1.Post("/sessions/:id/selection", func(c *fiber.Ctx) error {
		sess, err := lookupSession(c, sessions)
		if err != nil {
			return err
		}

		var req selectionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}

		switch {
		case req.Place != nil:
			if err := validate.Struct(req.Place); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			sess.Coordinator.Select(req.Place.toSuggestion())
		case req.Index != nil:
			if err := sess.Coordinator.SelectIndex(*req.Index); err != nil {
				if errors.Is(err, coordinator.ErrNoSuchSuggestion) {
					return fiber.NewError(fiber.StatusNotFound, "no suggestion at that index")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "failed to select suggestion")
			}
		default:
			return fiber.NewError(fiber.StatusBadRequest, "index or place is required")
		}

		return c.Status(fiber.StatusAccepted).JSON(sess.Coordinator.State())
	})

	v1.Get("/weather-codes/:code", func(c *fiber.Ctx) error {
		code, err := c.ParamsInt("code")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "code must be an integer")
		}
		return c.JSON(weather.Describe(code))
	})
}

func lookupSession(c *fiber.Ctx, sessions *store.MemoryStore) (*store.Session, error) {
	sess, err := sessions.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "unknown session")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load session")
	}
	return sess, nil
}

// queryRequest carries the text typed by the user.
type queryRequest struct {
	Text      string `json:"text" validate:"max=200"`
	Immediate bool   `json:"immediate"`
}

// selectionRequest picks either an entry of the current list or an explicit place.
type selectionRequest struct {
	Index *int          `json:"index"`
	Place *placeRequest `json:"place"`
}

type placeRequest struct {
	Name        string   `json:"name" validate:"required"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	Admin1      string   `json:"admin1"`
	Admin2      string   `json:"admin2"`
	Postcodes   []string `json:"postcodes"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Timezone    string   `json:"timezone" validate:"omitempty,timezone"`
}

func (p placeRequest) toSuggestion() weather.PlaceSuggestion {
	s := weather.PlaceSuggestion{
		ID:          weather.SuggestionKey(p.Name, p.CountryCode),
		Name:        p.Name,
		Country:     p.Country,
		CountryCode: p.CountryCode,
		Admin1:      p.Admin1,
		Admin2:      p.Admin2,
		Postcodes:   p.Postcodes,
		Latitude:    *p.Latitude,
		Longitude:   *p.Longitude,
		Timezone:    p.Timezone,
	}
	if s.Postcodes == nil {
		s.Postcodes = []string{}
	}
	s.Label = weather.FormatSuggestion(s)
	return s
}
