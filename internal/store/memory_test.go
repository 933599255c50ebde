package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/coordinator"
	"github.com/i474232898/weather-lookup/internal/weather"
)

type noopPipeline struct{}

func (noopPipeline) Suggest(context.Context, string) (weather.SuggestionList, error) {
	return weather.SuggestionList{}, nil
}

func (noopPipeline) Forecast(_ context.Context, p weather.PlaceSuggestion, _ time.Time) (weather.Report, error) {
	return weather.Report{Place: p}, nil
}

func newTestStore(limit int, ttl time.Duration) *MemoryStore {
	return NewMemoryStore(func() *coordinator.Coordinator {
		return coordinator.New(noopPipeline{}, coordinator.Options{})
	}, limit, ttl)
}

func TestCreateGetDelete(t *testing.T) {
	s := newTestStore(0, 0)
	defer s.CloseAll()

	sess := s.Create()
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}

	got, err := s.Get(sess.ID)
	if err != nil || got != sess {
		t.Fatalf("expected to get the session back, got %v, %v", got, err)
	}

	if err := s.Delete(sess.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCreateEvictsLeastRecentlyUsed(t *testing.T) {
	s := newTestStore(2, 0)
	defer s.CloseAll()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	a := s.Create()
	now = now.Add(time.Minute)
	b := s.Create()
	now = now.Add(time.Minute)

	// Touch a so that b becomes the oldest.
	if _, err := s.Get(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(time.Minute)
	c := s.Create()

	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Len())
	}
	if _, err := s.Get(b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected b evicted, got %v", err)
	}
	for _, id := range []string{a.ID, c.ID} {
		if _, err := s.Get(id); err != nil {
			t.Fatalf("expected %s kept, got %v", id, err)
		}
	}
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	s := newTestStore(0, 10*time.Minute)
	defer s.CloseAll()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	idle := s.Create()
	now = now.Add(8 * time.Minute)
	fresh := s.Create()
	now = now.Add(5 * time.Minute)

	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if _, err := s.Get(idle.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected idle session gone, got %v", err)
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("expected fresh session kept, got %v", err)
	}
}

func TestSweepWithoutTTLKeepsEverything(t *testing.T) {
	s := newTestStore(0, 0)
	defer s.CloseAll()

	s.Create()
	if n := s.Sweep(); n != 0 || s.Len() != 1 {
		t.Fatalf("expected nothing swept, got %d (len %d)", n, s.Len())
	}
}
