package coordinator

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultDebounce is the quiescence window applied to typed input.
const DefaultDebounce = 500 * time.Millisecond

// ErrNoSuchSuggestion is returned when selecting outside the current list.
var ErrNoSuchSuggestion = errors.New("no such suggestion")

// Pipeline is what the coordinator drives; *weather.Service implements it.
type Pipeline interface {
	Suggest(ctx context.Context, query string) (weather.SuggestionList, error)
	Forecast(ctx context.Context, place weather.PlaceSuggestion, now time.Time) (weather.Report, error)
}

// Options tune a Coordinator. Zero values select defaults.
type Options struct {
	Debounce time.Duration
	// Timeout bounds each outbound call; zero means no extra bound.
	Timeout time.Duration
	Now     func() time.Time
	// OnChange receives a snapshot after every state transition. Snapshots
	// may arrive out of order; compare Version.
	OnChange func(State)
}

// SuggestionState is the suggestion concern as seen by the display layer.
type SuggestionState struct {
	Status  weather.Status         `json:"status"`
	Message string                 `json:"message,omitempty"`
	Items   weather.SuggestionList `json:"items"`
}

// ForecastState is the forecast concern as seen by the display layer.
type ForecastState struct {
	Status  weather.Status  `json:"status"`
	Message string          `json:"message,omitempty"`
	Report  *weather.Report `json:"report,omitempty"`
}

// State is a point-in-time copy of everything the coordinator owns.
type State struct {
	Version     uint64                   `json:"version"`
	Query       string                   `json:"query"`
	Selection   *weather.PlaceSuggestion `json:"selection,omitempty"`
	Suggestions SuggestionState          `json:"suggestions"`
	Forecast    ForecastState            `json:"forecast"`
}

// Coordinator sequences input, debounce, suggestion lookups and forecast
// lookups for one user, committing only the latest result of each concern.
type Coordinator struct {
	pipeline Pipeline
	opts     Options

	debouncer *Debouncer
	inputs    Tracker // text waiting to be looked up
	suggest   Tracker
	forecast  Tracker
	inflight  sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	closed bool
}

// New creates a Coordinator in the idle state.
func New(pipeline Pipeline, opts Options) *Coordinator {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		pipeline:  pipeline,
		opts:      opts,
		debouncer: NewDebouncer(opts.Debounce),
		ctx:       ctx,
		cancel:    cancel,
		state: State{
			Suggestions: SuggestionState{Status: weather.StatusIdle, Items: weather.SuggestionList{}},
			Forecast:    ForecastState{Status: weather.StatusIdle},
		},
	}
}

// State returns a snapshot of the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Input records typed text and schedules a debounced suggestion lookup.
// Only the last text of a burst reaches the resolver.
func (c *Coordinator) Input(text string) {
	var pending Ticket
	snap, ok := c.update(func(s *State) {
		s.Query = text
		pending = c.inputs.Issue()
	})
	if !ok {
		return
	}
	c.notify(snap)

	c.debouncer.Trigger(func() { c.issueSuggestions(text, pending) })
}

// SearchNow records text and looks it up immediately, dropping any pending
// debounced lookup.
func (c *Coordinator) SearchNow(text string) {
	c.debouncer.Cancel()

	var pending Ticket
	snap, ok := c.update(func(s *State) {
		s.Query = text
		pending = c.inputs.Issue()
	})
	if !ok {
		return
	}
	c.notify(snap)

	c.issueSuggestions(text, pending)
}

// Select clears the suggestions, records the place and fetches its forecast.
func (c *Coordinator) Select(place weather.PlaceSuggestion) {
	c.debouncer.Cancel()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.inputs.Invalidate()
	c.suggest.Invalidate()
	c.state.Suggestions = SuggestionState{Status: weather.StatusIdle, Items: weather.SuggestionList{}}
	c.state.Query = place.Name
	selected := place
	c.state.Selection = &selected

	ticket := c.forecast.Issue()
	c.state.Forecast.Status = weather.StatusLoading
	c.state.Forecast.Message = ""
	snap := c.bumpLocked()
	c.inflight.Add(1)
	c.mu.Unlock()

	c.notify(snap)

	go func() {
		defer c.inflight.Done()

		ctx, cancel := c.callContext()
		defer cancel()

		report, err := c.pipeline.Forecast(ctx, place, c.opts.Now())
		c.commitForecast(ticket, report, err)
	}()
}

// SelectIndex selects the i-th entry of the current suggestion list.
func (c *Coordinator) SelectIndex(i int) error {
	c.mu.Lock()
	items := c.state.Suggestions.Items
	if i < 0 || i >= len(items) {
		c.mu.Unlock()
		return ErrNoSuchSuggestion
	}
	place := items[i]
	c.mu.Unlock()

	c.Select(place)
	return nil
}

// Wait blocks until no debounced or in-flight call remains.
func (c *Coordinator) Wait() {
	c.debouncer.Wait()
	c.inflight.Wait()
}

// Close stops accepting input, cancels outstanding calls and waits for them.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.debouncer.Cancel()
	c.cancel()
	c.Wait()
}

// issueSuggestions starts the lookup for text unless newer input or a
// selection superseded it while it was pending.
func (c *Coordinator) issueSuggestions(text string, pending Ticket) {
	c.mu.Lock()
	if c.closed || !c.inputs.IsLatest(pending) {
		c.mu.Unlock()
		return
	}
	ticket := c.suggest.Issue()
	c.state.Suggestions.Status = weather.StatusLoading
	c.state.Suggestions.Message = ""
	snap := c.bumpLocked()
	c.inflight.Add(1)
	c.mu.Unlock()

	c.notify(snap)

	go func() {
		defer c.inflight.Done()

		ctx, cancel := c.callContext()
		defer cancel()

		list, err := c.pipeline.Suggest(ctx, text)
		c.commitSuggestions(ticket, list, err)
	}()
}

func (c *Coordinator) commitSuggestions(ticket Ticket, list weather.SuggestionList, err error) {
	c.mu.Lock()
	if c.closed || !c.suggest.IsLatest(ticket) {
		c.mu.Unlock()
		log.Printf("DEBUG: discarding stale suggestion result (ticket %d)", ticket)
		return
	}

	if err != nil {
		c.state.Suggestions = SuggestionState{
			Status:  weather.StatusFailed,
			Message: weather.UserMessage(err),
			Items:   weather.SuggestionList{},
		}
	} else {
		if list == nil {
			list = weather.SuggestionList{}
		}
		c.state.Suggestions = SuggestionState{Status: weather.StatusSucceeded, Items: list}
	}
	snap := c.bumpLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Coordinator) commitForecast(ticket Ticket, report weather.Report, err error) {
	c.mu.Lock()
	if c.closed || !c.forecast.IsLatest(ticket) {
		c.mu.Unlock()
		log.Printf("DEBUG: discarding stale forecast result (ticket %d)", ticket)
		return
	}

	if err != nil {
		c.state.Forecast = ForecastState{
			Status:  weather.StatusFailed,
			Message: weather.ForecastMessage(err),
		}
	} else {
		c.state.Forecast = ForecastState{Status: weather.StatusSucceeded, Report: &report}
	}
	snap := c.bumpLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Coordinator) update(fn func(*State)) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return State{}, false
	}
	fn(&c.state)
	return c.bumpLocked(), true
}

func (c *Coordinator) bumpLocked() State {
	c.state.Version++
	return c.snapshotLocked()
}

// snapshotLocked copies the state. Lists and reports are replaced wholesale,
// never mutated, so sharing them is safe.
func (c *Coordinator) snapshotLocked() State {
	s := c.state
	if s.Selection != nil {
		sel := *s.Selection
		s.Selection = &sel
	}
	return s
}

func (c *Coordinator) callContext() (context.Context, context.CancelFunc) {
	if c.opts.Timeout > 0 {
		return context.WithTimeout(c.ctx, c.opts.Timeout)
	}
	return context.WithCancel(c.ctx)
}

func (c *Coordinator) notify(s State) {
	if c.opts.OnChange != nil {
		c.opts.OnChange(s)
	}
}
