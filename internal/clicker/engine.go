package clicker

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/napolitain/clicker-sim/internal/models"
)

var (
	// ErrUnknownItem is returned when a strategy names an item missing from the catalog
	ErrUnknownItem = errors.New("strategy chose an item that is not in the catalog")
	// ErrInvalidDuration is returned for negative, NaN or infinite durations
	ErrInvalidDuration = errors.New("invalid duration")
)

// Engine runs simulations. The zero value is not usable; use NewEngine.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates an engine that reports purchases to logger at debug level.
// A nil logger discards everything.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger}
}

// Simulate runs one game with a discarding logger
func Simulate(catalog *models.Catalog, duration float64, strategy Strategy) (*State, error) {
	return NewEngine(nil).Run(catalog, duration, strategy)
}

// Run plays the game for duration, asking strategy what to buy after every purchase.
// The catalog is validated, cloned once and never modified. When the strategy declines, or
// picks something that cannot be afforded before duration, the rest of the time is waited out.
func (e *Engine) Run(catalog *models.Catalog, duration float64, strategy Strategy) (*State, error) {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidDuration, duration)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	info := catalog.Clone()
	state := NewState()

	for state.Time() <= duration {
		item, ok := strategy(state.Resources(), state.Rate(), state.History(), duration-state.Time(), info)
		if !ok {
			break
		}

		it, found := info.Item(item)
		if !found {
			return nil, fmt.Errorf("%w: %q at time %g", ErrUnknownItem, item, state.Time())
		}

		wait := state.TimeUntil(it.Cost)
		if state.Time()+wait > duration {
			break
		}

		bought := state.Purchases()
		state.Wait(wait)
		state.Buy(item, it.Cost, it.Production)
		info.Update(item)

		// rounding can leave the balance a hair short, in which case Buy is a no-op
		if state.Purchases() == bought {
			continue
		}
		e.logger.Debug("purchase",
			"item", item,
			"time", state.Time(),
			"cost", it.Cost,
			"rate", state.Rate())
	}

	state.Wait(duration - state.Time())
	return state, nil
}
