package clicker

import (
	"fmt"
	"math"

	"github.com/napolitain/clicker-sim/internal/models"
)

// BaseRate is the production rate every run starts with
const BaseRate = 1.0

// State tracks one simulation run: elapsed time, spendable and lifetime
// resources, production rate and the purchase history.
type State struct {
	time      float64
	resources float64
	total     float64
	rate      float64
	history   []models.Purchase
}

// NewState creates a fresh state at time zero
func NewState() *State {
	return &State{
		rate:    BaseRate,
		history: []models.Purchase{models.InitialPurchase()},
	}
}

// String returns a human readable summary of the state
func (s *State) String() string {
	return fmt.Sprintf("total=%g resources=%g time=%g rate=%g", s.total, s.resources, s.time, s.rate)
}

// Resources returns the current spendable balance
func (s *State) Resources() float64 {
	return s.resources
}

// Total returns the cumulative resources ever earned
func (s *State) Total() float64 {
	return s.total
}

// Rate returns the current production rate
func (s *State) Rate() float64 {
	return s.rate
}

// Time returns the elapsed simulated time
func (s *State) Time() float64 {
	return s.time
}

// History returns a copy of the purchase history
func (s *State) History() []models.Purchase {
	out := make([]models.Purchase, len(s.history))
	copy(out, s.history)
	return out
}

// Purchases returns the number of real purchases (the initial record excluded)
func (s *State) Purchases() int {
	return len(s.history) - 1
}

// TimeUntil returns the whole number of time units needed to hold target resources.
// The rate must be positive when the balance is short; a zero rate yields +Inf.
func (s *State) TimeUntil(target float64) float64 {
	if s.resources >= target {
		return 0
	}
	return math.Ceil((target - s.resources) / s.rate)
}

// Wait advances time by d and accrues production. Non-positive durations are ignored.
func (s *State) Wait(d float64) {
	if d <= 0 {
		return
	}
	earned := s.rate * d
	s.time += d
	s.resources += earned
	s.total += earned
}

// Buy spends cost on item and raises the rate by increment.
// It does nothing when cost exceeds the current balance.
func (s *State) Buy(item string, cost, increment float64) {
	if cost > s.resources {
		return
	}
	s.resources -= cost
	s.rate += increment
	s.history = append(s.history, models.Purchase{
		Time:  s.time,
		Item:  item,
		Cost:  cost,
		Total: s.total,
	})
}
