package clicker

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/napolitain/clicker-sim/internal/models"
)

// ErrUnknownStrategy is returned by Lookup for names that are not registered
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks the next item to buy given the current balance, rate, history,
// time left and a read-only catalog. ok == false means "buy nothing".
type Strategy func(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (item string, ok bool)

// reachable is the most a player can hold by the end of the run
func reachable(resources, rate, timeLeft float64) float64 {
	return resources + rate*timeLeft
}

// CursorBroken always picks Cursor without checking whether it can be bought in time.
func CursorBroken(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (string, bool) {
	return "Cursor", true
}

// None never buys anything
func None(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (string, bool) {
	return "", false
}

// Cheap buys the cheapest item, provided it is reachable in the time left
func Cheap(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (string, bool) {
	info := catalog.Clone()
	budget := reachable(resources, rate, timeLeft)

	choice, cost := "", math.Inf(1)
	for _, name := range info.Items() {
		if c := info.Cost(name); c < cost {
			choice, cost = name, c
		}
	}
	if choice == "" || budget < cost {
		return "", false
	}
	return choice, true
}

// Expensive buys the most expensive item reachable in the time left
func Expensive(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (string, bool) {
	info := catalog.Clone()
	budget := reachable(resources, rate, timeLeft)

	choice, cost := "", math.Inf(-1)
	for _, name := range info.Items() {
		c := info.Cost(name)
		if c > cost && budget >= c {
			choice, cost = name, c
		}
	}
	return choice, choice != ""
}

// Best buys the reachable item with the highest production gained per unit spent.
// An item only replaces the current pick when its ratio is strictly greater, and
// the running ratio starts at zero, so zero-ratio items and later equal-ratio items
// are never chosen.
func Best(resources, rate float64, history []models.Purchase, timeLeft float64, catalog *models.Catalog) (string, bool) {
	info := catalog.Clone()
	budget := reachable(resources, rate, timeLeft)

	choice, ratio := "", 0.0
	for _, name := range info.Items() {
		c := info.Cost(name)
		r := info.Production(name) / c
		if r > ratio && budget >= c {
			choice, ratio = name, r
		}
	}
	return choice, choice != ""
}

var registry = []struct {
	name     string
	strategy Strategy
}{
	{"cursor", CursorBroken},
	{"none", None},
	{"cheap", Cheap},
	{"expensive", Expensive},
	{"best", Best},
}

// Names returns the registered strategy names in a fixed order
func Names() []string {
	names := make([]string, len(registry))
	for i, r := range registry {
		names[i] = r.name
	}
	return names
}

// Lookup returns the strategy registered under name (case-insensitive)
func Lookup(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, r := range registry {
		if r.name == key {
			return r.strategy, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}
