// Package combo enumerates bounded combination sums: for each item pick
// a quantity within its cap so that total cost stays within budget and
// total quantity meets a minimum. The search is depth-first over item
// index with monotonic budget pruning — once a quantity overshoots the
// budget, no higher quantity of the same item can fit.
package combo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

var (
	ErrBadPrice     = errors.New("item price must be positive")
	ErrBadQuantity  = errors.New("item max quantity must not be negative")
	ErrBadBudget    = errors.New("budget must not be negative")
	ErrBadMinimum   = errors.New("minimum item count must not be negative")
	ErrTooManyItems = errors.New("search space too large")
)

// maxItems bounds recursion depth and the (budget/price)^n blowup.
const maxItems = 64

// Planner owns the item list and the budget constraints.
type Planner struct {
	items    []domain.Item
	budget   float64
	minItems int
}

// NewPlanner validates inputs before any search can run.
func NewPlanner(items []domain.Item, budget float64, minItems int) (*Planner, error) {
	if budget < 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrBadBudget, budget)
	}
	if minItems < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMinimum, minItems)
	}
	if len(items) > maxItems {
		return nil, fmt.Errorf("%w: %d items (max %d)", ErrTooManyItems, len(items), maxItems)
	}
	for _, it := range items {
		if it.Price <= 0 {
			return nil, fmt.Errorf("%w: %q has price %.2f", ErrBadPrice, it.Name, it.Price)
		}
		if it.MaxQuantity < 0 {
			return nil, fmt.Errorf("%w: %q has max %d", ErrBadQuantity, it.Name, it.MaxQuantity)
		}
	}
	return &Planner{items: items, budget: budget, minItems: minItems}, nil
}

// EffectiveMax returns the quantity cap actually searched for an item:
// its own cap, or a budget-derived bound when the cap is 0 (unlimited).
// Any quantity above budget/price is infeasible on cost alone, so the
// +1 bound is safe.
func (p *Planner) EffectiveMax(it domain.Item) int {
	if it.MaxQuantity > 0 {
		return it.MaxQuantity
	}
	return int(p.budget/it.Price) + 1
}

// FindAll returns every feasible combination, in the deterministic
// order produced by ascending quantities per item.
func (p *Planner) FindAll(ctx context.Context) ([]domain.Combination, ports.Stats, error) {
	start := time.Now()
	var out []domain.Combination
	nodes := 0
	entries := make([]domain.ComboEntry, 0, len(p.items))

	var dfs func(idx int, cost float64, count int)
	dfs = func(idx int, cost float64, count int) {
		if ctx.Err() != nil {
			return
		}
		if idx == len(p.items) {
			// Cost is re-verified even though pruning already bounds it.
			if count >= p.minItems && cost <= p.budget {
				out = append(out, domain.Combination{
					Entries:       append([]domain.ComboEntry(nil), entries...),
					TotalCost:     cost,
					TotalQuantity: count,
				})
			}
			return
		}
		it := p.items[idx]
		for qty := 0; qty <= p.EffectiveMax(it); qty++ {
			nodes++
			newCost := cost + float64(qty)*it.Price
			if newCost > p.budget {
				break // higher quantities only cost more
			}
			if qty > 0 {
				entries = append(entries, domain.ComboEntry{Name: it.Name, Quantity: qty, Subtotal: float64(qty) * it.Price})
			}
			dfs(idx+1, newCost, count+qty)
			if qty > 0 {
				entries = entries[:len(entries)-1]
			}
		}
	}
	dfs(0, 0, 0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := context.Cause(ctx); err != nil {
		return out, st, err
	}
	return out, st, nil
}

// FindOne returns the first feasible combination in the same traversal
// order as FindAll, or nil when none exists.
func (p *Planner) FindOne(ctx context.Context) (*domain.Combination, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	entries := make([]domain.ComboEntry, 0, len(p.items))
	var found *domain.Combination

	var dfs func(idx int, cost float64, count int) bool
	dfs = func(idx int, cost float64, count int) bool {
		if ctx.Err() != nil {
			return false
		}
		if idx == len(p.items) {
			if count >= p.minItems && cost <= p.budget {
				found = &domain.Combination{
					Entries:       append([]domain.ComboEntry(nil), entries...),
					TotalCost:     cost,
					TotalQuantity: count,
				}
				return true
			}
			return false
		}
		it := p.items[idx]
		for qty := 0; qty <= p.EffectiveMax(it); qty++ {
			nodes++
			newCost := cost + float64(qty)*it.Price
			if newCost > p.budget {
				break
			}
			if qty > 0 {
				entries = append(entries, domain.ComboEntry{Name: it.Name, Quantity: qty, Subtotal: float64(qty) * it.Price})
			}
			if dfs(idx+1, newCost, count+qty) {
				return true
			}
			if qty > 0 {
				entries = entries[:len(entries)-1]
			}
		}
		return false
	}
	dfs(0, 0, 0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := context.Cause(ctx); err != nil {
		return nil, st, err
	}
	return found, st, nil
}
