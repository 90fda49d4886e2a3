package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Pocket keys a position within a Portfolio.
type Pocket struct {
	Account  string
	Security string
}

// Position is the ordered sequence of lots held in one pocket. Booking
// functions sort it with the caller-supplied strategy before consuming it,
// so no intrinsic order is maintained.
type Position []Lot

// Units sums the signed units of the position.
func (p Position) Units() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range p {
		total = total.Add(lot.Units)
	}
	return total
}

// Cost sums units times price across the position.
func (p Position) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range p {
		total = total.Add(lot.Cost())
	}
	return total
}

// Portfolio maps pockets to positions. It is the unit of shared mutable
// state: one Portfolio, one writer, transactions applied in caller-chosen
// order. Booking order changes which lots close first, so that ordering is
// part of the contract, not an implementation detail.
type Portfolio struct {
	positions map[Pocket]Position
}

func NewPortfolio() *Portfolio {
	return &Portfolio{positions: map[Pocket]Position{}}
}

// Position returns a copy of the pocket's position, or nil when the pocket
// is empty or absent. Callers mutate the copy and commit it back with
// SetPosition, which is what keeps a failed booking from half-mutating the
// Portfolio.
func (p *Portfolio) Position(pocket Pocket) Position {
	held, ok := p.positions[pocket]
	if !ok || len(held) == 0 {
		return nil
	}
	out := make(Position, len(held))
	copy(out, held)
	return out
}

// SetPosition replaces the pocket's position. Empty positions are pruned.
func (p *Portfolio) SetPosition(pocket Pocket, position Position) {
	if len(position) == 0 {
		delete(p.positions, pocket)
		return
	}
	p.positions[pocket] = position
}

// Pockets returns the non-empty pockets in deterministic order.
func (p *Portfolio) Pockets() []Pocket {
	out := make([]Pocket, 0, len(p.positions))
	for pocket, position := range p.positions {
		if len(position) == 0 {
			continue
		}
		out = append(out, pocket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Account != out[j].Account {
			return out[i].Account < out[j].Account
		}
		return out[i].Security < out[j].Security
	})
	return out
}
