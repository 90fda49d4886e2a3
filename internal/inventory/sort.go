package inventory

import (
	"fmt"
	"sort"

	"capgains/internal/domain"
)

// Sorter orders a position in place so that the lots that should close
// first come first. Booking functions apply it before partitioning.
type Sorter func(position domain.Position)

// FIFO closes the oldest lots first. This is the default strategy.
func FIFO(position domain.Position) {
	sort.SliceStable(position, func(i, j int) bool {
		return openDateLess(position[i], position[j])
	})
}

// LIFO closes the newest lots first. It is the exact reversal of the FIFO
// order, so lots that tie under FIFO come back in reverse input order.
func LIFO(position domain.Position) {
	FIFO(position)
	reverse(position)
}

// MaxGain closes the cheapest lots first, maximizing the recognized gain on
// a sale.
func MaxGain(position domain.Position) {
	sort.SliceStable(position, func(i, j int) bool {
		return priceLess(position[i], position[j])
	})
}

// MinGain closes the dearest lots first, the exact reversal of MaxGain.
func MinGain(position domain.Position) {
	MaxGain(position)
	reverse(position)
}

func reverse(position domain.Position) {
	for i, j := 0, len(position)-1; i < j; i, j = i+1, j-1 {
		position[i], position[j] = position[j], position[i]
	}
}

// Ties break on the opening transaction's unique id, lexically. A lot with
// no id sorts as the empty string; well-formed broker data always carries
// ids, so the tiebreak only matters for synthetic lots.
func openDateLess(a, b domain.Lot) bool {
	ad, bd := a.OpenDate(), b.OpenDate()
	if !ad.Equal(bd) {
		return ad.Before(bd)
	}
	return a.OpenID() < b.OpenID()
}

func priceLess(a, b domain.Lot) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	return a.OpenID() < b.OpenID()
}

// ParseSorter maps a strategy name to its Sorter. The empty string selects
// FIFO.
func ParseSorter(s string) (Sorter, error) {
	switch s {
	case "", "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "maxgain":
		return MaxGain, nil
	case "mingain":
		return MinGain, nil
	default:
		return nil, fmt.Errorf("unknown lot sort strategy: %q", s)
	}
}
