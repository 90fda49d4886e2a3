package inventory

import (
	"fmt"

	"capgains/internal/domain"

	"github.com/shopspring/decimal"
)

// The partitioning primitives below are pure: they consume a position and
// produce new positions, never touching a Portfolio. Booking functions
// orchestrate them and commit the results.

// PartUnits walks the position once, in order, splitting it into the lots a
// predicate matches and the rest. maxUnits caps the matched units: once the
// remaining cap is smaller in magnitude than the next matching lot, that lot
// is split at the cap, the matched part keeping its price and currency. A
// nil maxUnits takes every match whole. The cap must carry the same sign as
// the lots it is meant to match; that is the caller's responsibility.
//
// Matched and unmatched together hold exactly the units of the input.
func PartUnits(position domain.Position, predicate Predicate, maxUnits *decimal.Decimal) (matched, unmatched domain.Position) {
	var remain decimal.Decimal
	if maxUnits != nil {
		remain = *maxUnits
	}
	for _, lot := range position {
		if predicate != nil && !predicate(lot) {
			// predicate takes priority over the cap
			unmatched = append(unmatched, lot)
			continue
		}
		if maxUnits == nil {
			matched = append(matched, lot)
			continue
		}
		if remain.IsZero() {
			unmatched = append(unmatched, lot)
			continue
		}
		if remain.Abs().GreaterThanOrEqual(lot.Units.Abs()) {
			matched = append(matched, lot)
			remain = remain.Sub(lot.Units)
			continue
		}
		matched = append(matched, lot.WithUnits(remain))
		unmatched = append(unmatched, lot.WithUnits(lot.Units.Sub(remain)))
		remain = decimal.Zero
	}
	return matched, unmatched
}

// PartBasis peels the given fraction of cost basis off every matching lot.
// The matched output holds copies at price*fraction, the unmatched output
// the complements at price*(1-fraction); units and the open/create
// references are unchanged on both, so matched cost plus unmatched cost
// equals the input cost exactly. Non-matching lots pass through unmodified.
func PartBasis(position domain.Position, predicate Predicate, fraction decimal.Decimal) (matched, unmatched domain.Position, err error) {
	one := decimal.NewFromInt(1)
	if fraction.IsNegative() || fraction.GreaterThan(one) {
		return nil, nil, fmt.Errorf("basis fraction must be within [0, 1], got %s", fraction)
	}
	complement := one.Sub(fraction)
	for _, lot := range position {
		if predicate != nil && !predicate(lot) {
			unmatched = append(unmatched, lot)
			continue
		}
		matched = append(matched, lot.WithPrice(lot.Price.Mul(fraction)))
		unmatched = append(unmatched, lot.WithPrice(lot.Price.Mul(complement)))
	}
	return matched, unmatched, nil
}

// AdjustBasis spreads a cash amount pro rata over the matching lots'
// units, reducing each lot's price by cash/totalUnits. Positive cash (a
// distribution) writes basis down; negative cash (exercise cost) writes it
// up. A write-down past zero floors the price at zero and realizes the
// excess as a Gain priced at the full pro-rata amount.
//
// When nothing matches, the position comes back untouched with no gains;
// callers decide whether that is an inconsistency.
func AdjustBasis(position domain.Position, txn domain.Transaction, predicate Predicate, cash decimal.Decimal) (adjusted, unaffected domain.Position, gains []domain.Gain) {
	total := decimal.Zero
	for _, lot := range position {
		if predicate == nil || predicate(lot) {
			total = total.Add(lot.Units)
		}
	}
	if total.IsZero() {
		return nil, position, nil
	}
	prorata := cash.Div(total)
	for _, lot := range position {
		if predicate != nil && !predicate(lot) {
			unaffected = append(unaffected, lot)
			continue
		}
		price := lot.Price.Sub(prorata)
		if price.IsNegative() {
			gains = append(gains, domain.Gain{Lot: lot, Transaction: txn, Price: prorata})
			price = decimal.Zero
		}
		adjusted = append(adjusted, lot.WithPrice(price))
	}
	return adjusted, unaffected, gains
}

// ScaleUnits multiplies matching lots' units by ratio and divides their
// price by it, leaving cost unchanged. The returned delta is the sum of
// post-scale minus pre-scale units, which callers check against the
// transaction's reported delta.
func ScaleUnits(position domain.Position, predicate Predicate, ratio decimal.Decimal) (scaled, unaffected domain.Position, delta decimal.Decimal) {
	delta = decimal.Zero
	for _, lot := range position {
		if predicate != nil && !predicate(lot) {
			unaffected = append(unaffected, lot)
			continue
		}
		units := lot.Units.Mul(ratio)
		delta = delta.Add(units.Sub(lot.Units))
		scaled = append(scaled, lot.WithUnits(units).WithPrice(lot.Price.Div(ratio)))
	}
	return scaled, unaffected, delta
}
