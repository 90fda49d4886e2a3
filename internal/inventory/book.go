package inventory

import (
	"errors"
	"fmt"

	capgains_errors "capgains/internal"
	"capgains/internal/domain"

	"github.com/shopspring/decimal"
)

// tolerance absorbs floating rounding in broker-reported split and transfer
// ratios when validating unit deltas.
var tolerance = decimal.NewFromFloat(0.001)

// Book applies one transaction to the portfolio and returns the gains it
// realized. Dispatch is by transaction kind; no kind validates another
// kind's contract. A returned error, including ErrInconsistent, leaves the
// portfolio exactly as it was: every booking function stages new positions
// and commits them only after all validation has passed.
//
// Booking is not idempotent with respect to portfolio mutation. Applying
// the same transaction twice double-mutates; exactly-once application is
// the caller's job.
func Book(p *domain.Portfolio, txn domain.Transaction, sorter Sorter) ([]domain.Gain, error) {
	if sorter == nil {
		sorter = FIFO
	}
	switch t := txn.(type) {
	case domain.Trade:
		return bookTrade(p, t, sorter)
	case domain.ReturnOfCapital:
		return bookReturnOfCapital(p, t)
	case domain.Split:
		return bookSplit(p, t)
	case domain.Transfer:
		return bookTransfer(p, t, sorter)
	case domain.Spinoff:
		return bookSpinoff(p, t, sorter)
	case domain.Exercise:
		return bookExercise(p, t, sorter)
	default:
		return nil, fmt.Errorf("unhandled transaction kind %T", txn)
	}
}

// matchUnits is the single choke point for applying a signed unit delta,
// with its associated cash, to a position: close opposite-signed lots first,
// then open one new lot for whatever is left. The new lot's opening
// transaction defaults to txn; transfer, spinoff and exercise override it to
// preserve the original holding-period start. All gains are priced at
// abs(cash/units) and keyed to txn.
func matchUnits(position domain.Position, txn domain.Transaction, sorter Sorter, units, cash decimal.Decimal, currency string, openTxn domain.Transaction) (domain.Position, []domain.Gain, error) {
	if units.IsZero() {
		return nil, nil, errors.New("cannot apply a zero unit delta to a position")
	}
	price := cash.Div(units).Abs()
	sorter(position)

	closable := units.Neg()
	closed, kept := PartUnits(position, ClosableBy(txn, units), &closable)

	var gains []domain.Gain
	residual := units
	for _, lot := range closed {
		residual = residual.Add(lot.Units)
		gains = append(gains, domain.Gain{Lot: lot, Transaction: txn, Price: price})
	}
	if !residual.IsZero() {
		open := openTxn
		if open == nil {
			open = txn
		}
		kept = append(kept, domain.Lot{
			OpenTransaction:   open,
			CreateTransaction: txn,
			Units:             residual,
			Price:             price,
			Currency:          currency,
		})
	}
	return kept, gains, nil
}

func bookTrade(p *domain.Portfolio, t domain.Trade, sorter Sorter) ([]domain.Gain, error) {
	if t.Units.IsZero() {
		return nil, errors.New("trade has zero units")
	}
	pocket := domain.Pocket{Account: t.Account, Security: t.Security}
	position, gains, err := matchUnits(p.Position(pocket), t, sorter, t.Units, t.Cash, t.Currency, nil)
	if err != nil {
		return nil, err
	}
	p.SetPosition(pocket, position)
	return gains, nil
}

func bookReturnOfCapital(p *domain.Portfolio, t domain.ReturnOfCapital) ([]domain.Gain, error) {
	pocket := domain.Pocket{Account: t.Account, Security: t.Security}
	adjusted, unaffected, gains := AdjustBasis(p.Position(pocket), t, LongAsOf(t.Date), t.Cash)
	if len(adjusted) == 0 {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     "no long lots open to absorb the distribution",
		}
	}
	p.SetPosition(pocket, append(adjusted, unaffected...))
	return gains, nil
}

func bookSplit(p *domain.Portfolio, t domain.Split) ([]domain.Gain, error) {
	if !t.Numerator.IsPositive() || !t.Denominator.IsPositive() {
		return nil, fmt.Errorf("split ratio must be positive, got %s:%s", t.Numerator, t.Denominator)
	}
	pocket := domain.Pocket{Account: t.Account, Security: t.Security}
	position := p.Position(pocket)
	if position == nil {
		return nil, capgains_errors.ErrInconsistent{Transaction: t, Message: "no position to split"}
	}
	ratio := t.Numerator.Div(t.Denominator)
	scaled, unaffected, delta := ScaleUnits(position, OpenAsOf(t.Date), ratio)
	if delta.Sub(t.Units).Abs().GreaterThan(tolerance) {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     fmt.Sprintf("position responded to %s:%s split with unit delta %s, transaction reports %s", t.Numerator, t.Denominator, delta, t.Units),
		}
	}
	p.SetPosition(pocket, append(scaled, unaffected...))
	return nil, nil
}

func bookTransfer(p *domain.Portfolio, t domain.Transfer, sorter Sorter) ([]domain.Gain, error) {
	if t.Units.IsZero() || t.FromUnits.IsZero() || t.Units.IsPositive() == t.FromUnits.IsPositive() {
		return nil, errors.New("transfer units and fromunits must be nonzero and oppositely signed")
	}
	source := domain.Pocket{Account: t.FromAccount, Security: t.FromSecurity}
	sourcePosition := p.Position(source)
	if sourcePosition == nil {
		return nil, capgains_errors.ErrInconsistent{Transaction: t, Message: "no position in source pocket"}
	}
	sorter(sourcePosition)

	wanted := t.FromUnits.Neg()
	moved, remaining := PartUnits(sourcePosition, OpenAsOf(t.Date), &wanted)
	if moved.Units().Sub(wanted).Abs().GreaterThan(tolerance) {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     fmt.Sprintf("source pocket holds %s open units, transfer removes %s", moved.Units(), wanted),
		}
	}

	ratio := t.Units.Div(t.FromUnits).Neg()
	dest := domain.Pocket{Account: t.Account, Security: t.Security}
	destPosition := p.Position(dest)
	var gains []domain.Gain
	for _, lot := range moved {
		var g []domain.Gain
		var err error
		destPosition, g, err = matchUnits(destPosition, t, sorter, lot.Units.Mul(ratio), lot.Cost().Neg(), lot.Currency, lot.OpenTransaction)
		if err != nil {
			return nil, err
		}
		gains = append(gains, g...)
	}

	p.SetPosition(source, remaining)
	p.SetPosition(dest, destPosition)
	return gains, nil
}

func bookSpinoff(p *domain.Portfolio, t domain.Spinoff, sorter Sorter) ([]domain.Gain, error) {
	if !t.Numerator.IsPositive() || !t.Denominator.IsPositive() {
		return nil, fmt.Errorf("spinoff ratio must be positive, got %s:%s", t.Numerator, t.Denominator)
	}
	source := domain.Pocket{Account: t.Account, Security: t.FromSecurity}
	sourcePosition := p.Position(source)
	if sourcePosition == nil {
		return nil, capgains_errors.ErrInconsistent{Transaction: t, Message: "no position in source pocket"}
	}

	spun, retained, err := PartBasis(sourcePosition, OpenAsOf(t.Date), spinoffCostFraction(t))
	if err != nil {
		return nil, err
	}
	ratio := t.Numerator.Div(t.Denominator)
	if spun.Units().Mul(ratio).Sub(t.Units).Abs().GreaterThan(tolerance) {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     fmt.Sprintf("source units %s scale to %s spun-off units, transaction reports %s", spun.Units(), spun.Units().Mul(ratio), t.Units),
		}
	}

	dest := domain.Pocket{Account: t.Account, Security: t.Security}
	destPosition := p.Position(dest)
	var gains []domain.Gain
	for _, lot := range spun {
		var g []domain.Gain
		destPosition, g, err = matchUnits(destPosition, t, sorter, lot.Units.Mul(ratio), lot.Cost().Neg(), lot.Currency, lot.OpenTransaction)
		if err != nil {
			return nil, err
		}
		gains = append(gains, g...)
	}

	p.SetPosition(source, retained)
	p.SetPosition(dest, destPosition)
	return gains, nil
}

// spinoffCostFraction is the share of source-lot basis that follows the
// spun-off shares: FMV of the shares received over that plus the FMV of the
// source shares they came from. Zero when either price is unknown, leaving
// all basis with the source position.
func spinoffCostFraction(t domain.Spinoff) decimal.Decimal {
	if t.SecurityPrice == nil || t.FromSecurityPrice == nil {
		return decimal.Zero
	}
	spunFMV := t.SecurityPrice.Mul(t.Units)
	sourceFMV := t.FromSecurityPrice.Mul(t.Units).Mul(t.Denominator).Div(t.Numerator)
	total := spunFMV.Add(sourceFMV)
	if total.IsZero() {
		return decimal.Zero
	}
	return spunFMV.Div(total)
}

func bookExercise(p *domain.Portfolio, t domain.Exercise, sorter Sorter) ([]domain.Gain, error) {
	if t.Units.IsZero() || t.FromUnits.IsZero() {
		return nil, errors.New("exercise units and fromunits must be nonzero")
	}
	source := domain.Pocket{Account: t.Account, Security: t.FromSecurity}
	sourcePosition := p.Position(source)
	sorter(sourcePosition)

	wanted := t.FromUnits.Neg()
	exercised, remaining := PartUnits(sourcePosition, OpenAsOf(t.Date), &wanted)
	if exercised.Units().Sub(wanted).Abs().GreaterThan(tolerance) {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     fmt.Sprintf("option pocket holds %s open units, exercise removes %s", exercised.Units(), wanted),
		}
	}

	// The net exercise cash spreads over every exercised lot. Writing an
	// option lot's basis down past zero means the broker reported more
	// cash than the lots ever cost, which is ledger corruption rather
	// than a realizable gain.
	adjusted, unaffected, gains := AdjustBasis(exercised, t, nil, t.Cash)
	if len(unaffected) > 0 || len(gains) > 0 {
		return nil, capgains_errors.ErrInconsistent{
			Transaction: t,
			Message:     "exercise cash exceeds the basis of the exercised lots",
		}
	}

	ratio := t.Units.Div(t.FromUnits).Abs()
	dest := domain.Pocket{Account: t.Account, Security: t.Security}
	destPosition := p.Position(dest)
	var out []domain.Gain
	for _, lot := range adjusted {
		var g []domain.Gain
		var err error
		destPosition, g, err = matchUnits(destPosition, t, sorter, lot.Units.Mul(ratio), lot.Cost().Neg(), lot.Currency, lot.OpenTransaction)
		if err != nil {
			return nil, err
		}
		out = append(out, g...)
	}

	p.SetPosition(source, remaining)
	p.SetPosition(dest, destPosition)
	return out, nil
}
