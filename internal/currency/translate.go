package currency

import (
	"errors"
	"fmt"
	"time"

	capgains_errors "capgains/internal"
	"capgains/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// longTermHolding is the minimum holding period for long-term treatment.
const longTermHolding = 366 * 24 * time.Hour

// RateSource looks up the historical spot rate multiplying an amount in
// fromCurrency into toCurrency as of a date. Implementations return
// ErrMissingRate when no rate is recorded for the pair on that date.
type RateSource interface {
	Rate(fromCurrency, toCurrency string, asOf time.Time) (decimal.Decimal, error)
}

// MissingRates is a RateSource with no rates at all. It serves replays that
// never leave the functional currency; the first foreign-denominated gain
// fails loudly instead of getting a guessed rate.
type MissingRates struct{}

func (MissingRates) Rate(fromCurrency, toCurrency string, asOf time.Time) (decimal.Decimal, error) {
	return decimal.Zero, capgains_errors.ErrMissingRate{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Date:         asOf,
	}
}

// RealizedGain is a Gain projected into the functional currency, the flat
// shape the reporting layer exports.
type RealizedGain struct {
	Account  string
	Security string
	OpenDate time.Time
	GainDate time.Time
	Units    decimal.Decimal
	// Currency is the functional currency Cost and Proceeds are stated in.
	Currency string
	Cost     decimal.Decimal
	Proceeds decimal.Decimal
	LongTerm bool
}

// Realized is proceeds minus cost.
func (g RealizedGain) Realized() decimal.Decimal {
	return g.Proceeds.Sub(g.Cost)
}

// Translator converts Gains into a single reporting currency. The currency
// is an explicit constructor argument, never ambient configuration.
type Translator struct {
	source     RateSource
	functional string
}

func NewTranslator(source RateSource, functional string) (*Translator, error) {
	if money.GetCurrency(functional) == nil {
		return nil, fmt.Errorf("unknown functional currency %q", functional)
	}
	return &Translator{source: source, functional: functional}, nil
}

// TranslateGain converts a Gain's cost and proceeds into the functional
// currency and classifies the holding period. Per the governing tax rule
// each leg translates at the spot rate of its own settlement date: cost at
// the opening transaction's, proceeds at the realizing transaction's.
func (t *Translator) TranslateGain(g domain.Gain) (*RealizedGain, error) {
	base := g.Transaction.Base()

	costRate, err := t.rate(g.Lot.Currency, g.Lot.OpenTransaction.Base().SettleDate())
	if err != nil {
		return nil, err
	}
	proceedsRate, err := t.rate(g.Currency(), base.SettleDate())
	if err != nil {
		return nil, err
	}

	// Short positions never qualify as long-term, regardless of how long
	// the short stayed open.
	longTerm := g.Lot.Units.IsPositive() &&
		g.Date().Sub(g.Lot.OpenDate()) >= longTermHolding

	return &RealizedGain{
		Account:  base.Account,
		Security: base.Security,
		OpenDate: g.Lot.OpenDate(),
		GainDate: g.Date(),
		Units:    g.Lot.Units,
		Currency: t.functional,
		Cost:     g.Cost().Mul(costRate),
		Proceeds: g.Proceeds().Mul(proceedsRate),
		LongTerm: longTerm,
	}, nil
}

// TranslateGains translates a batch, failing on the first gain whose rates
// are unavailable.
func (t *Translator) TranslateGains(gains []domain.Gain) ([]RealizedGain, error) {
	out := make([]RealizedGain, 0, len(gains))
	for _, g := range gains {
		translated, err := t.TranslateGain(g)
		if err != nil {
			return nil, err
		}
		out = append(out, *translated)
	}
	return out, nil
}

// rate resolves the spot rate from a currency into the functional currency.
// When the direct pair is absent it falls back to the reciprocal of the
// inverse pair; when neither exists the missing-rate error propagates.
func (t *Translator) rate(currency string, asOf time.Time) (decimal.Decimal, error) {
	if money.GetCurrency(currency) == nil {
		return decimal.Zero, fmt.Errorf("unknown currency code %q", currency)
	}
	if currency == t.functional {
		return decimal.NewFromInt(1), nil
	}
	direct, err := t.source.Rate(currency, t.functional, asOf)
	if err == nil {
		return direct, nil
	}
	var missing capgains_errors.ErrMissingRate
	if !errors.As(err, &missing) {
		return decimal.Zero, err
	}
	inverse, inverseErr := t.source.Rate(t.functional, currency, asOf)
	if inverseErr != nil || inverse.IsZero() {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(1).Div(inverse), nil
}
