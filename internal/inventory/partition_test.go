package inventory

import (
	"testing"

	"capgains/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPartUnits(t *testing.T) {
	open := trade("t1", day(1), 100, -1000)
	position := domain.Position{
		lotFrom(open, 40, 10),
		lotFrom(open, 30, 11),
		lotFrom(open, 30, 12),
	}

	t.Run("no cap takes every match whole", func(t *testing.T) {
		matched, unmatched := PartUnits(position, nil, nil)
		require.Equal(t, "", cmp.Diff(position, matched))
		require.Empty(t, unmatched)
	})

	t.Run("cap splits the lot it lands in", func(t *testing.T) {
		max := dec(55)
		matched, unmatched := PartUnits(position, nil, &max)

		expectedMatched := domain.Position{
			lotFrom(open, 40, 10),
			lotFrom(open, 15, 11),
		}
		expectedUnmatched := domain.Position{
			lotFrom(open, 15, 11),
			lotFrom(open, 30, 12),
		}
		require.Equal(t, "", cmp.Diff(expectedMatched, matched))
		require.Equal(t, "", cmp.Diff(expectedUnmatched, unmatched))

		// conservation: matched + unmatched hold exactly the input units
		total := matched.Units().Add(unmatched.Units())
		require.True(t, total.Equal(position.Units()), total)
	})

	t.Run("predicate takes priority over the cap", func(t *testing.T) {
		max := dec(100)
		skipFirst := func(lot domain.Lot) bool { return !lot.Price.Equal(dec(10)) }
		matched, unmatched := PartUnits(position, skipFirst, &max)

		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(open, 30, 11),
			lotFrom(open, 30, 12),
		}, matched))
		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(open, 40, 10),
		}, unmatched))
	})

	t.Run("short lots split under a negative cap", func(t *testing.T) {
		short := domain.Position{lotFrom(open, -40, 10)}
		max := dec(-25)
		matched, unmatched := PartUnits(short, nil, &max)

		require.Equal(t, "", cmp.Diff(domain.Position{lotFrom(open, -25, 10)}, matched))
		require.Equal(t, "", cmp.Diff(domain.Position{lotFrom(open, -15, 10)}, unmatched))
	})
}

func TestPartBasis(t *testing.T) {
	open := trade("t1", day(1), 100, -1000)

	t.Run("fraction outside [0,1] fails", func(t *testing.T) {
		_, _, err := PartBasis(domain.Position{lotFrom(open, 10, 10)}, nil, dec(1.5))
		require.Error(t, err)
		_, _, err = PartBasis(domain.Position{lotFrom(open, 10, 10)}, nil, dec(-0.1))
		require.Error(t, err)
	})

	t.Run("cost conserves across the split", func(t *testing.T) {
		position := domain.Position{
			lotFrom(open, 40, 10),
			lotFrom(open, 30, 12),
		}
		matched, unmatched, err := PartBasis(position, nil, dec(0.25))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(open, 40, 2.5),
			lotFrom(open, 30, 3),
		}, matched))
		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(open, 40, 7.5),
			lotFrom(open, 30, 9),
		}, unmatched))

		total := matched.Cost().Add(unmatched.Cost())
		require.True(t, total.Equal(position.Cost()), total)
	})

	t.Run("non-matching lots pass through unmodified", func(t *testing.T) {
		position := domain.Position{lotFrom(open, 40, 10)}
		nothing := func(domain.Lot) bool { return false }
		matched, unmatched, err := PartBasis(position, nothing, dec(0.5))
		require.NoError(t, err)
		require.Empty(t, matched)
		require.Equal(t, "", cmp.Diff(position, unmatched))
	})
}

func TestAdjustBasis(t *testing.T) {
	open := trade("t1", day(1), 100, -1000)

	t.Run("writes basis down pro rata", func(t *testing.T) {
		position := domain.Position{
			lotFrom(open, 60, 10),
			lotFrom(open, 40, 20),
		}
		roc := domain.ReturnOfCapital{
			TransactionBase: domain.TransactionBase{ID: "roc", Date: day(5), Account: "ACCT-1", Security: "XYZ"},
			Cash:            dec(100),
			Currency:        "USD",
		}
		adjusted, unaffected, gains := AdjustBasis(position, roc, nil, dec(100))
		require.Empty(t, unaffected)
		require.Empty(t, gains)

		// 100 cash over 100 units takes 1 off every price
		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(open, 60, 9),
			lotFrom(open, 40, 19),
		}, adjusted))
	})

	t.Run("floors price at zero and realizes the excess", func(t *testing.T) {
		position := domain.Position{lotFrom(open, 100, 10)}
		roc := domain.ReturnOfCapital{
			TransactionBase: domain.TransactionBase{ID: "roc", Date: day(5), Account: "ACCT-1", Security: "XYZ"},
			Cash:            dec(1100),
			Currency:        "USD",
		}
		adjusted, _, gains := AdjustBasis(position, roc, nil, dec(1100))

		require.Len(t, gains, 1)
		require.True(t, gains[0].Price.Equal(dec(11)), gains[0].Price)
		require.Equal(t, "", cmp.Diff(position[0], gains[0].Lot))
		require.True(t, adjusted[0].Price.IsZero(), adjusted[0].Price)
	})

	t.Run("no matching lots leaves the position untouched", func(t *testing.T) {
		position := domain.Position{lotFrom(open, -10, 10)}
		roc := domain.ReturnOfCapital{
			TransactionBase: domain.TransactionBase{ID: "roc", Date: day(5), Account: "ACCT-1", Security: "XYZ"},
			Cash:            dec(50),
			Currency:        "USD",
		}
		long := func(lot domain.Lot) bool { return lot.Units.IsPositive() }
		adjusted, unaffected, gains := AdjustBasis(position, roc, long, dec(50))
		require.Empty(t, adjusted)
		require.Empty(t, gains)
		require.Equal(t, "", cmp.Diff(position, unaffected))
	})
}

func TestScaleUnits(t *testing.T) {
	open := trade("t1", day(1), 100, -1000)
	position := domain.Position{
		lotFrom(open, 100, 10),
		lotFrom(open, 50, 8),
	}

	scaled, unaffected, delta := ScaleUnits(position, nil, decimal.NewFromInt(2))
	require.Empty(t, unaffected)
	require.Equal(t, "", cmp.Diff(domain.Position{
		lotFrom(open, 200, 5),
		lotFrom(open, 100, 4),
	}, scaled))
	require.True(t, delta.Equal(dec(150)), delta)

	// cost is invariant under scaling
	require.True(t, scaled.Cost().Equal(position.Cost()))
}
