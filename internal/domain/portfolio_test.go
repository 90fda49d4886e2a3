package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func syntheticLot(t *testing.T, account, security string, openDate time.Time, openID string, units, cost float64) (Pocket, Lot) {
	t.Helper()
	pocket, lot, err := SyntheticLot(account, security, openDate, openID, dec(units), dec(cost), "USD")
	require.NoError(t, err)
	return pocket, lot
}

func TestPortfolio(t *testing.T) {
	t.Run("position is a copy", func(t *testing.T) {
		pocket, lot := syntheticLot(t, "ACCT-1", "XYZ", day(1), "l1", 100, 1000)
		p := NewPortfolio()
		p.SetPosition(pocket, Position{lot})

		got := p.Position(pocket)
		got[0] = got[0].WithUnits(dec(1))

		require.Equal(t, "", cmp.Diff(Position{lot}, p.Position(pocket)))
	})

	t.Run("empty and absent pockets read as nil", func(t *testing.T) {
		p := NewPortfolio()
		pocket := Pocket{Account: "ACCT-1", Security: "XYZ"}
		require.Nil(t, p.Position(pocket))

		_, lot := syntheticLot(t, "ACCT-1", "XYZ", day(1), "l1", 100, 1000)
		p.SetPosition(pocket, Position{lot})
		p.SetPosition(pocket, nil)
		require.Nil(t, p.Position(pocket))
		require.Empty(t, p.Pockets())
	})

	t.Run("pockets sort by account then security", func(t *testing.T) {
		p := NewPortfolio()
		for _, key := range []Pocket{
			{Account: "B", Security: "AAA"},
			{Account: "A", Security: "ZZZ"},
			{Account: "A", Security: "AAA"},
		} {
			_, lot := syntheticLot(t, key.Account, key.Security, day(1), "l1", 10, 100)
			p.SetPosition(key, Position{lot})
		}
		require.Equal(t, "", cmp.Diff([]Pocket{
			{Account: "A", Security: "AAA"},
			{Account: "A", Security: "ZZZ"},
			{Account: "B", Security: "AAA"},
		}, p.Pockets()))
	})
}

func TestPosition(t *testing.T) {
	_, long := syntheticLot(t, "ACCT-1", "XYZ", day(1), "l1", 100, 1000)
	_, short := syntheticLot(t, "ACCT-1", "XYZ", day(2), "l2", -40, -200)
	position := Position{long, short}

	require.True(t, position.Units().Equal(dec(60)))
	require.True(t, position.Cost().Equal(dec(800)))
}

func TestSettleDate(t *testing.T) {
	base := TransactionBase{Date: day(2)}
	require.True(t, base.SettleDate().Equal(day(2)))

	base.Settle = day(4)
	require.True(t, base.SettleDate().Equal(day(4)))
}

func TestSyntheticLot(t *testing.T) {
	t.Run("rebuilds price and holding period", func(t *testing.T) {
		pocket, lot := syntheticLot(t, "ACCT-1", "XYZ", day(1), "l1", 100, 1000)
		require.Equal(t, Pocket{Account: "ACCT-1", Security: "XYZ"}, pocket)
		require.True(t, lot.Price.Equal(dec(10)))
		require.True(t, lot.Cost().Equal(dec(1000)))
		require.True(t, lot.OpenDate().Equal(day(1)))
		require.Equal(t, "l1", lot.OpenID())
	})

	t.Run("short lots keep a nonnegative price", func(t *testing.T) {
		_, lot := syntheticLot(t, "ACCT-1", "XYZ", day(1), "l1", -100, -1500)
		require.True(t, lot.Price.Equal(dec(15)))
		require.True(t, lot.Cost().Equal(dec(-1500)))
	})

	t.Run("zero units fail", func(t *testing.T) {
		_, _, err := SyntheticLot("ACCT-1", "XYZ", day(1), "l1", decimal.Zero, dec(100), "USD")
		require.Error(t, err)
	})
}
