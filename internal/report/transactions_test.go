package report

import (
	"strings"
	"testing"
	"time"

	"capgains/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLoadTransactions(t *testing.T) {
	t.Run("parses every transaction kind", func(t *testing.T) {
		in := strings.Join([]string{
			"id,type,date,settle,account,security,units,cash,currency,numerator,denominator,fromaccount,fromsecurity,fromunits,securityprice,fromsecurityprice,memo",
			"t1,Trade,2024-01-02,2024-01-04,ACCT-1,XYZ,100,\"-$1,000.00\",USD,,,,,,,,opening buy",
			"t2,ReturnOfCapital,2024-02-01,,ACCT-1,XYZ,,50,USD,,,,,,,,",
			"t3,Split,2024-03-01,,ACCT-1,XYZ,-90,,,1,10,,,,,,",
			"t4,Transfer,2024-04-01,,ACCT-2,XYZ,10,,,,,ACCT-1,XYZ,-10,,,",
			"t5,Spinoff,2024-05-01,,ACCT-1,SPIN,25,,,1,4,,XYZ,,20,15,",
			"t6,Exercise,2024-06-01,,ACCT-1,XYZ,1000,-950,USD,,,,XYZ 240119C00100000,-10,,,",
		}, "\n")

		txns, err := LoadTransactions(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, txns, 6)

		securityPrice := dec(20)
		fromSecurityPrice := dec(15)
		require.Equal(t, "", cmp.Diff([]domain.Transaction{
			domain.Trade{
				TransactionBase: domain.TransactionBase{
					ID: "t1", Date: mustDate("2024-01-02"), Settle: mustDate("2024-01-04"),
					Account: "ACCT-1", Security: "XYZ", Memo: "opening buy",
				},
				Units: dec(100), Cash: dec(-1000), Currency: "USD",
			},
			domain.ReturnOfCapital{
				TransactionBase: domain.TransactionBase{
					ID: "t2", Date: mustDate("2024-02-01"), Account: "ACCT-1", Security: "XYZ",
				},
				Cash: dec(50), Currency: "USD",
			},
			domain.Split{
				TransactionBase: domain.TransactionBase{
					ID: "t3", Date: mustDate("2024-03-01"), Account: "ACCT-1", Security: "XYZ",
				},
				Numerator: dec(1), Denominator: dec(10), Units: dec(-90),
			},
			domain.Transfer{
				TransactionBase: domain.TransactionBase{
					ID: "t4", Date: mustDate("2024-04-01"), Account: "ACCT-2", Security: "XYZ",
				},
				Units: dec(10), FromAccount: "ACCT-1", FromSecurity: "XYZ", FromUnits: dec(-10),
			},
			domain.Spinoff{
				TransactionBase: domain.TransactionBase{
					ID: "t5", Date: mustDate("2024-05-01"), Account: "ACCT-1", Security: "SPIN",
				},
				Units: dec(25), Numerator: dec(1), Denominator: dec(4), FromSecurity: "XYZ",
				SecurityPrice: &securityPrice, FromSecurityPrice: &fromSecurityPrice,
			},
			domain.Exercise{
				TransactionBase: domain.TransactionBase{
					ID: "t6", Date: mustDate("2024-06-01"), Account: "ACCT-1", Security: "XYZ",
				},
				Units: dec(1000), FromSecurity: "XYZ 240119C00100000", FromUnits: dec(-10),
				Cash: dec(-950), Currency: "USD",
			},
		}, txns))
	})

	t.Run("header casing and spacing are forgiven", func(t *testing.T) {
		in := "Type,Date,Account,Security,Units,Cash,Currency\n" +
			"trade,2024-01-02T09:30:00,ACCT-1,XYZ,100,-1000,USD\n"
		txns, err := LoadTransactions(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, txns, 1)
		trade, ok := txns[0].(domain.Trade)
		require.True(t, ok)
		require.Equal(t, 9, trade.Date.Hour())
	})

	t.Run("missing required column fails", func(t *testing.T) {
		in := "type,date,account\ntrade,2024-01-02,ACCT-1\n"
		_, err := LoadTransactions(strings.NewReader(in))
		require.ErrorContains(t, err, "security")
	})

	t.Run("unknown type names the offending row", func(t *testing.T) {
		in := "type,date,account,security\ndividend,2024-01-02,ACCT-1,XYZ\n"
		_, err := LoadTransactions(strings.NewReader(in))
		require.ErrorContains(t, err, "row 2")
	})

	t.Run("trade without units fails", func(t *testing.T) {
		in := "type,date,account,security,cash,currency\ntrade,2024-01-02,ACCT-1,XYZ,-1000,USD\n"
		_, err := LoadTransactions(strings.NewReader(in))
		require.ErrorContains(t, err, "units")
	})
}
