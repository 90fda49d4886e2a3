package inventory

import (
	"sort"

	"capgains/internal/domain"
)

// Replay books a batch of transactions in deterministic order: datetime,
// then unique id. Order decides which lots close first, so replaying the
// same ledger always realizes the same gains. The first error aborts the
// replay; gains booked before it are returned alongside.
func Replay(p *domain.Portfolio, txns []domain.Transaction, sorter Sorter) ([]domain.Gain, error) {
	ordered := make([]domain.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Base(), ordered[j].Base()
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	var gains []domain.Gain
	for _, txn := range ordered {
		g, err := Book(p, txn, sorter)
		if err != nil {
			return gains, err
		}
		gains = append(gains, g...)
	}
	return gains, nil
}
