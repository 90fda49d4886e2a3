package inventory

import (
	"testing"

	"capgains/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSorters(t *testing.T) {
	early := trade("a", day(1), 100, -1000)
	late := trade("b", day(5), 100, -500)
	sameDay := trade("c", day(5), 100, -2000)

	position := func() domain.Position {
		return domain.Position{
			lotFrom(late, 100, 5),
			lotFrom(early, 100, 10),
			lotFrom(sameDay, 100, 20),
		}
	}

	t.Run("fifo orders by open date then id", func(t *testing.T) {
		p := position()
		FIFO(p)
		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(early, 100, 10),
			lotFrom(late, 100, 5),
			lotFrom(sameDay, 100, 20),
		}, p))
	})

	t.Run("lifo is the exact reversal of fifo", func(t *testing.T) {
		p, q := position(), position()
		FIFO(p)
		reverse(p)
		LIFO(q)
		require.Equal(t, "", cmp.Diff(p, q))
	})

	t.Run("maxgain orders by ascending price", func(t *testing.T) {
		p := position()
		MaxGain(p)
		require.Equal(t, "", cmp.Diff(domain.Position{
			lotFrom(late, 100, 5),
			lotFrom(early, 100, 10),
			lotFrom(sameDay, 100, 20),
		}, p))
	})

	t.Run("mingain is the exact reversal of maxgain", func(t *testing.T) {
		p, q := position(), position()
		MaxGain(p)
		reverse(p)
		MinGain(q)
		require.Equal(t, "", cmp.Diff(p, q))
	})
}

// When lots tie on every sort key, stable FIFO keeps input order and LIFO
// reverses it, so LIFO over a reversed lot list must realize the same gains
// as FIFO over the original.
func TestLIFODualToFIFO(t *testing.T) {
	open := trade("a", day(1), 150, -2250)
	sell := trade("d", day(10), -150, 3000)

	forward := domain.Position{
		lotFrom(open, 100, 10),
		lotFrom(open, 100, 15),
		lotFrom(open, 100, 20),
	}
	backward := domain.Position{
		lotFrom(open, 100, 20),
		lotFrom(open, 100, 15),
		lotFrom(open, 100, 10),
	}
	pocket := domain.Pocket{Account: "ACCT-1", Security: "XYZ"}

	p := domain.NewPortfolio()
	p.SetPosition(pocket, forward)
	fifoGains, err := Book(p, sell, FIFO)
	require.NoError(t, err)

	q := domain.NewPortfolio()
	q.SetPosition(pocket, backward)
	lifoGains, err := Book(q, sell, LIFO)
	require.NoError(t, err)

	require.Equal(t, "", cmp.Diff(fifoGains, lifoGains))
}

func TestParseSorter(t *testing.T) {
	for _, name := range []string{"", "fifo", "lifo", "maxgain", "mingain"} {
		sorter, err := ParseSorter(name)
		require.NoError(t, err, name)
		require.NotNil(t, sorter, name)
	}
	_, err := ParseSorter("hifo")
	require.Error(t, err)
}
