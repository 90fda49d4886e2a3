package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are accepted on any date column, tried in order.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const outDateLayout = "2006-01-02"

// exportPlaces is the precision of exported share counts and amounts.
const exportPlaces = 4

func determineColumnOrder(headerRow, requiredColumns []string) (map[string]int, error) {
	columnIndices := map[string]int{}
	for i, h := range headerRow {
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.ReplaceAll(h, " ", "_")
		columnIndices[h] = i
	}

	for _, rc := range requiredColumns {
		if _, ok := columnIndices[rc]; !ok {
			return nil, fmt.Errorf("missing required column '%s'", rc)
		}
	}

	return columnIndices, nil
}

// row wraps one csv record with its header mapping.
type row struct {
	record  []string
	columns map[string]int
}

// get returns the named field, or "" when the column is absent.
func (r row) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r row) dec(name string) (decimal.Decimal, error) {
	s := r.get(name)
	if s == "" {
		return decimal.Zero, fmt.Errorf("missing value for column '%s'", name)
	}
	return numberStrToDecimal(s)
}

// optDec returns nil for an empty or absent field.
func (r row) optDec(name string) (*decimal.Decimal, error) {
	s := r.get(name)
	if s == "" {
		return nil, nil
	}
	d, err := numberStrToDecimal(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r row) date(name string) (time.Time, error) {
	s := r.get(name)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing value for column '%s'", name)
	}
	return parseDate(s)
}

// optDate returns the zero time for an empty or absent field.
func (r row) optDate(name string) (time.Time, error) {
	s := r.get(name)
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func numberStrToDecimal(in string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(in, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
