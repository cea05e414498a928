package model

import (
	"strconv"
	"strings"
)

const DateColumn = "Date"

// InterestIndex maps month -> region -> interest value.
type InterestIndex struct {
	months []string
	values map[string]map[string]float64
}

// NewInterestIndex builds the index in one pass over the rows. Every column
// other than Date is a region. Blank or non numeric cells are left out, so
// they read back as "no data".
func NewInterestIndex(rows []map[string]string) *InterestIndex {
	idx := &InterestIndex{
		values: make(map[string]map[string]float64),
	}

	for _, row := range rows {
		month := strings.TrimSpace(row[DateColumn])
		if month == "" {
			continue
		}

		if _, seen := idx.values[month]; !seen {
			idx.months = append(idx.months, month)
		}

		byRegion := make(map[string]float64, len(row))
		for region, cell := range row {
			if region == DateColumn {
				continue
			}

			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}

			byRegion[region] = v
		}

		// Later rows win, like re-assigning the month in a plain object.
		idx.values[month] = byRegion
	}

	return idx
}

// Months returns the month keys in file order.
func (i *InterestIndex) Months() []string {
	return i.months
}

// Lookup returns ok == false when there is no value for the region in the month.
func (i *InterestIndex) Lookup(month, region string) (float64, bool) {
	byRegion, ok := i.values[month]
	if !ok {
		return 0, false
	}

	v, ok := byRegion[region]
	return v, ok
}
