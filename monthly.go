package revue

import (
	"sort"
	"strings"

	"github.com/etnz/revue/date"
)

// MonthlyTotals are the aggregates of one calendar month of ledger activity.
type MonthlyTotals struct {
	Month   date.Month
	Debit   Amount
	Credit  Amount
	Entries int
}

// Net returns debit - credit for the month.
func (t MonthlyTotals) Net() Amount { return t.Debit.Sub(t.Credit) }

// Activity is the monthly breakdown of the general ledger.
type Activity struct {
	// Months holds one totals row per calendar month with activity,
	// in chronological order.
	Months []MonthlyTotals
	// Top holds the topN entries of the whole period by descending
	// absolute signed amount.
	Top []LedgerEntry
	// Undated counts entries without a usable date. They are excluded from
	// the monthly grouping but never silently dropped.
	Undated int
}

// Summarize groups the ledger entries by calendar month and singles out the
// topN largest entries of the period. topN values below one fall back to the
// default of DefaultConfig.
func Summarize(ledger *Ledger, topN int) *Activity {
	if topN < 1 {
		topN = DefaultConfig().TopN
	}

	activity := &Activity{}
	byMonth := make(map[date.Month]MonthlyTotals)
	for _, e := range ledger.Entries() {
		if e.Date.IsZero() {
			activity.Undated++
			continue
		}
		key := e.Date.YearMonth()
		cur := byMonth[key]
		cur.Month = key
		cur.Debit = cur.Debit.Add(e.Debit)
		cur.Credit = cur.Credit.Add(e.Credit)
		cur.Entries++
		byMonth[key] = cur
	}

	for _, totals := range byMonth {
		activity.Months = append(activity.Months, totals)
	}
	sort.Slice(activity.Months, func(i, j int) bool {
		return activity.Months[i].Month.Before(activity.Months[j].Month)
	})

	top := make([]LedgerEntry, len(ledger.Entries()))
	copy(top, ledger.Entries())
	sort.SliceStable(top, func(i, j int) bool {
		a, b := top[i], top[j]
		if cmp := a.Net().Abs().Cmp(b.Net().Abs()); cmp != 0 {
			return cmp > 0
		}
		if cmp := a.Date.Compare(b.Date); cmp != 0 {
			return cmp < 0
		}
		return strings.Compare(a.Account, b.Account) < 0
	})
	if len(top) > topN {
		top = top[:topN]
	}
	activity.Top = top

	return activity
}
