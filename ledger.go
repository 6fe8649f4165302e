package revue

import "github.com/etnz/revue/date"

// LedgerEntry is one accounting entry of the general ledger.
type LedgerEntry struct {
	Date        date.Date
	Account     string
	Label       string
	Description string
	Debit       Amount
	Credit      Amount
	Journal     string // optional journal code
	Reference   string // optional piece reference
}

// Net returns the signed amount of the entry (debit - credit).
func (e LedgerEntry) Net() Amount { return e.Debit.Sub(e.Credit) }

// Ledger holds the general ledger entries in file order. Unlike the trial
// balance, several entries per account are expected.
type Ledger struct {
	entries []LedgerEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds entries to the ledger.
func (l *Ledger) Append(entries ...LedgerEntry) {
	l.entries = append(l.entries, entries...)
}

// Entries returns the entries in file order.
func (l *Ledger) Entries() []LedgerEntry { return l.entries }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Aggregate computes per-account debit and credit totals across all entries.
// The first non-empty label seen for an account wins.
func (l *Ledger) Aggregate() map[string]AccountTotals {
	totals := make(map[string]AccountTotals)
	for _, e := range l.entries {
		cur := totals[e.Account]
		cur.Debit = cur.Debit.Add(e.Debit)
		cur.Credit = cur.Credit.Add(e.Credit)
		if cur.Label == "" {
			cur.Label = e.Label
		}
		totals[e.Account] = cur
	}
	return totals
}
