package revue

// BalanceEntry is one line of a trial balance: the debit and credit totals of
// a single account at a point in time.
type BalanceEntry struct {
	Account string
	Label   string
	Debit   Amount
	Credit  Amount
}

// Net returns the debtor (positive) or creditor (negative) balance.
func (e BalanceEntry) Net() Amount { return e.Debit.Sub(e.Credit) }

// Balance holds the trial balance: exactly one entry per account.
// Duplicate account codes appended to it are merged by summation.
type Balance struct {
	entries []BalanceEntry
	index   map[string]int
}

// NewBalance creates an empty trial balance.
func NewBalance() *Balance {
	return &Balance{index: make(map[string]int)}
}

// Append adds an entry, merging it into an existing entry with the same
// account code. The first non-empty label wins.
func (b *Balance) Append(e BalanceEntry) {
	if i, ok := b.index[e.Account]; ok {
		cur := &b.entries[i]
		cur.Debit = cur.Debit.Add(e.Debit)
		cur.Credit = cur.Credit.Add(e.Credit)
		if cur.Label == "" {
			cur.Label = e.Label
		}
		return
	}
	b.index[e.Account] = len(b.entries)
	b.entries = append(b.entries, e)
}

// Entries returns the entries in file order.
func (b *Balance) Entries() []BalanceEntry { return b.entries }

// Len returns the number of distinct accounts.
func (b *Balance) Len() int { return len(b.entries) }

// Aggregate computes per-account totals. For a well-formed balance this is a
// re-keying of the entries, the merge having happened on Append.
func (b *Balance) Aggregate() map[string]AccountTotals {
	totals := make(map[string]AccountTotals, len(b.entries))
	for _, e := range b.entries {
		totals[e.Account] = AccountTotals{Label: e.Label, Debit: e.Debit, Credit: e.Credit}
	}
	return totals
}
