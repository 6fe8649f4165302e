package revue

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Config carries the tunables of the reconciliation and of the monthly
// summary. Zero values are replaced by the defaults of DefaultConfig.
type Config struct {
	// Threshold is the materiality floor: an absolute cross-source delta at
	// or below it is never reported as a variance, regardless of relative
	// size. Default 1.00 currency unit. The floor is absolute and does not
	// scale with account magnitude.
	Threshold Amount
	// Tolerance bounds the rounding noise accepted by the debit=credit
	// self-consistency checks. Default 0.01.
	Tolerance Amount
	// TopN is the number of largest ledger entries singled out by the
	// monthly summary. Default 10.
	TopN int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Threshold: A(decimal.New(100, -2)), // 1.00
		Tolerance: A(decimal.New(1, -2)),   // 0.01
		TopN:      10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Threshold.IsZero() {
		c.Threshold = d.Threshold
	}
	if c.Tolerance.IsZero() {
		c.Tolerance = d.Tolerance
	}
	if c.TopN == 0 {
		c.TopN = d.TopN
	}
	return c
}

// AccountTotals are the debit and credit sums of one account in one source.
type AccountTotals struct {
	Label  string
	Debit  Amount
	Credit Amount
}

// Net returns debit - credit.
func (t AccountTotals) Net() Amount { return t.Debit.Sub(t.Credit) }

// Status classifies one account of the reconciliation.
type Status int

const (
	// Balanced: present in both sources, |delta| within the threshold.
	Balanced Status = iota
	// Variance: present in both sources, |delta| above the threshold.
	Variance
	// MissingInBalance: the account appears only in the ledger.
	MissingInBalance
	// MissingInLedger: the account appears only in the balance.
	MissingInLedger
)

func (s Status) String() string {
	switch s {
	case Balanced:
		return "balanced"
	case Variance:
		return "variance"
	case MissingInBalance:
		return "missing-in-balance"
	case MissingInLedger:
		return "missing-in-ledger"
	default:
		return "unknown"
	}
}

// AccountCheck is the cross-source comparison of one account.
type AccountCheck struct {
	Account string
	Label   string
	Status  Status
	Balance AccountTotals // zero when missing in the balance
	Ledger  AccountTotals // zero when missing in the ledger
	Delta   Amount        // ledger net - balance net
}

// AbsDelta returns |Delta|.
func (c AccountCheck) AbsDelta() Amount { return c.Delta.Abs() }

// RelativeDelta returns Delta relative to the balance-side net, or zero when
// the balance side is zero.
func (c AccountCheck) RelativeDelta() decimal.Decimal {
	if c.Balance.Net().IsZero() {
		return decimal.Decimal{}
	}
	return c.Delta.Div(c.Balance.Net())
}

// SourceTotals are the aggregate debits and credits of one whole source.
type SourceTotals struct {
	Debit    Amount
	Credit   Amount
	Accounts int // distinct account codes
	Entries  int // rows (balance) or accounting entries (ledger)
}

// Gap returns debit - credit; zero for a self-consistent source.
func (t SourceTotals) Gap() Amount { return t.Debit.Sub(t.Credit) }

// Balanced reports whether the source passes the debit=credit self-check
// within the given tolerance.
func (t SourceTotals) Balanced(tolerance Amount) bool {
	return t.Gap().Abs().LessOrEqual(tolerance)
}

// Reconciliation is the full cross-check of a trial balance against a general
// ledger. It is a pure function of its two inputs and the configuration:
// reconciling the same inputs twice yields identical results.
type Reconciliation struct {
	Config Config

	BalanceTotals SourceTotals
	LedgerTotals  SourceTotals

	// Accounts holds one check per account code present in either source,
	// sorted by ascending account code.
	Accounts []AccountCheck

	// Discrepancies holds the checks whose status is not Balanced, ordered
	// by descending absolute delta, ties broken by ascending account code.
	Discrepancies []AccountCheck
}

// GlobalGap returns the difference between the net position of the balance
// and the net position of the ledger.
func (r *Reconciliation) GlobalGap() Amount {
	return r.BalanceTotals.Gap().Sub(r.LedgerTotals.Gap())
}

// Coherent reports whether the two sources agree on the global net position
// within the configured tolerance.
func (r *Reconciliation) Coherent() bool {
	return r.GlobalGap().Abs().LessOrEqual(r.Config.Tolerance)
}

// Variances returns the discrepancies classified as cross-source variances.
func (r *Reconciliation) Variances() []AccountCheck {
	return r.byStatus(Variance)
}

// MissingInBalance returns the accounts present only in the ledger.
func (r *Reconciliation) MissingInBalance() []AccountCheck {
	return r.byStatus(MissingInBalance)
}

// MissingInLedger returns the accounts present only in the balance.
func (r *Reconciliation) MissingInLedger() []AccountCheck {
	return r.byStatus(MissingInLedger)
}

func (r *Reconciliation) byStatus(s Status) []AccountCheck {
	var checks []AccountCheck
	for _, c := range r.Discrepancies {
		if c.Status == s {
			checks = append(checks, c)
		}
	}
	return checks
}

// Reconcile cross-checks the trial balance against the general ledger.
func Reconcile(balance *Balance, ledger *Ledger, cfg Config) *Reconciliation {
	cfg = cfg.withDefaults()

	r := &Reconciliation{Config: cfg}

	for _, e := range balance.Entries() {
		r.BalanceTotals.Debit = r.BalanceTotals.Debit.Add(e.Debit)
		r.BalanceTotals.Credit = r.BalanceTotals.Credit.Add(e.Credit)
	}
	r.BalanceTotals.Accounts = balance.Len()
	r.BalanceTotals.Entries = balance.Len()

	for _, e := range ledger.Entries() {
		r.LedgerTotals.Debit = r.LedgerTotals.Debit.Add(e.Debit)
		r.LedgerTotals.Credit = r.LedgerTotals.Credit.Add(e.Credit)
	}
	r.LedgerTotals.Entries = ledger.Len()

	balanceSide := balance.Aggregate()
	ledgerSide := ledger.Aggregate()
	r.LedgerTotals.Accounts = len(ledgerSide)

	accounts := make([]string, 0, len(balanceSide)+len(ledgerSide))
	for account := range balanceSide {
		accounts = append(accounts, account)
	}
	for account := range ledgerSide {
		if _, both := balanceSide[account]; !both {
			accounts = append(accounts, account)
		}
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		bt, inBalance := balanceSide[account]
		lt, inLedger := ledgerSide[account]

		check := AccountCheck{
			Account: account,
			Balance: bt,
			Ledger:  lt,
			Delta:   lt.Net().Sub(bt.Net()),
		}
		switch {
		case inBalance && !inLedger:
			check.Status = MissingInLedger
			check.Label = bt.Label
		case inLedger && !inBalance:
			check.Status = MissingInBalance
			check.Label = lt.Label
		case check.Delta.Abs().LessOrEqual(cfg.Threshold):
			check.Status = Balanced
			check.Label = firstLabel(bt.Label, lt.Label)
		default:
			check.Status = Variance
			check.Label = firstLabel(bt.Label, lt.Label)
		}
		r.Accounts = append(r.Accounts, check)
		if check.Status != Balanced {
			r.Discrepancies = append(r.Discrepancies, check)
		}
	}

	// Reviewer-friendly deterministic order: largest absolute delta first,
	// ties by ascending account code.
	sort.SliceStable(r.Discrepancies, func(i, j int) bool {
		a, b := r.Discrepancies[i], r.Discrepancies[j]
		if cmp := a.AbsDelta().Cmp(b.AbsDelta()); cmp != 0 {
			return cmp > 0
		}
		return strings.Compare(a.Account, b.Account) < 0
	})

	return r
}

func firstLabel(labels ...string) string {
	for _, l := range labels {
		if l != "" {
			return l
		}
	}
	return ""
}
