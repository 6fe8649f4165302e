package revue

// Review is the structured result of one run: the cross-source
// reconciliation, the monthly activity of the ledger, and the skipped-row
// diagnostics of both loads. It is the complete contract consumed by the
// report renderer.
type Review struct {
	Reconciliation *Reconciliation
	Activity       *Activity

	BalanceDiags []Diag
	LedgerDiags  []Diag
}

// NewReview computes a fresh review of the two loaded sources.
func NewReview(balance *Balance, balanceDiags []Diag, ledger *Ledger, ledgerDiags []Diag, cfg Config) *Review {
	cfg = cfg.withDefaults()
	return &Review{
		Reconciliation: Reconcile(balance, ledger, cfg),
		Activity:       Summarize(ledger, cfg.TopN),
		BalanceDiags:   balanceDiags,
		LedgerDiags:    ledgerDiags,
	}
}
