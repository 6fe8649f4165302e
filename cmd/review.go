package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/revue"
	"github.com/etnz/revue/date"
	"github.com/etnz/revue/renderer"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	balanceFile string
	ledgerFile  string
	outputFile  string
	threshold   float64
	topN        int
	dateFormats string
}

func (*reviewCmd) Name() string { return "review" }

func (*reviewCmd) Synopsis() string {
	return "reconcile a trial balance against a general ledger"
}

func (*reviewCmd) Usage() string {
	return `rvc review -balance <csv> -ledger <csv> [-o <markdown>]

  Loads the two CSV exports, cross-checks them account by account and
  produces the accounting review. Discrepancies are findings, not failures:
  the exit code is non-zero only when a file cannot be loaded.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.balanceFile, "balance", "", "Path to the trial balance CSV export.")
	f.StringVar(&c.ledgerFile, "ledger", "", "Path to the general ledger CSV export.")
	f.StringVar(&c.outputFile, "o", "", "Path of the markdown review to write. Prints to stdout if omitted.")
	f.Float64Var(&c.threshold, "threshold", 1.0, "Materiality floor: smallest absolute delta reported as a variance.")
	f.IntVar(&c.topN, "top", 10, "Number of largest ledger entries to single out.")
	f.StringVar(&c.dateFormats, "date-formats", "", "Comma-separated date layout priority list, in Go reference time notation.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.balanceFile == "" || c.ledgerFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -balance and -ledger are required")
		return subcommands.ExitUsageError
	}

	balance, balanceDiags, err := revue.ReadBalanceFile(c.balanceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	formats := date.DefaultFormats
	if c.dateFormats != "" {
		formats = strings.Split(c.dateFormats, ",")
	}
	ledger, ledgerDiags, err := revue.ReadLedgerFileIn(c.ledgerFile, formats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := revue.DefaultConfig()
	cfg.Threshold = revue.A(c.threshold)
	cfg.TopN = c.topN

	review := revue.NewReview(balance, balanceDiags, ledger, ledgerDiags, cfg)
	md := renderer.ReviewMarkdown(review)

	if err := writeOrPrint(c.outputFile, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
