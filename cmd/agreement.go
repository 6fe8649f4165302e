package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/revue"
	"github.com/etnz/revue/renderer"
	"github.com/google/subcommands"
)

// agreementCmd holds the flags for the 'agreement' subcommand.
type agreementCmd struct {
	termsFile  string
	outputFile string
}

func (*agreementCmd) Name() string { return "agreement" }

func (*agreementCmd) Synopsis() string {
	return "draft a current-account advance agreement"
}

func (*agreementCmd) Usage() string {
	return `rvc agreement -f <terms.json> [-o <markdown>]

  Drafts a boilerplate current-account advance agreement from the parties
  and terms described in a JSON file.
`
}

func (c *agreementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.termsFile, "f", "", "Path to the JSON file describing parties and terms.")
	f.StringVar(&c.outputFile, "o", "", "Path of the markdown agreement to write. Prints to stdout if omitted.")
}

func (c *agreementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.termsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(c.termsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	agreement, err := revue.LoadAgreement(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeOrPrint(c.outputFile, renderer.AgreementMarkdown(agreement)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
