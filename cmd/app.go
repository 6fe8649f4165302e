// Package cmd implements the CLI application to generate accounting reviews.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Commands lists the subcommands of the application.
// A main package registers them and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&reviewCmd{},
	&agreementCmd{},
}

// printMarkdown pretty-prints markdown on a terminal, and falls back to the
// raw text when stdout is redirected or rendering fails.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// writeOrPrint writes the markdown to path, or prints it when path is empty.
func writeOrPrint(path, md string) error {
	if path == "" {
		printMarkdown(md)
		return nil
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	fmt.Printf("Document généré dans %s\n", path)
	return nil
}
