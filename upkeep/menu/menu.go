// Package menu implements the interactive numeric menu. The loop is
// iterative with an explicit exit condition, so arbitrarily long
// sessions cost nothing.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/upkeepops/upkeep/upkeep/workflow"
)

var (
	title   = color.New(color.FgCyan, color.Bold)
	warning = color.New(color.FgHiMagenta)
)

// Run prints the menu, reads one choice per iteration and dispatches to
// the matching workflow. Unrecognized input re-prompts; "0" prints the
// farewell, deletes the scratch file and returns. EOF on input ends the
// loop quietly.
func Run(ctx context.Context, in io.Reader, opts workflow.Options) error {
	scanner := bufio.NewScanner(in)

	for {
		printChoices(opts.Out)

		if !scanner.Scan() {
			return scanner.Err()
		}

		var err error
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			err = workflow.Check(ctx, opts)
		case "2":
			err = workflow.Update(ctx, opts)
		case "3":
			err = workflow.Clean(ctx, opts)
		case "4":
			err = workflow.Full(ctx, opts)
		case "0":
			fmt.Fprintln(opts.Out, "Goodbye!")
			return opts.Scratch.Remove()
		default:
			warning.Fprintln(opts.Out, "Unrecognized choice, try again.")
		}
		if err != nil {
			return err
		}
	}
}

func printChoices(out io.Writer) {
	title.Fprintln(out, "upkeep")
	fmt.Fprintln(out, "  1) Check for updates")
	fmt.Fprintln(out, "  2) Update")
	fmt.Fprintln(out, "  3) Remove orphaned packages")
	fmt.Fprintln(out, "  4) Update and clean")
	fmt.Fprintln(out, "  0) Exit")
	fmt.Fprint(out, "> ")
}
