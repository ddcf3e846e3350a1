// Package workflow sequences the four top-level operations: check,
// update, clean and full. Each workflow is a fixed synchronous
// sequence of manager-adapter calls.
//
// Subprocess failures inside a workflow are deliberately suppressed:
// the tool optimistically runs every step regardless of individual
// command outcomes, matching the behavior of the managers' own
// "best effort" upgrade paths. Suppressed failures are aggregated and
// logged at debug level. Only scratch-file I/O errors abort a workflow.
package workflow

import (
	"context"
	"fmt"
	"io"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/upkeepops/upkeep/logger"
	"github.com/upkeepops/upkeep/upkeep/changelog"
	"github.com/upkeepops/upkeep/upkeep/packagemanager"
	"github.com/upkeepops/upkeep/upkeep/scratch"
)

// UpdateLabel is the header label written to the changelog.
const UpdateLabel = "System update"

// Options carries everything a workflow needs, threaded explicitly
// rather than held in package state.
type Options struct {
	Manager packagemanager.Manager
	Scratch *scratch.File
	Log     *changelog.Writer // nil when logging is off
	Out     io.Writer
}

// Check refreshes the package database and prints the pending-update
// list, or a message when nothing is pending.
func Check(ctx context.Context, opts Options) error {
	var suppressed *multierror.Error

	if err := opts.Manager.Refresh(ctx); err != nil {
		suppressed = multierror.Append(suppressed, err)
	}

	lines, err := opts.Manager.PendingUpdates(ctx)
	if err != nil {
		suppressed = multierror.Append(suppressed, err)
	}

	if err := opts.Scratch.Write(lines); err != nil {
		return err
	}
	count, err := opts.Scratch.Count()
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(opts.Out, "No pending updates.")
	} else {
		fmt.Fprintf(opts.Out, "%d pending updates:\n", count)
		for _, line := range lines {
			fmt.Fprintln(opts.Out, line)
		}
	}

	logSuppressed("check", suppressed)
	return nil
}

// Update refreshes the database, records the pending updates to the
// changelog when logging is on, and applies all updates.
func Update(ctx context.Context, opts Options) error {
	var suppressed *multierror.Error

	if err := opts.Manager.Refresh(ctx); err != nil {
		suppressed = multierror.Append(suppressed, err)
	}

	if opts.Log != nil {
		lines, err := opts.Manager.PendingUpdates(ctx)
		if err != nil {
			suppressed = multierror.Append(suppressed, err)
		}

		if err := opts.Scratch.Write(lines); err != nil {
			return err
		}
		// The count and the logged lines come from the scratch file,
		// not from memory; its line count is the pending count.
		recorded, err := opts.Scratch.Lines()
		if err != nil {
			return err
		}
		if err := opts.Log.Append(UpdateLabel, recorded); err != nil {
			return err
		}
	}

	if err := opts.Manager.ApplyUpdates(ctx); err != nil {
		suppressed = multierror.Append(suppressed, err)
	}

	fmt.Fprintln(opts.Out, "Update complete.")
	logSuppressed("update", suppressed)
	return nil
}

// Clean removes orphaned packages.
func Clean(ctx context.Context, opts Options) error {
	var suppressed *multierror.Error

	if err := opts.Manager.RemoveOrphans(ctx); err != nil {
		suppressed = multierror.Append(suppressed, err)
	}

	fmt.Fprintln(opts.Out, "Cleanup complete.")
	logSuppressed("clean", suppressed)
	return nil
}

// Full runs the update sequence followed by the clean sequence.
func Full(ctx context.Context, opts Options) error {
	if err := Update(ctx, opts); err != nil {
		return err
	}
	return Clean(ctx, opts)
}

func logSuppressed(workflow string, errs *multierror.Error) {
	if errs.ErrorOrNil() == nil {
		return
	}
	logger.L.WithField("workflow", workflow).
		Debugf("completed with suppressed failures: %v", errs)
}
