package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/SimonKnogler/finplan"
	"github.com/google/subcommands"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "converts a mobile app JSON export into a plan file"
}
func (*importCmd) Usage() string {
	return `fpl import [-force] <export.json>

  Reads the companion app's JSON export and converts its portfolio snapshot
  and savings plans into plan entries, dated on the export timestamp. The
  result replaces the plan file, which must not exist yet unless -force
  is given.

Usage Examples:
# Start a plan file from an app export.
$ fpl import export.json

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Overwrite an existing plan file.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the app export JSON file.")
		return subcommands.ExitUsageError
	}

	if !p.force {
		if _, err := os.Stat(*planFile); !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: plan file %q already exists, use -force to overwrite it\n", *planFile)
			return subcommands.ExitFailure
		}
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	plan, err := finplan.ImportAppExport(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing export file %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if err := SavePlan(plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Imported %d entries into %s.\n", len(plan.Entries()), *planFile)
	return subcommands.ExitSuccess
}
