// Package cmd implements the CLI application to work on financial plans.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/SimonKnogler/finplan"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range commandGroups {
		for _, cmd := range group.commands {
			c.Register(cmd, group.name)
		}
	}
}

var commandGroups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"plan", []subcommands.Command{&holdCmd{}, &contributeCmd{}, &expectCmd{}, &fmtCmd{}, &importCmd{}, &holdingsCmd{}, &plansCmd{}}},
	{"reports", []subcommands.Command{&analyzeCmd{}, &projectCmd{}, &taxCmd{}, &contributionsCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}, &assistCmd{}}},
}

// Known reports whether name is one of the registered subcommands, so that
// the main package can fall back to extensions for everything else.
func Known(name string) bool {
	for _, group := range commandGroups {
		for _, cmd := range group.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var planFile = flag.String("plan-file", "plan.jsonl", "Path to the plan file (JSONL format)")
var pricesFile = flag.String("prices-file", "prices.jsonl", "Path to the monthly close prices file (JSONL format)")

// DecodePlanFile decodes the plan from the app default plan file.
// A missing file is an empty plan, not an error.
func DecodePlanFile() (*finplan.Plan, error) {
	f, err := os.Open(*planFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, plan file %q does not exist, starting from an empty plan", *planFile)
		return finplan.NewPlan(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", *planFile, err)
	}
	defer f.Close()

	plan, err := finplan.DecodePlan(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", *planFile, err)
	}
	return plan, nil
}

// DecodePriceSeries decodes the monthly close series from the app default
// prices file, one chronological series per symbol.
func DecodePriceSeries() (map[string][]finplan.PricePoint, error) {
	f, err := os.Open(*pricesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open prices file %q: %w", *pricesFile, err)
	}
	defer f.Close()

	series, err := finplan.DecodePrices(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode prices file %q: %w", *pricesFile, err)
	}
	return series, nil
}

// AppendEntries validates entries and appends them to the app default plan
// file. Validation may default fields (like the date), so the validated copy
// is what gets written.
func AppendEntries(entries ...finplan.Entry) subcommands.ExitStatus {
	for i, e := range entries {
		v, err := e.Validate()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		entries[i] = v
	}

	f, err := os.OpenFile(*planFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plan file %q: %v\n", *planFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, e := range entries {
		if err := finplan.EncodeEntry(f, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to plan file %q: %v\n", *planFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d entries to %s\n", len(entries), *planFile)
	return subcommands.ExitSuccess
}

// SavePlan rewrites the app default plan file in canonical form.
func SavePlan(plan *finplan.Plan) error {
	var buf bytes.Buffer
	if err := finplan.EncodePlan(&buf, plan); err != nil {
		return fmt.Errorf("could not encode plan: %w", err)
	}
	if err := os.WriteFile(*planFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write plan file %q: %w", *planFile, err)
	}
	return nil
}

// printMarkdown renders a markdown report to stdout, through glamour when
// stdout is a terminal, plain otherwise so that output stays scriptable.
func printMarkdown(md string) {
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
