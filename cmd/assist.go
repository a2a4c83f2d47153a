package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SimonKnogler/finplan/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `assist [initial question]:
  Start an interactive session with the AI assistant. It can read the plan
  file, run projections and tax estimates, and search the web for market
  context.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	planner := agent.NewPlanner(*planFile, *pricesFile)
	advisor := agent.NewTaxAdvisor()
	markets := agent.NewMarkets()
	a := agent.New(os.Stdout, os.Stdin, planner, advisor, markets)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
