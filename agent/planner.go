package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/SimonKnogler/finplan"
	"github.com/SimonKnogler/finplan/cache"
	"github.com/SimonKnogler/finplan/docs"
	"github.com/SimonKnogler/finplan/renderer"
	"google.golang.org/genai"
)

// planTTL bounds how stale the planner's view of the plan file may get
// within one conversation.
const planTTL = 30 * time.Second

// NewPlanner creates the expert in charge of the user's plan file: current
// holdings, savings plans, projections and measured returns.
func NewPlanner(planFile, pricesFile string) *Expert {
	p := &planner{
		planFile:   planFile,
		pricesFile: pricesFile,
		plans:      cache.New[string, *finplan.Plan](),
	}
	lib := []Function{p.holdingsFunc(), p.projectionFunc(), p.analysisFunc()}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's plan file.
		He can list the current holdings and savings plans, project the portfolio's growth
		over the years, and measure historical returns from the price history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial planner in charge of the user's plan file.
				You know how to use the Tools to extract relevant information about the user's
				holdings, savings plans and growth expectations.
				You are part of a team of experts, yours is everything about the user's plan. They
				might ask you questions about it, pardon their approximative language and figure
				out what they meant.

				Use the available tools to get information about the user's plan
				  - current holdings and savings plans
				  - projections of future growth
				  - measured historical returns
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

type planner struct {
	planFile   string
	pricesFile string
	plans      *cache.Cache[string, *finplan.Plan]
}

// plan decodes the plan file, memoized briefly so that one answer does not
// decode the same file once per function call.
func (p *planner) plan() (*finplan.Plan, error) {
	if plan, ok := p.plans.Get(p.planFile); ok {
		return plan, nil
	}

	f, err := os.Open(p.planFile)
	if errors.Is(err, fs.ErrNotExist) {
		return finplan.NewPlan(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open plan file %q: %w", p.planFile, err)
	}
	defer f.Close()

	plan, err := finplan.DecodePlan(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode plan file %q: %w", p.planFile, err)
	}
	p.plans.Put(p.planFile, plan, planTTL)
	return plan, nil
}

func (p *planner) holdingsFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings lists what the user currently holds and the monthly savings
			plans paying into it.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Two markdown tables: the holdings snapshot and the contribution plans.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			plan, err := p.plan()
			if err != nil {
				return errorResponse(id, "Holdings", err)
			}
			out := renderer.HoldingsMarkdown(plan.Holdings()) + "\n" + renderer.ContributionsMarkdown(plan.Contributions())
			return outputResponse(id, "Holdings", out)
		},
	}
}

func (p *planner) projectionFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Projection",
			Description: `Projection simulates the growth of the user's holdings and savings
			plans over the coming years, compounding expected returns monthly.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"years": {
						Type:        genai.TypeInteger,
						Description: "Projection horizon in years. 10 is the default.",
					},
					"scenario": {
						Type: genai.TypeString,
						Description: `The scenario scaling expected returns. "realistic" is the default.

						` + must(docs.GetTopic("scenarios")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with yearly milestones and the final allocation.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			years, err := numberArg(args, "years", 10)
			if err != nil {
				return errorResponse(id, "Projection", err)
			}
			name, err := stringArg(args, "scenario", "realistic")
			if err != nil {
				return errorResponse(id, "Projection", err)
			}
			scenario, err := finplan.ParseScenario(name)
			if err != nil {
				return errorResponse(id, "Projection", err)
			}
			plan, err := p.plan()
			if err != nil {
				return errorResponse(id, "Projection", err)
			}
			result, err := plan.Project(finplan.Projector{}, int(years), scenario)
			if err != nil {
				return errorResponse(id, "Projection", err)
			}
			return outputResponse(id, "Projection", renderer.ProjectionMarkdown(result))
		},
	}
}

func (p *planner) analysisFunc() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Analysis",
			Description: `Analysis measures annualized return, volatility, Sharpe ratio and
			maximum drawdown for every symbol in the price history file.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of return statistics per symbol.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			f, err := os.Open(p.pricesFile)
			if err != nil {
				return errorResponse(id, "Analysis", fmt.Errorf("could not open prices file %q: %w", p.pricesFile, err))
			}
			defer f.Close()
			series, err := finplan.DecodePrices(f)
			if err != nil {
				return errorResponse(id, "Analysis", err)
			}

			plan, err := p.plan()
			if err != nil {
				return errorResponse(id, "Analysis", err)
			}
			types := make(map[string]finplan.AssetType)
			for _, h := range plan.Holdings() {
				types[h.Symbol] = h.Type
			}

			symbols := make([]string, 0, len(series))
			for symbol := range series {
				symbols = append(symbols, symbol)
			}
			sort.Strings(symbols)

			var summaries []*finplan.ReturnSummary
			for _, symbol := range symbols {
				typ, ok := types[symbol]
				if !ok {
					typ = finplan.ETF
				}
				summary, err := finplan.AnalyzeReturns(symbol, typ, series[symbol])
				if errors.Is(err, finplan.ErrInsufficientData) {
					continue
				}
				if err != nil {
					return errorResponse(id, "Analysis", err)
				}
				summaries = append(summaries, summary)
			}
			if len(summaries) == 0 {
				return errorResponse(id, "Analysis", errors.New("no symbol has enough history to analyze"))
			}
			return outputResponse(id, "Analysis", renderer.AnalysisMarkdown(summaries))
		},
	}
}
