package agent

import (
	"context"
	"fmt"

	"github.com/SimonKnogler/finplan"
	"github.com/SimonKnogler/finplan/docs"
	"github.com/SimonKnogler/finplan/renderer"
	"google.golang.org/genai"
)

// NewTaxAdvisor creates the expert for German taxes and social insurance.
// All of its figures come from the deterministic calculators, never from
// the model.
func NewTaxAdvisor() *Expert {
	lib := []Function{taxEstimate, socialContributions}

	return &Expert{
		Name: "TaxAdvisor",
		Description: `This is the TaxAdvisor. He estimates German income tax, solidarity
		surcharge, church tax, capital gains tax and social insurance contributions
		for a yearly income scenario. Ask him for net income or tax burden figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a German tax advisor. You never compute tax figures yourself, the
				Tools run the real calculators, you call them and explain the results.
				You are part of a team of experts, yours is everything about German taxes
				and social insurance contributions.

				Background on the estimate the tools produce:

				` + must(docs.GetTopic("tax"))}}},
		},
		Library: NewLibrary(lib),
	}
}

var taxEstimate = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "TaxEstimate",
		Description: `TaxEstimate computes German income tax, solidarity surcharge, optional
		church tax, capital gains tax and social insurance contributions for one year of
		income, in EUR. Deductions fall back to the year's flat allowances.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"salary": {
					Type:        genai.TypeNumber,
					Description: "Annual gross salary in EUR.",
				},
				"capital": {
					Type:        genai.TypeNumber,
					Description: "Annual capital gains in EUR. Zero is the default.",
				},
				"filing": {
					Type:        genai.TypeString,
					Description: `Filing status, "single" or "married". Single is the default.`,
				},
				"church": {
					Type:        genai.TypeBoolean,
					Description: "Whether church tax applies. False is the default.",
				},
				"year": {
					Type:        genai.TypeInteger,
					Description: "Assessment year. 2025 is the default.",
				},
			},
			Required: []string{"salary"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of taxes, social contributions and net income.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		salary, err := numberArg(args, "salary", 0)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		capital, err := numberArg(args, "capital", 0)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		filingName, err := stringArg(args, "filing", "single")
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		church, err := boolArg(args, "church", false)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		year, err := numberArg(args, "year", 2025)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}

		filing, err := finplan.ParseFilingStatus(filingName)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		schedule, err := finplan.ScheduleFor(int(year))
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		social, err := finplan.SocialScheduleFor(int(year))
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}

		calculator := finplan.GermanTaxCalculator{Schedule: schedule, Social: social}
		input := finplan.TaxScenarioInput{
			FilingStatus:         filing,
			GrossSalary:          finplan.M(salary, "EUR"),
			ApplySolidarityTax:   true,
			ApplyCapitalGainsTax: true,
			ApplyChurchTax:       church,
		}
		if capital != 0 {
			input.CapitalGains = finplan.M(capital, "EUR")
		}
		result, err := calculator.Calculate(input)
		if err != nil {
			return errorResponse(id, "TaxEstimate", err)
		}
		return outputResponse(id, "TaxEstimate", renderer.TaxMarkdown(result))
	},
}

var socialContributions = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "SocialContributions",
		Description: `SocialContributions computes the employee share of German social
		insurance (pension, health, unemployment, care) on a gross annual salary in EUR,
		honoring the year's contribution ceilings.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"gross": {
					Type:        genai.TypeNumber,
					Description: "Annual gross salary in EUR.",
				},
				"year": {
					Type:        genai.TypeInteger,
					Description: "Assessment year. 2025 is the default.",
				},
			},
			Required: []string{"gross"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the four insurance branches and their total.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		gross, err := numberArg(args, "gross", 0)
		if err != nil {
			return errorResponse(id, "SocialContributions", err)
		}
		year, err := numberArg(args, "year", 2025)
		if err != nil {
			return errorResponse(id, "SocialContributions", err)
		}

		schedule, err := finplan.SocialScheduleFor(int(year))
		if err != nil {
			return errorResponse(id, "SocialContributions", err)
		}
		amount := finplan.M(gross, "EUR")
		estimate, err := schedule.Estimate(amount)
		if err != nil {
			return errorResponse(id, "SocialContributions", fmt.Errorf("could not estimate contributions: %w", err))
		}
		return outputResponse(id, "SocialContributions", renderer.SocialMarkdown(estimate, amount))
	},
}
