package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that owns the conversation and
// delegates to the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his financial plan: what he holds, how it could
			grow over the years, and what taxes and social contributions to expect in Germany.
			Numbers must come from the experts, never invent a figure yourself.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request. The user will assume that you know his plan file, check the
			planner first to understand what he holds.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarkets creates an expert that grounds answers in web search, for the
// market context behind the user's holdings.
func NewMarkets() *Expert {
	return &Expert{
		Name: "Markets",
		Description: `This is a markets expert,
		very well aware of financial products and institutions,
		and of the latest news about funds, companies and crypto assets.
		Ask Markets whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets, you can search and find about anything related
			to financial institutions, companies, markets, funds, ETFs and crypto assets. You
			leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}
