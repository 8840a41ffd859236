package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the advisor fronting the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a property investment advisor in charge of the conversation
			and of solving the user's request.

			Learn about the expert skills available from the Tools and ask them
			questions. They are at your service and 100% dedicated to you; they
			keep context of your previous questions.

			The user is here primarily to understand how a multi-property buying
			plan and its stock reinvestment overlay play out over the years. Ask
			the Planner for the actual numbers before asserting any figure; never
			invent projection results. Ask the Analyst when the user needs market
			context beyond the projections.

			Devise a plan of questions to ask each expert and come up with the
			best response to the user's request. Always remind the user that
			projections are deterministic what-if scenarios, not guarantees.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is an expert grounding market questions in a web search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		well aware of property markets, mortgage products and dividend stocks,
		and of the latest related news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in property and equity markets. You can search and
			find out about anything related to mortgages, rental markets,
			dividend-paying stocks and funds. You leverage Google Search to
			ground your assertions in solid, recent facts, and you know how to
			relate them to the user's investment plan.
				`}}},
		},
	}
}

// NewPlanner is the expert in charge of the user's projections: it can
// run simulations from assumptions and read the user's saved scenarios.
func NewPlanner(tools []Function) *Expert {
	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. It runs the deterministic wealth
		projections: multi-property acquisition plans, mortgage amortization and
		the stock reinvestment overlay. It can also read the user's saved
		scenarios. Ask the Planner for every concrete figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the planner in charge of the user's wealth projections.
				Use the available tools to run simulations and to read the user's
				saved scenarios; report the numbers the tools return, never
				estimates of your own. Rates are percentages (3 means 3%).
				When the user's language is approximate, figure out the intended
				assumptions, state them explicitly, and run the projection.
			`}}},
		},
		Library: NewLibrary(tools),
	}
}
