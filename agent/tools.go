package agent

import (
	"context"
	"fmt"

	"github.com/etnz/brickfolio"
	"github.com/etnz/brickfolio/renderer"
	"google.golang.org/genai"
)

// NewPlannerTools builds the Planner's function library: projections
// from explicit assumptions, and read access to the owner's saved
// scenarios.
func NewPlannerTools(store *brickfolio.ScenarioStore, owner string) []Function {
	return []Function{
		&projectTool{},
		&listTool{store: store, owner: owner},
		&loadTool{store: store, owner: owner},
	}
}

// projectTool runs a full projection from assumptions supplied by the
// model.
type projectTool struct{}

func (t *projectTool) Declaration() *genai.FunctionDeclaration {
	number := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}
	return &genai.FunctionDeclaration{
		Name: "project_portfolio",
		Description: "Run the deterministic property projection (and the optional stock " +
			"reinvestment overlay) and return a textual summary of the year 10/20/30 results. " +
			"All rates are percentages: 3 means 3%.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"purchase_price":       number("Purchase price per property."),
				"market_value":         number("Assessed market value per property; omit to derive it."),
				"bmv_discount":         number("Below-market-value discount in percent; omit for none."),
				"loan_amount":          number("Loan principal per property."),
				"interest_rate":        number("Mortgage interest rate in percent."),
				"appreciation_rate":    number("Property appreciation rate in percent."),
				"rental_yield":         number("Rental yield in percent of the purchase price."),
				"purchase_interval":    number("Years between acquisitions; defaults to 1."),
				"max_properties":       number("Maximum number of properties; defaults to 10."),
				"loan_tenure_years":    number("Mortgage tenure in years."),
				"expense_amount":       number("Fixed annual expense per property; omit for none."),
				"start_year":           number("Calendar year of the baseline; defaults to 2025."),
				"dividend_yield":       number("Stock overlay dividend yield in percent; omit to skip the overlay."),
				"stock_discount":       number("Stock purchase discount in percent."),
				"stock_appreciation":   number("Stock price appreciation in percent."),
				"drip":                 {Type: genai.TypeBoolean, Description: "Reinvest dividends into more shares."},
				"approved_loan_amount": number("Approved mortgage per property; the excess over the purchase price is cashback."),
			},
			Required: []string{"purchase_price", "loan_amount", "interest_rate", "appreciation_rate", "rental_yield", "loan_tenure_years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Plain-text summary of the projection.",
		},
	}
}

func (t *projectTool) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: "project_portfolio", Response: map[string]any{}}

	num := func(key string, fallback float64) float64 {
		if v, ok := args[key].(float64); ok {
			return v
		}
		return fallback
	}
	sc := &brickfolio.Scenario{
		Name: "projection",
		Property: brickfolio.PropertyAssumptions{
			PurchasePrice:    num("purchase_price", 0),
			MarketValue:      num("market_value", 0),
			BMVDiscount:      brickfolio.Percent(num("bmv_discount", 0)),
			LoanAmount:       num("loan_amount", 0),
			InterestRate:     brickfolio.Percent(num("interest_rate", 0)),
			AppreciationRate: brickfolio.Percent(num("appreciation_rate", 0)),
			RentalYield:      brickfolio.Percent(num("rental_yield", 0)),
			PurchaseInterval: int(num("purchase_interval", 1)),
			MaxProperties:    int(num("max_properties", 10)),
			LoanTenureYears:  int(num("loan_tenure_years", 0)),
			ExpenseAmount:    num("expense_amount", 0),
			StartYear:        int(num("start_year", 2025)),
		},
	}
	if _, ok := args["dividend_yield"]; ok {
		drip, _ := args["drip"].(bool)
		sc.Stock = &brickfolio.StockAssumptions{
			DividendYield:      brickfolio.Percent(num("dividend_yield", 0)),
			PurchaseDiscount:   brickfolio.Percent(num("stock_discount", 0)),
			AppreciationRate:   brickfolio.Percent(num("stock_appreciation", 0)),
			DRIP:               drip,
			ApprovedLoanAmount: num("approved_loan_amount", 0),
		}
	}
	if sc.Property.PurchasePrice <= 0 || sc.Property.LoanTenureYears <= 0 {
		fresp.Response["error"] = "purchase_price and loan_tenure_years must be positive"
		return fresp
	}
	if sc.Property.PurchaseInterval < 1 {
		fresp.Response["error"] = "purchase_interval must be at least 1"
		return fresp
	}

	sc.Recompute()
	fresp.Response["output"] = renderer.ContextSummary(sc)
	return fresp
}

// listTool lists the owner's saved scenarios.
type listTool struct {
	store *brickfolio.ScenarioStore
	owner string
}

func (t *listTool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "list_scenarios",
		Description: "List the names of the user's saved scenarios.",
		Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "One scenario name per line.",
		},
	}
}

func (t *listTool) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: "list_scenarios", Response: map[string]any{}}
	scenarios, err := t.store.List(t.owner)
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	if len(scenarios) == 0 {
		fresp.Response["output"] = "no saved scenarios"
		return fresp
	}
	names := ""
	for _, s := range scenarios {
		names += s.Name + "\n"
	}
	fresp.Response["output"] = names
	return fresp
}

// loadTool returns the full digest of one saved scenario.
type loadTool struct {
	store *brickfolio.ScenarioStore
	owner string
}

func (t *loadTool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "load_scenario",
		Description: "Load one of the user's saved scenarios and return a textual summary of its assumptions and results.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {Type: genai.TypeString, Description: "The scenario name."},
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Plain-text summary of the scenario.",
		},
	}
}

func (t *loadTool) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: "load_scenario", Response: map[string]any{}}
	name, ok := args["name"].(string)
	if !ok {
		fresp.Response["error"] = fmt.Sprintf("invalid type got %T, expected string", args["name"])
		return fresp
	}
	sc, err := t.store.Get(t.owner, name)
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	if sc.Results == nil {
		sc.Recompute()
	}
	fresp.Response["output"] = renderer.ContextSummary(sc)
	return fresp
}
