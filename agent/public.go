package agent

import (
	"fmt"

	"google.golang.org/genai"

	"stockpile"
	"stockpile/date"
	"stockpile/renderer"
)

// model is the default model for every expert.
const model = "gemini-2.5-pro"

// newFacilitator creates the orchestrating expert. Its only tools are
// the other experts.
func newFacilitator(client *genai.Client, experts ...*Expert) (*Expert, error) {
	functions := make([]Function, 0, len(experts))
	for _, e := range experts {
		functions = append(functions, e)
	}
	lib := NewLibrary(functions...)
	return &Expert{
		Name:        "facilitator",
		Description: "routes questions to the right expert and assembles the answer",
		ModelName:   model,
		client:      client,
		Library:     lib,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				`You assist the keeper of a small stock room.
You have access to experts, exposed as functions. Route each question to
the expert best placed to answer it, then reply to the user in concise
plain language. Quantities and money amounts must come from the
storekeeper expert, never from memory.`, genai.RoleUser),
			Tools: []*genai.Tool{
				{FunctionDeclarations: lib.Declarations()},
			},
		},
	}, nil
}

// NewStorekeeper creates the expert with read-only access to the ledger.
func NewStorekeeper(client *genai.Client, ledger *stockpile.Ledger) *Expert {
	lib := NewLibrary(
		Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_items",
				Description: "lists the stock items of one partition as a markdown table, with quantity, unit cost, total value and a LOW/CRITICAL status",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"partition": {
							Type:        genai.TypeString,
							Description: "the stock partition, either 'internal' or 'external'",
						},
					},
					Required: []string{"partition"},
				},
			},
			Func: func(args map[string]any) (map[string]any, error) {
				partition, _ := args["partition"].(string)
				t, err := stockpile.ParseStockType(partition)
				if err != nil {
					return nil, err
				}
				items, err := ledger.Items(t)
				if err != nil {
					return nil, err
				}
				return map[string]any{"markdown": renderer.ItemsMarkdown(t, items)}, nil
			},
		},
		Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "stock_summary",
				Description: "returns the overall stock summary: per-partition valuation, low and critical stock counts, and recent movement",
			},
			Func: func(map[string]any) (map[string]any, error) {
				internal, external, err := ledger.AllItems()
				if err != nil {
					return nil, err
				}
				history, err := ledger.IssueHistory(stockpile.HistoryFilter{})
				if err != nil {
					return nil, err
				}
				s := stockpile.NewSummary(internal, external, history, date.Today(), ledger.Currency())
				return map[string]any{"markdown": renderer.SummaryMarkdown(s)}, nil
			},
		},
		Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "issue_history",
				Description: "lists past issuances as a markdown table, optionally filtered by date range or a search term over item name, recipient and notes",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"start_date": {
							Type:        genai.TypeString,
							Description: "optional inclusive start date, YYYY-MM-DD",
						},
						"end_date": {
							Type:        genai.TypeString,
							Description: "optional inclusive end date, YYYY-MM-DD",
						},
						"search": {
							Type:        genai.TypeString,
							Description: "optional search term, at least two characters",
						},
					},
				},
			},
			Func: func(args map[string]any) (map[string]any, error) {
				var filter stockpile.HistoryFilter
				if s, _ := args["start_date"].(string); s != "" {
					d, err := date.Parse(s)
					if err != nil {
						return nil, fmt.Errorf("invalid start_date: %w", err)
					}
					filter.StartDate = d
				}
				if s, _ := args["end_date"].(string); s != "" {
					d, err := date.Parse(s)
					if err != nil {
						return nil, fmt.Errorf("invalid end_date: %w", err)
					}
					filter.EndDate = d
				}
				filter.SearchTerm, _ = args["search"].(string)
				records, err := ledger.IssueHistory(filter)
				if err != nil {
					return nil, err
				}
				return map[string]any{"markdown": renderer.HistoryMarkdown(records)}, nil
			},
		},
		Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "restock_recommendations",
				Description: "returns restocking recommendations: a priority level, urgent alerts for critical or depleted items, and actionable suggestions",
			},
			Func: func(map[string]any) (map[string]any, error) {
				internal, external, err := ledger.AllItems()
				if err != nil {
					return nil, err
				}
				history, err := ledger.IssueHistory(stockpile.HistoryFilter{})
				if err != nil {
					return nil, err
				}
				r := stockpile.Recommendations(internal, external, history, date.Today())
				return map[string]any{"markdown": renderer.RecommendationsMarkdown(r)}, nil
			},
		},
	)
	return &Expert{
		Name:        "storekeeper",
		Description: "knows the current stock, its valuation, the issuance history and what needs restocking",
		ModelName:   model,
		client:      client,
		Library:     lib,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				`You are the storekeeper of a small stock room split into an
internal-use and an external-use partition. Answer questions using only
the provided functions; never invent quantities or amounts. When a
function returns markdown, read it and answer in plain language.`, genai.RoleUser),
			Tools: []*genai.Tool{
				{FunctionDeclarations: lib.Declarations()},
			},
		},
	}
}

// NewAnalyst creates an expert with web grounding, for questions about
// suppliers, prices and products outside the stock room.
func NewAnalyst(client *genai.Client) *Expert {
	return &Expert{
		Name:        "analyst",
		Description: "researches suppliers, market prices and product information on the web",
		ModelName:   model,
		client:      client,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				`You research suppliers, market prices and product details.
Use web search to back every claim, and cite where a figure comes from.`, genai.RoleUser),
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		},
	}
}

// Func is a Function built from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(args map[string]any) (map[string]any, error)
}

func (f Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f Func) Call(args map[string]any) (map[string]any, error) { return f.Func(args) }
