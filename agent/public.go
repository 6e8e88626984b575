package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ptrs/skinvault"
	"github.com/ptrs/skinvault/date"
	"github.com/ptrs/skinvault/docs"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to learn what his Steam game-item inventories are worth,
			how that value moved over time, and what is driving it.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you already checked his recorded valuation history before answering.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns an expert grounded in Google Search for market news
// about game items and skins.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is an expert market scout,
		very well aware of the game-item marketplaces, skin prices,
		game updates and case releases that move them.
		Ask the Scout whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in game-item markets. You can search and find about anything related to
			skins, cases, marketplaces and the game updates that move their prices.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAppraiser returns the expert in charge of the user's recorded
// valuation history. Its functions read the recorder's CSV files.
func NewAppraiser(rec *skinvault.Recorder, currency string) *Expert {

	lib := []Function{
		latestValueFunc(rec, currency),
		valueOnFunc(rec, currency),
		accountValuesFunc(rec, currency),
	}

	return &Expert{
		Name: "Appraiser",
		Description: `This is the Appraiser. He is in charge of reading the user's recorded
		inventory valuation history. He can look up the latest recorded value, the value
		on any past date, and the per-account breakdown.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an appraiser in charge of the user's inventory valuation history.
				You know how to use the Tools to extract relevant figures about the user's
				inventories and their worth over time.
				You are part of a team of experts, yours is everything recorded about the
				user's inventories. They might ask you questions in approximative language,
				pardon it and figure out what they meant.

				Use the available tools to get information about the user's inventories
				  - latest recorded total value
				  - recorded value on a given date
				  - per-account values
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// parseDate reads the optional "date" argument, defaulting to today.
func parseDate(args map[string]any) (date.Date, error) {
	raw, ok := args["date"]
	if !ok || raw == nil {
		return date.Today(), nil
	}
	s, ok := raw.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("invalid date type %T, expected string", raw)
	}
	if strings.TrimSpace(s) == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func latestValueFunc(rec *skinvault.Recorder, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "LatestValue",
			Description: `LatestValue returns the most recent recorded total value of all inventories, with the date it was recorded on.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The latest recorded date and total value.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			h, err := rec.LoadValues()
			if err != nil {
				return errResponse(id, "LatestValue", err)
			}
			if h.Len() == 0 {
				return okResponse(id, "LatestValue", "no value has been recorded yet")
			}
			on, v := h.Latest()
			m := skinvault.M(decimal.NewFromFloat(v), currency)
			return okResponse(id, "LatestValue", fmt.Sprintf("on %s the inventories were worth %s", on, m))
		},
	}
}

func valueOnFunc(rec *skinvault.Recorder, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ValueOn",
			Description: `ValueOn returns the recorded total value of all inventories as of a given date.
			If nothing was recorded on that exact day, the closest earlier recording is used.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The date to look up, in YYYY-MM-DD format. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The recorded total value as of the given date.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "ValueOn", err)
			}
			h, err := rec.LoadValues()
			if err != nil {
				return errResponse(id, "ValueOn", err)
			}
			v, ok := h.ValueAsOf(on)
			if !ok {
				return okResponse(id, "ValueOn", fmt.Sprintf("nothing was recorded on or before %s", on))
			}
			m := skinvault.M(decimal.NewFromFloat(v), currency)
			return okResponse(id, "ValueOn", fmt.Sprintf("as of %s the inventories were worth %s", on, m))
		},
	}
}

func accountValuesFunc(rec *skinvault.Recorder, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "AccountValues",
			Description: `AccountValues returns the recorded value of each Steam account as of a given date,
			so the total can be broken down per account.

			` + must(docs.GetTopic("history")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The date to look up, in YYYY-MM-DD format. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of account IDs and their recorded values.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "AccountValues", err)
			}
			series, err := rec.LoadAccounts()
			if err != nil {
				return errResponse(id, "AccountValues", err)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "| Account | Value |\n|---|---|\n")
			for account, h := range series {
				v, ok := h.ValueAsOf(on)
				if !ok {
					continue
				}
				fmt.Fprintf(&b, "| %s | %s |\n", account, skinvault.M(decimal.NewFromFloat(v), currency))
			}
			return okResponse(id, "AccountValues", b.String())
		},
	}
}
