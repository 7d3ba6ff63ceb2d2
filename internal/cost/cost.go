// internal/cost/cost.go
// Package cost estimates the monetary cost of a token volume for a catalog model.
package cost

import (
	"fmt"

	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/shopspring/decimal"
)

// FreeLabel is shown instead of an amount for zero-cost models.
const FreeLabel = "FREE"

var million = decimal.NewFromInt(1_000_000)

// Amount is an estimated cost in USD. Free is set when the model is free,
// in which case Value is always zero.
type Amount struct {
	Value decimal.Decimal `json:"value"`
	Free  bool            `json:"free"`
}

// Float64 returns the amount as a float for averaging and sorting.
func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

// IsZero reports whether the estimated cost is zero.
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// String renders "FREE" for free models and "$0.0012" otherwise.
func (a Amount) String() string {
	if a.Free {
		return FreeLabel
	}
	return "$" + a.Value.StringFixed(4)
}

// Scenario is a token volume to estimate cost for.
type Scenario struct {
	InputTokens  int `json:"inputTokens" yaml:"inputTokens"`
	OutputTokens int `json:"outputTokens" yaml:"outputTokens"`
}

// Clamp returns the scenario with negative token counts raised to zero.
func (s Scenario) Clamp() Scenario {
	return Scenario{InputTokens: max(s.InputTokens, 0), OutputTokens: max(s.OutputTokens, 0)}
}

// String renders the scenario as "500 in / 1000 out".
func (s Scenario) String() string {
	return fmt.Sprintf("%d in / %d out", s.InputTokens, s.OutputTokens)
}

// Estimate returns (in*inputPrice + out*outputPrice) / 1,000,000 for m.
// Free models always estimate to FREE, and negative token counts count as zero.
func Estimate(m catalog.Model, inputTokens, outputTokens int) Amount {
	if m.Free {
		return Amount{Value: decimal.Zero, Free: true}
	}
	in := decimal.NewFromInt(int64(max(inputTokens, 0)))
	out := decimal.NewFromInt(int64(max(outputTokens, 0)))
	total := in.Mul(decimal.NewFromFloat(m.InputPricePerMillion)).
		Add(out.Mul(decimal.NewFromFloat(m.OutputPricePerMillion)))
	return Amount{Value: total.Div(million)}
}

// EstimateScenario is Estimate for a Scenario.
func EstimateScenario(m catalog.Model, sc Scenario) Amount {
	return Estimate(m, sc.InputTokens, sc.OutputTokens)
}

// PriceLabel renders a model's per-million pricing as "$0.08/$0.30", or FREE.
func PriceLabel(m catalog.Model) string {
	if m.Free {
		return FreeLabel
	}
	return fmt.Sprintf("$%.2f/$%.2f", m.InputPricePerMillion, m.OutputPricePerMillion)
}
