// internal/catalog/model.go
// Package catalog holds the fixed set of model records compared by llmcompare.
package catalog

// Scores holds the four benchmark results of a model in percentage points.
// A zero score means the benchmark was not reported.
type Scores struct {
	MMLU      float64 `json:"mmlu" yaml:"mmlu"`
	HellaSwag float64 `json:"hellaswag" yaml:"hellaswag"`
	HumanEval float64 `json:"humaneval" yaml:"humaneval"`
	GPQA      float64 `json:"gpqa" yaml:"gpqa"`
}

// Model is a single catalog entry. Records are never mutated after load.
type Model struct {
	ID                    int      `json:"id" yaml:"id"`
	Name                  string   `json:"name" yaml:"name"`
	Provider              string   `json:"provider,omitempty" yaml:"provider,omitempty"`
	Scores                Scores   `json:"scores" yaml:"scores"`
	InputPricePerMillion  float64  `json:"inputPrice" yaml:"inputPrice"`
	OutputPricePerMillion float64  `json:"outputPrice" yaml:"outputPrice"`
	Free                  bool     `json:"free" yaml:"free"`
	OpenSource            bool     `json:"openSource" yaml:"openSource"`
	Enabled               bool     `json:"enabled" yaml:"enabled"`
	ContextWindow         string   `json:"contextWindow,omitempty" yaml:"contextWindow,omitempty"`
	Category              Category `json:"category" yaml:"category"`
	Pros                  string   `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons                  string   `json:"cons,omitempty" yaml:"cons,omitempty"`
	BestFor               string   `json:"bestFor,omitempty" yaml:"bestFor,omitempty"`
	PriceNote             string   `json:"priceNote,omitempty" yaml:"priceNote,omitempty"`
}

// ZeroPriced reports whether both token prices are zero.
func (m Model) ZeroPriced() bool {
	return m.InputPricePerMillion == 0 && m.OutputPricePerMillion == 0
}

// HasScores reports whether any benchmark result is present.
func (m Model) HasScores() bool {
	s := m.Scores
	return s.MMLU > 0 || s.HellaSwag > 0 || s.HumanEval > 0 || s.GPQA > 0
}

// Find returns the model with the given id.
func Find(models []Model, id int) (Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Enabled returns the records shown by default, in catalog order.
func Enabled(models []Model) []Model {
	var out []Model
	for _, m := range models {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}

// Disabled returns the notable-mention records, in catalog order.
func Disabled(models []Model) []Model {
	var out []Model
	for _, m := range models {
		if !m.Enabled {
			out = append(out, m)
		}
	}
	return out
}
