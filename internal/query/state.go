// internal/query/state.go
// Package query filters and orders catalog records for display.
package query

import (
	"strings"

	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
)

// SortKey names the column records are ordered by.
type SortKey string

const (
	SortName        SortKey = "name"
	SortMMLU        SortKey = "mmlu"
	SortHellaSwag   SortKey = "hellaswag"
	SortHumanEval   SortKey = "humaneval"
	SortGPQA        SortKey = "gpqa"
	SortInputPrice  SortKey = "input_price"
	SortOutputPrice SortKey = "output_price"
	SortCost        SortKey = "cost"
)

var sortKeys = []SortKey{SortName, SortMMLU, SortHellaSwag, SortHumanEval, SortGPQA, SortInputPrice, SortOutputPrice, SortCost}

// SortKeys returns every sort key in column order.
func SortKeys() []SortKey {
	out := make([]SortKey, len(sortKeys))
	copy(out, sortKeys)
	return out
}

// ParseSortKey resolves a sort key case-insensitively. "inputPrice" style
// names are accepted too. Unknown keys fall back to SortMMLU with ok=false.
func ParseSortKey(s string) (SortKey, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", "inputprice", "input_price", "outputprice", "output_price").Replace(s)
	for _, k := range sortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return SortMMLU, false
}

// Next returns the sort key after k, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range sortKeys {
		if key == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return SortMMLU
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection resolves "asc" or "desc". Anything else falls back to Desc
// with ok=false.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	}
	return Desc, false
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// State is everything the display depends on besides the catalog itself.
type State struct {
	Search               string        `json:"search" yaml:"search"`
	FreeOrOpenSourceOnly bool          `json:"freeOrOpenSourceOnly" yaml:"freeOrOpenSourceOnly"`
	ShowDisabled         bool          `json:"showDisabled" yaml:"showDisabled"`
	SortKey              SortKey       `json:"sortKey" yaml:"sortKey"`
	Direction            Direction     `json:"direction" yaml:"direction"`
	BaselineID           int           `json:"baselineId" yaml:"baselineId"`
	Scenario             cost.Scenario `json:"scenario" yaml:"scenario"`
	Mode                 compare.Mode  `json:"mode" yaml:"mode"`
}

// DefaultState sorts by MMLU descending with no filters, the first task
// profile's scenario and percent labels.
func DefaultState() State {
	return State{
		SortKey:   SortMMLU,
		Direction: Desc,
		Scenario:  cost.DefaultScenario(),
		Mode:      compare.ModePercent,
	}
}

// ToggleSort mimics a header click: the same key flips direction, a new key
// is selected descending.
func (s State) ToggleSort(key SortKey) State {
	if s.SortKey == key {
		s.Direction = s.Direction.Reverse()
		return s
	}
	s.SortKey = key
	s.Direction = Desc
	return s
}

// Normalize replaces unknown enumeration values with their fallbacks and
// clamps the scenario.
func (s State) Normalize() State {
	s.SortKey, _ = ParseSortKey(string(s.SortKey))
	s.Direction, _ = ParseDirection(string(s.Direction))
	s.Mode, _ = compare.ParseMode(string(s.Mode))
	s.Scenario = s.Scenario.Clamp()
	if s.BaselineID < 0 {
		s.BaselineID = 0
	}
	return s
}
