// internal/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the load-time invariants of a catalog: at least one record,
// positive unique ids, non-empty names, known categories, non-negative scores
// and prices, and free <=> zero price. All problems are reported in one error.
func Validate(models []Model) error {
	if len(models) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	var problems []string
	seen := make(map[int]struct{}, len(models))
	for i, m := range models {
		ref := fmt.Sprintf("record %d (id=%d %q)", i, m.ID, m.Name)
		if m.ID <= 0 {
			problems = append(problems, ref+": id must be positive")
		}
		if _, dup := seen[m.ID]; dup {
			problems = append(problems, ref+": duplicate id")
		}
		seen[m.ID] = struct{}{}
		if strings.TrimSpace(m.Name) == "" {
			problems = append(problems, ref+": name is empty")
		}
		if !m.Category.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown category %q", ref, m.Category))
		}
		s := m.Scores
		if s.MMLU < 0 || s.HellaSwag < 0 || s.HumanEval < 0 || s.GPQA < 0 {
			problems = append(problems, ref+": negative benchmark score")
		}
		if m.InputPricePerMillion < 0 || m.OutputPricePerMillion < 0 {
			problems = append(problems, ref+": negative price")
		}
		if m.Free != m.ZeroPriced() {
			if m.Free {
				problems = append(problems, ref+": marked free but has a non-zero price")
			} else {
				problems = append(problems, ref+": zero price but not marked free")
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
