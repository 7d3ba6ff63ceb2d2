// internal/server/params.go
package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/query"
)

// stateFromRequest overlays query parameters on base. Unknown enumeration
// values fall back silently; malformed integers are errors.
func stateFromRequest(c *gin.Context, base query.State) (query.State, error) {
	st := base
	if v, ok := c.GetQuery("search"); ok {
		st.Search = v
	}
	st.FreeOrOpenSourceOnly = boolParam(c, "free", st.FreeOrOpenSourceOnly)
	st.ShowDisabled = boolParam(c, "disabled", st.ShowDisabled)
	if v, ok := c.GetQuery("sort"); ok {
		st.SortKey, _ = query.ParseSortKey(v)
	}
	if v, ok := c.GetQuery("dir"); ok {
		st.Direction, _ = query.ParseDirection(v)
	}
	if v, ok := c.GetQuery("mode"); ok {
		st.Mode, _ = compare.ParseMode(v)
	}
	if v, ok := c.GetQuery("task"); ok {
		if p, found := cost.ProfileByName(v); found {
			st.Scenario = p.Scenario()
		}
	}

	var err error
	if st.BaselineID, err = intParam(c, "baseline", st.BaselineID); err != nil {
		return st, err
	}
	if st.Scenario.InputTokens, err = intParam(c, "in", st.Scenario.InputTokens); err != nil {
		return st, err
	}
	if st.Scenario.OutputTokens, err = intParam(c, "out", st.Scenario.OutputTokens); err != nil {
		return st, err
	}
	return st.Normalize(), nil
}

func boolParam(c *gin.Context, name string, fallback bool) bool {
	v, ok := c.GetQuery(name)
	if !ok {
		return fallback
	}
	if strings.TrimSpace(v) == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func intParam(c *gin.Context, name string, fallback int) (int, error) {
	v, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("parameter %q must be an integer", name)
	}
	return n, nil
}
