// internal/cli/state_flags.go
package llmcompare

import (
	"fmt"
	"strings"

	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/logging"
	"github.com/mwiater/llmcompare/internal/query"
	"github.com/mwiater/llmcompare/internal/render"
	"github.com/spf13/cobra"
)

// addListFlags registers the filter and sort flags.
func addListFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("search", "", "case-insensitive substring match on model names")
	f.Bool("free", false, "only free or open-source models")
	f.Bool("disabled", false, "show the disabled notable mentions as well")
	f.String("sort", "", "sort key: "+joinKeys(query.SortKeys()))
	f.String("dir", "", "sort direction: asc or desc")
}

// addCompareFlags registers the baseline and label mode flags.
func addCompareFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("baseline", 0, "baseline model id (default: the first enabled catalog model, even when filtered out)")
	f.String("mode", "", "comparison labels: percent or delta")
}

// addCostFlags registers the scenario flags.
func addCostFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("in", 0, "input tokens of the cost scenario")
	f.Int("out", 0, "output tokens of the cost scenario")
	f.String("task", "", "use a task profile's token volume: "+joinProfiles())
}

func joinKeys(keys []query.SortKey) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func joinProfiles() string {
	var names []string
	for _, p := range cost.TaskProfiles() {
		names = append(names, fmt.Sprintf("%q", p.Name))
	}
	return strings.Join(names, ", ")
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// resolveState overlays the flags the user set on the configured default state.
func resolveState(cmd *cobra.Command) (query.State, error) {
	st := getConfig().DefaultState()
	f := cmd.Flags()

	if changed(cmd, "search") {
		st.Search, _ = f.GetString("search")
	}
	if changed(cmd, "free") {
		st.FreeOrOpenSourceOnly, _ = f.GetBool("free")
	}
	if changed(cmd, "disabled") {
		st.ShowDisabled, _ = f.GetBool("disabled")
	}
	if changed(cmd, "sort") {
		raw, _ := f.GetString("sort")
		key, ok := query.ParseSortKey(raw)
		if !ok {
			return st, fmt.Errorf("unknown sort key %q (want one of %s)", raw, joinKeys(query.SortKeys()))
		}
		st.SortKey = key
	}
	if changed(cmd, "dir") {
		raw, _ := f.GetString("dir")
		dir, ok := query.ParseDirection(raw)
		if !ok {
			return st, fmt.Errorf("unknown sort direction %q (want asc or desc)", raw)
		}
		st.Direction = dir
	}
	if changed(cmd, "baseline") {
		st.BaselineID, _ = f.GetInt("baseline")
	}
	if changed(cmd, "mode") {
		raw, _ := f.GetString("mode")
		mode, ok := compare.ParseMode(raw)
		if !ok {
			return st, fmt.Errorf("unknown mode %q (want percent or delta)", raw)
		}
		st.Mode = mode
	}
	if changed(cmd, "task") {
		raw, _ := f.GetString("task")
		profile, ok := cost.ProfileByName(raw)
		if !ok {
			return st, fmt.Errorf("unknown task %q (want one of %s)", raw, joinProfiles())
		}
		st.Scenario = profile.Scenario()
	}
	if changed(cmd, "in") {
		st.Scenario.InputTokens, _ = f.GetInt("in")
	}
	if changed(cmd, "out") {
		st.Scenario.OutputTokens, _ = f.GetInt("out")
	}
	return st.Normalize(), nil
}

// evaluate loads the catalog and evaluates it for the command's state.
func evaluate(cmd *cobra.Command) (board.View, render.Palette, error) {
	models, err := loadCatalog()
	if err != nil {
		return board.View{}, render.Palette{}, err
	}
	st, err := resolveState(cmd)
	if err != nil {
		return board.View{}, render.Palette{}, err
	}
	v := board.Evaluate(models, st)
	logging.Debugf("[CLI] %s: %d of %d models visible, sort %s %s", cmd.Name(), len(v.Visible), len(models), st.SortKey, st.Direction)
	return v, palette(), nil
}

func palette() render.Palette {
	return render.NewPalette(!getConfig().NoColor)
}
