// internal/cost/profiles.go
package cost

import (
	"strings"

	"github.com/mwiater/llmcompare/internal/catalog"
)

// TaskProfile is a named preset token volume for a typical task.
type TaskProfile struct {
	Name         string `json:"name"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
}

// Scenario returns the profile's token volume.
func (p TaskProfile) Scenario() Scenario {
	return Scenario{InputTokens: p.InputTokens, OutputTokens: p.OutputTokens}
}

var taskProfiles = []TaskProfile{
	{Name: "Quick Question", InputTokens: 500, OutputTokens: 1000},
	{Name: "Email Reply", InputTokens: 2000, OutputTokens: 3000},
	{Name: "Code Generation", InputTokens: 3000, OutputTokens: 5000},
	{Name: "Long Document", InputTokens: 10000, OutputTokens: 15000},
	{Name: "Complex Analysis", InputTokens: 20000, OutputTokens: 30000},
}

// TaskProfiles returns the fixed task table in display order.
func TaskProfiles() []TaskProfile {
	out := make([]TaskProfile, len(taskProfiles))
	copy(out, taskProfiles)
	return out
}

// ProfileByName finds a task profile, ignoring case and surrounding space.
func ProfileByName(name string) (TaskProfile, bool) {
	name = strings.TrimSpace(name)
	for _, p := range taskProfiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return TaskProfile{}, false
}

// DefaultScenario is the token volume of the first task profile.
func DefaultScenario() Scenario {
	return taskProfiles[0].Scenario()
}

// TaskRow is one model's estimated cost for every task profile.
type TaskRow struct {
	Model catalog.Model `json:"model"`
	Costs []Amount      `json:"costs"`
}

// TaskTable estimates every profile for every model. Costs are in profile order.
func TaskTable(models []catalog.Model, profiles []TaskProfile) []TaskRow {
	rows := make([]TaskRow, 0, len(models))
	for _, m := range models {
		costs := make([]Amount, len(profiles))
		for i, p := range profiles {
			costs[i] = EstimateScenario(m, p.Scenario())
		}
		rows = append(rows, TaskRow{Model: m, Costs: costs})
	}
	return rows
}
