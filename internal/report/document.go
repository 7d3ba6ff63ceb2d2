// internal/report/document.go
package report

import (
	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/query"
)

// Document is the format-neutral content of a report. Every value is
// pre-rendered so all formats agree on labels.
type Document struct {
	Title    string        `json:"title" yaml:"title"`
	State    query.State   `json:"state" yaml:"state"`
	Baseline *BaselineInfo `json:"baseline,omitempty" yaml:"baseline,omitempty"`
	Metrics  []MetricInfo  `json:"metrics" yaml:"metrics"`
	Summary  SummaryInfo   `json:"summary" yaml:"summary"`
	Rows     []Row         `json:"rows" yaml:"rows"`
	Tasks    TaskTable     `json:"tasks" yaml:"tasks"`
	Notable  []NotableRow  `json:"notable" yaml:"notable"`
}

// BaselineInfo identifies the baseline model.
type BaselineInfo struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Visible bool   `json:"visible" yaml:"visible"`
}

// MetricInfo is a column header with its tooltip.
type MetricInfo struct {
	Key         compare.Metric `json:"key" yaml:"key"`
	Label       string         `json:"label" yaml:"label"`
	Description string         `json:"description" yaml:"description"`
}

// SummaryInfo holds the stat cards.
type SummaryInfo struct {
	Visible     int    `json:"visible" yaml:"visible"`
	Total       int    `json:"total" yaml:"total"`
	Enabled     int    `json:"enabled" yaml:"enabled"`
	Free        int    `json:"free" yaml:"free"`
	OpenSource  int    `json:"openSource" yaml:"openSource"`
	AverageMMLU string `json:"averageMmlu" yaml:"averageMmlu"`
	AverageCost string `json:"averageCost" yaml:"averageCost"`
	Scenario    string `json:"scenario" yaml:"scenario"`
}

// Cell is one metric of one model.
type Cell struct {
	Metric     compare.Metric `json:"metric" yaml:"metric"`
	Value      float64        `json:"value" yaml:"value"`
	Display    string         `json:"display" yaml:"display"`
	Percent    float64        `json:"percent" yaml:"percent"`
	Label      string         `json:"label" yaml:"label"`
	Tier       string         `json:"tier" yaml:"tier"`
	Applicable bool           `json:"applicable" yaml:"applicable"`
	Free       bool           `json:"free" yaml:"free"`
}

// Row is one visible model.
type Row struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Provider      string  `json:"provider,omitempty" yaml:"provider,omitempty"`
	Category      string  `json:"category" yaml:"category"`
	CategoryColor string  `json:"categoryColor" yaml:"categoryColor"`
	Price         string  `json:"price" yaml:"price"`
	InputPrice    float64 `json:"inputPrice" yaml:"inputPrice"`
	OutputPrice   float64 `json:"outputPrice" yaml:"outputPrice"`
	ContextWindow string  `json:"contextWindow,omitempty" yaml:"contextWindow,omitempty"`
	Free          bool    `json:"free" yaml:"free"`
	OpenSource    bool    `json:"openSource" yaml:"openSource"`
	Enabled       bool    `json:"enabled" yaml:"enabled"`
	IsBaseline    bool    `json:"isBaseline" yaml:"isBaseline"`
	Cells         []Cell  `json:"cells" yaml:"cells"`
}

// TaskTable is the cost-by-task table.
type TaskTable struct {
	Profiles []cost.TaskProfile `json:"profiles" yaml:"profiles"`
	Rows     []TaskRow          `json:"rows" yaml:"rows"`
}

// TaskRow is one model's cost per profile, in profile order.
type TaskRow struct {
	Name  string   `json:"name" yaml:"name"`
	Costs []string `json:"costs" yaml:"costs"`
}

// NotableRow is a notable-mention record.
type NotableRow struct {
	Name          string `json:"name" yaml:"name"`
	Category      string `json:"category" yaml:"category"`
	CategoryColor string `json:"categoryColor" yaml:"categoryColor"`
	Price         string `json:"price" yaml:"price"`
	BestFor       string `json:"bestFor,omitempty" yaml:"bestFor,omitempty"`
	Pros          string `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons          string `json:"cons,omitempty" yaml:"cons,omitempty"`
}

const reportTitle = "llmcompare: LLM Comparison Report"

// NewDocument renders v into a Document.
func NewDocument(v board.View) Document {
	doc := Document{
		Title: reportTitle,
		State: v.State,
		Summary: SummaryInfo{
			Visible:     v.Summary.Visible,
			Total:       v.Summary.Total,
			Enabled:     v.Summary.Enabled,
			Free:        v.Summary.Free,
			OpenSource:  v.Summary.OpenSource,
			AverageMMLU: v.Summary.AverageMMLU(),
			AverageCost: v.Summary.AverageCost(),
			Scenario:    v.State.Scenario.String(),
		},
		Rows:    make([]Row, 0, len(v.Visible)),
		Notable: make([]NotableRow, 0, len(v.Notable)),
		Tasks:   TaskTable{Profiles: v.Profiles, Rows: make([]TaskRow, 0, len(v.TaskCosts))},
	}
	if v.HasBaseline {
		doc.Baseline = &BaselineInfo{ID: v.Baseline.ID, Name: v.Baseline.Name, Visible: v.BaselineVisible}
	}
	for _, metric := range compare.Metrics() {
		info := metric.Info()
		doc.Metrics = append(doc.Metrics, MetricInfo{Key: metric, Label: info.Label, Description: info.Description})
	}

	for _, m := range v.Visible {
		row := Row{
			ID:            m.ID,
			Name:          m.Name,
			Provider:      m.Provider,
			Category:      string(m.Category),
			CategoryColor: m.Category.Color(),
			Price:         cost.PriceLabel(m),
			InputPrice:    m.InputPricePerMillion,
			OutputPrice:   m.OutputPricePerMillion,
			ContextWindow: m.ContextWindow,
			Free:          m.Free,
			OpenSource:    m.OpenSource,
			Enabled:       m.Enabled,
			IsBaseline:    v.HasBaseline && m.ID == v.Baseline.ID,
		}
		for _, metric := range compare.Metrics() {
			row.Cells = append(row.Cells, newCell(v, metric, m))
		}
		doc.Rows = append(doc.Rows, row)
	}

	for _, r := range v.TaskCosts {
		tr := TaskRow{Name: r.Model.Name}
		for _, a := range r.Costs {
			tr.Costs = append(tr.Costs, a.String())
		}
		doc.Tasks.Rows = append(doc.Tasks.Rows, tr)
	}

	for _, m := range v.Notable {
		price := m.PriceNote
		if price == "" {
			price = cost.PriceLabel(m)
		}
		doc.Notable = append(doc.Notable, NotableRow{
			Name:          m.Name,
			Category:      string(m.Category),
			CategoryColor: m.Category.Color(),
			Price:         price,
			BestFor:       m.BestFor,
			Pros:          m.Pros,
			Cons:          m.Cons,
		})
	}
	return doc
}

func newCell(v board.View, metric compare.Metric, m catalog.Model) Cell {
	value := metric.Value(m, v.State.Scenario)
	cell := Cell{Metric: metric, Value: value, Display: display(metric, m, v.State.Scenario)}
	c, ok := v.Comparison(metric, m.ID)
	if !ok {
		return cell
	}
	cell.Percent = c.Percent
	cell.Label = c.Label(v.State.Mode)
	cell.Tier = c.Tier.String()
	cell.Applicable = c.Applicable
	cell.Free = c.Free
	if c.IsBaseline {
		cell.Tier = "baseline"
	}
	return cell
}

func display(metric compare.Metric, m catalog.Model, sc cost.Scenario) string {
	if metric.IsCost() {
		return cost.EstimateScenario(m, sc).String()
	}
	return score(metric.Value(m, sc))
}

// Cell returns the cell of metric, or a zero Cell.
func (r Row) Cell(metric compare.Metric) Cell {
	for _, c := range r.Cells {
		if c.Metric == metric {
			return c
		}
	}
	return Cell{}
}
