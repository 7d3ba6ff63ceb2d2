// internal/server/handlers.go
package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwiater/llmcompare/internal/board"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
	"github.com/mwiater/llmcompare/internal/cost"
	"github.com/mwiater/llmcompare/internal/metrics"
	"github.com/mwiater/llmcompare/internal/report"
	"github.com/mwiater/llmcompare/internal/server/resp"
	"github.com/samber/lo"
)

// CompareData is the body of /api/v1/compare.
type CompareData struct {
	Baseline *report.BaselineInfo `json:"baseline"`
	Mode     compare.Mode         `json:"mode"`
	Metrics  []report.MetricInfo  `json:"metrics"`
	Rows     []report.Row         `json:"rows"`
}

// CostData is the body of /api/v1/cost.
type CostData struct {
	Scenario cost.Scenario `json:"scenario"`
	Models   []ModelCost   `json:"models"`
}

// ModelCost is one model's estimated cost.
type ModelCost struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Price string      `json:"price"`
	Cost  cost.Amount `json:"cost"`
	Label string      `json:"label"`
	Badge string      `json:"badge"`
	Tier  string      `json:"tier"`
}

// SummaryData is the body of /api/v1/summary.
type SummaryData struct {
	report.SummaryInfo
	Benchmarks map[compare.Metric]metrics.RunningStat `json:"benchmarks"`
}

func (s *Server) evaluate(c *gin.Context) (board.View, bool) {
	st, err := stateFromRequest(c, s.defaults)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return board.View{}, false
	}
	return board.Evaluate(s.models, st), true
}

func (s *Server) listModels(c *gin.Context) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	resp.Success(c, v.Visible)
}

func (s *Server) compareModels(c *gin.Context) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	doc := report.NewDocument(v)
	resp.Success(c, CompareData{Baseline: doc.Baseline, Mode: v.State.Mode, Metrics: doc.Metrics, Rows: doc.Rows})
}

func (s *Server) scenarioCost(c *gin.Context) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	models := lo.Map(v.Visible, func(m catalog.Model, _ int) ModelCost {
		amount := v.ScenarioCosts[m.ID]
		mc := ModelCost{ID: m.ID, Name: m.Name, Price: cost.PriceLabel(m), Cost: amount, Label: amount.String()}
		if cmp, found := v.Comparison(compare.MetricCost, m.ID); found {
			mc.Badge = cmp.Label(v.State.Mode)
			mc.Tier = cmp.Tier.String()
		}
		return mc
	})
	resp.Success(c, CostData{Scenario: v.State.Scenario, Models: models})
}

func (s *Server) taskCosts(c *gin.Context) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	resp.Success(c, report.NewDocument(v).Tasks)
}

func (s *Server) summary(c *gin.Context) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	resp.Success(c, SummaryData{SummaryInfo: report.NewDocument(v).Summary, Benchmarks: v.Summary.Benchmarks})
}

func (s *Server) categories(c *gin.Context) {
	resp.Success(c, catalog.Categories())
}

func (s *Server) export(c *gin.Context) {
	format, err := report.ParseFormat(c.Param("format"))
	if err != nil {
		resp.Error(c, http.StatusNotFound, err.Error())
		return
	}
	s.writeReport(c, format)
}

func (s *Server) htmlReport(c *gin.Context) {
	s.writeReport(c, report.FormatHTML)
}

func (s *Server) writeReport(c *gin.Context, format report.Format) {
	v, ok := s.evaluate(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, format, v); err != nil {
		resp.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
