// internal/report/html.go
package report

import (
	"encoding/json"
	"html/template"
	"io"
)

type htmlReportData struct {
	Document
	DataJSON template.JS
}

// writeHTML renders a standalone page. The document is also embedded as JSON
// so the table can be re-sorted client side.
func writeHTML(w io.Writer, doc Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return htmlReportTemplate.Execute(w, htmlReportData{Document: doc, DataJSON: template.JS(payload)})
}

var htmlReportTemplate = template.Must(template.New("comparison-report").Funcs(template.FuncMap{
	"tierClass": func(tier string) string {
		switch tier {
		case "above":
			return "tier-above"
		case "near":
			return "tier-near"
		case "below":
			return "tier-below"
		case "baseline":
			return "tier-baseline"
		}
		return "tier-none"
	},
	"safeColor": func(hex string) template.CSS {
		for _, r := range hex {
			if !(r == '#' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
				return template.CSS("#888888")
			}
		}
		return template.CSS(hex)
	},
}).Parse(htmlReportTemplateHTML))

const htmlReportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --success: #10B981;
      --warning: #F59E0B;
      --danger: #EF4444;
      --border: #E2E8F0;
    }
    [data-theme="dark"] {
      --primary: #0F172A;
      --secondary: #94A3B8;
      --accent: #60A5FA;
      --light: #0B1220;
      --background: #0F172A;
      --text: #E2E8F0;
      --success: #34D399;
      --warning: #FBBF24;
      --danger: #F87171;
      --border: rgba(148, 163, 184, 0.25);
    }
    body { background-color: var(--light); color: var(--text); }
    .navbar-dark, .bg-dark { background-color: var(--primary) !important; }
    .card { border: 1px solid var(--border); background-color: var(--background); color: var(--text); }
    .stat-value { font-size: 1.75rem; font-weight: 700; }
    .stat-label { color: var(--secondary); font-size: 0.85rem; text-transform: uppercase; }
    .table thead th { cursor: pointer; white-space: nowrap; }
    .table thead th, .table thead td { background-color: var(--light); color: var(--text); border-color: var(--border); }
    .table-bordered>:not(caption)>* { border-color: var(--border); }
    .badge.tier-above { background-color: var(--success); }
    .badge.tier-near { background-color: var(--warning); color: #0F172A; }
    .badge.tier-below { background-color: var(--danger); }
    .badge.tier-baseline { background-color: var(--accent); }
    .badge.tier-none { background-color: var(--secondary); }
    .badge.free { background-color: var(--success); }
    .category-chip { display: inline-block; width: 0.75rem; height: 0.75rem; border-radius: 50%; margin-right: 0.4rem; vertical-align: middle; }
    tr.baseline-row > td { font-weight: 600; }
    .theme-toggle { border: 1px solid var(--border); color: var(--light); }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark bg-dark">
    <div class="container-fluid">
      <span class="navbar-brand mb-0 h1">{{ .Title }}</span>
      <div class="d-flex align-items-center gap-3">
        <button class="btn btn-sm theme-toggle" id="themeToggle" type="button" aria-label="Toggle dark mode">theme</button>
        <span class="text-light">Scenario: {{ .Summary.Scenario }}</span>
      </div>
    </div>
  </nav>
  <main class="container-fluid my-4">
    <section class="row g-3" id="summaryCards">
      <div class="col-6 col-md-3"><div class="card shadow-sm"><div class="card-body">
        <div class="stat-label">Models</div><div class="stat-value">{{ .Summary.Visible }}</div>
        <small>of {{ .Summary.Total }} ({{ .Summary.Enabled }} enabled)</small>
      </div></div></div>
      <div class="col-6 col-md-3"><div class="card shadow-sm"><div class="card-body">
        <div class="stat-label">Free</div><div class="stat-value">{{ .Summary.Free }}</div>
      </div></div></div>
      <div class="col-6 col-md-3"><div class="card shadow-sm"><div class="card-body">
        <div class="stat-label">Open Source</div><div class="stat-value">{{ .Summary.OpenSource }}</div>
      </div></div></div>
      <div class="col-6 col-md-3"><div class="card shadow-sm"><div class="card-body">
        <div class="stat-label">Avg MMLU</div><div class="stat-value">{{ .Summary.AverageMMLU }}</div>
        <small>avg cost {{ .Summary.AverageCost }}</small>
      </div></div></div>
    </section>

    <section class="mt-4">
      <div class="card shadow-sm">
        <div class="card-header">
          <h5 class="mb-0">Model Comparison</h5>
          {{ with .Baseline }}<small>Baseline: {{ .Name }}{{ if not .Visible }} (hidden by filters){{ end }}</small>{{ end }}
        </div>
        <div class="card-body">
          {{ if .Rows }}
          <div class="table-responsive">
            <table class="table table-striped table-hover table-bordered table-sm" id="modelsTable">
              <thead class="table-light">
                <tr>
                  <th data-key="name">Model</th>
                  <th data-key="category">Category</th>
                  <th data-key="price">Price (in/out per 1M)</th>
                  {{ range $i, $m := .Metrics }}<th data-key="metric" data-index="{{ $i }}" title="{{ $m.Description }}">{{ $m.Label }}</th>{{ end }}
                </tr>
              </thead>
              <tbody>
                {{ range $i, $row := .Rows }}
                <tr data-row="{{ $i }}"{{ if .IsBaseline }} class="baseline-row"{{ end }}>
                  <td>{{ .Name }}{{ if .IsBaseline }} <span class="badge tier-baseline">baseline</span>{{ end }}</td>
                  <td><span class="category-chip" style="background-color: {{ safeColor .CategoryColor }}"></span>{{ .Category }}</td>
                  <td>{{ .Price }}</td>
                  {{ range .Cells }}
                  <td>{{ if .Free }}<span class="badge free">FREE</span>{{ else }}{{ .Display }} {{ if .Label }}<span class="badge {{ tierClass .Tier }}">{{ .Label }}</span>{{ end }}{{ end }}</td>
                  {{ end }}
                </tr>
                {{ end }}
              </tbody>
            </table>
          </div>
          {{ else }}
          <p class="mb-0">No models match the current filters.</p>
          {{ end }}
        </div>
      </div>
    </section>

    <section class="mt-4">
      <div class="card shadow-sm">
        <div class="card-header"><h5 class="mb-0">Cost by Task Type</h5></div>
        <div class="card-body">
          <div class="table-responsive">
            <table class="table table-striped table-bordered table-sm" id="tasksTable">
              <thead class="table-light">
                <tr>
                  <th>Model</th>
                  {{ range .Tasks.Profiles }}<th>{{ .Name }}<br><small>{{ .InputTokens }} in / {{ .OutputTokens }} out</small></th>{{ end }}
                </tr>
              </thead>
              <tbody>
                {{ range .Tasks.Rows }}
                <tr><td>{{ .Name }}</td>{{ range .Costs }}<td>{{ . }}</td>{{ end }}</tr>
                {{ end }}
              </tbody>
            </table>
          </div>
        </div>
      </div>
    </section>

    {{ if .Notable }}
    <section class="mt-4">
      <div class="card shadow-sm">
        <div class="card-header"><h5 class="mb-0">Notable Mentions</h5></div>
        <div class="card-body">
          <div class="table-responsive">
            <table class="table table-bordered table-sm" id="notableTable">
              <thead class="table-light">
                <tr><th>Model</th><th>Category</th><th>Price</th><th>Best For</th><th>Pros</th><th>Cons</th></tr>
              </thead>
              <tbody>
                {{ range .Notable }}
                <tr>
                  <td>{{ .Name }}</td>
                  <td><span class="category-chip" style="background-color: {{ safeColor .CategoryColor }}"></span>{{ .Category }}</td>
                  <td>{{ .Price }}</td>
                  <td>{{ .BestFor }}</td>
                  <td>{{ .Pros }}</td>
                  <td>{{ .Cons }}</td>
                </tr>
                {{ end }}
              </tbody>
            </table>
          </div>
        </div>
      </div>
    </section>
    {{ end }}
  </main>
  <script>
    var report = {{ .DataJSON }};
  </script>
  <script>
    (function() {
      var table = document.getElementById('modelsTable');
      if (table) {
        var state = { key: null, asc: false };
        function sortValue(row, th) {
          var key = th.getAttribute('data-key');
          if (key === 'metric') {
            var cell = row.cells[Number(th.getAttribute('data-index'))];
            return cell ? cell.value : 0;
          }
          if (key === 'price') { return row.inputPrice + row.outputPrice; }
          return String(row[key] || '').toLowerCase();
        }
        table.querySelectorAll('thead th').forEach(function(th) {
          th.addEventListener('click', function() {
            state.asc = state.key === th ? !state.asc : false;
            state.key = th;
            var body = table.tBodies[0];
            var trs = Array.prototype.slice.call(body.rows);
            trs.sort(function(a, b) {
              var va = sortValue(report.rows[Number(a.dataset.row)], th);
              var vb = sortValue(report.rows[Number(b.dataset.row)], th);
              var cmp = va < vb ? -1 : (va > vb ? 1 : 0);
              return state.asc ? cmp : -cmp;
            });
            trs.forEach(function(tr) { body.appendChild(tr); });
          });
        });
      }

      function applyTheme(theme) {
        var selected = theme === 'dark' ? 'dark' : 'light';
        document.documentElement.setAttribute('data-theme', selected);
        try { localStorage.setItem('llmcompare-theme', selected); } catch (e) {}
      }
      var saved = null;
      try { saved = localStorage.getItem('llmcompare-theme'); } catch (e) {}
      applyTheme(saved);
      document.getElementById('themeToggle').addEventListener('click', function() {
        var current = document.documentElement.getAttribute('data-theme');
        applyTheme(current === 'dark' ? 'light' : 'dark');
      });
    })();
  </script>
</body>
</html>
`
