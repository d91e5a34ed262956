package report

import (
	"encoding/json"
	"html/template"
	"os"
	"time"

	"github.com/graphgauge/graphgauge/pkg/engine"
	"github.com/graphgauge/graphgauge/pkg/version"
)

// dashboardData feeds the HTML template.
type dashboardData struct {
	GeneratedAt string
	Version     string
	NodeCount   int
	EdgeCount   int
	Malformed   int
	Centrality  []centralityRow

	// Chart data
	DegreeLabelsJSON template.JS
	DegreeValuesJSON template.JS
}

type centralityRow struct {
	Node  int
	Score string
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>graphgauge // Network Snapshot</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --bg-deep: #030712;
            --bg-glass: rgba(17, 24, 39, 0.7);
            --border-glass: rgba(255, 255, 255, 0.08);
            --text-primary: #f8fafc;
            --text-secondary: #94a3b8;
            --accent-glow: #3b82f6;
            --font-mono: 'JetBrains Mono', monospace;
        }
        body {
            background-color: var(--bg-deep);
            color: var(--text-primary);
            font-family: sans-serif;
            margin: 0;
            padding: 3rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        .panel {
            background: var(--bg-glass);
            border: 1px solid var(--border-glass);
            border-radius: 1rem;
            padding: 2rem;
            margin-bottom: 1.5rem;
        }
        header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 2rem;
            border-bottom: 1px solid var(--border-glass);
            padding-bottom: 1rem;
        }
        h1 { margin: 0; letter-spacing: -0.03em; }
        .meta { color: var(--text-secondary); font-family: var(--font-mono); font-size: 0.85rem; }
        .kpi-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1.5rem; margin-bottom: 1.5rem; }
        .kpi-label { font-size: 0.8rem; color: var(--text-secondary); text-transform: uppercase; letter-spacing: 0.05em; }
        .kpi-value { font-size: 2.5rem; font-weight: 700; font-family: var(--font-mono); }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 0.6rem 1rem; border-bottom: 1px solid var(--border-glass); }
        th { color: var(--text-secondary); font-size: 0.75rem; text-transform: uppercase; }
        td { font-family: var(--font-mono); font-size: 0.9rem; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>graphgauge</h1>
            <span class="meta">{{.Version}} // {{.GeneratedAt}}</span>
        </header>

        <div class="kpi-grid">
            <div class="panel">
                <div class="kpi-label">Nodes</div>
                <div class="kpi-value">{{.NodeCount}}</div>
            </div>
            <div class="panel">
                <div class="kpi-label">Edges</div>
                <div class="kpi-value">{{.EdgeCount}}</div>
            </div>
            <div class="panel">
                <div class="kpi-label">Malformed Lines</div>
                <div class="kpi-value">{{.Malformed}}</div>
            </div>
        </div>

        <div class="panel">
            <h3>Out-Degree Distribution</h3>
            <div style="height: 320px;"><canvas id="degreeChart"></canvas></div>
        </div>

        <div class="panel">
            <h3>Closeness Centrality (first {{len .Centrality}} nodes)</h3>
            <table>
                <thead><tr><th>Node</th><th>Score</th></tr></thead>
                <tbody>
                    {{range .Centrality}}
                    <tr><td>{{.Node}}</td><td>{{.Score}}</td></tr>
                    {{end}}
                </tbody>
            </table>
        </div>
    </div>

    <script>
        const labels = {{.DegreeLabelsJSON}};
        const values = {{.DegreeValuesJSON}};
        new Chart(document.getElementById('degreeChart').getContext('2d'), {
            type: 'bar',
            data: {
                labels: labels,
                datasets: [{
                    label: 'Nodes',
                    data: values,
                    backgroundColor: 'rgba(59, 130, 246, 0.5)',
                    borderColor: '#3b82f6',
                    borderWidth: 2,
                    borderRadius: 4
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                plugins: { legend: { display: false } },
                scales: {
                    y: { grid: { color: 'rgba(255, 255, 255, 0.05)' } },
                    x: { grid: { display: false } }
                }
            }
        });
    </script>
</body>
</html>
`

// GenerateHTML writes a self-contained dashboard for the summary.
func GenerateHTML(s *engine.Summary, path string) error {
	data := dashboardData{
		GeneratedAt: time.Now().Format(time.RFC822),
		Version:     version.Current,
		NodeCount:   s.NodeCount,
		EdgeCount:   s.EdgeCount,
		Malformed:   s.Ingest.Malformed,
	}

	for i := 0; i < previewLen(s); i++ {
		data.Centrality = append(data.Centrality, centralityRow{
			Node:  i,
			Score: FormatScore(s.Centrality[i]),
		})
	}

	labels := make([]int, 0, len(s.Degree))
	values := make([]int, 0, len(s.Degree))
	for _, row := range histogramRows(s.Degree) {
		labels = append(labels, row.Bucket)
		values = append(values, row.Count)
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return err
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return err
	}
	data.DegreeLabelsJSON = template.JS(labelsJSON)
	data.DegreeValuesJSON = template.JS(valuesJSON)

	t, err := template.New("dashboard").Parse(htmlTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, data)
}
