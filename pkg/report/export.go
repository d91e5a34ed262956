package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/graphgauge/graphgauge/pkg/analysis"
	"github.com/graphgauge/graphgauge/pkg/engine"
)

// bucketCount is one histogram row in the export formats.
type bucketCount struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// centralityEntry pairs an enumeration index with its score.
type centralityEntry struct {
	Node  int     `json:"node"`
	Score float64 `json:"score"`
}

type exportSummary struct {
	NodeCount    int               `json:"node_count"`
	EdgeCount    int               `json:"edge_count"`
	Degree       []bucketCount     `json:"degree_distribution"`
	SecondDegree []bucketCount     `json:"second_degree_distribution"`
	Centrality   []centralityEntry `json:"closeness_centrality"`
}

// WriteCSV writes the full summary as section,key,value rows.
func WriteCSV(s *engine.Summary, path string) error {
	data, err := csvBytes(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteJSON writes the full summary as an indented JSON document.
func WriteJSON(s *engine.Summary, path string) error {
	data, err := jsonBytes(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func csvBytes(s *engine.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"section", "key", "value"},
		{"summary", "node_count", strconv.Itoa(s.NodeCount)},
		{"summary", "edge_count", strconv.Itoa(s.EdgeCount)},
	}
	for _, row := range histogramRows(s.Degree) {
		records = append(records, []string{"degree", strconv.Itoa(row.Bucket), strconv.Itoa(row.Count)})
	}
	for _, row := range histogramRows(s.SecondDegree) {
		records = append(records, []string{"second_degree", strconv.Itoa(row.Bucket), strconv.Itoa(row.Count)})
	}
	for i, score := range s.Centrality {
		records = append(records, []string{"centrality", strconv.Itoa(i), FormatScore(score)})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jsonBytes(s *engine.Summary) ([]byte, error) {
	out := exportSummary{
		NodeCount:    s.NodeCount,
		EdgeCount:    s.EdgeCount,
		Degree:       histogramRows(s.Degree),
		SecondDegree: histogramRows(s.SecondDegree),
		Centrality:   make([]centralityEntry, 0, len(s.Centrality)),
	}
	for i, score := range s.Centrality {
		out.Centrality = append(out.Centrality, centralityEntry{Node: i, Score: score})
	}
	return json.MarshalIndent(out, "", "  ")
}

// histogramRows flattens a histogram into rows sorted by bucket so the
// exports stay byte-stable across runs.
func histogramRows(h analysis.Histogram) []bucketCount {
	rows := make([]bucketCount, 0, len(h))
	for _, bucket := range sortedBuckets(h) {
		rows = append(rows, bucketCount{Bucket: bucket, Count: h[bucket]})
	}
	return rows
}
