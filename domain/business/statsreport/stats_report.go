package statsreport

import (
	"time"

	"bikeshare/domain/entities"
)

// StatsReport contains the result of one statistics calculator over a filtered set
// + Metadata: city, filters and calculator that produced the report
// + Title: header shown before the report lines
// + Lines: human-readable statistics
// + Result: typed result of the calculator
// + Elapsed: time spent computing the statistics
type StatsReport struct {
	Metadata entities.Metadata `json:"metadata"`
	Title    string            `json:"title"`
	Lines    []string          `json:"lines"`
	Result   any               `json:"result"`
	Elapsed  time.Duration     `json:"elapsed"`
}

func NewStatsReport(metadata entities.Metadata, title string, lines []string, result any, elapsed time.Duration) *StatsReport {
	return &StatsReport{
		Metadata: metadata,
		Title:    title,
		Lines:    lines,
		Result:   result,
		Elapsed:  elapsed,
	}
}

func (sr *StatsReport) GetMetadata() entities.Metadata {
	return sr.Metadata
}

func (sr *StatsReport) GetType() string {
	return sr.Metadata.GetType()
}
