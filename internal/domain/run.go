package domain

import "time"

// RunResult descreve uma execução completa do pipeline
type RunResult struct {
	RunID            string
	StartedAt        time.Time
	CompletedAt      time.Time
	RecordsRead      int
	Parsed           int
	Malformed        int
	Validation       ValidationSummary
	Enriched         int
	Matched          int
	Analytics        Analytics
	EnrichedDataPath string
	ReportPath       string
}
