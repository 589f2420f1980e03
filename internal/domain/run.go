package domain

import "time"

// RunStatus indica o desfecho de uma execução do job de reconciliação.
type RunStatus string

const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusNoData    RunStatus = "no_data"
	RunStatusFailed    RunStatus = "failed"
)

// RunSummary resume uma execução completa do job, gravado no histórico e
// exposto no endpoint de status.
type RunSummary struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Status      RunStatus
	JournalDocs []string
	TotalAmount string
}
