package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLedgerIntegrityScan audits persisted entries against the
	// double-entry law.
	TaskLedgerIntegrityScan = "ledger:integrity_scan"
)

// IntegrityScanPayload bounds the audit to entries dated on or after Since
// (YYYY-MM-DD). Empty means the full history.
type IntegrityScanPayload struct {
	Since string `json:"since,omitempty"`
}

// NewIntegrityScanTask constructs an Asynq task.
func NewIntegrityScanTask(payload IntegrityScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLedgerIntegrityScan, data), nil
}
