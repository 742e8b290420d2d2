package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskBalansRefresh recomputes the balance report and caches a snapshot.
	TaskBalansRefresh = "balans:refresh"
)

// BalansRefreshPayload parameterises a snapshot refresh run.
type BalansRefreshPayload struct {
	// Reason records what triggered the refresh, for log correlation.
	Reason string `json:"reason,omitempty"`
}

// NewBalansRefreshTask constructs an Asynq task.
func NewBalansRefreshTask(payload BalansRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBalansRefresh, data), nil
}
