// internal/agents/orchestration/models.go
package orchestration

// Downstream agent names and their job id prefixes.
const (
	AgentRND       = "rnd"
	AgentMarketing = "marketing"
)

var jobPrefixes = map[string]string{
	AgentRND:       "rnd",
	AgentMarketing: "mkt",
}

type TriggerRequest struct {
	ProjectID string                 `json:"project_id" binding:"required"`
	Params    map[string]interface{} `json:"params"`
}

type TriggerResponse struct {
	Status      string `json:"status"`
	JobID       string `json:"job_id"`
	Agent       string `json:"agent"`
	QueueStatus string `json:"queue_status"`
	NextCheck   string `json:"next_check"`
}
