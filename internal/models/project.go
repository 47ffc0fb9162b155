// internal/models/project.go
package models

// TriggerNote records one downstream agent trigger on a project.
type TriggerNote struct {
	Agent     string `json:"agent"`
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ProjectRecord is the persisted result of one planning run. The plan
// itself stays schemaless: the repair pipeline guarantees its required
// fields, and model-supplied extras are kept verbatim.
type ProjectRecord struct {
	ProjectID       string                 `json:"project_id"`
	ConversationID  string                 `json:"conversation_id"`
	Requirements    map[string]interface{} `json:"requirements"`
	CEOPlan         map[string]interface{} `json:"ceo_plan"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"created_at"`
	AgentsTriggered []TriggerNote          `json:"agents_triggered"`
	Model           string                 `json:"model"`
}

// JobRecord is a queued downstream agent job. Jobs are stored, never
// executed.
type JobRecord struct {
	JobID     string                 `json:"job_id"`
	ProjectID string                 `json:"project_id"`
	Agent     string                 `json:"agent"`
	Params    map[string]interface{} `json:"params"`
	Status    string                 `json:"status"`
	CreatedAt string                 `json:"created_at"`
}
