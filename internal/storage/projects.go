// internal/storage/projects.go
package storage

import (
	"time"

	"automate-agents/internal/models"
)

// ProjectStore persists one JSON file per project.
type ProjectStore struct {
	dir string
}

func NewProjectStore(dir string) (*ProjectStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &ProjectStore{dir: dir}, nil
}

func (s *ProjectStore) Save(record *models.ProjectRecord) error {
	return writeJSON(recordPath(s.dir, record.ProjectID), record)
}

func (s *ProjectStore) Get(projectID string) (*models.ProjectRecord, error) {
	var record models.ProjectRecord
	if err := readJSON(recordPath(s.dir, projectID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// AppendTrigger records an agent trigger on an existing project. A
// missing project is not an error: the job still exists on its own.
func (s *ProjectStore) AppendTrigger(projectID, agent, jobID string) error {
	record, err := s.Get(projectID)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	record.AgentsTriggered = append(record.AgentsTriggered, models.TriggerNote{
		Agent:     agent,
		JobID:     jobID,
		Status:    "queued",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return s.Save(record)
}
