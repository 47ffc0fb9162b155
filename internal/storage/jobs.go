// internal/storage/jobs.go
package storage

import (
	"automate-agents/internal/models"
)

// JobStore persists one JSON file per queued job.
type JobStore struct {
	dir string
}

func NewJobStore(dir string) (*JobStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &JobStore{dir: dir}, nil
}

func (s *JobStore) Save(record *models.JobRecord) error {
	return writeJSON(recordPath(s.dir, record.JobID), record)
}

func (s *JobStore) Get(jobID string) (*models.JobRecord, error) {
	var record models.JobRecord
	if err := readJSON(recordPath(s.dir, jobID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
