// internal/agents/orchestration/service.go
package orchestration

import (
	"errors"
	"fmt"
	"time"

	apperrors "automate-agents/internal/common/errors"
	"automate-agents/internal/common/logger"
	"automate-agents/internal/models"
	"automate-agents/internal/storage"
)

type Service struct {
	jobs     *storage.JobStore
	projects *storage.ProjectStore
	logger   logger.Logger
}

func NewService(jobs *storage.JobStore, projects *storage.ProjectStore, log logger.Logger) *Service {
	return &Service{
		jobs:     jobs,
		projects: projects,
		logger: log.With(map[string]interface{}{
			"agent": "orchestration",
		}),
	}
}

// Trigger queues a downstream agent job. The job record is the whole
// effect; nothing executes it. A trigger note lands on the project
// when the project file exists.
func (s *Service) Trigger(agent, projectID string, params map[string]interface{}) (*TriggerResponse, error) {
	prefix, ok := jobPrefixes[agent]
	if !ok {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("unknown agent: %s", agent))
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	jobID := fmt.Sprintf("%s_%d", prefix, time.Now().Unix())
	record := &models.JobRecord{
		JobID:     jobID,
		ProjectID: projectID,
		Agent:     agent,
		Params:    params,
		Status:    "queued",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.jobs.Save(record); err != nil {
		return nil, apperrors.NewStorageWriteFailedError(err)
	}

	if err := s.projects.AppendTrigger(projectID, agent, jobID); err != nil {
		return nil, apperrors.NewStorageWriteFailedError(err)
	}

	s.logger.Info("agent triggered", map[string]interface{}{
		"agent":     agent,
		"jobId":     jobID,
		"projectId": projectID,
	})

	return &TriggerResponse{
		Status:      "success",
		JobID:       jobID,
		Agent:       agent,
		QueueStatus: "queued",
		NextCheck:   "/api/v1/jobs/" + jobID,
	}, nil
}

func (s *Service) GetJob(jobID string) (*models.JobRecord, error) {
	record, err := s.jobs.Get(jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.NewJobNotFoundError(jobID)
	}
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(err)
	}
	return record, nil
}
