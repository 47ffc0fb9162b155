// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"
)

func LoadRegistry(path string) (*AgentRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg AgentRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Default is the built-in catalog used when no registry file is
// configured.
func Default() *AgentRegistry {
	return &AgentRegistry{
		Version: "2.0.0",
		Agents: []Agent{
			{
				ID:          "customer",
				DisplayName: "Customer Intake Agent",
				Description: "Chat intake collecting the six requirement fields",
				Endpoints: []string{
					"POST /api/v1/customer/message",
					"GET  /api/v1/customer/{id}",
					"GET  /api/v1/customer/ready/{id}",
					"POST /api/v1/customer/export/{id}",
				},
				Tags: []string{"intake", "chat"},
			},
			{
				ID:          "ceo",
				DisplayName: "CEO Planning Agent",
				Description: "Strategic plan generation with deterministic repair",
				Endpoints: []string{
					"POST /api/v1/ceo/analyze",
					"GET  /api/v1/ceo/{project_id}",
					"GET  /api/v1/ceo/status",
				},
				Tags: []string{"planning", "llm"},
			},
			{
				ID:          "agents",
				DisplayName: "Agent Orchestration",
				Description: "Queued R&D and marketing job triggers",
				Endpoints: []string{
					"POST /api/v1/rnd/trigger",
					"POST /api/v1/marketing/trigger",
					"GET  /api/v1/jobs/{job_id}",
				},
				Tags: []string{"orchestration", "jobs"},
			},
		},
	}
}
