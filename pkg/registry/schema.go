// pkg/registry/schema.go
package registry

// AgentRegistry is the service catalog served on the root endpoint.
type AgentRegistry struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Agents      []Agent `json:"agents"`
}

type Agent struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
	Tags        []string `json:"tags"`
}

// Services maps agent id to its endpoint list, the shape the root
// endpoint exposes.
func (r *AgentRegistry) Services() map[string][]string {
	services := make(map[string][]string, len(r.Agents))
	for _, agent := range r.Agents {
		services[agent.ID] = agent.Endpoints
	}
	return services
}
