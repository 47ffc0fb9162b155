// internal/planning/validate.go
package planning

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"automate-agents/internal/common/metrics"
)

// ValidateRawPlan checks a parsed model plan against the canonical
// schema and returns the list of defects. Defects never fail the
// pipeline: repair substitutes every missing or malformed field. They
// are reported so prompt regressions show up in logs and metrics.
func ValidateRawPlan(raw map[string]interface{}) []string {
	schemaLoader := gojsonschema.NewStringLoader(PlanSchemaDocument)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("schema validation error: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	defects := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		defects = append(defects, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		metrics.PlanSchemaDefects.WithLabelValues(desc.Field()).Inc()
	}
	return defects
}
