// internal/planning/schema.go
//
// Single source of truth for the canonical plan shape. The prompt
// builder and the repair pipeline both read these definitions, so the
// promised schema and the guaranteed schema cannot drift apart.
package planning

// Budget split ratios applied to the normalized customer budget.
const (
	RNDShare     = 0.15
	ContentShare = 0.25
	AdsShare     = 0.50
	ToolsShare   = 0.10
)

// LeadsTarget derives the lead KPI from the budget.
func LeadsTarget(budget float64) int {
	leads := int(budget / 1000)
	if leads < 10 {
		return 10
	}
	return leads
}

// CACTarget derives the customer acquisition cost KPI from the budget.
func CACTarget(budget float64) int {
	return int(budget) / LeadsTarget(budget)
}

// FallbackPhases is the fixed three-phase roadmap substituted when the
// model returns fewer than three phases or no phase list at all.
func FallbackPhases() []interface{} {
	return []interface{}{
		map[string]interface{}{
			"name":          "Research & Planning",
			"duration_days": 3,
			"deliverables":  []interface{}{"Strategy document"},
			"owner":         "R&D",
			"dependencies":  []interface{}{},
			"milestone":     true,
		},
		map[string]interface{}{
			"name":          "Content Creation",
			"duration_days": 5,
			"deliverables":  []interface{}{"Creative assets"},
			"owner":         "Marketing",
			"dependencies":  []interface{}{"Research & Planning"},
			"milestone":     true,
		},
		map[string]interface{}{
			"name":          "Campaign Execution",
			"duration_days": 6,
			"deliverables":  []interface{}{"Live campaign", "Performance report"},
			"owner":         "Marketing",
			"dependencies":  []interface{}{"Content Creation"},
			"milestone":     true,
		},
	}
}

// NoHistoryInsights is the neutral insight set used when there is no
// conversation to analyze. No model call is made for it.
func NoHistoryInsights() map[string]interface{} {
	return map[string]interface{}{
		"customer_tone":      "neutral",
		"pain_points":        []interface{}{"Limited information provided"},
		"unspoken_needs":     []interface{}{"Market validation"},
		"urgency_level":      "medium",
		"budget_flexibility": "unknown",
		"market_context":     "No conversation history",
		"recommendations":    []interface{}{"Collect more market data"},
	}
}

// AnalysisFailedInsights is the neutral insight set used when the
// analysis call or its JSON parse fails.
func AnalysisFailedInsights() map[string]interface{} {
	return map[string]interface{}{
		"customer_tone":      "neutral",
		"pain_points":        []interface{}{"Analysis failed"},
		"unspoken_needs":     []interface{}{"Needs assessment"},
		"urgency_level":      "medium",
		"budget_flexibility": "unknown",
		"market_context":     "Conversation analyzed",
		"recommendations":    []interface{}{"Proceed with standard approach"},
	}
}

// PlanSchemaDocument is the JSON Schema the raw model output is
// checked against before repair. Violations are logged and counted;
// repair still guarantees the final shape either way.
const PlanSchemaDocument = `{
  "type": "object",
  "required": [
    "project_name",
    "strategy_summary",
    "executive_summary",
    "phases",
    "budget_allocation",
    "kpi_targets",
    "channels_priority",
    "timeline_days",
    "risk_assessment",
    "should_trigger_rnd",
    "rnd_params",
    "should_trigger_marketing",
    "marketing_params",
    "success_probability"
  ],
  "properties": {
    "project_name": {"type": "string"},
    "strategy_summary": {"type": "string"},
    "executive_summary": {"type": "string"},
    "phases": {
      "type": "array",
      "minItems": 3,
      "items": {
        "type": "object",
        "required": ["name", "duration_days", "deliverables", "owner"],
        "properties": {
          "name": {"type": "string"},
          "duration_days": {"type": "number"},
          "deliverables": {"type": "array"},
          "owner": {"type": "string"},
          "dependencies": {"type": "array"},
          "milestone": {"type": "boolean"}
        }
      }
    },
    "budget_allocation": {
      "type": "object",
      "required": ["rnd_research", "content_creation", "ads_paid", "tools_tech", "total"],
      "properties": {
        "rnd_research": {"type": "number"},
        "content_creation": {"type": "number"},
        "ads_paid": {"type": "number"},
        "tools_tech": {"type": "number"},
        "total": {"type": "number"}
      }
    },
    "kpi_targets": {
      "type": "object",
      "properties": {
        "leads": {"type": "number"},
        "conversion_rate": {"type": "string"},
        "roi_expected": {"type": "string"},
        "cac_target": {"type": "string"}
      }
    },
    "channels_priority": {"type": "array"},
    "timeline_days": {"type": "number"},
    "risk_assessment": {
      "type": "object",
      "properties": {
        "high": {"type": "array"},
        "medium": {"type": "array"},
        "mitigation": {"type": "string"}
      }
    },
    "should_trigger_rnd": {"type": "boolean"},
    "rnd_params": {"type": "object"},
    "should_trigger_marketing": {"type": "boolean"},
    "marketing_params": {"type": "object"},
    "conversation_insights": {"type": "object"},
    "success_probability": {"type": "string"}
  }
}`
