// internal/planning/repair.go
package planning

import (
	"fmt"
	"strconv"
	"strings"

	"automate-agents/internal/common/metrics"
)

// Repair normalizes a parsed model plan in a fixed order so the result
// always satisfies the canonical schema and budget invariants:
//
//  1. budget_allocation.total is forced to the normalized budget
//  2. conversation insights overwrite whatever the model wrote
//  3. missing or empty top-level fields get their defaults
//  4. a phase list shorter than three is replaced wholesale
//  5. budget components are filled field by field, total re-stamped
//  6. kpi, risk, rnd and marketing blocks get field-level defaults
//
// Model-supplied values survive wherever they are present; extra keys
// are kept verbatim. Repair never fails on structure and is idempotent
// apart from re-stamping total and insights.
func Repair(plan map[string]interface{}, requirements map[string]interface{}, budget float64, insights map[string]interface{}) map[string]interface{} {
	if plan == nil {
		plan = map[string]interface{}{}
	}

	// 1. The customer budget is authoritative, never the model's.
	ba := coerceMap(plan, "budget_allocation")
	ba["total"] = budget

	// 2. Insights come from the deterministic extraction step, not
	// from whatever the model echoed back.
	if len(insights) > 0 {
		plan["conversation_insights"] = insights
	}

	// 3. Top-level defaults for missing or empty fields.
	product := reqString(requirements, "product_service")
	projectProduct := product
	if projectProduct == "" {
		projectProduct = "Campaign"
	}

	topDefaults := []struct {
		key   string
		value interface{}
	}{
		{"project_name", projectProduct + " Strategic Plan"},
		{"strategy_summary", "Multi-channel marketing campaign with data-driven approach."},
		{"executive_summary", fmt.Sprintf("Comprehensive marketing campaign for %s targeting %s.", product, reqString(requirements, "target_audience"))},
		{"channels_priority", defaultChannels(requirements)},
		{"timeline_days", 14},
		{"should_trigger_rnd", true},
		{"should_trigger_marketing", true},
		{"success_probability", "Medium"},
	}
	for _, d := range topDefaults {
		if isFalsy(plan[d.key]) {
			plan[d.key] = d.value
			metrics.PlanRepairSubstitutions.WithLabelValues(d.key).Inc()
		}
	}

	// 4. Phases are replaced wholesale, never patched: a partial
	// roadmap is worse than the known-good fallback.
	if phases, ok := plan["phases"].([]interface{}); !ok || len(phases) < 3 {
		plan["phases"] = FallbackPhases()
		metrics.PlanRepairSubstitutions.WithLabelValues("phases").Inc()
	}

	// 5. Budget components keep model values, absent ones get the
	// proportional split. Total is re-stamped last.
	setDefault(ba, "budget_allocation", "rnd_research", budget*RNDShare)
	setDefault(ba, "budget_allocation", "content_creation", budget*ContentShare)
	setDefault(ba, "budget_allocation", "ads_paid", budget*AdsShare)
	setDefault(ba, "budget_allocation", "tools_tech", budget*ToolsShare)
	ba["total"] = budget

	// 6. KPI targets.
	kpi := coerceMap(plan, "kpi_targets")
	setDefault(kpi, "kpi_targets", "leads", LeadsTarget(budget))
	setDefault(kpi, "kpi_targets", "conversion_rate", "3-5%")
	setDefault(kpi, "kpi_targets", "roi_expected", "2-3x")
	setDefault(kpi, "kpi_targets", "cac_target", "₹"+strconv.Itoa(CACTarget(budget)))

	// 7. Risk assessment.
	ra := coerceMap(plan, "risk_assessment")
	if isFalsy(ra["high"]) {
		ra["high"] = []interface{}{"Timeline constraints", "Budget limitations"}
		metrics.PlanRepairSubstitutions.WithLabelValues("risk_assessment.high").Inc()
	}
	if isFalsy(ra["medium"]) {
		ra["medium"] = []interface{}{"Audience targeting", "Market competition"}
		metrics.PlanRepairSubstitutions.WithLabelValues("risk_assessment.medium").Inc()
	}
	setDefault(ra, "risk_assessment", "mitigation", "Daily optimization, A/B testing, continuous monitoring")

	// 8. R&D parameters.
	rnd := coerceMap(plan, "rnd_params")
	setDefault(rnd, "rnd_params", "research_topics", []interface{}{"Market analysis", "Competitor research"})
	setDefault(rnd, "rnd_params", "competitor_analysis", true)
	setDefault(rnd, "rnd_params", "market_research", true)

	// 9. Marketing parameters.
	mp := coerceMap(plan, "marketing_params")
	setDefault(mp, "marketing_params", "campaign_type", "Awareness + Lead Generation")
	setDefault(mp, "marketing_params", "creative_brief", fmt.Sprintf("Create %s for %s", reqString(requirements, "goals"), product))
	setDefault(mp, "marketing_params", "ad_budget", budget*AdsShare)

	return plan
}

// coerceMap returns plan[key] as a map, replacing any non-map value.
func coerceMap(plan map[string]interface{}, key string) map[string]interface{} {
	if m, ok := plan[key].(map[string]interface{}); ok {
		return m
	}
	m := map[string]interface{}{}
	plan[key] = m
	return m
}

// setDefault fills key only when absent, mirroring dict.setdefault.
func setDefault(m map[string]interface{}, section, key string, value interface{}) {
	if _, ok := m[key]; ok {
		return
	}
	m[key] = value
	metrics.PlanRepairSubstitutions.WithLabelValues(section + "." + key).Inc()
}

// isFalsy reports whether a decoded JSON value counts as empty for
// default substitution: nil, false, zero, empty string/array/object.
func isFalsy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	case int:
		return val == 0
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	default:
		return false
	}
}

func reqString(requirements map[string]interface{}, key string) string {
	if s, ok := requirements[key].(string); ok {
		return s
	}
	return ""
}

func defaultChannels(requirements map[string]interface{}) []interface{} {
	raw := reqString(requirements, "channels")
	if raw == "" {
		return []interface{}{"LinkedIn", "YouTube"}
	}
	parts := strings.Split(raw, ",")
	channels := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		channels = append(channels, strings.TrimSpace(p))
	}
	return channels
}
