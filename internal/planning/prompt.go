// internal/planning/prompt.go
package planning

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"automate-agents/internal/common/genai"
	"automate-agents/internal/models"
)

const insightsSystemPrompt = `You are a conversation analyst. Extract key insights from the customer conversation.

Return VALID JSON matching this structure:
{
    "customer_tone": "enthusiastic|neutral|hesitant|urgent",
    "pain_points": ["point1", "point2"],
    "unspoken_needs": ["need1", "need2"],
    "urgency_level": "high|medium|low",
    "budget_flexibility": "fixed|flexible|unknown",
    "market_context": "brief market observation",
    "recommendations": ["rec1", "rec2"]
}`

// BuildInsightsPrompt renders the conversation-analysis chat messages.
// Callers must not invoke the model for an empty history; use
// NoHistoryInsights instead.
func BuildInsightsPrompt(messages []models.ChatMessage) []genai.Message {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		speaker := "Assistant"
		if m.Role == "user" || m.Role == "customer" {
			speaker = "Customer"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Text))
	}

	user := fmt.Sprintf(`Analyze this customer conversation and extract insights:

%s

Return only valid JSON matching the schema above.`, strings.Join(lines, "\n"))

	return []genai.Message{
		{Role: "system", Content: insightsSystemPrompt},
		{Role: "user", Content: user},
	}
}

const planPromptTemplate = `You are a CEO STRATEGIC PLANNING AGENT for Automate.io.

Your task: Transform customer requirements AND conversation insights into a comprehensive JSON strategic marketing plan.

CRITICAL CONSTRAINTS:
1. RETURN ONLY VALID JSON matching the exact schema
2. budget_allocation.total MUST equal {total_budget}
3. timeline_days = sum of all phase durations
4. phases: minimum 3, maximum 5 items
5. All arrays must have minimum 2 items
6. Booleans must be true/false (lowercase)
7. All amounts in INR (₹)

CUSTOMER REQUIREMENTS:
{requirements_json}

CONVERSATION INSIGHTS (use this to enhance strategy):
{insights_json}

Generate a comprehensive CEO strategic plan as valid JSON matching this exact structure:

{
    "project_name": "specific project name",
    "strategy_summary": "2-3 sentence high-level strategy",
    "executive_summary": "detailed paragraph with all key points",
    "phases": [
        {
            "name": "phase name with action verb",
            "duration_days": 3,
            "deliverables": ["specific output 1", "specific output 2"],
            "owner": "R&D",
            "dependencies": [],
            "milestone": true
        },
        {
            "name": "second phase",
            "duration_days": 5,
            "deliverables": ["output 1", "output 2"],
            "owner": "Marketing",
            "dependencies": ["phase name"],
            "milestone": true
        },
        {
            "name": "third phase",
            "duration_days": 6,
            "deliverables": ["output 1", "output 2"],
            "owner": "Marketing",
            "dependencies": ["second phase"],
            "milestone": true
        }
    ],
    "budget_allocation": {
        "rnd_research": {rnd_budget},
        "content_creation": {content_budget},
        "ads_paid": {ads_budget},
        "tools_tech": {tools_budget},
        "total": {total_budget}
    },
    "kpi_targets": {
        "leads": {leads_target},
        "conversion_rate": "3-5%",
        "roi_expected": "2-3x",
        "cac_target": "₹{cac_target}"
    },
    "channels_priority": ["LinkedIn", "YouTube"],
    "timeline_days": 14,
    "risk_assessment": {
        "high": ["Limited budget may restrict reach", "Tight timeline requires agile execution"],
        "medium": ["Market saturation in awareness space", "Audience targeting precision"],
        "mitigation": "Use combination of organic and paid channels. Implement daily optimization."
    },
    "should_trigger_rnd": true,
    "rnd_params": {
        "research_topics": ["Audience behavior analysis", "Competitor positioning", "Market gaps"],
        "competitor_analysis": true,
        "market_research": true
    },
    "should_trigger_marketing": true,
    "marketing_params": {
        "campaign_type": "Awareness + Lead Generation",
        "creative_brief": "Create compelling marketing content for target audience",
        "ad_budget": {ads_budget}
    },
    "conversation_insights": {insights_json},
    "success_probability": "High"
}

VALIDATION CHECKLIST:
- All required keys present
- budget_allocation.total equals {total_budget}
- timeline_days = sum of phase durations
- phases count minimum 3
- Valid JSON only, no markdown

Return ONLY valid JSON. NO explanations.`

// BuildPlanPrompt renders the strategic-plan chat messages. The budget
// anchors are injected as concrete numbers derived from the canonical
// split so the model never has to do arithmetic.
func BuildPlanPrompt(requirements map[string]interface{}, budget float64, insights map[string]interface{}) []genai.Message {
	reqJSON, _ := json.MarshalIndent(requirements, "", "  ")

	insightsText := "No conversation history"
	if len(insights) > 0 {
		b, _ := json.MarshalIndent(insights, "", "  ")
		insightsText = string(b)
	}

	replacer := strings.NewReplacer(
		"{total_budget}", strconv.Itoa(int(budget)),
		"{rnd_budget}", strconv.Itoa(int(budget*RNDShare)),
		"{content_budget}", strconv.Itoa(int(budget*ContentShare)),
		"{ads_budget}", strconv.Itoa(int(budget*AdsShare)),
		"{tools_budget}", strconv.Itoa(int(budget*ToolsShare)),
		"{leads_target}", strconv.Itoa(LeadsTarget(budget)),
		"{cac_target}", strconv.Itoa(CACTarget(budget)),
		"{requirements_json}", string(reqJSON),
		"{insights_json}", insightsText,
	)

	return []genai.Message{
		{Role: "user", Content: replacer.Replace(planPromptTemplate)},
	}
}
