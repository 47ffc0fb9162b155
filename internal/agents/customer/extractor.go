// internal/agents/customer/extractor.go
package customer

import (
	"strings"

	"automate-agents/internal/models"
)

// Keyword sets per requirement field. Extraction is presence-only: a
// field is either "mentioned" somewhere in the conversation or null.
var fieldKeywords = map[string][]string{
	"product_service": {"product", "service", "sell", "launch", "ashwagandha", "supplement"},
	"target_audience": {"target", "audience", "customer", "professional", "age", "students", "parents"},
	"budget":          {"budget", "₹", "lakh", "crore", "rs", "rupee", "price", "spend"},
	"timeline":        {"week", "month", "timeline", "when", "launch", "start", "duration"},
	"channels":        {"instagram", "insta", "linkedin", "email", "youtube", "facebook", "social"},
	"goals":           {"lead", "leads", "sale", "sales", "awareness", "signup", "conversion"},
}

const fieldCount = 6

// ExtractRequirements scans the concatenated conversation text for
// each field's keywords, case-insensitively.
func ExtractRequirements(text string) models.Requirements {
	t := strings.ToLower(text)

	present := func(words []string) *string {
		for _, w := range words {
			if strings.Contains(t, w) {
				mentioned := "mentioned"
				return &mentioned
			}
		}
		return nil
	}

	return models.Requirements{
		ProductService: present(fieldKeywords["product_service"]),
		TargetAudience: present(fieldKeywords["target_audience"]),
		Budget:         present(fieldKeywords["budget"]),
		Timeline:       present(fieldKeywords["timeline"]),
		Channels:       present(fieldKeywords["channels"]),
		Goals:          present(fieldKeywords["goals"]),
	}
}

// Completeness is the collected-field ratio in [0, 1].
func Completeness(reqs models.Requirements) float64 {
	collected := 0
	for _, f := range []*string{
		reqs.ProductService,
		reqs.TargetAudience,
		reqs.Budget,
		reqs.Timeline,
		reqs.Channels,
		reqs.Goals,
	} {
		if f != nil {
			collected++
		}
	}
	return float64(collected) / fieldCount
}

// MissingFields lists the fields not yet mentioned, in schema order.
func MissingFields(reqs models.Requirements) []string {
	missing := []string{}
	fields := []struct {
		name  string
		value *string
	}{
		{"product_service", reqs.ProductService},
		{"target_audience", reqs.TargetAudience},
		{"budget", reqs.Budget},
		{"timeline", reqs.Timeline},
		{"channels", reqs.Channels},
		{"goals", reqs.Goals},
	}
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}
