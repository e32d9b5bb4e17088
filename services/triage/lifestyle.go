package triage

import (
	"strings"

	"vitalguard/models"
)

// maxLifestyleTips caps the tip list in any triage result.
const maxLifestyleTips = 6

// LifestyleTips derives lifestyle recommendations from the profile's
// conditions and BMI. Tips follow condition-check order and are capped at
// maxLifestyleTips. A nil profile yields no tips.
func LifestyleTips(profile *models.Profile) []string {
	var tips []string
	if profile == nil {
		return tips
	}
	conds := strings.ToLower(profile.Conditions)

	if strings.Contains(conds, "diabetes") {
		tips = append(tips,
			"Low-glycemic carbs, lean proteins.",
			"Avoid sugary beverages.",
			"150 min/wk moderate activity.")
	}
	if strings.Contains(conds, "hypertension") || strings.Contains(conds, "high blood pressure") {
		tips = append(tips,
			"DASH-style diet, low sodium.",
			"Limit alcohol; monitor BP 3-4x/wk.")
	}
	if bmi, ok := profile.BMI(); ok && bmi >= 30 {
		tips = append(tips,
			"Swap fried for baked; soda for water.",
			"8-10k steps/day + 2x/wk resistance.")
	}
	if strings.Contains(conds, "asthma") {
		tips = append(tips,
			"Track triggers; warm up before activity; keep rescue inhaler accessible.")
	}

	if len(tips) > maxLifestyleTips {
		tips = tips[:maxLifestyleTips]
	}
	return tips
}
