package triage

import (
	"strings"

	"vitalguard/models"
)

// ruleCategory is one entry in the ordered classifier table. Categories are
// evaluated top to bottom and the first match wins, so emergency terms
// short-circuit everything below them.
type ruleCategory struct {
	terms     []string
	urgency   string
	specialty string
	advice    string
}

var ruleCategories = []ruleCategory{
	{
		terms:     []string{"chest pain", "pressure in chest", "shortness of breath", "stroke", "numbness one side", "fainting", "severe bleeding"},
		urgency:   models.UrgencyEmergency,
		specialty: "emergency medicine",
		advice:    "Call emergency services or go to the ER immediately.",
	},
	{
		terms:     []string{"palpitations", "irregular heartbeat", "swelling ankles", "hypertension", "bp high"},
		urgency:   models.UrgencyHigh,
		specialty: "cardiology",
		advice:    "Schedule an urgent appointment with a cardiologist.",
	},
	{
		terms:     []string{"thirst", "urination", "blurry vision", "fatigue", "slow healing"},
		urgency:   models.UrgencyMedium,
		specialty: "endocrinology",
		advice:    "Check blood glucose and consult an endocrinologist.",
	},
	{
		terms:     []string{"fever", "chills", "sore throat", "cough", "congestion", "flu", "body aches"},
		urgency:   models.UrgencyMedium,
		specialty: "primary care",
		advice:    "Hydrate, rest; test for COVID/flu; see primary care if persists.",
	},
	{
		terms:     []string{"migraine", "headache", "light sensitivity", "aura", "nausea"},
		urgency:   models.UrgencyLow,
		specialty: "neurology",
		advice:    "Reduce light; hydrate; consider OTC analgesics if appropriate.",
	},
	{
		terms:     []string{"abdominal pain", "diarrhea", "constipation", "heartburn", "acid reflux", "nausea", "vomiting"},
		urgency:   models.UrgencyLow,
		specialty: "gastroenterology",
		advice:    "Track foods; hydrate; seek care if severe/persistent.",
	},
}

// ClassifyByRules runs the deterministic keyword classifier over the symptom
// text and appends profile-derived lifestyle tips. When no category matches,
// a default low-urgency watch-and-wait result is produced.
func ClassifyByRules(symptomText string, profile *models.Profile) models.TriageResult {
	text := strings.ToLower(symptomText)

	result := models.TriageResult{
		Urgency:            models.UrgencyLow,
		SuggestedSpecialty: "primary care",
		Disclaimer:         models.TriageDisclaimer,
	}

	matched := false
	for _, cat := range ruleCategories {
		if containsAny(text, cat.terms) {
			result.Urgency = cat.urgency
			result.SuggestedSpecialty = cat.specialty
			result.Advice = []string{cat.advice}
			matched = true
			break
		}
	}
	if !matched {
		result.Advice = []string{"Monitor symptoms. If they worsen or persist >48 hours, see primary care."}
	}

	result.Lifestyle = LifestyleTips(profile)
	return result
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
