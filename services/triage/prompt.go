package triage

import (
	"encoding/json"
	"fmt"

	"vitalguard/models"
)

// profileContext serializes the health profile fields relevant to the
// assistant. It deliberately omits contact details and notification
// preferences.
func profileContext(profile *models.Profile) string {
	if profile == nil {
		return "No profile on file."
	}
	ctx := map[string]any{
		"name":            profile.Name,
		"age":             profile.Age,
		"gender":          profile.Gender,
		"weight_kg":       profile.WeightKg,
		"height_cm":       profile.HeightCm,
		"conditions":      profile.Conditions,
		"allergies":       profile.Allergies,
		"medications":     profile.Medications,
		"goals":           profile.Goals,
		"diet_prefs":      profile.DietPrefs,
		"activity_limits": profile.ActivityLimits,
		"notes":           profile.Notes,
	}
	out, err := json.Marshal(ctx)
	if err != nil {
		return "No profile on file."
	}
	return string(out)
}

// buildPrompt constructs the delegated-classifier prompt. The safety rules
// force emergency urgency for red-flag symptoms regardless of what else the
// model concludes.
func buildPrompt(req models.TriageRequest, profile *models.Profile) string {
	return fmt.Sprintf(`You are a cautious, empathetic AI health assistant named Vital Guard. Your goal is to provide safe, helpful, and clear guidance.
Return a single, valid JSON object with the following keys:
- "urgency": (string) one of "emergency", "high", "medium", "low".
- "suggested_specialty": (string) e.g., "Cardiology", "Primary Care".
- "advice": (array of strings) Actionable next steps for the user.
- "lifestyle": (array of strings) Relevant lifestyle tips based on their profile and symptoms.
- "doctor_search_query": (string) A Google search query to find a relevant local specialist. Example: "cardiologist near me for chest pain".
- "disclaimer": (string) A standard medical disclaimer.

CRITICAL SAFETY RULES:
- If symptoms include any red flags (chest pain, difficulty breathing, severe bleeding, stroke symptoms like one-sided numbness), ALWAYS set urgency to "emergency" and the first piece of advice MUST be "Call emergency services (911) or go to the nearest emergency room immediately."
- Your responses are for informational purposes only and are not a substitute for professional medical advice, diagnosis, or treatment.
- Be conservative in your recommendations. When in doubt, advise consulting a healthcare professional.

User's Symptoms: %q
User's Specific Question: %q
User's Health Profile: %s
`, req.Symptoms, req.Query, profileContext(profile))
}
