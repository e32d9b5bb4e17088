package models

// Urgency levels returned by the triage classifier, highest first.
const (
	UrgencyEmergency = "emergency"
	UrgencyHigh      = "high"
	UrgencyMedium    = "medium"
	UrgencyLow       = "low"
)

// Disclaimer attached to every triage result.
const TriageDisclaimer = "Educational support only. Not a medical diagnosis. Seek professional care for urgent concerns."

// TriageRequest is the payload coming into /api/assistant/triage.
// UseAI requests the delegated classifier, which is available to entitled
// subscribers only.
type TriageRequest struct {
	Symptoms string `json:"symptoms"`
	Query    string `json:"query"`
	UseAI    bool   `json:"useAi"`
}

// TriageResult is the classifier output contract, shared by the rule-based
// and delegated paths.
type TriageResult struct {
	Urgency            string   `json:"urgency"`
	SuggestedSpecialty string   `json:"suggested_specialty"`
	Advice             []string `json:"advice"`
	Lifestyle          []string `json:"lifestyle"`
	DoctorSearchQuery  string   `json:"doctor_search_query,omitempty"`
	GoogleSearchLink   string   `json:"google_search_link,omitempty"`
	Disclaimer         string   `json:"disclaimer"`
}
