package triage

import (
	"context"

	"vitalguard/models"
)

// ExternalClassifier is a delegated language-model backend. Classify returns
// the model's raw text response for a prompt; the triage service owns
// parsing and validation. Implementations are treated as untrusted and
// possibly absent.
type ExternalClassifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// TriageService evaluates symptom descriptions into structured guidance.
type TriageService interface {
	// Evaluate classifies the request for the given user. The delegated
	// classifier is used only when the caller is entitled and a backend is
	// configured; any delegated failure falls back to the rule-based path.
	Evaluate(ctx context.Context, userID string, req models.TriageRequest, entitled bool) (*models.TriageResult, error)
}
