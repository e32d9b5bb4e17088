package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vitalguard/config"
	planRepo "vitalguard/database/repository/plan"
	profileRepo "vitalguard/database/repository/profile"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// classifyTimeout bounds a single delegated-classifier call so a hung
// backend cannot stall the request.
const classifyTimeout = 30 * time.Second

// ErrProfileRequired is returned when the caller has no health profile yet.
var ErrProfileRequired = fmt.Errorf("please complete your profile first")

// ErrUnentitled is returned when an unentitled caller requests the delegated
// classifier.
var ErrUnentitled = fmt.Errorf("the AI assistant requires an active subscription")

// DefaultTriageService is the production implementation.
type DefaultTriageService struct {
	ProfileRepo profileRepo.ProfileRepository
	PlanRepo    planRepo.PlanRepository
	Classifier  ExternalClassifier
}

// NewExternalClassifier builds the delegated backend selected by
// TRIAGE_PROVIDER, or nil when no backend is configured.
func NewExternalClassifier(cfg config.Config) ExternalClassifier {
	switch cfg.TriageProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			utils.GetLogger().Warn("TRIAGE_PROVIDER is openai but OPENAI_API_KEY is unset")
			return nil
		}
		return NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			utils.GetLogger().Warn("TRIAGE_PROVIDER is gemini but GEMINI_API_KEY is unset")
			return nil
		}
		classifier, err := NewGeminiClassifier(cfg.GeminiAPIKey)
		if err != nil {
			utils.GetLogger().Error("Failed to initialize Gemini classifier", zap.Error(err))
			return nil
		}
		return classifier
	case "":
		return nil
	default:
		utils.GetLogger().Warn("Unknown TRIAGE_PROVIDER, falling back to rule-based triage",
			zap.String("provider", cfg.TriageProvider))
		return nil
	}
}

// Evaluate classifies the request for the given user. A delegated-classifier
// failure of any kind degrades to the rule-based result rather than
// surfacing an error.
func (s *DefaultTriageService) Evaluate(ctx context.Context, userID string, req models.TriageRequest, entitled bool) (*models.TriageResult, error) {
	profile, err := s.ProfileRepo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to load profile for triage",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("triage failed, please try again")
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}

	if req.UseAI && !entitled {
		return nil, ErrUnentitled
	}

	var result models.TriageResult
	if req.UseAI && s.Classifier != nil {
		delegated, err := s.classifyDelegated(ctx, req, profile)
		if err != nil {
			utils.GetLogger().Warn("Delegated triage failed, using rule-based result",
				zap.String("userID", userID), zap.Error(err))
			result = ClassifyByRules(req.Symptoms, profile)
		} else {
			result = *delegated
		}
	} else {
		result = ClassifyByRules(req.Symptoms, profile)
	}

	if result.Disclaimer == "" {
		result.Disclaimer = models.TriageDisclaimer
	}
	if result.DoctorSearchQuery != "" {
		result.GoogleSearchLink = "https://www.google.com/search?q=" + url.QueryEscape(result.DoctorSearchQuery)
	}

	s.savePlan(userID, &result)
	return &result, nil
}

// classifyDelegated runs the external backend and strictly parses its
// response, then merges in the deterministic lifestyle tips so delegated
// results never lose base profile coverage.
func (s *DefaultTriageService) classifyDelegated(ctx context.Context, req models.TriageRequest, profile *models.Profile) (*models.TriageResult, error) {
	cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	raw, err := s.Classifier.Classify(cctx, buildPrompt(req, profile))
	if err != nil {
		return nil, err
	}

	result, err := parseClassifierResponse(raw)
	if err != nil {
		return nil, err
	}

	result.Lifestyle = mergeLifestyle(result.Lifestyle, LifestyleTips(profile))
	return result, nil
}

// parseClassifierResponse decodes the model output as a TriageResult,
// tolerating markdown code fences around the JSON but nothing else.
func parseClassifierResponse(raw string) (*models.TriageResult, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result models.TriageResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("unparseable classifier response: %w", err)
	}

	switch result.Urgency {
	case models.UrgencyEmergency, models.UrgencyHigh, models.UrgencyMedium, models.UrgencyLow:
	default:
		return nil, fmt.Errorf("classifier returned invalid urgency %q", result.Urgency)
	}
	if len(result.Advice) == 0 {
		return nil, fmt.Errorf("classifier returned no advice")
	}
	return &result, nil
}

// mergeLifestyle appends each base tip not already present in the delegated
// list, preserving the delegated order.
func mergeLifestyle(delegated, base []string) []string {
	seen := make(map[string]bool, len(delegated))
	for _, tip := range delegated {
		seen[tip] = true
	}
	for _, tip := range base {
		if !seen[tip] {
			delegated = append(delegated, tip)
			seen[tip] = true
		}
	}
	return delegated
}

// savePlan persists the result as an opaque assistant plan record. Failures
// are logged only; a lost plan never fails the triage call.
func (s *DefaultTriageService) savePlan(userID string, result *models.TriageResult) {
	content, err := json.Marshal(result)
	if err != nil {
		utils.GetLogger().Error("Failed to serialize triage plan", zap.Error(err))
		return
	}
	plan := &models.Plan{
		ID:      uuid.New().String(),
		UserID:  userID,
		Kind:    "assistant",
		Content: string(content),
	}
	if err := s.PlanRepo.Create(plan); err != nil {
		utils.GetLogger().Error("Failed to save triage plan",
			zap.String("userID", userID), zap.Error(err))
	}
}
