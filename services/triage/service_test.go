package triage

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"vitalguard/models"
)

type fakeClassifier struct {
	response string
	err      error
}

func (f *fakeClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

type fakeProfileRepo struct {
	profile *models.Profile
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	return f.profile, nil
}
func (f *fakeProfileRepo) Create(profile *models.Profile) error                { return nil }
func (f *fakeProfileRepo) UpdateSetDocument(userID string, doc bson.M) error   { return nil }
func (f *fakeProfileRepo) DeleteByUserID(userID string) error                  { return nil }

type fakePlanRepo struct {
	created []models.Plan
}

func (f *fakePlanRepo) Create(plan *models.Plan) error {
	f.created = append(f.created, *plan)
	return nil
}
func (f *fakePlanRepo) GetByUserID(userID string) ([]models.Plan, error) { return nil, nil }
func (f *fakePlanRepo) Delete(id, userID string) error                   { return nil }

func newTestService(classifier ExternalClassifier, profile *models.Profile) (*DefaultTriageService, *fakePlanRepo) {
	plans := &fakePlanRepo{}
	return &DefaultTriageService{
		ProfileRepo: &fakeProfileRepo{profile: profile},
		PlanRepo:    plans,
		Classifier:  classifier,
	}, plans
}

func TestEvaluateRequiresProfile(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	_, err := svc.Evaluate(context.Background(), "u1", models.TriageRequest{Symptoms: "cough"}, false)
	if err != ErrProfileRequired {
		t.Fatalf("err = %v, want ErrProfileRequired", err)
	}
}

func TestEvaluateRuleBasedByDefault(t *testing.T) {
	// Classifier is configured but the caller did not request it.
	classifier := &fakeClassifier{response: `{"urgency":"low","suggested_specialty":"Dermatology","advice":["x"]}`}
	svc, plans := newTestService(classifier, &models.Profile{UserID: "u1"})

	got, err := svc.Evaluate(context.Background(), "u1", models.TriageRequest{Symptoms: "chest pain"}, false)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got.Urgency != models.UrgencyEmergency {
		t.Errorf("urgency = %q, want emergency from rule path", got.Urgency)
	}
	if len(plans.created) != 1 {
		t.Errorf("plans saved = %d, want 1", len(plans.created))
	}
}

func TestEvaluateUnentitledDelegatedCallDenied(t *testing.T) {
	classifier := &fakeClassifier{response: `{"urgency":"low","advice":["x"]}`}
	svc, plans := newTestService(classifier, &models.Profile{UserID: "u1"})

	_, err := svc.Evaluate(context.Background(), "u1", models.TriageRequest{Symptoms: "cough", UseAI: true}, false)
	if err != ErrUnentitled {
		t.Fatalf("err = %v, want ErrUnentitled", err)
	}
	if len(plans.created) != 0 {
		t.Errorf("plans saved = %d, want 0 on denial", len(plans.created))
	}
}

func TestEvaluateDelegated(t *testing.T) {
	classifier := &fakeClassifier{response: "```json\n" + `{
		"urgency": "high",
		"suggested_specialty": "Cardiology",
		"advice": ["See a cardiologist this week."],
		"lifestyle": ["Low-glycemic carbs, lean proteins.", "Walk daily."],
		"doctor_search_query": "cardiologist near me"
	}` + "\n```"}
	profile := &models.Profile{UserID: "u1", Conditions: "diabetes"}
	svc, _ := newTestService(classifier, profile)

	got, err := svc.Evaluate(context.Background(), "u1", models.TriageRequest{Symptoms: "palpitations", UseAI: true}, true)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got.Urgency != models.UrgencyHigh || got.SuggestedSpecialty != "Cardiology" {
		t.Errorf("got %q/%q, want delegated result", got.Urgency, got.SuggestedSpecialty)
	}

	// Delegated order preserved, missing base tips appended, duplicates skipped.
	wantLifestyle := []string{
		"Low-glycemic carbs, lean proteins.",
		"Walk daily.",
		"Avoid sugary beverages.",
		"150 min/wk moderate activity.",
	}
	if !reflect.DeepEqual(got.Lifestyle, wantLifestyle) {
		t.Errorf("lifestyle = %v, want %v", got.Lifestyle, wantLifestyle)
	}

	if got.GoogleSearchLink != "https://www.google.com/search?q=cardiologist+near+me" {
		t.Errorf("google link = %q", got.GoogleSearchLink)
	}
	if got.Disclaimer != models.TriageDisclaimer {
		t.Errorf("disclaimer not defaulted: %q", got.Disclaimer)
	}
}

func TestEvaluateFallsBackOnDelegatedFailure(t *testing.T) {
	tests := []struct {
		name       string
		classifier *fakeClassifier
	}{
		{"transport error", &fakeClassifier{err: fmt.Errorf("dial timeout")}},
		{"unparseable response", &fakeClassifier{response: "I think you should rest."}},
		{"invalid urgency", &fakeClassifier{response: `{"urgency":"critical","advice":["x"]}`}},
		{"empty advice", &fakeClassifier{response: `{"urgency":"low","advice":[]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.classifier, &models.Profile{UserID: "u1"})
			got, err := svc.Evaluate(context.Background(), "u1", models.TriageRequest{Symptoms: "fever and chills", UseAI: true}, true)
			if err != nil {
				t.Fatalf("Evaluate() error = %v, delegated failures must not propagate", err)
			}
			if got.SuggestedSpecialty != "primary care" || got.Urgency != models.UrgencyMedium {
				t.Errorf("got %q/%q, want rule-based infection result", got.Urgency, got.SuggestedSpecialty)
			}
		})
	}
}

func TestParseClassifierResponse(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		got, err := parseClassifierResponse(`{"urgency":"low","advice":["rest"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Urgency != models.UrgencyLow {
			t.Errorf("urgency = %q", got.Urgency)
		}
	})
	t.Run("fenced json", func(t *testing.T) {
		if _, err := parseClassifierResponse("```json\n{\"urgency\":\"low\",\"advice\":[\"rest\"]}\n```"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("prose rejected", func(t *testing.T) {
		if _, err := parseClassifierResponse("Sounds like a cold."); err == nil {
			t.Fatal("expected error for non-JSON response")
		}
	})
}

func TestMergeLifestyle(t *testing.T) {
	got := mergeLifestyle(
		[]string{"b", "a"},
		[]string{"a", "c", "b", "d"},
	)
	want := []string{"b", "a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeLifestyle() = %v, want %v", got, want)
	}
}
