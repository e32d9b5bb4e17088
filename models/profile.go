package models

import "time"

// Profile holds a user's health profile. Exactly one profile exists per user;
// it is created automatically at registration.
type Profile struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"userId" json:"userId"`
	Name   string `bson:"name" json:"name"`
	Gender string `bson:"gender" json:"gender"`

	// Biometrics, all optional. Used only for derived lifestyle tips.
	Age      int     `bson:"age,omitempty" json:"age,omitempty"`
	WeightKg float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCm float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`

	// Free-text medical context.
	Conditions  string `bson:"conditions" json:"conditions"`
	Allergies   string `bson:"allergies" json:"allergies"`
	Medications string `bson:"medications" json:"medications"`

	EmergencyContact string `bson:"emergencyContact" json:"emergencyContact"`
	Phone            string `bson:"phone" json:"phone"`

	// Notification preferences.
	NotifyEmail bool   `bson:"notifyEmail" json:"notifyEmail"`
	NotifySMS   bool   `bson:"notifySms" json:"notifySms"`
	Timezone    string `bson:"timezone" json:"timezone"`

	// Preferences / knowledge profile for the triage assistant.
	Goals          string `bson:"goals" json:"goals"`
	DietPrefs      string `bson:"dietPrefs" json:"dietPrefs"`
	ActivityLimits string `bson:"activityLimits" json:"activityLimits"`
	Notes          string `bson:"notes" json:"notes"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BMI computes body mass index from the profile biometrics.
// Returns 0 and false when weight or height is missing.
func (p *Profile) BMI() (float64, bool) {
	if p == nil || p.WeightKg <= 0 || p.HeightCm <= 0 {
		return 0, false
	}
	h := p.HeightCm / 100.0
	return p.WeightKg / (h * h), true
}
