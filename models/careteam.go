package models

import "time"

// Care team roles.
const (
	CareTeamViewer = "viewer"
	CareTeamEditor = "editor"
)

// CareTeamMember grants a caregiver account read access to a patient's data.
// Ownership stays with the patient.
type CareTeamMember struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	CaregiverID string    `bson:"caregiverId" json:"caregiverId"`
	Role        string    `bson:"role" json:"role"` // viewer|editor
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
