package models

// ExportBundle is the full JSON dump returned by the data export endpoint.
type ExportBundle struct {
	User        ExportUser   `json:"user"`
	Profile     *Profile     `json:"profile"`
	Reminders   []Reminder   `json:"reminders"`
	Medications []Medication `json:"medications"`
	Plans       []Plan       `json:"plans"`
}

// ExportUser is the account view included in an export, without credentials.
type ExportUser struct {
	Email string `json:"email"`
	Pro   bool   `json:"pro"`
}
