package careteam

import (
	"fmt"
	"strings"
	"testing"

	"vitalguard/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeCareTeamRepo struct {
	members []models.CareTeamMember
	listErr error
}

func (f *fakeCareTeamRepo) Create(member *models.CareTeamMember) error {
	for _, m := range f.members {
		if m.PatientID == member.PatientID && m.CaregiverID == member.CaregiverID {
			return fmt.Errorf("duplicate key error")
		}
	}
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeCareTeamRepo) GetByPatientID(patientID string) ([]models.CareTeamMember, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.CareTeamMember
	for _, m := range f.members {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCareTeamRepo) GetByCaregiverID(caregiverID string) ([]models.CareTeamMember, error) {
	var out []models.CareTeamMember
	for _, m := range f.members {
		if m.CaregiverID == caregiverID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCareTeamRepo) Delete(id, patientID string) error {
	for i, m := range f.members {
		if m.ID == id && m.PatientID == patientID {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Create(user *models.User) error { return nil }
func (f *fakeUserRepo) Update(user *models.User) error { return nil }
func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}
func (f *fakeUserRepo) Delete(id string) error { return nil }

func newService(repo *fakeCareTeamRepo, users *fakeUserRepo) *DefaultCareTeamService {
	return &DefaultCareTeamService{Repo: repo, UserRepo: users}
}

func TestAddMember(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*models.User{
		"sister@example.com": {ID: "u2", Email: "sister@example.com"},
	}}

	t.Run("defaults role to viewer", func(t *testing.T) {
		svc := newService(&fakeCareTeamRepo{}, users)
		member, err := svc.AddMember("u1", AddMemberInput{CaregiverEmail: "Sister@Example.com"})
		if err != nil {
			t.Fatalf("AddMember returned error: %v", err)
		}
		if member.Role != models.CareTeamViewer {
			t.Errorf("role = %q, want %q", member.Role, models.CareTeamViewer)
		}
		if member.CaregiverID != "u2" {
			t.Errorf("caregiverID = %q, want u2", member.CaregiverID)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc := newService(&fakeCareTeamRepo{}, users)
		if _, err := svc.AddMember("u1", AddMemberInput{CaregiverEmail: "sister@example.com", Role: "owner"}); err == nil {
			t.Fatal("expected error for unknown role")
		}
	})

	t.Run("rejects unknown caregiver account", func(t *testing.T) {
		svc := newService(&fakeCareTeamRepo{}, users)
		if _, err := svc.AddMember("u1", AddMemberInput{CaregiverEmail: "nobody@example.com"}); err == nil {
			t.Fatal("expected error for unknown account")
		}
	})

	t.Run("rejects self add", func(t *testing.T) {
		svc := newService(&fakeCareTeamRepo{}, users)
		_, err := svc.AddMember("u2", AddMemberInput{CaregiverEmail: "sister@example.com"})
		if err == nil {
			t.Fatal("expected error for self add")
		}
	})

	t.Run("rejects duplicate membership", func(t *testing.T) {
		svc := newService(&fakeCareTeamRepo{}, users)
		if _, err := svc.AddMember("u1", AddMemberInput{CaregiverEmail: "sister@example.com"}); err != nil {
			t.Fatalf("first AddMember returned error: %v", err)
		}
		_, err := svc.AddMember("u1", AddMemberInput{CaregiverEmail: "sister@example.com", Role: models.CareTeamEditor})
		if err == nil {
			t.Fatal("expected error for duplicate membership")
		}
		if !strings.Contains(err.Error(), "already on your care team") {
			t.Errorf("error = %q, want duplicate-membership message", err)
		}
	})
}

func TestCanView(t *testing.T) {
	repo := &fakeCareTeamRepo{members: []models.CareTeamMember{
		{ID: "m1", PatientID: "u1", CaregiverID: "u2", Role: models.CareTeamViewer},
	}}
	svc := newService(repo, &fakeUserRepo{})

	tests := []struct {
		name        string
		caregiverID string
		patientID   string
		want        bool
	}{
		{"patient views own data", "u1", "u1", true},
		{"member views patient data", "u2", "u1", true},
		{"stranger denied", "u3", "u1", false},
		{"membership is not symmetric", "u1", "u2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CanView(tt.caregiverID, tt.patientID); got != tt.want {
				t.Errorf("CanView(%q, %q) = %v, want %v", tt.caregiverID, tt.patientID, got, tt.want)
			}
		})
	}
}

func TestRemoveMember(t *testing.T) {
	repo := &fakeCareTeamRepo{members: []models.CareTeamMember{
		{ID: "m1", PatientID: "u1", CaregiverID: "u2"},
	}}
	svc := newService(repo, &fakeUserRepo{})

	// Another patient cannot remove a membership they do not own.
	if err := svc.RemoveMember("m1", "u9"); err == nil {
		t.Fatal("expected error removing membership owned by another patient")
	}
	if err := svc.RemoveMember("m1", "u1"); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if svc.CanView("u2", "u1") {
		t.Error("caregiver still has access after removal")
	}
}
