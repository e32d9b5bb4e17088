package careTeamRepo

import (
	"context"
	"fmt"
	"time"

	"vitalguard/database"
	"vitalguard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCareTeamRepo implements CareTeamRepository using MongoDB.
type MongoCareTeamRepo struct {
	coll *mongo.Collection
}

// NewMongoCareTeamRepo creates a new instance of CareTeamRepository using MongoDB.
func NewMongoCareTeamRepo() CareTeamRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("care_team")
	repo := &MongoCareTeamRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCareTeamRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// A caregiver appears at most once on a given patient's team.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "caregiverId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new care-team membership document.
func (r *MongoCareTeamRepo) Create(member *models.CareTeamMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	member.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to create care-team member: %w", err)
	}
	return nil
}

// GetByPatientID retrieves all members with access to a patient's data.
func (r *MongoCareTeamRepo) GetByPatientID(patientID string) ([]models.CareTeamMember, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve care team for patient %s: %w", patientID, err)
	}
	defer cursor.Close(ctx)

	var members []models.CareTeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode care-team members: %w", err)
	}
	return members, nil
}

// GetByCaregiverID retrieves all patients a caregiver has access to.
func (r *MongoCareTeamRepo) GetByCaregiverID(caregiverID string) ([]models.CareTeamMember, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"caregiverId": caregiverID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve memberships for caregiver %s: %w", caregiverID, err)
	}
	defer cursor.Close(ctx)

	var members []models.CareTeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode care-team members: %w", err)
	}
	return members, nil
}

// Delete removes a membership owned by the given patient.
func (r *MongoCareTeamRepo) Delete(id, patientID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "patientId": patientID})
	if err != nil {
		return fmt.Errorf("failed to delete care-team member with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("care-team member with id %s not found", id)
	}
	return nil
}
