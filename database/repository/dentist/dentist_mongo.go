package dentistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dentistimo/config"
	"dentistimo/database"
	"dentistimo/models"
)

// MongoDentistRepo implements DentistRepository using MongoDB.
type MongoDentistRepo struct {
	coll *mongo.Collection
}

// NewMongoDentistRepo constructs a new instance of MongoDentistRepo.
func NewMongoDentistRepo() DentistRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &MongoDentistRepo{coll: db.Collection("dentists")}
}

// FindAll retrieves every dentist document.
func (repo *MongoDentistRepo) FindAll() ([]models.Dentist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching dentists: %w", err)
	}
	defer cursor.Close(ctx)

	var dentists []models.Dentist
	for cursor.Next(ctx) {
		var d models.Dentist
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("error decoding dentist: %w", err)
		}
		dentists = append(dentists, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return dentists, nil
}

// FindByID retrieves a dentist document by its registry id.
func (repo *MongoDentistRepo) FindByID(id int) (*models.Dentist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var dentist models.Dentist
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&dentist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching dentist with id %d: %w", id, err)
	}
	return &dentist, nil
}
