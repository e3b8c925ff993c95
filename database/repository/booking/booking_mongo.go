package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dentistimo/config"
	"dentistimo/database"
	"dentistimo/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// CountForSlot counts bookings for the exact (dentist, date, time) tuple.
func (repo *MongoBookingRepo) CountForSlot(dentistID int, date, timeSlot string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"dentistid": dentistID, "date": date, "time": timeSlot}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for dentist %d: %w", dentistID, err)
	}
	return count, nil
}

// Create inserts a booking document.
func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error inserting booking %s: %w", booking.ID, err)
	}
	return nil
}
