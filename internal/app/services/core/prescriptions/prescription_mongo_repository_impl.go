package prescriptions

import (
	"context"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (repo *PrescriptionMongoRepository) FetchAll(ctx context.Context) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (repo *PrescriptionMongoRepository) Insert(ctx context.Context, prescription *models.Prescription) error {
	_, err := repo.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
