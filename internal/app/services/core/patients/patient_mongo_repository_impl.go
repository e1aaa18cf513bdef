package patients

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) FetchAll(ctx context.Context) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (repo *PatientMongoRepository) Insert(ctx context.Context, patient *models.Patient) error {
	_, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) Update(ctx context.Context, patient *models.Patient) error {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
