package documents

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

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Client, dbName string) contracts.DocumentRepository {
	return &DocumentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDocuments),
	}
}

func (repo *DocumentMongoRepository) FetchAll(ctx context.Context) ([]models.PatientDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []models.PatientDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return documents, nil
}

func (repo *DocumentMongoRepository) Insert(ctx context.Context, document *models.PatientDocument) error {
	_, err := repo.Collection.InsertOne(ctx, document)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *DocumentMongoRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
