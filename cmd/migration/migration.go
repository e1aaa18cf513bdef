package main

import (
	"context"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/drivers/database"
	"pulseflow-service/internal/app/drivers/logger"
	sharedredis "pulseflow-service/internal/app/services/shared/redis"
	"pulseflow-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Prepares the remote store for a fresh deployment: collection indexes plus
// the UHID counter floor. Safe to run repeatedly.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	logger.InitLogrus(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	createIndexes(ctx, db)
	seedUHIDCounter(ctx, db, sharedredis.NewRedisRepository(redisClient))

	if err := mongoDB.Disconnect(ctx); err != nil {
		logrus.Fatalf("Error disconnecting MongoDB: %v", err)
	}
	logrus.Println("Migration complete")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	patientIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uhid", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := db.Collection(constvars.MongoCollectionPatients).Indexes().CreateMany(ctx, patientIndexes); err != nil {
		logrus.Fatalf("Error creating patient indexes: %v", err)
	}

	patientIDIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
	}
	for _, collection := range []string{constvars.MongoCollectionPrescriptions, constvars.MongoCollectionDocuments} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, patientIDIndex); err != nil {
			logrus.Fatalf("Error creating %s indexes: %v", collection, err)
		}
	}

	logrus.Println("Indexes created")
}

// seedUHIDCounter raises the redis counter to the highest numeric UHID
// already present, so new registrations never collide with migrated data.
func seedUHIDCounter(ctx context.Context, db *mongo.Database, redisRepository contracts.RedisRepository) {
	opts := options.Find().SetProjection(bson.D{{Key: "uhid", Value: 1}})
	cursor, err := db.Collection(constvars.MongoCollectionPatients).Find(ctx, bson.D{}, opts)
	if err != nil {
		logrus.Fatalf("Error reading existing UHIDs: %v", err)
	}
	defer cursor.Close(ctx)

	var maxCounter int64
	for cursor.Next(ctx) {
		var doc struct {
			UHID string `bson:"uhid"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		numeric := strings.TrimPrefix(doc.UHID, "PF")
		value, err := strconv.ParseInt(numeric, 10, 64)
		if err != nil {
			continue
		}
		if value > maxCounter {
			maxCounter = value
		}
	}

	if err := redisRepository.SetCounterFloor(ctx, constvars.RedisKeyUHIDCounter, maxCounter); err != nil {
		logrus.Fatalf("Error seeding UHID counter: %v", err)
	}
	logrus.Printf("UHID counter floor set to %d", maxCounter)
}
