package activitylog

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StartWorker drains the activity queue into the activities collection for
// administrative record keeping. Returns a stop function for Shutdown.
func StartWorker(conn *amqp.Connection, db *mongo.Database, log *zap.Logger) (func(), error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	deliveries, err := ch.Consume(
		ActivityQueueName, // queue
		"",                // consumer
		false,             // autoAck
		false,             // exclusive
		false,             // noLocal
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	collection := db.Collection(constvars.MongoCollectionActivities)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				var record models.ActivityRecord
				if err := json.Unmarshal(delivery.Body, &record); err != nil {
					log.Warn("discarding malformed activity record", zap.Error(err))
					delivery.Nack(false, false)
					continue
				}
				if _, err := collection.InsertOne(ctx, record); err != nil {
					log.Warn("activity record insert failed, requeueing",
						zap.String(constvars.LoggingResourceIDKey, record.ResourceID),
						zap.Error(err),
					)
					delivery.Nack(false, true)
					continue
				}
				delivery.Ack(false)
			}
		}
	}()

	stop := func() {
		cancel()
		ch.Close()
		<-done
	}
	return stop, nil
}
