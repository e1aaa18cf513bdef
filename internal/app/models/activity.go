package models

import "time"

// ActivityRecord is an attributed audit entry appended fire-and-forget on
// every mutation.
type ActivityRecord struct {
	ID           string    `json:"id" bson:"_id"`
	UserID       string    `json:"userId" bson:"user_id"`
	Action       string    `json:"action" bson:"action"`
	ResourceType string    `json:"resourceType" bson:"resource_type"`
	ResourceID   string    `json:"resourceId" bson:"resource_id"`
	Details      string    `json:"details" bson:"details"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
