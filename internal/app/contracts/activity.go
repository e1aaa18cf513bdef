package contracts

import "context"

// ActivityLogger is fire-and-forget: failures are swallowed and logged
// locally, never surfaced to the user and never blocking the mutation they
// annotate.
type ActivityLogger interface {
	Append(ctx context.Context, userID, action, resourceType, resourceID, details string)
}
