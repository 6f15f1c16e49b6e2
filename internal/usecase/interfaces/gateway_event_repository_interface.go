package interfaces

import (
	"context"

	"bengkel_audio/internal/domain/entities"
)

// IGatewayEventRepository abstracts DynamoDB persistence for GatewayEvent
// audit records.

type IGatewayEventRepository interface {
	Create(ctx context.Context, ev entities.GatewayEvent) (entities.GatewayEvent, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.GatewayEvent, error)
}
