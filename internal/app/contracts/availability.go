package contracts

import (
	"context"

	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, query *requests.AvailableSlotsQuery) (*responses.AvailableSlots, error)
}
