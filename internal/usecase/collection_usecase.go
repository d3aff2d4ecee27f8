package usecase

import (
	"context"

	"rubbishday/internal/domain/entity"
	"rubbishday/internal/domain/skill"
)

// CollectionRequest carries what the collection lookup needs from one skill request
type CollectionRequest struct {
	Device       entity.DeviceCall
	ConsentToken string
}

// CollectionUsecase answers "what's being collected this week" for the calling device
type CollectionUsecase interface {
	// ReadCollectionCalendar runs the full lookup and returns the turn to speak.
	// Every expected failure is answered with a fixed response; a returned error is unclassified.
	ReadCollectionCalendar(ctx context.Context, req *CollectionRequest) (*skill.Response, error)
}
