package ports

import (
	"context"

	"train-autofill/internal/core/domain"
)

// TrainNameClient resolves a train number to its name through the lookup collaborator.
// A miss is reported as TrainLookup.Found == false, never as an error.
type TrainNameClient interface {
	LookupTrainName(ctx context.Context, trainNumber string) (*domain.TrainLookup, error)
}
