package storage

import (
	"context"

	"github.com/florafind/florasearch/internal/predicate"
	"github.com/florafind/florasearch/pkg/types"
)

// Retriever executes a predicate set against the plant record store and
// returns raw candidates, pre-sorted by the coarse ordering hint. A
// connectivity failure is reported as an error, never as a silently empty
// result; a legitimate zero-match returns an empty slice and nil error.
type Retriever interface {
	Retrieve(ctx context.Context, set *predicate.Set) ([]types.PlantRecord, error)
}

// PlantStore is the full record-store interface: retrieval plus the
// catalog maintenance operations the seeder uses.
type PlantStore interface {
	Retriever

	UpsertPlant(ctx context.Context, plant *types.PlantRecord) error
	GetPlantByName(ctx context.Context, name string) (*types.PlantRecord, error)
	CountPlants(ctx context.Context) (int, error)
	Close() error
}
