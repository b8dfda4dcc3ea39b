package service_test

import (
	"context"

	"company-services-backend/internal/repository"
)

const testCompany = "acme"

// countingGateway hands the same store to every operation and records how
// many connections were acquired and released
type countingGateway struct {
	store    repository.Store
	acquired int
	released int
}

func (g *countingGateway) WithConnection(ctx context.Context, fn func(store repository.Store) error) error {
	g.acquired++
	defer func() { g.released++ }()
	return fn(g.store)
}

func floatPtr(f float64) *float64 {
	return &f
}
