package application

import (
	"context"
	"fmt"

	"github.com/abdidvp/polaxis/internal/domain"
)

// DistributionService reports how saved results spread across archetypes.
type DistributionService struct {
	store domain.ResultStore
}

func NewDistributionService(store domain.ResultStore) *DistributionService {
	return &DistributionService{store: store}
}

func (s *DistributionService) Distribution(ctx context.Context) (*domain.Distribution, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	codes, err := s.store.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing saved codes: %w", err)
	}
	d := domain.ComputeDistribution(codes)
	return &d, nil
}
