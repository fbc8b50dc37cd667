package application

import (
	"context"
	"fmt"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/compare"
)

// CompareService diffs two respondents against the same bank.
type CompareService struct {
	classify *ClassifyService
}

func NewCompareService(classify *ClassifyService) *CompareService {
	return &CompareService{classify: classify}
}

// Compare classifies both answer sets (through the cache when one is set)
// and returns the per-axis and per-question report.
func (s *CompareService) Compare(ctx context.Context, a, b domain.Answers) (*compare.Report, error) {
	ra, err := s.classify.Classify(ctx, a, ClassifyOptions{RespondentID: "a"})
	if err != nil {
		return nil, fmt.Errorf("classifying a: %w", err)
	}
	rb, err := s.classify.Classify(ctx, b, ClassifyOptions{RespondentID: "b"})
	if err != nil {
		return nil, fmt.Errorf("classifying b: %w", err)
	}

	r := compare.Diff(s.classify.Bank().Questions, a, b, compare.Classifications{
		A: *ra.Classification,
		B: *rb.Classification,
	})
	return &r, nil
}
