package application

import (
	"fmt"

	"github.com/abdidvp/polaxis/internal/domain"
)

// ValidateService checks a question bank without classifying anything.
type ValidateService struct {
	loader    domain.BankLoader
	versioner domain.BankVersioner
}

// NewValidateService creates a new ValidateService with all required dependencies.
func NewValidateService(loader domain.BankLoader, versioner domain.BankVersioner) *ValidateService {
	return &ValidateService{loader: loader, versioner: versioner}
}

// Validate loads the bank at path and reports its issues. Unlike OpenBank,
// id problems become issues instead of errors so they can all be listed.
func (s *ValidateService) Validate(path string, aliases map[string]string, strict bool) (*domain.ValidationReport, error) {
	qb, err := s.loader.LoadBank(path)
	if err != nil {
		return nil, fmt.Errorf("loading bank: %w", err)
	}

	resolver, err := domain.NewAxisResolver(aliases)
	if err != nil {
		return nil, fmt.Errorf("compiling axis aliases: %w", err)
	}

	resolveVersion(qb, s.versioner, path)

	r := domain.ValidateBank(qb, resolver, strict)
	if len(qb.Questions) == 0 {
		r.Issues = append(r.Issues, domain.Issue{Severity: domain.SeverityError, Message: domain.ErrEmptyBank.Error()})
		r.Status = domain.StatusFail
	}
	return &r, nil
}
