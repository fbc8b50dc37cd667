package application

import (
	"fmt"

	"github.com/abdidvp/polaxis/internal/domain"
)

// Bank is a question bank ready to classify against: ids checked, version
// resolved and axis aliases compiled.
type Bank struct {
	*domain.QuestionBank
	Path     string
	Resolver *domain.AxisResolver
}

// OpenBank loads the bank at path. The version is the bank's own version
// field, else the git commit holding the file, else the digest of its bytes.
func OpenBank(loader domain.BankLoader, versioner domain.BankVersioner, path string, aliases map[string]string) (*Bank, error) {
	qb, err := loader.LoadBank(path)
	if err != nil {
		return nil, fmt.Errorf("loading bank: %w", err)
	}
	if err := qb.CheckIDs(); err != nil {
		return nil, fmt.Errorf("loading bank %s: %w", path, err)
	}

	resolver, err := domain.NewAxisResolver(aliases)
	if err != nil {
		return nil, fmt.Errorf("compiling axis aliases: %w", err)
	}

	resolveVersion(qb, versioner, path)

	return &Bank{QuestionBank: qb, Path: path, Resolver: resolver}, nil
}

// CacheScope identifies everything besides the answers that decides a
// classification: the bank version and the configured axis aliases.
func (b *Bank) CacheScope() string {
	if fp := b.Resolver.Fingerprint(); fp != "" {
		return b.Version + "+aliases:" + fp
	}
	return b.Version
}

func resolveVersion(qb *domain.QuestionBank, versioner domain.BankVersioner, path string) {
	if qb.Version == "" && versioner != nil {
		if hash, err := versioner.CommitHash(path); err == nil {
			qb.Version = hash
		}
	}
	if qb.Version == "" {
		qb.Version = qb.Digest
	}
}
