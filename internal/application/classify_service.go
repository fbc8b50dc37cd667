package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/abdidvp/polaxis/internal/domain/scoring"
	"github.com/google/uuid"
)

// ErrNoStore is returned when an operation needs a result store and none is configured.
var ErrNoStore = errors.New("no result store configured")

// ClassifyService orchestrates one classification:
// cache lookup → scoring pipeline → cache fill → optional save → history.
type ClassifyService struct {
	bank       *Bank
	cache      domain.ResultCache
	store      domain.ResultStore
	history    domain.ResultHistory
	historyDir string
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a ClassifyService.
type Option func(*ClassifyService)

// WithCache memoizes classifications.
func WithCache(c domain.ResultCache) Option {
	return func(s *ClassifyService) { s.cache = c }
}

// WithStore enables saving and fetching results.
func WithStore(st domain.ResultStore) Option {
	return func(s *ClassifyService) { s.store = st }
}

// WithHistory appends every classification to the local log under dir.
func WithHistory(h domain.ResultHistory, dir string) Option {
	return func(s *ClassifyService) {
		s.history = h
		s.historyDir = dir
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *ClassifyService) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *ClassifyService) { s.now = now }
}

func NewClassifyService(bank *Bank, opts ...Option) *ClassifyService {
	s := &ClassifyService{
		bank:   bank,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bank returns the bank the service classifies against.
func (s *ClassifyService) Bank() *Bank { return s.bank }

// ClassifyOptions tunes a single Classify call.
type ClassifyOptions struct {
	RespondentID string
	Save         bool
	NoCache      bool
}

// ClassifyResult is a classification plus where it came from and went.
type ClassifyResult struct {
	Classification *domain.Classification `json:"classification"`
	ResultID       string                 `json:"result_id,omitempty"`
	Cached         bool                   `json:"cached"`
}

// Classify scores answers against the bank. Cache and history failures are
// logged and never fail the call; a failed save does.
func (s *ClassifyService) Classify(ctx context.Context, answers domain.Answers, opts ClassifyOptions) (*ClassifyResult, error) {
	if opts.Save && s.store == nil {
		return nil, ErrNoStore
	}

	log := s.logger.With("bank_version", s.bank.Version)
	key := domain.CacheKey(s.bank.CacheScope(), answers)
	res := &ClassifyResult{}

	if s.cache != nil && !opts.NoCache {
		c, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn("cache lookup failed", "error", err)
		case ok:
			log.Debug("cache hit", "key", key)
			res.Classification = c
			res.Cached = true
		}
	}

	if res.Classification == nil {
		c := scoring.Classify(s.bank.Questions, answers, s.bank.Resolver)
		c.BankVersion = s.bank.Version
		c.Timestamp = s.now().UTC()
		for _, is := range c.Issues {
			log.Warn("question excluded", "question_id", is.QuestionID, "reason", is.Message)
		}
		res.Classification = &c

		if s.cache != nil {
			if err := s.cache.Put(ctx, key, &c); err != nil {
				log.Warn("cache store failed", "error", err)
			}
		}
	}

	c := res.Classification
	if opts.Save {
		rec := &domain.ResultRecord{
			ID:             uuid.NewString(),
			RespondentID:   opts.RespondentID,
			BankVersion:    c.BankVersion,
			Code:           c.Code,
			Name:           c.Name,
			Classification: *c,
			Answers:        answers,
			CreatedAt:      s.now().UTC(),
		}
		if err := s.store.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("saving result: %w", err)
		}
		res.ResultID = rec.ID
	}

	if s.history != nil {
		entry := domain.ResultEntry{
			Timestamp:    s.now().UTC().Format(time.RFC3339),
			RespondentID: opts.RespondentID,
			BankVersion:  c.BankVersion,
			Code:         c.Code,
			Name:         c.Name,
		}
		if err := s.history.Save(s.historyDir, entry); err != nil {
			log.Warn("history append failed", "error", err)
		}
	}

	log.Info("classified",
		"respondent", opts.RespondentID,
		"code", c.Code,
		"answered", c.AnsweredCount,
		"cached", res.Cached,
	)
	return res, nil
}

// ClearCache drops every memoized classification. It reports whether a
// cache is configured at all.
func (s *ClassifyService) ClearCache(ctx context.Context) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	if err := s.cache.Clear(ctx); err != nil {
		return true, fmt.Errorf("clearing cache: %w", err)
	}
	s.logger.Debug("cache cleared")
	return true, nil
}

// Result fetches a saved result by id.
func (s *ClassifyService) Result(ctx context.Context, id string) (*domain.ResultRecord, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.Get(ctx, id)
}
