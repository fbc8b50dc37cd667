package application

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/abdidvp/polaxis/internal/domain"
	"golang.org/x/sync/errgroup"
)

// BatchService classifies many answer files concurrently.
type BatchService struct {
	classify *ClassifyService
	loader   domain.BankLoader
}

func NewBatchService(classify *ClassifyService, loader domain.BankLoader) *BatchService {
	return &BatchService{classify: classify, loader: loader}
}

// BatchItem is the outcome for one answers file. Error is set instead of
// Result when the file could not be read or classified.
type BatchItem struct {
	Path         string          `json:"path"`
	RespondentID string          `json:"respondent_id"`
	Result       *ClassifyResult `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// BatchOptions tunes a batch run.
type BatchOptions struct {
	Jobs int // <= 0 means GOMAXPROCS
	Save bool
}

// Run classifies every path with at most opts.Jobs in flight. Items keep the
// order of paths. Per-file failures are reported on the item; only context
// cancellation fails the run.
func (s *BatchService) Run(ctx context.Context, paths []string, opts BatchOptions) ([]BatchItem, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	items := make([]BatchItem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, p := range paths {
		items[i] = BatchItem{Path: p, RespondentID: respondentFromPath(p)}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := &items[i]
			answers, err := s.loader.LoadAnswers(p)
			if err != nil {
				item.Error = err.Error()
				return nil
			}
			res, err := s.classify.Classify(ctx, answers, ClassifyOptions{RespondentID: item.RespondentID, Save: opts.Save})
			if err != nil {
				item.Error = err.Error()
				return nil
			}
			item.Result = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// respondentFromPath names a respondent after the answers file: answers/alice.yaml → alice.
func respondentFromPath(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
