package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/bank"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/cache"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/config"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/history"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/store"
	"github.com/abdidvp/polaxis/internal/application"
	"github.com/abdidvp/polaxis/internal/domain"
)

// app is the composition root shared by the commands: config, bank and
// the configured cache and store, wired into the services.
type app struct {
	dir      string
	cfg      domain.EngineConfig
	logger   *slog.Logger
	loader   *bank.FileLoader
	store    domain.ResultStore
	classify *application.ClassifyService
	closers  []func() error
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads .polaxis.yaml from --dir and applies the --bank override.
func loadConfig(g *globalFlags) (string, domain.EngineConfig, error) {
	dir, err := filepath.Abs(g.dir)
	if err != nil {
		return "", domain.EngineConfig{}, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.New().Load(dir)
	if err != nil {
		return "", domain.EngineConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if g.bank != "" {
		if cfg.Bank, err = filepath.Abs(g.bank); err != nil {
			return "", domain.EngineConfig{}, fmt.Errorf("resolving bank path: %w", err)
		}
	}
	return dir, cfg, nil
}

func newApp(ctx context.Context, cmd *cobra.Command, g *globalFlags) (*app, error) {
	dir, cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	a := &app{
		dir:    dir,
		cfg:    cfg,
		logger: newLogger(cmd.ErrOrStderr(), g.verbose),
		loader: bank.New(),
	}

	b, err := application.OpenBank(a.loader, gitinfo.New(), cfg.Bank, cfg.AxisAliases)
	if err != nil {
		return nil, fmt.Errorf("loading bank: %w", err)
	}
	a.logger.Debug("bank loaded", "path", b.Path, "version", b.Version, "questions", len(b.Questions))

	opts := []application.Option{application.WithLogger(a.logger)}

	if c := a.openCache(ctx); c != nil {
		opts = append(opts, application.WithCache(c))
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("opening result store: %w", err)
	}
	if st != nil {
		a.store = st
		a.closers = append(a.closers, st.Close)
		opts = append(opts, application.WithStore(st))
	}

	if cfg.History {
		opts = append(opts, application.WithHistory(history.New(), dir))
	}

	a.classify = application.NewClassifyService(b, opts...)
	return a, nil
}

// openCache returns nil when caching is off or the backend is unreachable.
func (a *app) openCache(ctx context.Context) domain.ResultCache {
	switch a.cfg.Cache.Driver {
	case domain.CacheFile:
		return cache.NewFile(a.cfg.Cache.Dir)
	case domain.CacheRedis:
		rc, err := cache.DialRedis(ctx, a.cfg.Cache.Addr, a.cfg.CacheTTL())
		if err != nil {
			a.logger.Warn("redis cache disabled", "error", err)
			return nil
		}
		a.closers = append(a.closers, rc.Close)
		return rc
	default:
		return nil
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("closing resource", "error", err)
		}
	}
	a.closers = nil
}

// readAnswers loads an answers file, or stdin when path is "-". A terminal
// on stdin is refused so the command never blocks waiting for input.
func (a *app) readAnswers(cmd *cobra.Command, path, format string) (domain.Answers, error) {
	if path != "-" {
		answers, err := a.loader.LoadAnswers(path)
		if err != nil {
			return nil, fmt.Errorf("loading answers: %w", err)
		}
		return answers, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("refusing to read answers from a terminal; pipe a file or pass a path")
	}
	answers, err := bank.DecodeAnswers(in, bank.Format(format))
	if err != nil {
		return nil, fmt.Errorf("reading answers from stdin: %w", err)
	}
	return answers, nil
}
