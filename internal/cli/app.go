package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/config"
	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/logger"
	"github.com/roach88/contacts/internal/repository"
	"github.com/roach88/contacts/internal/source"
	"github.com/roach88/contacts/internal/store"
	"github.com/roach88/contacts/internal/viewmodel"
)

// app is the object graph behind one command invocation.
type app struct {
	ctx       context.Context
	logger    *slog.Logger
	logCloser io.Closer
	store     *store.SQLite
	repo      *repository.Cached
	pool      *dispatch.Pool
	ids       *recordingGenerator
	out       *OutputFormatter
}

// openApp resolves configuration (defaults, file, env, then flags), opens
// the database and wires the repository.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database.Path = opts.Database
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}

	log, logCloser := logger.New(&logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	slog.SetDefault(log)

	log.Debug("opening database", "path", cfg.Database.Path)
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		logCloser.Close()
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	var ids contact.IDGenerator = contact.UUIDv4Generator{}
	if opts.IDs != nil {
		ids = opts.IDs
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &app{
		ctx:       ctx,
		logger:    log,
		logCloser: logCloser,
		store:     st,
		repo: repository.NewCached(source.NewLocal(st),
			repository.WithLogger(log),
			repository.WithMetrics(repository.NewMetrics()),
		),
		pool: &dispatch.Pool{},
		ids:  &recordingGenerator{gen: ids},
		out: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		},
	}, nil
}

// close drains outstanding work, then closes the database and the log file.
func (a *app) close() {
	a.pool.Wait()
	a.repo.Wait()
	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
	if err := a.logCloser.Close(); err != nil {
		fmt.Fprintf(a.out.GetErrWriter(), "error closing log file: %v\n", err)
	}
}

// settle waits for view-model tasks and background saves, then reports
// saves that failed.
func (a *app) settle() error {
	a.pool.Wait()
	a.repo.Wait()
	if n := a.repo.Metrics().Snapshot().SaveFailures; n > 0 {
		return a.fail("error_save_contact", fmt.Sprintf("%d contact(s) could not be saved", n))
	}
	return nil
}

// fail reports a failure and returns the matching exit error. Text output
// leaves printing to the caller of Execute.
func (a *app) fail(code, message string) error {
	if a.out.Format == "json" {
		if err := a.out.Error(code, message, nil); err != nil {
			a.logger.Debug("failed to write error response", "code", code, "error", err)
		}
	}
	return NewExitError(ExitFailure, message)
}

func (a *app) failWith(id viewmodel.MessageID) error {
	return a.fail(id.String(), messageText(id))
}

func (a *app) notFound(id string) error {
	return a.fail("not_found", fmt.Sprintf("contact %s not found", id))
}

// recordingGenerator remembers the IDs it hands out so commands can report
// the contact they just created.
type recordingGenerator struct {
	gen contact.IDGenerator

	mu   sync.Mutex
	last string
}

func (g *recordingGenerator) Generate() string {
	id := g.gen.Generate()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = id
	return id
}

func (g *recordingGenerator) Last() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}
