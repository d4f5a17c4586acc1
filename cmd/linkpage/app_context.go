package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkpage/internal/config"
	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/logger"
	"github.com/alexisbeaulieu97/linkpage/internal/notice"
	"github.com/alexisbeaulieu97/linkpage/internal/page"
	"github.com/alexisbeaulieu97/linkpage/internal/profile"
	"github.com/alexisbeaulieu97/linkpage/internal/storage"
	"github.com/alexisbeaulieu97/linkpage/internal/surface"
	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

// mainLayoutClasses are the static classes of the main region before any
// background or pattern is applied.
var mainLayoutClasses = []string{"min-h-screen", "flex", "flex-col", "items-center", "bg-secondary"}

// AppContext bundles the services one command invocation works with.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Store   storage.Store
	Doc     *surface.Document
	Notices *notice.Recorder
	Page    *page.Page

	closers []func() error
}

// Close releases the storage backend.
func (a *AppContext) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the config file and LINKPAGE_ environment variables.")
	}
	if flags.backend != "" {
		cfg.Storage.Backend = strings.ToLower(flags.backend)
	}
	if flags.storePath != "" {
		cfg.Storage.Path = flags.storePath
	}
	if flags.seedPath != "" {
		cfg.Seed = flags.seedPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, newCommandError(operation, "validating configuration", err, "Use one of the memory, file or sqlite backends.")
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	base, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Logging.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of the debug, info, warn or error log levels.")
	}
	log := base.WithFields(map[string]any{"session_id": uuid.NewString()})

	app := &AppContext{Config: cfg, Logger: log, Notices: &notice.Recorder{}}
	app.Store = app.openStore()

	seed := config.DefaultSeed()
	if cfg.Seed != "" {
		parsed, err := config.ParseSeed(cfg.Seed)
		if err != nil {
			_ = app.Close()
			return nil, newCommandError(operation, fmt.Sprintf("loading seed %s", cfg.Seed), err, "Fix the seed file or run without --seed to use the built-in page.")
		}
		seed = *parsed
	}

	app.Doc = surface.NewDocument(mainLayoutClasses...)

	linkMgr, err := links.NewManager(seed.Links, links.WithNotifier(app.Notices), links.WithLogger(log.With("links")))
	if err != nil {
		_ = app.Close()
		return nil, newCommandError(operation, "loading links", err, "Give every seeded link a unique id.")
	}
	profileMgr := profile.NewManager(seed.Profile, app.Doc, profile.WithNotifier(app.Notices), profile.WithLogger(log.With("profile")))

	themeStore := theme.NewStore(app.Store, app.Doc, theme.WithLogger(log.With("theme")))
	themeStore.Initialize()

	app.Page = page.New(profileMgr, linkMgr, themeStore, page.WithNotifier(app.Notices), page.WithLogger(log.With("page")))
	return app, nil
}

// openStore opens the configured backend. A backend that cannot be opened
// degrades to memory so the page still works for this session.
func (a *AppContext) openStore() storage.Store {
	cfg := a.Config
	if cfg.Storage.Backend == config.BackendMemory {
		return storage.NewMemoryStore()
	}

	path, err := cfg.StoragePath()
	if err != nil {
		a.Logger.Warn("cannot resolve store path, keeping settings in memory", "error", err)
		return storage.NewMemoryStore()
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := storage.NewSQLiteStore(path)
		if err != nil {
			a.Logger.Warn("cannot open sqlite store, keeping settings in memory", "path", path, "error", err)
			return storage.NewMemoryStore()
		}
		a.closers = append(a.closers, s.Close)
		return s
	default:
		s, err := storage.NewFileStore(path)
		if err != nil {
			a.Logger.Warn("cannot open settings file, keeping settings in memory", "path", path, "error", err)
			return storage.NewMemoryStore()
		}
		return s
	}
}
