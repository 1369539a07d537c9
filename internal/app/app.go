package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/dori/homekeep/internal/config"
	"github.com/dori/homekeep/internal/maint"
	"github.com/dori/homekeep/internal/store"
)

// App holds the application state and dependencies
type App struct {
	Manager *maint.Manager
	Config  config.Config
	Log     *zap.Logger
	DataDir string

	store    *store.Store
	lockFile *flock.Flock
}

// New loads configuration, acquires the single-instance lock, opens the
// preference store and builds the manager on top of it.
func New(cfgPath string) (*App, error) {
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{
		Config:  cfg,
		DataDir: cfg.DataDir,
	}

	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	a.Log, err = openLogger(filepath.Join(cfg.DataDir, "homekeep.log"))
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	a.store, err = store.Open(filepath.Join(cfg.DataDir, "homekeep.db"))
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a.Manager = maint.New(a.store,
		maint.WithLogger(a.Log),
		maint.WithMonthlyAnchor(cfg.MonthlyAnchorDay),
		maint.WithRestartDays(cfg.RestartDays),
	)

	return a, nil
}

// openLogger builds a production logger writing to a single file. The TUI
// owns the terminal, so nothing may log to stderr while it runs.
func openLogger(path string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "homekeep.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of homekeep is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if a.Log != nil {
		a.Log.Sync()
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
