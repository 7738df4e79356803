package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrsinham/carewizard/internal/advisor"
	"github.com/mrsinham/carewizard/internal/config"
	"github.com/mrsinham/carewizard/internal/logging"
	"github.com/mrsinham/carewizard/internal/reports"
)

// interactiveAnnotation marks commands that take over the terminal.
const interactiveAnnotation = "interactive"

// app holds what the commands share for one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	store      reports.Store
	closeStore func() error
}

// setup loads the configuration and builds the logger for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	if cmd.Annotations[interactiveAnnotation] == "true" {
		a.logger, err = logging.NewInteractive(level, cfg.Logging.File)
	} else {
		a.logger, err = logging.New(level, cfg.Logging.File)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("advisor", cfg.Advisor.Backend),
		zap.String("database", cfg.Reports.Database))
	return nil
}

// run wraps a command body so teardown happens whether it fails or not.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return fn(cmd, args)
	}
}

// teardown releases what setup and openStore acquired.
func (a *app) teardown() {
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			a.logger.Warn("closing report store", zap.Error(err))
		}
		a.closeStore = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// openStore returns the configured report store, opening it on first use.
func (a *app) openStore(ctx context.Context) (reports.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	var store reports.Store
	if a.cfg.Reports.Database == "" {
		store = reports.NewMemoryStore()
	} else {
		if err := os.MkdirAll(filepath.Dir(a.cfg.Reports.Database), 0700); err != nil {
			return nil, fmt.Errorf("creating report directory: %w", err)
		}
		s, err := reports.OpenSQLite(a.cfg.Reports.Database)
		if err != nil {
			return nil, err
		}
		store = s
		a.closeStore = s.Close
	}

	if a.cfg.Reports.SeedSamples {
		existing, err := store.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			if err := reports.Seed(ctx, store); err != nil {
				return nil, err
			}
			a.logger.Debug("sample reports seeded")
		}
	}

	a.store = store
	return store, nil
}

// responder returns the configured advisor backend.
func (a *app) responder(ctx context.Context) (advisor.Responder, error) {
	switch a.cfg.Advisor.Backend {
	case config.BackendGenAI:
		r, err := advisor.NewGenAIResponder(ctx, a.cfg.Advisor.APIKey, a.cfg.Advisor.Model)
		if err != nil {
			return nil, fmt.Errorf("creating genai advisor: %w", err)
		}
		return r, nil
	default:
		return advisor.CannedResponder{Text: a.cfg.Advisor.CannedReply}, nil
	}
}
