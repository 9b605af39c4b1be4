package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/logging"
	"github.com/akyairhashvil/zenith/internal/tui"
	"github.com/akyairhashvil/zenith/internal/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(newApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		logging.Fatal("command failed", zap.Error(err))
	}
}

// app carries the resolved configuration and the open store for one command
// invocation. The function fields are swapped out in tests.
type app struct {
	flags          config.Overrides
	cfg            *config.Config
	db             *database.Database
	now            func() time.Time
	clipboard      func(string) error
	readPassphrase func(prompt string) (string, error)
	runTUI         func(ctx context.Context, store tui.Store, opts tui.Options) error
}

func newApp() *app {
	return &app{
		now:            time.Now,
		clipboard:      clipboard.WriteAll,
		readPassphrase: promptForKey,
		runTUI:         tui.Run,
	}
}

// setup loads configuration, points the logger at the log file and opens the
// database.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.LoadWithOverrides(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.LogFile != "" {
		if err := util.EnsureDir(filepath.Dir(cfg.LogFile)); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	logging.Configure(cfg.LogLevel, cfg.LogFile)

	db, err := database.Open(ctx, cfg.DBPath())
	if err != nil {
		return err
	}
	a.db = db
	return nil
}

// seedPlan fills an empty plan year with the example goals. Only the
// dashboard calls it; other commands leave unknown years empty.
func (a *app) seedPlan(ctx context.Context) error {
	seeds, err := database.LoadSeedFile(filepath.Join(util.ConfigDir(config.AppName), config.SeedFileName))
	if err != nil {
		logging.L().Warn("seed file ignored", zap.Error(err))
		seeds = database.DefaultSeeds()
	}
	seeded, err := a.db.SeedDefaults(ctx, a.cfg.TargetYear, seeds)
	if err != nil {
		return err
	}
	if seeded {
		logging.L().Info("plan seeded", zap.Int("year", a.cfg.TargetYear), zap.Int("goals", len(seeds)))
	}
	return nil
}

func (a *app) teardown() error {
	util.LogError("close database", a.db.Close())
	a.db = nil
	_ = logging.Sync()
	return nil
}

func (a *app) reportsDir() string {
	return util.ReportsDir(config.AppName)
}

func newRootCmd(a *app) *cobra.Command {
	var share string

	root := &cobra.Command{
		Use:   "zenith",
		Short: "Annual key-result tracker for the terminal",
		Long: `Zenith tracks a year of key results: numeric targets, daily check-ins,
streaks and pace against the calendar.

Run without a subcommand to open the dashboard.

Examples:
  zenith
  zenith --year 2027
  zenith --share "http://localhost:5173/#data=..."`,
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.seedPlan(cmd.Context()); err != nil {
				return err
			}
			return a.runTUI(cmd.Context(), a.db, tui.Options{
				Year:         a.cfg.TargetYear,
				ShareBase:    a.cfg.ShareBaseURL,
				Theme:        a.cfg.Theme,
				SharePayload: share,
				ReportDir:    a.reportsDir(),
				Now:          a.now,
				Clipboard:    a.clipboard,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.flags.TargetYear, "year", 0, "plan year (default from config)")
	pf.StringVar(&a.flags.DataDir, "data-dir", "", "directory holding the database")
	pf.StringVar(&a.flags.DBFile, "db", "", "database file name or absolute path")
	pf.StringVar(&a.flags.Theme, "theme", "", "dashboard theme: default, dracula or paper")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().StringVar(&share, "share", "", "open a share link read-only in the dashboard")

	root.AddCommand(
		newStatsCmd(a),
		newGoalsCmd(a),
		newAddCmd(a),
		newDeleteCmd(a),
		newLogCmd(a),
		newStreakCmd(a),
		newShareCmd(a),
		newOpenCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newReportCmd(a),
		newYearsCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}
