package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/zenith/internal/calendar"
	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/snapshot"
	"github.com/akyairhashvil/zenith/internal/streak"
	"github.com/akyairhashvil/zenith/internal/tui"
)

func newStatsCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how far the plan year has progressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.now()
			if at != "" {
				t, err := parseInstant(at)
				if err != nil {
					return err
				}
				now = t
			}
			s := calendar.ComputeYearStats(a.cfg.TargetYear, now)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Plan year:     %d\n", s.Year)
			fmt.Fprintf(w, "Today:         %s\n", s.Today)
			fmt.Fprintf(w, "Day:           %d of %d\n", s.DaysElapsed, s.TotalDays)
			fmt.Fprintf(w, "Days left:     %d\n", s.DaysRemaining)
			fmt.Fprintf(w, "Year progress: %s\n", calendar.FormatPercent(s.YearProgress))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "evaluate at this instant (YYYY-MM-DD or RFC3339)")
	return cmd
}

// parseInstant accepts a local calendar date or a full RFC3339 timestamp.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(models.ISODate, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

func newGoalsCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "goals",
		Aliases: []string{"ls"},
		Short:   "List the plan year's goals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				goals []models.Goal
				err   error
			)
			if category != "" {
				cat, perr := models.ParseCategory(category)
				if perr != nil {
					return perr
				}
				goals, err = a.db.ListGoalsByCategory(cmd.Context(), a.cfg.TargetYear, cat)
			} else {
				goals, err = a.db.ListGoals(cmd.Context(), a.cfg.TargetYear)
			}
			if err != nil {
				return err
			}
			printGoals(cmd.OutOrStdout(), goals, calendar.ComputeYearStats(a.cfg.TargetYear, a.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category")
	return cmd
}

func printGoals(out io.Writer, goals []models.Goal, stats models.YearStats) {
	if len(goals) == 0 {
		fmt.Fprintf(out, "No goals for %d.\n", stats.Year)
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKR\tCATEGORY\tTITLE\tPROGRESS\tRATE\tPACE\tSTREAK")
	for _, g := range goals {
		rate := g.AchievementRate()
		run := streak.Calculate(g.Logs, stats.TodayISO)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			g.ID, g.KRNumber, g.Category.Key(), g.Title,
			tui.FormatProgress(g.Actual, g.Target, g.Unit),
			calendar.FormatPercent(rate),
			calendar.Pace(rate, stats.YearProgress),
			run.Current, run.Longest)
	}
	_ = w.Flush()
}

func newAddCmd(a *app) *cobra.Command {
	var (
		in       database.GoalInput
		category string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal to the plan year",
		Long: `Add a goal to the plan year.

Examples:
  zenith add --title "全年度健康跑" --category HEALTH --kr KR5 --target 200 --unit 天`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := models.ParseCategory(category)
			if err != nil {
				return err
			}
			in.Category = cat
			g, err := a.db.CreateGoal(cmd.Context(), a.cfg.TargetYear, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", g.Title, g.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Title, "title", "", "goal title")
	f.StringVar(&category, "category", models.CategoryGrowth.Key(), "GROWTH, HEALTH, FINANCE, CAREER, SOCIAL or OTHER")
	f.StringVar(&in.KRNumber, "kr", "", "key result number, e.g. KR3")
	f.Float64Var(&in.Target, "target", 100, "target amount")
	f.StringVar(&in.Unit, "unit", "", "unit of the target")
	f.StringVar(&in.Description, "description", "", "free-form notes")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal and its check-ins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.db.DeleteGoal(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log <goal-id> [YYYY-MM-DD]",
		Short: "Toggle a check-in, today by default",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := a.now().Format(models.ISODate)
			if len(args) == 2 {
				if _, err := time.Parse(models.ISODate, args[1]); err != nil {
					return fmt.Errorf("invalid date %q: want YYYY-MM-DD", args[1])
				}
				date = args[1]
			}
			g, added, err := a.db.ToggleLog(cmd.Context(), args[0], date, config.CheckInValue)
			if err != nil {
				return err
			}
			verb := "Removed check-in"
			if added {
				verb = "Checked in"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %q: %s\n", verb, date, g.Title, tui.FormatProgress(g.Actual, g.Target, g.Unit))
			return nil
		},
	}
}

func newStreakCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "streak <goal-id>",
		Short: "Show a goal's current and longest check-in runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.db.GetGoal(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := streak.Calculate(g.Logs, a.now().Format(models.ISODate))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: current %d, longest %d\n", g.Title, r.Current, r.Longest)
			return nil
		},
	}
}

func newShareCmd(a *app) *cobra.Command {
	var copyLink bool
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a read-only share link for the plan year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := a.db.ListGoals(cmd.Context(), a.cfg.TargetYear)
			if err != nil {
				return err
			}
			link, err := snapshot.ShareURL(a.cfg.ShareBaseURL, goals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			if copyLink {
				if err := a.clipboard(link); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "clipboard unavailable: %v\n", err)
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Share link copied to clipboard")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyLink, "copy", false, "also copy the link to the clipboard")
	return cmd
}

func newOpenCmd(a *app) *cobra.Command {
	var doImport bool
	cmd := &cobra.Command{
		Use:   "open <share-link>",
		Short: "Show the goals inside a share link",
		Long: `Show the goals inside a share link, or replace the plan year with them.

Examples:
  zenith open "http://localhost:5173/#data=..."
  zenith open "#data=..." --import`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			goals, err := snapshot.DecodeURL(args[0], now)
			if err != nil {
				return err
			}
			if !doImport {
				printGoals(cmd.OutOrStdout(), goals, calendar.ComputeYearStats(a.cfg.TargetYear, now))
				return nil
			}
			if err := a.db.ReplaceGoals(cmd.Context(), a.cfg.TargetYear, goals); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d goals into your %d plan\n", len(goals), a.cfg.TargetYear)
			return nil
		},
	}
	cmd.Flags().BoolVar(&doImport, "import", false, "replace the plan year with the shared goals")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		encrypt bool
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of the plan year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := database.ExportOptions{EncryptOutput: encrypt}
			if encrypt {
				pass, err := a.newPassphrase()
				if err != nil {
					return err
				}
				opts.Passphrase = pass
			}
			if out == "" {
				out = filepath.Join(a.reportsDir(), "exports")
			}
			path, err := tui.WriteBackup(cmd.Context(), a.db, a.cfg.TargetYear, out, opts, a.now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt the backup with a passphrase")
	cmd.Flags().StringVar(&out, "out", "", "output directory")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Replace the plan year with a backup's goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			n, err := a.db.ImportBackup(cmd.Context(), a.cfg.TargetYear, data, "")
			for tries := 0; errors.Is(err, database.ErrPassphraseNeeded) || errors.Is(err, database.ErrWrongPassphrase); tries++ {
				if tries == config.MaxPassphraseAttempts {
					return err
				}
				if tries > 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), "Incorrect passphrase.")
				}
				pass, perr := a.readPassphrase("Backup passphrase: ")
				if perr != nil {
					return perr
				}
				n, err = a.db.ImportBackup(cmd.Context(), a.cfg.TargetYear, data, pass)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d goals into your %d plan\n", n, a.cfg.TargetYear)
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a PDF progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := a.db.ListGoals(cmd.Context(), a.cfg.TargetYear)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.reportsDir()
			}
			now := a.now()
			path, err := tui.WriteReport(out, calendar.ComputeYearStats(a.cfg.TargetYear, now), goals, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zenith %s\n", tui.VersionLabel())
		},
	}
}
