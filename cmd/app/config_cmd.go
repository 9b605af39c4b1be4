package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
		// Only configuration is needed here; the store stays closed.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadWithOverrides(a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config file:    %s\n", config.ConfigPath())
			fmt.Fprintf(w, "target_year:    %d\n", a.cfg.TargetYear)
			fmt.Fprintf(w, "data_dir:       %s\n", a.cfg.DataDir)
			fmt.Fprintf(w, "db:             %s\n", a.cfg.DBPath())
			fmt.Fprintf(w, "share_base_url: %s\n", a.cfg.ShareBaseURL)
			fmt.Fprintf(w, "theme:          %s\n", a.cfg.Theme)
			fmt.Fprintf(w, "log_level:      %s\n", a.cfg.LogLevel)
			fmt.Fprintf(w, "log_file:       %s\n", a.cfg.LogFile)
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration, flags included, to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Save(a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.ConfigPath())
			return nil
		},
	}

	resetUI := &cobra.Command{
		Use:   "reset-ui",
		Short: "Forget the dashboard's saved theme and month",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, key := range []string{database.SettingTheme, database.SettingLastMonth} {
				if err := a.db.DeleteSetting(cmd.Context(), key); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Dashboard settings cleared")
			return nil
		},
	}

	cmd.AddCommand(show, initCmd, resetUI)
	return cmd
}

func newYearsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List plan years that hold goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			years, err := a.db.Years(cmd.Context())
			if err != nil {
				return err
			}
			for _, y := range years {
				n, err := a.db.CountGoals(cmd.Context(), y)
				if err != nil {
					return err
				}
				marker := " "
				if y == a.cfg.TargetYear {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d  %d goals\n", marker, y, n)
			}
			return nil
		},
	}
}
