package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasksheet/internal/config"
	"tasksheet/internal/sheet"
)

func completeViews(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	views := make([]string, len(sheet.Modes))
	for i, mode := range sheet.Modes {
		views[i] = string(mode)
	}
	return views, cobra.ShellCompDirectiveNoFileComp
}

func SetupCommands(a *App) *cobra.Command {
	var (
		configPath string
		verbose    bool
		view       string
		compact    bool
	)

	// root command opens the interactive sheet
	rootCmd := &cobra.Command{
		Use:           "tasksheet",
		Short:         "A task tracking sheet for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.View()
			if cmd.Flags().Changed("view") {
				mode = sheet.ParseMode(view)
			}
			return a.Open(mode, compact)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&view, "view", "", "view to open: morning, evening, complete or custom")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "start in the list layout")
	_ = rootCmd.RegisterFlagCompletionFunc("view", completeViews)

	// command for choosing the view from a menu before opening the sheet
	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a view, then open the sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.PickView()
			if err != nil {
				return err
			}
			return a.Open(mode, compact)
		},
	}
	pickCmd.Flags().BoolVar(&compact, "compact", false, "start in the list layout")

	// command for printing the sheet without the interactive surface
	var hidden []string
	showCmd := &cobra.Command{
		Use:               "show [view]",
		Short:             "Print the sheet in a view",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeViews,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.View()
			if len(args) > 0 {
				mode = sheet.ParseMode(args[0])
			}
			return a.Display(mode, hidden)
		},
	}
	showCmd.Flags().StringSliceVar(&hidden, "hide", nil, "fields to leave out of the custom view")

	// command for listing views and their fields
	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "List views and the fields they show",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.Views()
		},
	}

	// seed commands
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Manage the starting dataset",
	}

	var dbPath string
	importCmd := &cobra.Command{
		Use:   "import [file|url]",
		Short: "Load seed rows from a YAML/JSON file or a tasks API into the seed database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dbPath
			if path == "" {
				path = a.cfg.SeedDB
			}
			if path == "" {
				path = DefaultSeedDBPath()
			}
			if _, err := a.ImportSeed(cmd.Context(), path, args[0]); err != nil {
				return fmt.Errorf("seed import: %w", err)
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&dbPath, "db", "", "seed database path")
	seedCmd.AddCommand(importCmd)

	// config commands
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.InitConfig(configPath, force)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)

	// add commands
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)

	return rootCmd
}
