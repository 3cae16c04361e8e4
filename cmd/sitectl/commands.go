package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advocate_site/internal/app"
	"advocate_site/internal/config"
	"advocate_site/internal/disclaimer"
	"advocate_site/internal/handlers"
	"advocate_site/internal/logging"
	"advocate_site/internal/tasks"
	"advocate_site/internal/view"
	"advocate_site/web/pages"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Maintenance commands for the practice site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExportCmd(), newContentCmd(), newPruneCmd())
	return root
}

func newExportCmd() *cobra.Command {
	var (
		out            string
		contentFile    string
		section        string
		tab            int
		showDisclaimer bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page to a static HTML file",
		Example: `  # Snapshot the default page without the notice
  sitectl export --out dist/index.html

  # Snapshot with the legal notice open
  sitectl export --out dist/index.html --disclaimer`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := app.LoadSite(contentFile)
			if err != nil {
				return err
			}

			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			desk, err := app.NewDesk(cfg, site)
			if err != nil {
				return err
			}

			state := view.State{ActiveSection: view.DefaultSection, ShowDisclaimer: showDisclaimer}
			state.Navigate(section)
			state.SelectTab(tab, len(site.Expertise.Areas))

			h := handlers.NewSiteHandler(site, desk, disclaimer.NewController(nil, nil), nil)
			props := h.HomeProps(state, "/")

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := pages.Home(props).Render(cmd.Context(), f); err != nil {
				return fmt.Errorf("render page: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (required)")
	cmd.Flags().StringVar(&contentFile, "content", "", "Content YAML file (defaults to embedded copy)")
	cmd.Flags().StringVar(&section, "section", view.DefaultSection, "Active section")
	cmd.Flags().IntVar(&tab, "tab", 0, "Active expertise tab")
	cmd.Flags().BoolVar(&showDisclaimer, "disclaimer", false, "Render the legal notice open")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Content commands",
	}

	var file string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a content file for unknown sections and missing fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := app.LoadSite(file)
			if err != nil {
				return err
			}
			source := file
			if source == "" {
				source = "embedded content"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nav items, %d practice areas, %d zones)\n",
				source, len(site.Nav), len(site.Expertise.Areas), len(site.GlobalDesk.Zones))
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&file, "file", "f", "", "Content YAML file (defaults to embedded copy)")

	contentCmd.AddCommand(validateCmd)
	return contentCmd
}

func newPruneCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete disclaimer acknowledgements older than a duration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			if olderThan <= 0 {
				olderThan = cfg.DisclaimerRetention
			}

			logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			store, closeStore, err := app.OpenStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			pruner, ok := store.(disclaimer.Pruner)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "store %s expires entries on its own\n", cfg.DisclaimerStore)
				return nil
			}

			task := &tasks.PruneAcknowledgementsTaskDef{Store: pruner, Retention: olderThan}
			result, err := task.HandleExecution(ctx)
			if err != nil {
				return err
			}
			logger.Info("Pruned acknowledgements", zap.Any("result", result))
			fmt.Fprintf(cmd.OutOrStdout(), "removed %v acknowledgements\n", result["removed"])
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age cutoff (defaults to DISCLAIMER_RETENTION)")

	return cmd
}
