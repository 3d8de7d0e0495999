package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/cmd/bootstrap"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/converter"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appName = "pethealth"

// Version is overridden at build time with -ldflags.
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Pet health vet and clinic profile registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "dedupe",
			Short: "Remove duplicate vet and clinic profiles from storage",
			RunE: func(cmd *cobra.Command, args []string) error {
				return dedupe(cmd)
			},
		},
		&cobra.Command{
			Use:   "duplicates",
			Short: "Print duplicate profile groups without modifying storage",
			RunE: func(cmd *cobra.Command, args []string) error {
				return duplicates(cmd)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func serve(ctx context.Context) error {
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

func dedupe(cmd *cobra.Command) error {
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	// Load runs the bulk dedup and writes the cleaned collection back
	removed, err := app.VetProfiles.Load(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d duplicate profiles\n", removed)
	return nil
}

func duplicates(cmd *cobra.Command) error {
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	data, err := app.SlotRepo.Read(cmd.Context(), app.Config.Storage.ProfilesSlot)
	if err != nil {
		return fmt.Errorf("failed to read vet profiles: %w", err)
	}

	profiles := []entity.VetProfile{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &profiles); err != nil {
			return fmt.Errorf("failed to decode vet profiles: %w", err)
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(converter.DuplicateGroupsToResponse(entity.GroupDuplicates(profiles)))
}
