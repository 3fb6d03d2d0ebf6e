package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numerology/internal/config"
	"numerology/pkg/domain"
	"numerology/pkg/logger"
)

func reportCommand(cfg *config.Config) *cobra.Command {
	var (
		fullName  string
		birthDate string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Runs one report pipeline and writes the PDF and chart to the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(fullName) == "" {
				return fmt.Errorf("--name is required")
			}
			bd, err := time.Parse(time.DateOnly, birthDate)
			if err != nil {
				return fmt.Errorf("--birthdate must be YYYY-MM-DD: %w", err)
			}

			ctx := context.Background()
			runner := newRunner(ctx, cfg, nil)

			res, runErr := runner.Run(ctx, domain.Input{FullName: fullName, BirthDate: bd})
			if runErr != nil && res == nil {
				return fmt.Errorf("could not run pipeline: %w", runErr)
			}

			p := res.Report.Profile
			fmt.Printf("Life Path: %d\nExpression: %d\nSoul Urge: %d\nPersonality: %d\n",
				p.LifePath, p.Expression, p.SoulUrge, p.Personality)
			fmt.Printf("\nCareer Advice:\n%s\n", res.Report.Advice.Career)
			fmt.Printf("\nRelationship Advice:\n%s\n", res.Report.Advice.Relationship)
			fmt.Printf("\nAction Steps:\n%s\n", res.Report.Advice.ActionSteps)

			// rendering can fail after the numbers and advice are computed;
			// print them first and only then report the failed artifacts
			if runErr != nil {
				return fmt.Errorf("could not render report artifacts: %w", runErr)
			}

			chartPath := filepath.Join(cfg.Report.OutputDir,
				fmt.Sprintf("numerology_chart_%s.png", res.Report.ID))
			if err := os.WriteFile(chartPath, res.ChartPNG, 0o644); err != nil {
				return fmt.Errorf("could not write chart: %w", err)
			}

			logger.Info(ctx, "report generated",
				zap.String("document", res.DocumentPath),
				zap.String("chart", chartPath))

			fmt.Printf("\nDocument: %s\n", res.DocumentPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name as on the birth certificate")
	cmd.Flags().StringVar(&birthDate, "birthdate", "", "Birthdate in YYYY-MM-DD format")

	return cmd
}
