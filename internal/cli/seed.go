package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resource-planner/internal/logger"
	"resource-planner/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo resources and tasks",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	seeder := service.NewSeedService(d.resourceRepo, d.taskRepo)
	if err := seeder.SeedDemo(context.Background()); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	log := logger.New("seed")
	log.Info().Msg("demo data seeded")
	return nil
}
