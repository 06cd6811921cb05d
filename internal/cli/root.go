// Package cli defines the planner command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"resource-planner/internal/api"
	"resource-planner/internal/config"
	"resource-planner/internal/logger"
	"resource-planner/internal/notify"
	"resource-planner/internal/repository"
	"resource-planner/internal/service"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Resource scheduling service",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// deps bundles everything the commands wire up from configuration.
type deps struct {
	cfg          *config.Config
	resourceRepo *repository.ResourceRepository
	taskRepo     *repository.TaskRepository
	planner      *service.PlannerService
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	resourceRepo := repository.NewResourceRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return &deps{
		cfg:          cfg,
		resourceRepo: resourceRepo,
		taskRepo:     taskRepo,
		planner:      service.NewPlannerService(resourceRepo, taskRepo),
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New("main")

	d, err := buildDeps()
	if err != nil {
		return err
	}

	if d.cfg.SeedDemo {
		seeder := service.NewSeedService(d.resourceRepo, d.taskRepo)
		if err := seeder.SeedDemo(ctx); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		log.Info().Msg("demo data seeded")
	}

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(d.planner, d.resourceRepo, d.taskRepo, logger.New("api"))
	httpSrv := &http.Server{
		Addr:              d.cfg.Server.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if d.cfg.Telegram.Enabled() {
		notifier, err := notify.NewTelegramNotifier(d.cfg.Telegram.Token, d.cfg.Telegram.ChatID)
		if err != nil {
			return fmt.Errorf("telegram notifier: %w", err)
		}
		scheduler := service.NewDigestScheduler(service.NewDigestService(d.planner), notifier.Send)
		if err := scheduler.Start(d.cfg.Telegram.DigestTime); err != nil {
			return fmt.Errorf("schedule digest: %w", err)
		}
		defer scheduler.Stop()
		log.Info().Str("at", d.cfg.Telegram.DigestTime).Msg("daily digest scheduled")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("addr", d.cfg.Server.Addr).Msg("planner started")

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}
