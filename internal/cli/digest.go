package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resource-planner/internal/notify"
	"resource-planner/internal/service"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send the schedule digest once and exit",
	RunE:  runDigest,
}

func init() {
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if !d.cfg.Telegram.Enabled() {
		return fmt.Errorf("telegram is not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := service.NewDigestService(d.planner).DailyDigest(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}
	notifier, err := notify.NewTelegramNotifier(d.cfg.Telegram.Token, d.cfg.Telegram.ChatID)
	if err != nil {
		return fmt.Errorf("telegram notifier: %w", err)
	}
	return notifier.Send(ctx, text)
}
