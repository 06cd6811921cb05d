package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"resource-planner/internal/logger"
)

// digestTimeout bounds one digest build-and-send cycle.
const digestTimeout = 30 * time.Second

// DigestScheduler owns the daily digest job: it builds the summary and hands
// the rendered text to a delivery function on a cron schedule.
type DigestScheduler struct {
	cron   *cron.Cron
	digest *DigestService
	send   func(context.Context, string) error
}

// NewDigestScheduler wires a digest builder to a delivery function. The send
// function is typically a Telegram notifier, but anything that accepts the
// rendered HTML works.
func NewDigestScheduler(digest *DigestService, send func(context.Context, string) error) *DigestScheduler {
	return &DigestScheduler{
		cron:   cron.New(cron.WithLocation(time.Local), cron.WithSeconds()),
		digest: digest,
		send:   send,
	}
}

// Start registers the daily job at the given HH:MM local time and starts the
// scheduler.
func (s *DigestScheduler) Start(at string) error {
	spec, err := dailyCronSpec(at)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *DigestScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *DigestScheduler) run() {
	log := logger.New("digest")
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	text, err := s.digest.DailyDigest(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("build digest")
		return
	}
	if err := s.send(ctx, text); err != nil {
		log.Error().Err(err).Msg("send digest")
		return
	}
	log.Info().Msg("digest sent")
}

// dailyCronSpec turns an HH:MM wall-clock time into a six-field cron spec
// (second minute hour dom month dow).
func dailyCronSpec(at string) (string, error) {
	clock, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("digest time %q: expected HH:MM: %w", at, err)
	}
	return fmt.Sprintf("0 %d %d * * *", clock.Minute(), clock.Hour()), nil
}
