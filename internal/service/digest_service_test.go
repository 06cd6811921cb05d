package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-planner/internal/model"
)

func TestDailyDigestContent(t *testing.T) {
	f := newFixture(t)
	busy := f.addResource(t, "Aurora", model.TypeVessel)
	f.addTask(t, busy, "Cable lay", model.StatusInProgress, date(2025, 1, 1), date(2025, 1, 31))

	digest := NewDigestService(f.planner)
	text, err := digest.DailyDigest(context.Background(), time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, text, "Schedule digest")
	assert.Contains(t, text, "10.01.2025")
	// The single task spans the whole default window, so the resource is on
	// the watchlist and in the busiest list.
	assert.Contains(t, text, "Aurora (Vessel): 31/31 days, 100.0%")
	assert.Contains(t, text, "Aurora: 31 busy days")
	assert.Contains(t, text, "Vessel – Aurora — Cable lay")
}

func TestDailyDigestEmptySchedule(t *testing.T) {
	f := newFixture(t)
	digest := NewDigestService(f.planner)
	text, err := digest.DailyDigest(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Contains(t, text, "no utilisation risks")
	assert.Contains(t, text, "no workload in the window")
	assert.Contains(t, text, "nothing scheduled")
}

func TestDailyCronSpec(t *testing.T) {
	spec, err := dailyCronSpec("08:30")
	require.NoError(t, err)
	assert.Equal(t, "0 30 8 * * *", spec)

	for _, bad := range []string{"8", "24:00", "10:60", "aa:bb", ""} {
		_, err := dailyCronSpec(bad)
		assert.Error(t, err, "time %q", bad)
	}
}

func TestDigestSchedulerRun(t *testing.T) {
	f := newFixture(t)
	res := f.addResource(t, "Aurora", model.TypeVessel)
	f.addTask(t, res, "Cable lay", model.StatusInProgress, date(2025, 1, 1), date(2025, 1, 31))

	var sent string
	scheduler := NewDigestScheduler(NewDigestService(f.planner), func(_ context.Context, text string) error {
		sent = text
		return nil
	})
	scheduler.run()

	assert.Contains(t, sent, "Schedule digest")
	assert.Contains(t, sent, "Aurora")
}

func TestDigestSchedulerStartRejectsBadTime(t *testing.T) {
	scheduler := NewDigestScheduler(nil, nil)
	assert.Error(t, scheduler.Start("25:00"))
}
