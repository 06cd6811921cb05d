package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
)

// DigestService builds human-readable schedule summaries for notifications.
type DigestService struct {
	planner *PlannerService
}

func NewDigestService(planner *PlannerService) *DigestService {
	return &DigestService{planner: planner}
}

// DailyDigest renders an HTML summary of the default window: watchlist,
// busiest resources and the next scheduled tasks.
func (s *DigestService) DailyDigest(ctx context.Context, now time.Time) (string, error) {
	summary, err := s.planner.Dashboard(ctx, Query{})
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("📅 <b>Schedule digest</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("02.01.2006")))

	builder.WriteString("⚠️ <b>Watchlist (≥80% utilised)</b>\n")
	if len(summary.Watchlist) == 0 {
		builder.WriteString("— no utilisation risks\n")
	} else {
		for _, row := range summary.Watchlist {
			builder.WriteString(fmt.Sprintf(
				"• %s (%s): %d/%d days, %.1f%%\n",
				html.EscapeString(row.ResourceName), row.ResourceType,
				row.BusyDays, row.AvailableDays, row.Utilization,
			))
		}
	}

	builder.WriteString("\n🔥 <b>Busiest resources</b>\n")
	if len(summary.TopBusy) == 0 {
		builder.WriteString("— no workload in the window\n")
	} else {
		top := summary.TopBusy
		if len(top) > 5 {
			top = top[:5]
		}
		for _, busy := range top {
			builder.WriteString(fmt.Sprintf(
				"• %s: %d busy days\n",
				html.EscapeString(busy.ResourceName), busy.BusyDays,
			))
		}
	}

	builder.WriteString("\n📋 <b>Upcoming tasks</b>\n")
	if len(summary.Upcoming) == 0 {
		builder.WriteString("— nothing scheduled\n")
	} else {
		for _, item := range summary.Upcoming {
			builder.WriteString(fmt.Sprintf(
				"• %s — %s (%s, %s → %s)\n",
				html.EscapeString(item.ResourceLabel),
				html.EscapeString(item.Title),
				item.Status,
				item.StartDate.Format("02.01"),
				item.EndDate.Format("02.01"),
			))
		}
	}

	return builder.String(), nil
}
