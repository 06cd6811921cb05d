package schedule

import (
	"math"
	"sort"
	"time"

	"resource-planner/internal/model"
)

// WatchlistThreshold is the utilization percentage at or above which a
// resource lands on the watchlist.
const WatchlistThreshold = 80.0

// UtilizationRow summarizes one resource's load over a window: distinct
// busy days, the inclusive window length and the resulting percentage.
type UtilizationRow struct {
	ResourceID    uint               `json:"resource_id"`
	ResourceName  string             `json:"resource_name"`
	ResourceType  model.ResourceType `json:"resource_type"`
	BusyDays      int                `json:"busy_days"`
	AvailableDays int                `json:"available_days"`
	Utilization   float64            `json:"utilization"`
}

// Utilization aggregates occupancy records into one row per resource for
// the given window. Days with several overlapping tasks count once.
// Utilization is rounded to one decimal place. Rows are sorted by
// utilization descending, stable on first appearance in the input. A window
// whose end precedes its start, or empty occupancy, yields no rows.
func Utilization(occupancy []Occupancy, window Window) []UtilizationRow {
	available := window.Days()
	if available <= 0 || len(occupancy) == 0 {
		return nil
	}

	days := make(map[uint]map[time.Time]struct{})
	meta := make(map[uint]Occupancy)
	var order []uint
	for _, rec := range occupancy {
		if _, seen := days[rec.ResourceID]; !seen {
			days[rec.ResourceID] = make(map[time.Time]struct{})
			meta[rec.ResourceID] = rec
			order = append(order, rec.ResourceID)
		}
		days[rec.ResourceID][Day(rec.Date)] = struct{}{}
	}

	rows := make([]UtilizationRow, 0, len(order))
	for _, id := range order {
		busy := len(days[id])
		first := meta[id]
		rows = append(rows, UtilizationRow{
			ResourceID:    id,
			ResourceName:  first.ResourceName,
			ResourceType:  first.ResourceType,
			BusyDays:      busy,
			AvailableDays: available,
			Utilization:   round1(float64(busy) / float64(available) * 100),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Utilization > rows[j].Utilization
	})
	return rows
}

// Watchlist filters utilization rows at or above the threshold.
func Watchlist(rows []UtilizationRow, threshold float64) []UtilizationRow {
	var out []UtilizationRow
	for _, row := range rows {
		if row.Utilization >= threshold {
			out = append(out, row)
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
