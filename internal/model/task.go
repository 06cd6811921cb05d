package model

import "time"

// TaskStatus tracks where a task sits in its lifecycle.
type TaskStatus string

const (
	StatusPlanned    TaskStatus = "Planned"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
	StatusOnHold     TaskStatus = "On Hold"
	StatusHoliday    TaskStatus = "Holiday"
	StatusTimeOff    TaskStatus = "Time Off"
)

// TaskStatuses lists every known status.
var TaskStatuses = []TaskStatus{
	StatusPlanned,
	StatusInProgress,
	StatusDone,
	StatusOnHold,
	StatusHoliday,
	StatusTimeOff,
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsLeave reports whether the status marks absence rather than work.
func (s TaskStatus) IsLeave() bool {
	return s == StatusHoliday || s == StatusTimeOff
}

// Task is a date-ranged assignment belonging to exactly one resource.
// Start and end are inclusive calendar dates. The store does not reject an
// end before the start; downstream computation treats such a task as
// contributing nothing.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ResourceID  uint       `gorm:"index" json:"resource_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      TaskStatus `gorm:"default:'Planned'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
