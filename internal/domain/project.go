package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "DRAFT"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

var projectStatuses = map[ProjectStatus]bool{
	ProjectStatusDraft:     true,
	ProjectStatusActive:    true,
	ProjectStatusCompleted: true,
	ProjectStatusCancelled: true,
}

func (s ProjectStatus) Valid() bool { return projectStatuses[s] }

// Terminal reports whether the status finalizes child bookings. Moving a
// project into a terminal status cascades to its bookings.
func (s ProjectStatus) Terminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}

type Project struct {
	ID        int32         `json:"id"`
	ClientID  int32         `json:"client_id"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	CreatedOn time.Time     `json:"created_on"`
	UpdatedOn time.Time     `json:"updated_on"`
}
