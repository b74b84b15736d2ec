package models

import (
	"time"
)

// Changa is a short gig posting. Exactly one of WorkerID/EmployerID is set
// at creation, according to the creator's role; that column is the
// ownership column for update/delete authorization.
type Changa struct {
	BaseModel
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"not null" json:"description"`
	Compensation float64      `gorm:"not null" json:"compensation"`
	StartTime    *time.Time   `json:"start_time,omitempty"`
	EndTime      *time.Time   `json:"end_time,omitempty"`
	Status       ChangaStatus `gorm:"type:varchar(20);default:'open'" json:"status"`
	WorkerID     *string      `gorm:"type:uuid;index" json:"worker_id,omitempty"`
	EmployerID   *string      `gorm:"type:uuid;index" json:"employer_id,omitempty"`
}

// OwnedBy reports whether either ownership column matches the given user.
func (c *Changa) OwnedBy(userID string) bool {
	if c.WorkerID != nil && *c.WorkerID == userID {
		return true
	}
	if c.EmployerID != nil && *c.EmployerID == userID {
		return true
	}
	return false
}
