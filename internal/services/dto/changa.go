package dto

import (
	"time"

	"changaya_backend/internal/models"
)

type CreateChangaRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"required"`
	Compensation float64    `json:"compensation" validate:"required,gt=0"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
}

type UpdateChangaRequest struct {
	Title        string              `json:"title" validate:"omitempty,max=200"`
	Description  string              `json:"description" validate:"omitempty"`
	Compensation float64             `json:"compensation" validate:"omitempty,gt=0"`
	StartTime    *time.Time          `json:"start_time"`
	EndTime      *time.Time          `json:"end_time"`
	Status       models.ChangaStatus `json:"status" validate:"omitempty,oneof=open assigned done cancelled"`
}

type ChangaResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Compensation float64             `json:"compensation"`
	StartTime    *time.Time          `json:"start_time,omitempty"`
	EndTime      *time.Time          `json:"end_time,omitempty"`
	Status       models.ChangaStatus `json:"status"`
	WorkerID     *string             `json:"worker_id,omitempty"`
	EmployerID   *string             `json:"employer_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func ToChangaResponse(c *models.Changa) ChangaResponse {
	return ChangaResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Compensation: c.Compensation,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		Status:       c.Status,
		WorkerID:     c.WorkerID,
		EmployerID:   c.EmployerID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToChangaResponses(changas []models.Changa) []ChangaResponse {
	out := make([]ChangaResponse, 0, len(changas))
	for i := range changas {
		out = append(out, ToChangaResponse(&changas[i]))
	}
	return out
}
