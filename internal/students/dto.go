package students

import (
	"time"

	"github.com/studentmanagement/students-api/internal/models"
)

// Request is the client-supplied body for create and update.
type Request struct {
	Title   string `json:"title" validate:"notblank" label:"Title"`
	Name    string `json:"name" validate:"notblank" label:"Name"`
	Address string `json:"address" validate:"notblank" label:"Address"`
	City    string `json:"city" validate:"notblank" label:"City"`
	Course  string `json:"course" validate:"notblank" label:"Course"`
}

type Response struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Course    string    `json:"course"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(s models.Student) Response {
	return Response{
		ID:        s.ID,
		Title:     s.Title,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		Course:    s.Course,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
