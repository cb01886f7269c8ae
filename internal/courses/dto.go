package courses

import (
	"time"

	"github.com/studentmanagement/students-api/internal/models"
)

// Request is the client-supplied body for create and update. Fee travels as
// a string so it reaches the service without binary floating point.
type Request struct {
	Name         string `json:"name" validate:"notblank" label:"Course name"`
	Fee          string `json:"fee" validate:"notblank,nonnegdecimal" label:"Fee"`
	LecturerID   string `json:"lecturerId" validate:"notblank" label:"Lecturer ID"`
	LecturerName string `json:"lecturerName" validate:"notblank" label:"Lecturer name"`
}

type Response struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Fee          string    `json:"fee"`
	LecturerID   string    `json:"lecturerId"`
	LecturerName string    `json:"lecturerName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toResponse(c models.Course) Response {
	return Response{
		ID:           c.ID,
		Name:         c.Name,
		Fee:          c.Fee.String(),
		LecturerID:   c.LecturerID,
		LecturerName: c.LecturerName,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
