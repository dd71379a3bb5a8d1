package dto

import (
	"time"

	"github.com/birdchime/appointment-api/internal/models"
)

type AppointmentDTO struct {
	ID        uint      `json:"id"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromAppointment(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:        ap.ID,
		StartAt:   ap.StartAt,
		EndAt:     ap.EndAt,
		Name:      ap.Name,
		Email:     ap.Email,
		Phone:     ap.Phone,
		Reason:    ap.Reason,
		CreatedAt: ap.CreatedAt,
		UpdatedAt: ap.UpdatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, len(aps))
	for i, ap := range aps {
		out[i] = FromAppointment(ap)
	}
	return out
}
