package dto

import (
	"time"

	"github.com/Rrens/space-reservation/internal/domain"
)

type ReservationDTO struct {
	ID        int64  `json:"id"`
	SpaceID   int64  `json:"spaceId"`
	RoomID    int64  `json:"roomId"`
	UserID    string `json:"userId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ReservationRequest carries raw primitives from the client. UserID is
// filled from the authenticated token, never from the body.
type ReservationRequest struct {
	SpaceID   int64  `json:"spaceId" validate:"required,gt=0"`
	RoomID    int64  `json:"roomId" validate:"required,gt=0"`
	UserID    string `json:"-"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

func FromReservation(r *domain.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:        r.ID,
		SpaceID:   r.SpaceID,
		RoomID:    r.RoomID,
		UserID:    r.UserID.String(),
		StartTime: r.StartTime.UTC().Format(time.RFC3339),
		EndTime:   r.EndTime.UTC().Format(time.RFC3339),
	}
}

// FromReservations maps a list of reservations; the result is never nil
func FromReservations(reservations []domain.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		out = append(out, FromReservation(&reservations[i]))
	}
	return out
}
