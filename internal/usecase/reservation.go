package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReservationWindow is a parsed, ordered [Start, End) pair
type ReservationWindow struct {
	Start time.Time
	End   time.Time
}

// ParseReservationWindow parses RFC 3339 timestamps and requires start < end
func ParseReservationWindow(startTime, endTime string) (ReservationWindow, error) {
	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return ReservationWindow{}, fmt.Errorf("%w: startTime must be an RFC 3339 timestamp", domain.ErrInvalidInput)
	}
	end, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return ReservationWindow{}, fmt.Errorf("%w: endTime must be an RFC 3339 timestamp", domain.ErrInvalidInput)
	}
	if !start.Before(end) {
		return ReservationWindow{}, domain.ErrInvalidTimeRange
	}

	return ReservationWindow{Start: start.UTC(), End: end.UTC()}, nil
}

// ValidateReservationWindow parses the requested window and checks it does
// not intersect another reservation of the room. excludeID skips the
// reservation being moved.
func ValidateReservationWindow(ctx context.Context, repo domain.ReservationRepository, roomID int64, startTime, endTime string, excludeID int64) (ReservationWindow, error) {
	window, err := ParseReservationWindow(startTime, endTime)
	if err != nil {
		return ReservationWindow{}, err
	}

	conflicts, err := repo.FindOverlapping(ctx, roomID, window.Start, window.End, excludeID)
	if err != nil {
		return ReservationWindow{}, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}
	if len(conflicts) > 0 {
		return ReservationWindow{}, domain.ErrReservationOverlap
	}

	return window, nil
}

// GetAllReservationsUsecase is the admin-wide listing
type GetAllReservationsUsecase struct {
	reservations domain.ReservationRepository
}

func NewGetAllReservationsUsecase(reservations domain.ReservationRepository) *GetAllReservationsUsecase {
	return &GetAllReservationsUsecase{reservations: reservations}
}

func (u *GetAllReservationsUsecase) Execute(ctx context.Context) ([]dto.ReservationDTO, error) {
	reservations, err := u.reservations.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch reservations")
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return dto.FromReservations(reservations), nil
}

type GetRoomReservationsUsecase struct {
	reservations domain.ReservationRepository
}

func NewGetRoomReservationsUsecase(reservations domain.ReservationRepository) *GetRoomReservationsUsecase {
	return &GetRoomReservationsUsecase{reservations: reservations}
}

func (u *GetRoomReservationsUsecase) Execute(ctx context.Context, roomID int64) ([]dto.ReservationDTO, error) {
	reservations, err := u.reservations.FindByRoomID(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to fetch room reservations")
		return nil, fmt.Errorf("failed to fetch room reservations: %w", err)
	}
	return dto.FromReservations(reservations), nil
}

type GetUserReservationsUsecase struct {
	reservations domain.ReservationRepository
}

func NewGetUserReservationsUsecase(reservations domain.ReservationRepository) *GetUserReservationsUsecase {
	return &GetUserReservationsUsecase{reservations: reservations}
}

func (u *GetUserReservationsUsecase) Execute(ctx context.Context, userID string) ([]dto.ReservationDTO, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", domain.ErrInvalidInput)
	}

	reservations, err := u.reservations.FindByUserID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to fetch user reservations")
		return nil, fmt.Errorf("failed to fetch user reservations: %w", err)
	}
	return dto.FromReservations(reservations), nil
}

// PostReservationUsecase books a room for the requesting user
type PostReservationUsecase struct {
	reservations domain.ReservationRepository
}

func NewPostReservationUsecase(reservations domain.ReservationRepository) *PostReservationUsecase {
	return &PostReservationUsecase{reservations: reservations}
}

func (u *PostReservationUsecase) Execute(ctx context.Context, req dto.ReservationRequest) (*dto.ReservationDTO, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", domain.ErrInvalidInput)
	}

	window, err := ValidateReservationWindow(ctx, u.reservations, req.RoomID, req.StartTime, req.EndTime, 0)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		SpaceID:   req.SpaceID,
		RoomID:    req.RoomID,
		UserID:    userID,
		StartTime: window.Start,
		EndTime:   window.End,
	}
	if err := u.reservations.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	result := dto.FromReservation(reservation)
	return &result, nil
}

// PutReservationUsecase moves a reservation. Only its owner or an admin may
// change it.
type PutReservationUsecase struct {
	reservations domain.ReservationRepository
}

func NewPutReservationUsecase(reservations domain.ReservationRepository) *PutReservationUsecase {
	return &PutReservationUsecase{reservations: reservations}
}

func (u *PutReservationUsecase) Execute(ctx context.Context, caller dto.Caller, id int64, req dto.ReservationRequest) (*dto.ReservationDTO, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := loadOwned(ctx, u.reservations, caller, id)
	if err != nil {
		return nil, err
	}

	window, err := ValidateReservationWindow(ctx, u.reservations, req.RoomID, req.StartTime, req.EndTime, id)
	if err != nil {
		return nil, err
	}

	existing.SpaceID = req.SpaceID
	existing.RoomID = req.RoomID
	existing.StartTime = window.Start
	existing.EndTime = window.End
	if err := u.reservations.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	result := dto.FromReservation(existing)
	return &result, nil
}

type DeleteReservationUsecase struct {
	reservations domain.ReservationRepository
}

func NewDeleteReservationUsecase(reservations domain.ReservationRepository) *DeleteReservationUsecase {
	return &DeleteReservationUsecase{reservations: reservations}
}

func (u *DeleteReservationUsecase) Execute(ctx context.Context, caller dto.Caller, id int64) error {
	if _, err := loadOwned(ctx, u.reservations, caller, id); err != nil {
		return err
	}

	if err := u.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// loadOwned fetches a reservation the caller is allowed to modify
func loadOwned(ctx context.Context, repo domain.ReservationRepository, caller dto.Caller, id int64) (*domain.Reservation, error) {
	reservation, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if reservation == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.IsAdmin() && reservation.UserID.String() != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return reservation, nil
}
