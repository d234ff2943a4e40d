package handler

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/middleware"
	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/usecase"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	listAll  *usecase.GetAllReservationsUsecase
	listRoom *usecase.GetRoomReservationsUsecase
	listUser *usecase.GetUserReservationsUsecase
	create   *usecase.PostReservationUsecase
	update   *usecase.PutReservationUsecase
	delete   *usecase.DeleteReservationUsecase
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservations domain.ReservationRepository) *ReservationHandler {
	return &ReservationHandler{
		listAll:  usecase.NewGetAllReservationsUsecase(reservations),
		listRoom: usecase.NewGetRoomReservationsUsecase(reservations),
		listUser: usecase.NewGetUserReservationsUsecase(reservations),
		create:   usecase.NewPostReservationUsecase(reservations),
		update:   usecase.NewPutReservationUsecase(reservations),
		delete:   usecase.NewDeleteReservationUsecase(reservations),
	}
}

// ListAll is the admin view of every reservation
func (h *ReservationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.listAll.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, reservations)
}

// ListByRoom lists the reservations of ?roomId=
func (h *ReservationHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := queryID(r, "roomId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reservations, err := h.listRoom.Execute(r.Context(), roomID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, reservations)
}

// ListMine lists the caller's own reservations
func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	reservations, err := h.listUser.Execute(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, reservations)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input dto.ReservationRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.UserID = caller.UserID

	reservation, err := h.create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, reservation)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input dto.ReservationRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	reservation, err := h.update.Execute(r.Context(), caller, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, reservation)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.delete.Execute(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	response.NoContent(w)
}
