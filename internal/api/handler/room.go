package handler

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/usecase"
)

// RoomHandler handles room endpoints
type RoomHandler struct {
	get    *usecase.GetRoomUsecase
	list   *usecase.GetSpaceRoomsUsecase
	create *usecase.PostRoomUsecase
	update *usecase.PutRoomUsecase
	delete *usecase.DeleteRoomsUsecase
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms domain.RoomRepository) *RoomHandler {
	return &RoomHandler{
		get:    usecase.NewGetRoomUsecase(rooms),
		list:   usecase.NewGetSpaceRoomsUsecase(rooms),
		create: usecase.NewPostRoomUsecase(rooms),
		update: usecase.NewPutRoomUsecase(rooms),
		delete: usecase.NewDeleteRoomsUsecase(rooms),
	}
}

// Get returns the room named by ?roomId=, or every room of ?spaceId=
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("roomId") == "" && query.Get("spaceId") != "" {
		spaceID, err := queryID(r, "spaceId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		rooms, err := h.list.Execute(r.Context(), spaceID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.OK(w, rooms)
		return
	}

	id, err := queryID(r, "roomId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	room, err := h.get.Execute(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, room)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.RoomRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	room, err := h.create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input dto.RoomUpdateRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	room, err := h.update.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, room)
}

// Delete removes every room listed in the {"ids": [...]} body
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input dto.DeleteRoomsRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.delete.Execute(r.Context(), input); err != nil {
		writeError(w, r, err)
		return
	}

	response.NoContent(w)
}
