package handler

import (
	"net/http"

	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/usecase"
)

// SpaceHandler handles space endpoints
type SpaceHandler struct {
	list   *usecase.GetSpacesUsecase
	get    *usecase.GetSpaceUsecase
	create *usecase.PostSpaceUsecase
	update *usecase.PutSpaceUsecase
	delete *usecase.DeleteSpaceUsecase
}

// NewSpaceHandler creates a new space handler
func NewSpaceHandler(spaces domain.SpaceRepository) *SpaceHandler {
	return &SpaceHandler{
		list:   usecase.NewGetSpacesUsecase(spaces),
		get:    usecase.NewGetSpaceUsecase(spaces),
		create: usecase.NewPostSpaceUsecase(spaces),
		update: usecase.NewPutSpaceUsecase(spaces),
		delete: usecase.NewDeleteSpaceUsecase(spaces),
	}
}

// Get returns one space when ?spaceId= is given, otherwise every space
func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("spaceId") == "" {
		spaces, err := h.list.Execute(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.OK(w, spaces)
		return
	}

	id, err := queryID(r, "spaceId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	space, err := h.get.Execute(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, space)
}

func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.SpaceRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	space, err := h.create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, space)
}

func (h *SpaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input dto.SpaceRequest
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	space, err := h.update.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, space)
}

func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.delete.Execute(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.NoContent(w)
}
